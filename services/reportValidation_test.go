package services_test

import (
	"errors"
	"regexp"
	"testing"

	"nagaralert-be/mocks"
	"nagaralert-be/models"
	"nagaralert-be/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFuzzyPrefixPattern(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "first three words", text: "Broken street light near school", expected: "Broken.*street.*light"},
		{name: "short text", text: "  Pothole  ", expected: "Pothole"},
		{name: "empty", text: "", expected: ""},
		{name: "metacharacters escaped", text: "Main St. (north) [gate]", expected: `Main.*St\..*\(north\)`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, services.FuzzyPrefixPattern(tc.text))
		})
	}
}

func TestFuzzyPrefixPatternMatchesVariants(t *testing.T) {
	pattern := regexp.MustCompile("(?i)" + services.FuzzyPrefixPattern("Large pothole near Ratna Park"))

	assert.True(t, pattern.MatchString("large POTHOLE spotted near the bus stop"))
	assert.False(t, pattern.MatchString("pothole near park"))
}

func TestClassifyPhotos(t *testing.T) {
	ctrl := gomock.NewController(t)
	gps := mocks.NewMockGPSExtractor(ctrl)
	box := &models.BoundaryBox{MinLat: 27, MaxLat: 28, MinLng: 85, MaxLng: 86}

	gps.EXPECT().ExtractGPS("in.jpg").Return(models.Coordinates{Lat: 27.5, Lng: 85.5}, true, nil)
	gps.EXPECT().ExtractGPS("out.jpg").Return(models.Coordinates{Lat: 26.5, Lng: 85.5}, true, nil)
	gps.EXPECT().ExtractGPS("none.jpg").Return(models.Coordinates{}, false, nil)
	gps.EXPECT().ExtractGPS("broken.jpg").Return(models.Coordinates{}, false, errors.New("bad exif"))

	result := services.ClassifyPhotos(gps, []models.MediaFile{
		{Filename: "in.jpg", Path: "in.jpg"},
		{Filename: "out.jpg", Path: "out.jpg"},
		{Filename: "none.jpg", Path: "none.jpg"},
		{Filename: "broken.jpg", Path: "broken.jpg"},
	}, box)

	require.Len(t, result.Valid, 1)
	require.Len(t, result.Invalid, 1)
	require.Len(t, result.NoGPS, 2)
	assert.Equal(t, "out.jpg", result.Invalid[0].Filename)
	assert.Equal(t, &models.Coordinates{Lat: 26.5, Lng: 85.5}, result.Invalid[0].Coordinates)
	assert.Equal(t, "bad exif", result.NoGPS[1].Error)
}
