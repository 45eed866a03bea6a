package services

import (
	"regexp"
	"strings"

	"nagaralert-be/models"
)

const (
	// DuplicateWindowDays is how far back the duplicate guard looks.
	DuplicateWindowDays = 7
	// DuplicateCoordinateTolerance is the ±degrees within which two reports share a spot.
	DuplicateCoordinateTolerance = 0.001
	fuzzyPrefixWords             = 3
)

// FuzzyPrefixPattern builds a case-insensitive pattern from the first three
// words of text: each word is escaped and the words are joined with ".*".
func FuzzyPrefixPattern(text string) string {
	words := strings.Fields(text)
	if len(words) > fuzzyPrefixWords {
		words = words[:fuzzyPrefixWords]
	}
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, ".*")
}

// PhotoCheck is the GPS classification of one uploaded photo.
type PhotoCheck struct {
	Filename    string              `json:"filename"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// PhotoValidation buckets photos by where their GPS fix lies.
type PhotoValidation struct {
	Valid   []PhotoCheck
	Invalid []PhotoCheck
	NoGPS   []PhotoCheck
}

// ClassifyPhotos sorts photos into valid (GPS inside box), invalid (GPS
// outside box) and noGPS (no fix, or unreadable EXIF).
func ClassifyPhotos(gps GPSExtractor, photos []models.MediaFile, box *models.BoundaryBox) PhotoValidation {
	var result PhotoValidation
	for _, photo := range photos {
		coords, ok, err := gps.ExtractGPS(photo.Path)
		switch {
		case err != nil:
			result.NoGPS = append(result.NoGPS, PhotoCheck{Filename: photo.Filename, Error: err.Error()})
		case !ok:
			result.NoGPS = append(result.NoGPS, PhotoCheck{Filename: photo.Filename})
		case box.Contains(coords.Lat, coords.Lng):
			c := coords
			result.Valid = append(result.Valid, PhotoCheck{Filename: photo.Filename, Coordinates: &c})
		default:
			c := coords
			result.Invalid = append(result.Invalid, PhotoCheck{Filename: photo.Filename, Coordinates: &c})
		}
	}
	return result
}
