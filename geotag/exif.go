package geotag

import (
	"fmt"
	"os"

	"nagaralert-be/models"

	"github.com/rwcarlsen/goexif/exif"
)

// Reader extracts GPS coordinates from image EXIF data.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// ExtractGPS returns the photo's coordinates. ok is false when the EXIF block
// has no GPS fix; err is set when the file has no readable EXIF at all.
func (r *Reader) ExtractGPS(path string) (models.Coordinates, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Coordinates{}, false, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return models.Coordinates{}, false, fmt.Errorf("decoding exif: %w", err)
	}

	// Non-critical decode errors leave the remaining tags usable.
	lat, lng, err := x.LatLong()
	if err != nil {
		return models.Coordinates{}, false, nil
	}
	return models.Coordinates{Lat: lat, Lng: lng}, true, nil
}
