package models

// DefaultBoundaryRange is the half-width, in degrees, of the box derived around
// a municipality center when no boundary is supplied. Roughly 10km; this is a
// flat-earth approximation, not a geodesic one.
const DefaultBoundaryRange = 0.1

// Coordinates is a WGS84 latitude/longitude pair
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat" binding:"min=-90,max=90"`
	Lng float64 `bson:"lng" json:"lng" binding:"min=-180,max=180"`
}

// BoundaryBox is the axis-aligned rectangle approximating a jurisdiction
type BoundaryBox struct {
	MinLat float64 `bson:"minLat" json:"minLat" binding:"min=-90,max=90"`
	MaxLat float64 `bson:"maxLat" json:"maxLat" binding:"min=-90,max=90"`
	MinLng float64 `bson:"minLng" json:"minLng" binding:"min=-180,max=180"`
	MaxLng float64 `bson:"maxLng" json:"maxLng" binding:"min=-180,max=180"`
}

// Contains reports whether the point lies inside the box, edges included.
// A nil box is unrestricted.
func (b *BoundaryBox) Contains(lat, lng float64) bool {
	if b == nil {
		return true
	}
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// Valid reports whether min never exceeds max on either axis.
func (b *BoundaryBox) Valid() bool {
	return b == nil || (b.MinLat <= b.MaxLat && b.MinLng <= b.MaxLng)
}

// DefaultBoundaryBox derives the ±DefaultBoundaryRange box around center.
func DefaultBoundaryBox(center Coordinates) *BoundaryBox {
	return &BoundaryBox{
		MinLat: center.Lat - DefaultBoundaryRange,
		MaxLat: center.Lat + DefaultBoundaryRange,
		MinLng: center.Lng - DefaultBoundaryRange,
		MaxLng: center.Lng + DefaultBoundaryRange,
	}
}

// GeoPoint is a GeoJSON point, the shape 2dsphere indexes expect.
// Coordinates are ordered [lng, lat].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

func NewGeoPoint(c Coordinates) *GeoPoint {
	return &GeoPoint{Type: "Point", Coordinates: []float64{c.Lng, c.Lat}}
}
