package models

// GeoPoint is a GeoJSON point stored as [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) *GeoPoint {
	return &GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// ContactInfo is the optional contact block attached to a listing.
type ContactInfo struct {
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	WhatsApp string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
}

// NearbyPlace describes a point of interest near a listing.
type NearbyPlace struct {
	Name     string `bson:"name" json:"name"`
	Distance string `bson:"distance" json:"distance"`
	Type     string `bson:"type" json:"type"`
}
