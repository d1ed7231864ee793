package models

import (
	"fmt"
	"time"

	"tolet/errs"
)

// Property types accepted for a listing.
const (
	PropertyApartment = "apartment"
	PropertyHouse     = "house"
	PropertyStudio    = "studio"
	PropertyShared    = "shared"
	PropertyPG        = "pg"
)

var propertyTypes = map[string]bool{
	PropertyApartment: true,
	PropertyHouse:     true,
	PropertyStudio:    true,
	PropertyShared:    true,
	PropertyPG:        true,
}

// IsValidPropertyType reports whether t is a recognized property type.
func IsValidPropertyType(t string) bool {
	return propertyTypes[t]
}

// Listing represents a rental property listing.
type Listing struct {
	ID           string        `bson:"id" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	Price        float64       `bson:"price" json:"price"`
	City         string        `bson:"city" json:"city"`
	Address      string        `bson:"address" json:"address"`
	PropertyType string        `bson:"propertyType" json:"propertyType"`
	Bedrooms     int           `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    int           `bson:"bathrooms" json:"bathrooms"`
	Size         string        `bson:"size" json:"size"`
	Images       []string      `bson:"images" json:"images"`
	Amenities    []string      `bson:"amenities,omitempty" json:"amenities,omitempty"`
	OwnerID      string        `bson:"ownerId" json:"ownerId"`
	Owner        *OwnerProfile `bson:"-" json:"owner,omitempty"`
	IsAvailable  bool          `bson:"isAvailable" json:"isAvailable"`
	IsFeatured   bool          `bson:"isFeatured" json:"isFeatured"`
	Location     *GeoPoint     `bson:"location,omitempty" json:"location,omitempty"`
	ContactInfo  *ContactInfo  `bson:"contactInfo,omitempty" json:"contactInfo,omitempty"`
	Rules        []string      `bson:"rules,omitempty" json:"rules,omitempty"`
	NearbyPlaces []NearbyPlace `bson:"nearbyPlaces,omitempty" json:"nearbyPlaces,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the listing's field constraints.
func (l *Listing) Validate() error {
	if l.Title == "" {
		return errs.ValidationField("title", "title is required")
	}
	if len(l.Title) > 100 {
		return errs.ValidationField("title", "title cannot be more than 100 characters")
	}
	if l.Description == "" {
		return errs.ValidationField("description", "description is required")
	}
	if len(l.Description) > 1000 {
		return errs.ValidationField("description", "description cannot be more than 1000 characters")
	}
	if l.Price < 0 {
		return errs.ValidationField("price", "price cannot be negative")
	}
	if l.City == "" {
		return errs.ValidationField("city", "city is required")
	}
	if l.Address == "" {
		return errs.ValidationField("address", "address is required")
	}
	if !IsValidPropertyType(l.PropertyType) {
		return errs.ValidationField("propertyType", fmt.Sprintf("invalid property type %q", l.PropertyType))
	}
	if l.Bedrooms < 0 {
		return errs.ValidationField("bedrooms", "bedrooms cannot be negative")
	}
	if l.Bathrooms < 0 {
		return errs.ValidationField("bathrooms", "bathrooms cannot be negative")
	}
	if l.Size == "" {
		return errs.ValidationField("size", "size is required")
	}
	if len(l.Images) == 0 {
		return errs.ValidationField("images", "at least one image is required")
	}
	for _, img := range l.Images {
		if img == "" {
			return errs.ValidationField("images", "image URLs cannot be empty")
		}
	}
	if l.Location != nil && len(l.Location.Coordinates) != 2 {
		return errs.ValidationField("location", "location coordinates must be [longitude, latitude]")
	}
	if l.OwnerID == "" {
		return errs.ValidationField("owner", "owner is required")
	}
	return nil
}

// ListingInput carries the recognized listing fields of a create or update
// request. Pointer fields distinguish "absent" from a zero value; an absent
// field is a no-op on update.
type ListingInput struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	Price        *float64      `json:"price"`
	City         *string       `json:"city"`
	Address      *string       `json:"address"`
	PropertyType *string       `json:"propertyType"`
	Bedrooms     *int          `json:"bedrooms"`
	Bathrooms    *int          `json:"bathrooms"`
	Size         *string       `json:"size"`
	Images       []string      `json:"images"`
	Amenities    []string      `json:"amenities"`
	IsAvailable  *bool         `json:"isAvailable"`
	IsFeatured   *bool         `json:"isFeatured"`
	Location     *GeoPoint     `json:"location"`
	ContactInfo  *ContactInfo  `json:"contactInfo"`
	Rules        []string      `json:"rules"`
	NearbyPlaces []NearbyPlace `json:"nearbyPlaces"`
}

// ApplyTo copies every present input field onto the listing.
func (in *ListingInput) ApplyTo(l *Listing) {
	if in.Title != nil {
		l.Title = *in.Title
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.Price != nil {
		l.Price = *in.Price
	}
	if in.City != nil {
		l.City = *in.City
	}
	if in.Address != nil {
		l.Address = *in.Address
	}
	if in.PropertyType != nil {
		l.PropertyType = *in.PropertyType
	}
	if in.Bedrooms != nil {
		l.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		l.Bathrooms = *in.Bathrooms
	}
	if in.Size != nil {
		l.Size = *in.Size
	}
	if in.Images != nil {
		l.Images = in.Images
	}
	if in.Amenities != nil {
		l.Amenities = in.Amenities
	}
	if in.IsAvailable != nil {
		l.IsAvailable = *in.IsAvailable
	}
	if in.IsFeatured != nil {
		l.IsFeatured = *in.IsFeatured
	}
	if in.Location != nil {
		l.Location = in.Location
	}
	if in.ContactInfo != nil {
		l.ContactInfo = in.ContactInfo
	}
	if in.Rules != nil {
		l.Rules = in.Rules
	}
	if in.NearbyPlaces != nil {
		l.NearbyPlaces = in.NearbyPlaces
	}
}
