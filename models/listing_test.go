package models

import (
	"strings"
	"testing"

	"tolet/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validListing() Listing {
	return Listing{
		ID:           "l1",
		Title:        "2BHK near the lake",
		Description:  "Bright two-bedroom flat with a balcony.",
		Price:        1200,
		City:         "Pune",
		Address:      "14 Lakeside Road",
		PropertyType: PropertyApartment,
		Bedrooms:     2,
		Bathrooms:    1,
		Size:         "850 sqft",
		Images:       []string{"https://img.example/1.jpg"},
		OwnerID:      "owner-1",
	}
}

func TestListingValidateAccepts(t *testing.T) {
	l := validListing()
	assert.NoError(t, l.Validate())
}

func TestListingValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Listing)
		wantField string
	}{
		{"missing title", func(l *Listing) { l.Title = "" }, "title"},
		{"title too long", func(l *Listing) { l.Title = strings.Repeat("x", 101) }, "title"},
		{"missing description", func(l *Listing) { l.Description = "" }, "description"},
		{"negative price", func(l *Listing) { l.Price = -1 }, "price"},
		{"missing city", func(l *Listing) { l.City = "" }, "city"},
		{"missing address", func(l *Listing) { l.Address = "" }, "address"},
		{"unknown property type", func(l *Listing) { l.PropertyType = "castle" }, "propertyType"},
		{"negative bedrooms", func(l *Listing) { l.Bedrooms = -1 }, "bedrooms"},
		{"missing size", func(l *Listing) { l.Size = "" }, "size"},
		{"no images", func(l *Listing) { l.Images = nil }, "images"},
		{"empty image url", func(l *Listing) { l.Images = []string{""} }, "images"},
		{"bad coordinates", func(l *Listing) { l.Location = &GeoPoint{Type: "Point", Coordinates: []float64{1}} }, "location"},
		{"missing owner", func(l *Listing) { l.OwnerID = "" }, "owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validListing()
			tt.mutate(&l)

			err := l.Validate()
			require.Error(t, err)
			assert.Equal(t, errs.Validation, errs.KindOf(err))
			assert.Equal(t, tt.wantField, errs.FieldOf(err))
		})
	}
}

func TestListingInputApplyToSkipsAbsentFields(t *testing.T) {
	l := validListing()

	title := "Renamed"
	in := ListingInput{Title: &title}
	in.ApplyTo(&l)

	assert.Equal(t, "Renamed", l.Title)
	assert.Equal(t, "Pune", l.City)
	assert.Equal(t, 1200.0, l.Price)
	assert.Equal(t, []string{"https://img.example/1.jpg"}, l.Images)
}

func TestListingInputApplyToZeroValues(t *testing.T) {
	l := validListing()
	l.IsAvailable = true

	available := false
	price := 0.0
	in := ListingInput{IsAvailable: &available, Price: &price}
	in.ApplyTo(&l)

	assert.False(t, l.IsAvailable)
	assert.Equal(t, 0.0, l.Price)
}

func TestIsValidPropertyType(t *testing.T) {
	assert.True(t, IsValidPropertyType(PropertyApartment))
	assert.True(t, IsValidPropertyType(PropertyPG))
	assert.False(t, IsValidPropertyType("Apartment"))
	assert.False(t, IsValidPropertyType(""))
}

func TestFeedbackPublicView(t *testing.T) {
	fb := Feedback{
		ID:       "f1",
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Subject:  "Great platform",
		Message:  "Found a flat within a week.",
		Rating:   4,
		Status:   FeedbackStatusResolved,
		IsPublic: true,
	}

	public := fb.PublicView()
	assert.Equal(t, "f1", public.ID)
	assert.Equal(t, "Ravi", public.Name)
	assert.Equal(t, 4, public.Rating)
	assert.Empty(t, public.Email)
	assert.Empty(t, public.Status)
	assert.False(t, public.IsPublic)
}
