// internal/core/domain/property.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PropertyType represents the kind of listing
type PropertyType string

// Property type constants
const (
	TypeApartment  PropertyType = "Apartment"
	TypeVilla      PropertyType = "Villa"
	TypeHouse      PropertyType = "House"
	TypePlot       PropertyType = "Plot"
	TypePenthouse  PropertyType = "Penthouse"
	TypeStudio     PropertyType = "Studio"
	TypeCommercial PropertyType = "Commercial"
)

// Valid reports whether t is a known property type.
func (t PropertyType) Valid() bool {
	switch t {
	case TypeApartment, TypeVilla, TypeHouse, TypePlot, TypePenthouse, TypeStudio, TypeCommercial:
		return true
	}
	return false
}

// PropertyStatus represents the lifecycle state of a listing
type PropertyStatus string

const (
	PropertyActive   PropertyStatus = "Active"
	PropertyPending  PropertyStatus = "Pending"
	PropertySold     PropertyStatus = "Sold"
	PropertyInactive PropertyStatus = "Inactive"
)

// Valid reports whether s is a known status.
func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyActive, PropertyPending, PropertySold, PropertyInactive:
		return true
	}
	return false
}

// Property represents a single real-estate listing
type Property struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Location       string         `json:"location"`
	City           string         `json:"city"`
	Type           PropertyType   `json:"property_type"`
	Price          int64          `json:"price"`
	Area           int            `json:"area"`
	Bedrooms       int            `json:"bedrooms"`
	Bathrooms      int            `json:"bathrooms"`
	Image          string         `json:"image"`
	Images         []string       `json:"images"`
	Amenities      []string       `json:"amenities"`
	SellerID       *uuid.UUID     `json:"seller_id,omitempty"`
	SellerName     string         `json:"seller_name,omitempty"`
	SellerEmail    string         `json:"seller_email,omitempty"`
	SellerPhone    string         `json:"seller_phone,omitempty"`
	Featured       bool           `json:"featured"`
	Verified       bool           `json:"verified"`
	Available      bool           `json:"available"`
	Status         PropertyStatus `json:"status"`
	LikesCount     int            `json:"likes_count"`
	InterestsCount int            `json:"interests_count"`
	VisitsCount    int            `json:"visits_count"`
	ViewsCount     int            `json:"views_count"`
	PostedDate     time.Time      `json:"posted_date"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Validate rejects records that are missing required listing data.
func (p *Property) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if strings.TrimSpace(string(p.Type)) == "" {
		return fmt.Errorf("%w: property_type is required", ErrInvalidInput)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if p.Area <= 0 {
		return fmt.Errorf("%w: area must be positive", ErrInvalidInput)
	}
	if p.Bedrooms < 0 || p.Bathrooms < 0 {
		return fmt.Errorf("%w: bedrooms and bathrooms cannot be negative", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Image) == "" {
		return fmt.Errorf("%w: image is required", ErrInvalidInput)
	}
	if p.Status == "" {
		p.Status = PropertyActive
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, p.Status)
	}
	return nil
}

// PrepareForStorage prepares the listing for database storage
func (p *Property) PrepareForStorage() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Location = strings.TrimSpace(p.Location)
	p.City = strings.TrimSpace(p.City)
	p.Type = PropertyType(strings.TrimSpace(string(p.Type)))
	p.Image = strings.TrimSpace(p.Image)

	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}

	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.PostedDate.IsZero() {
		p.PostedDate = now
	}
	p.UpdatedAt = now
}

// OwnedBy reports whether the listing belongs to the given seller.
func (p *Property) OwnedBy(sellerID uuid.UUID) bool {
	return p.SellerID != nil && *p.SellerID == sellerID
}

// PropertyUpdate is a partial update; nil fields are left untouched.
type PropertyUpdate struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Location    *string         `json:"location,omitempty"`
	City        *string         `json:"city,omitempty"`
	Type        *PropertyType   `json:"property_type,omitempty"`
	Price       *int64          `json:"price,omitempty"`
	Area        *int            `json:"area,omitempty"`
	Bedrooms    *int            `json:"bedrooms,omitempty"`
	Bathrooms   *int            `json:"bathrooms,omitempty"`
	Image       *string         `json:"image,omitempty"`
	Images      []string        `json:"images,omitempty"`
	Amenities   []string        `json:"amenities,omitempty"`
	Featured    *bool           `json:"featured,omitempty"`
	Available   *bool           `json:"available,omitempty"`
	Status      *PropertyStatus `json:"status,omitempty"`
}

// ApplyUpdate copies the set fields of u onto p and re-validates the result.
// Moving a listing out of Active also withdraws it from the catalog.
func (p *Property) ApplyUpdate(u PropertyUpdate) error {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.Type != nil {
		p.Type = *u.Type
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Area != nil {
		p.Area = *u.Area
	}
	if u.Bedrooms != nil {
		p.Bedrooms = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		p.Bathrooms = *u.Bathrooms
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Images != nil {
		p.Images = u.Images
	}
	if u.Amenities != nil {
		p.Amenities = u.Amenities
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
	if u.Available != nil {
		p.Available = *u.Available
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	// only an active listing can be offered to buyers
	if p.Status != "" && p.Status != PropertyActive {
		p.Available = false
	}
	return p.Validate()
}

// PriceRange bounds a listing price; nil ends are open.
type PriceRange struct {
	Min *int64 `json:"min,omitempty"`
	Max *int64 `json:"max,omitempty"`
}

// FilterSet is a conjunction of structured constraints. A nil field places no
// constraint on its dimension.
type FilterSet struct {
	PriceRange PriceRange `json:"price_range"`
	Bedrooms   *int       `json:"bedrooms,omitempty"`
	City       *string    `json:"city,omitempty"`
	Type       *string    `json:"type,omitempty"`
}

// IsEmpty reports whether no constraint is set.
func (f FilterSet) IsEmpty() bool {
	return f.PriceRange.Min == nil && f.PriceRange.Max == nil &&
		f.Bedrooms == nil && f.City == nil && f.Type == nil
}

// SortKey selects the catalog ordering
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
	SortFeatured  SortKey = "featured"
)

// ParseSortKey maps a request value to a SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case SortNone, SortPriceLow, SortPriceHigh, SortNewest, SortFeatured:
		return k, true
	}
	return SortNone, false
}

// Counter names an engagement counter kept on a listing
type Counter string

const (
	CounterLikes     Counter = "likes_count"
	CounterInterests Counter = "interests_count"
	CounterVisits    Counter = "visits_count"
	CounterViews     Counter = "views_count"
)

func (c Counter) Valid() bool {
	switch c {
	case CounterLikes, CounterInterests, CounterVisits, CounterViews:
		return true
	}
	return false
}
