// internal/core/domain/engagement.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VisitStatus represents the state of a scheduled visit
type VisitStatus string

const (
	VisitPending   VisitStatus = "Pending"
	VisitConfirmed VisitStatus = "Confirmed"
	VisitCompleted VisitStatus = "Completed"
	VisitCancelled VisitStatus = "Cancelled"
)

func (s VisitStatus) Valid() bool {
	switch s {
	case VisitPending, VisitConfirmed, VisitCompleted, VisitCancelled:
		return true
	}
	return false
}

// Open reports whether the visit still blocks a new booking.
func (s VisitStatus) Open() bool {
	return s == VisitPending || s == VisitConfirmed
}

// InterestType classifies a buyer's interest
type InterestType string

const (
	InterestGeneral InterestType = "General"
	InterestSerious InterestType = "Serious"
	InterestInquiry InterestType = "Inquiry"
)

func (t InterestType) Valid() bool {
	switch t {
	case InterestGeneral, InterestSerious, InterestInquiry:
		return true
	}
	return false
}

// InterestStatus tracks the seller's follow-up
type InterestStatus string

const (
	InterestNew       InterestStatus = "New"
	InterestContacted InterestStatus = "Contacted"
	InterestClosed    InterestStatus = "Closed"
)

func (s InterestStatus) Valid() bool {
	switch s {
	case InterestNew, InterestContacted, InterestClosed:
		return true
	}
	return false
}

// Visit is a buyer's request to view a property
type Visit struct {
	ID               uuid.UUID   `json:"id"`
	PropertyID       uuid.UUID   `json:"property_id"`
	UserID           uuid.UUID   `json:"user_id"`
	SellerID         uuid.UUID   `json:"seller_id"`
	VisitorName      string      `json:"visitor_name"`
	VisitorEmail     string      `json:"visitor_email"`
	VisitorPhone     string      `json:"visitor_phone,omitempty"`
	VisitDate        time.Time   `json:"visit_date"`
	VisitTime        string      `json:"visit_time"`
	Notes            string      `json:"notes,omitempty"`
	Status           VisitStatus `json:"status"`
	PropertyTitle    string      `json:"property_title,omitempty"`
	PropertyImage    string      `json:"property_image,omitempty"`
	PropertyLocation string      `json:"property_location,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Validate checks the visit request fields
func (v *Visit) Validate() error {
	if v.VisitDate.IsZero() {
		return fmt.Errorf("%w: visit_date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(v.VisitTime) == "" {
		return fmt.Errorf("%w: visit_time is required", ErrInvalidInput)
	}
	if v.Status == "" {
		v.Status = VisitPending
	}
	if !v.Status.Valid() {
		return fmt.Errorf("%w: unknown visit status %q", ErrInvalidInput, v.Status)
	}
	return nil
}

// Interest is a buyer's expression of interest in a property
type Interest struct {
	ID               uuid.UUID      `json:"id"`
	PropertyID       uuid.UUID      `json:"property_id"`
	UserID           uuid.UUID      `json:"user_id"`
	SellerID         uuid.UUID      `json:"seller_id"`
	UserName         string         `json:"user_name"`
	UserEmail        string         `json:"user_email"`
	UserPhone        string         `json:"user_phone,omitempty"`
	Message          string         `json:"message,omitempty"`
	Type             InterestType   `json:"interest_type"`
	Status           InterestStatus `json:"status"`
	PropertyTitle    string         `json:"property_title,omitempty"`
	PropertyImage    string         `json:"property_image,omitempty"`
	PropertyLocation string         `json:"property_location,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

func (i *Interest) Validate() error {
	if i.Type == "" {
		i.Type = InterestGeneral
	}
	if !i.Type.Valid() {
		return fmt.Errorf("%w: unknown interest type %q", ErrInvalidInput, i.Type)
	}
	if i.Status == "" {
		i.Status = InterestNew
	}
	if !i.Status.Valid() {
		return fmt.Errorf("%w: unknown interest status %q", ErrInvalidInput, i.Status)
	}
	return nil
}

// ActivityKind distinguishes entries in a seller's activity feed
type ActivityKind string

const (
	ActivityInterest ActivityKind = "interest"
	ActivityVisit    ActivityKind = "visit"
)

// Activity is one entry in a seller's recent activity feed
type Activity struct {
	Kind          ActivityKind `json:"type"`
	UserName      string       `json:"user_name"`
	PropertyID    uuid.UUID    `json:"property_id"`
	PropertyTitle string       `json:"property_title"`
	CreatedAt     time.Time    `json:"created_at"`
	Message       string       `json:"message,omitempty"`
	VisitDate     *time.Time   `json:"visit_date,omitempty"`
	VisitTime     string       `json:"visit_time,omitempty"`
	Status        string       `json:"status,omitempty"`
}

// SellerStats aggregates a seller's dashboard counters
type SellerStats struct {
	TotalProperties  int `json:"total_properties"`
	ActiveProperties int `json:"active_properties"`
	TotalLikes       int `json:"total_likes"`
	TotalViews       int `json:"total_views"`
	TotalInterests   int `json:"total_interests"`
	NewInterests     int `json:"new_interests"`
	TotalVisits      int `json:"total_visits"`
	PendingVisits    int `json:"pending_visits"`
	ConfirmedVisits  int `json:"confirmed_visits"`
}
