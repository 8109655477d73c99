package entity

import (
	"time"

	"github.com/google/uuid"
)

type RescueUrgency string

const (
	UrgencyLow      RescueUrgency = "low"
	UrgencyMedium   RescueUrgency = "medium"
	UrgencyHigh     RescueUrgency = "high"
	UrgencyCritical RescueUrgency = "critical"
)

type RescueStatus string

const (
	RescueReported   RescueStatus = "reported"
	RescueAssigned   RescueStatus = "assigned"
	RescueInProgress RescueStatus = "in_progress"
	RescueRescued    RescueStatus = "rescued"
	RescueClosed     RescueStatus = "closed"
	RescueFalseAlarm RescueStatus = "false_alarm"
)

var rescueTransitions = map[RescueStatus][]RescueStatus{
	RescueReported:   {RescueAssigned, RescueFalseAlarm},
	RescueAssigned:   {RescueInProgress, RescueFalseAlarm},
	RescueInProgress: {RescueRescued},
	RescueRescued:    {RescueClosed},
	RescueFalseAlarm: {RescueClosed},
}

// CanTransitionTo reports whether a report may move from s to next.
func (s RescueStatus) CanTransitionTo(next RescueStatus) bool {
	for _, allowed := range rescueTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Nearby search bounds in kilometres.
const (
	DefaultRescueRadiusKm = 5.0
	MaxRescueRadiusKm     = 50.0
)

// GeoPoint is a WGS84 coordinate with an optional street address.
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"address,omitempty"`
}

// RescueNote is an entry in a report's working log.
type RescueNote struct {
	AuthorID uuid.UUID `json:"authorId"`
	Text     string    `json:"text"`
	At       time.Time `json:"at"`
}

// RescueReport is an animal in distress reported by a user.
type RescueReport struct {
	ID           uuid.UUID     `json:"id"`
	ReportNumber string        `json:"reportNumber"`
	ReporterID   uuid.UUID     `json:"reporterId"`
	Species      string        `json:"species"`
	Description  string        `json:"description"`
	Urgency      RescueUrgency `json:"urgency"`
	Location     GeoPoint      `json:"location"`
	Photos       []string      `json:"photos,omitempty"`
	ContactPhone string        `json:"contactPhone,omitempty"`
	Status       RescueStatus  `json:"status"`
	AssignedTo   *uuid.UUID    `json:"assignedTo,omitempty"`
	Notes        []RescueNote  `json:"notes,omitempty"`
	RescuedAt    *time.Time    `json:"rescuedAt,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`

	// DistanceKm is only filled in by nearby searches.
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// RescueFilter narrows rescue report listings.
type RescueFilter struct {
	ReporterID *uuid.UUID
	AssignedTo *uuid.UUID
	Status     RescueStatus
	Urgency    RescueUrgency
	Species    string
}

// BoundingBox is a lat/lng rectangle used to pre-filter proximity queries.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}
