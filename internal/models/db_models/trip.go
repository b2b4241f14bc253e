package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TripStatusPlanned   = "planned"
	TripStatusActive    = "active"
	TripStatusCompleted = "completed"
	TripStatusCancelled = "cancelled"
)

func IsValidTripStatus(status string) bool {
	switch status {
	case TripStatusPlanned, TripStatusActive, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"index"`
	Title       string    `gorm:"size:200"`
	Destination string    `gorm:"size:200"`
	StartDate   time.Time `gorm:"type:date"`
	EndDate     time.Time `gorm:"type:date"`

	// Coordinates stored as separate latitude and longitude
	Latitude  *float64
	Longitude *float64

	Description string
	Budget      *float64
	Status      string `gorm:"size:20;default:planned"`

	// Generated or client-supplied itinerary, serialized as a JSON array of
	// day-plan objects.
	Itinerary datatypes.JSON `gorm:"type:jsonb"`
}
