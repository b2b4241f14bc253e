package response_models

import (
	"encoding/json"

	"planventure/internal/itinerary"
	"planventure/internal/models/db_models"
	"planventure/pkg/utils"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type TripResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Destination  string          `json:"destination"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Coordinates  *Coordinates    `json:"coordinates"`
	Itinerary    json.RawMessage `json:"itinerary"`
	Description  string          `json:"description"`
	Budget       *float64        `json:"budget"`
	Status       string          `json:"status"`
	DurationDays int             `json:"duration_days"`
	UserID       string          `json:"user_id"`
	CreatedAt    int64           `json:"created_at"`
	UpdatedAt    int64           `json:"updated_at"`
}

type TripListResponse struct {
	Trips      []TripResponse `json:"trips"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
	HasNext    bool           `json:"has_next"`
	HasPrev    bool           `json:"has_prev"`
}

type TripStatsResponse struct {
	TotalTrips    int64          `json:"total_trips"`
	Planned       int64          `json:"planned"`
	Active        int64          `json:"active"`
	Completed     int64          `json:"completed"`
	Cancelled     int64          `json:"cancelled"`
	TotalBudget   float64        `json:"total_budget"`
	UpcomingTrips []TripResponse `json:"upcoming_trips"`
}

// ItineraryResult is the outcome of a generate-itinerary call. When the trip
// already had an itinerary and overwrite was not requested, Applied is false
// and both the stored and the suggested itineraries come back so the client
// can decide.
type ItineraryResult struct {
	TripID    string              `json:"trip_id,omitempty"`
	Applied   bool                `json:"applied"`
	Itinerary []itinerary.DayPlan `json:"itinerary,omitempty"`
	Existing  json.RawMessage     `json:"existing_itinerary,omitempty"`
	Suggested []itinerary.DayPlan `json:"suggested_itinerary,omitempty"`
}

type ItineraryPreviewResponse struct {
	PreviewItinerary []itinerary.DayPlan `json:"preview_itinerary"`
	DestinationType  string              `json:"destination_type"`
	DurationDays     int                 `json:"duration_days"`
}

func BuildTripResponse(trip *db_models.Trip) TripResponse {
	var coords *Coordinates
	if trip.Latitude != nil && trip.Longitude != nil {
		coords = &Coordinates{Latitude: *trip.Latitude, Longitude: *trip.Longitude}
	}

	return TripResponse{
		ID:           trip.ID.String(),
		Title:        trip.Title,
		Destination:  trip.Destination,
		StartDate:    utils.FormatDate(trip.StartDate),
		EndDate:      utils.FormatDate(trip.EndDate),
		Coordinates:  coords,
		Itinerary:    json.RawMessage(trip.Itinerary),
		Description:  trip.Description,
		Budget:       trip.Budget,
		Status:       trip.Status,
		DurationDays: utils.DurationDays(trip.StartDate, trip.EndDate),
		UserID:       trip.UserID.String(),
		CreatedAt:    trip.CreatedAt,
		UpdatedAt:    trip.UpdatedAt,
	}
}
