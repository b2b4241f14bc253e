package request_models

import "encoding/json"

type CreateTripRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Destination string `json:"destination" binding:"required,max=200"`
	// Dates as "YYYY-MM-DD"
	StartDate   string          `json:"start_date" binding:"required"`
	EndDate     string          `json:"end_date" binding:"required"`
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	Description string          `json:"description"`
	Budget      *float64        `json:"budget"`
	Status      string          `json:"status"`
	Itinerary   json.RawMessage `json:"itinerary"`
}

// UpdateTripRequest carries partial updates: nil pointers mean "leave as-is".
type UpdateTripRequest struct {
	Title       *string         `json:"title"`
	Destination *string         `json:"destination"`
	StartDate   *string         `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	Description *string         `json:"description"`
	Budget      *float64        `json:"budget"`
	Status      *string         `json:"status"`
	Itinerary   json.RawMessage `json:"itinerary"`
}

type ListTripsQuery struct {
	Status      string `form:"status"`
	Destination string `form:"destination"`
	Page        int    `form:"page,default=1"`
	PerPage     int    `form:"per_page,default=10"`
}

type GenerateItineraryRequest struct {
	Overwrite bool `json:"overwrite"`
}

type PreviewItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Description string `json:"description"`
	Title       string `json:"title"`
}
