package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"planventure/internal/itinerary"
	"planventure/internal/models/db_models"
	"planventure/internal/models/request_models"
	"planventure/internal/models/response_models"
	"planventure/internal/repositories"
	"planventure/pkg/utils"
)

// Trips longer than this are rejected before the itinerary generator ever
// sees them, which keeps generation bounded.
const maxTripDurationDays = 365

const upcomingTripsLimit = 5

type TripServiceInterface interface {
	ListTrips(ctx context.Context, userId string, query request_models.ListTripsQuery) (*response_models.TripListResponse, error)
	CreateTrip(ctx context.Context, userId string, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTrip(ctx context.Context, userId string, tripId string) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, userId string, tripId string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, userId string, tripId string) error
	GetStats(ctx context.Context, userId string) (*response_models.TripStatsResponse, error)
	GenerateItinerary(ctx context.Context, userId string, tripId string, overwrite bool) (*response_models.ItineraryResult, error)
	PreviewItinerary(request request_models.PreviewItineraryRequest) (*response_models.ItineraryPreviewResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (t *TripService) ListTrips(ctx context.Context, userId string, query request_models.ListTripsQuery) (*response_models.TripListResponse, error) {

	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.PerPage < 1 {
		query.PerPage = 10
	}
	if query.PerPage > 100 {
		query.PerPage = 100
	}
	if query.Status != "" && !db_models.IsValidTripStatus(query.Status) {
		return nil, utils.ErrInvalidStatus
	}

	trips, total, err := t.tripRepo.ListByUser(ctx, userUUID, repositories.TripFilter{
		Status:      query.Status,
		Destination: strings.TrimSpace(query.Destination),
		Page:        query.Page,
		PerPage:     query.PerPage,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, response_models.BuildTripResponse(&trips[i]))
	}

	totalPages := int((total + int64(query.PerPage) - 1) / int64(query.PerPage))

	return &response_models.TripListResponse{
		Trips:      out,
		Total:      total,
		Page:       query.Page,
		PerPage:    query.PerPage,
		TotalPages: totalPages,
		HasNext:    query.Page < totalPages,
		HasPrev:    query.Page > 1,
	}, nil
}

func (t *TripService) CreateTrip(ctx context.Context, userId string, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {

	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	startDate, endDate, err := parseTripDates(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	if err := validateCoordinates(request.Latitude, request.Longitude); err != nil {
		return nil, err
	}

	if request.Budget != nil && *request.Budget < 0 {
		return nil, utils.ErrInvalidBudget
	}

	status := request.Status
	if status == "" {
		status = db_models.TripStatusPlanned
	}
	if !db_models.IsValidTripStatus(status) {
		return nil, utils.ErrInvalidStatus
	}

	trip := &db_models.Trip{
		UserID:      userUUID,
		Title:       strings.TrimSpace(request.Title),
		Destination: strings.TrimSpace(request.Destination),
		StartDate:   startDate,
		EndDate:     endDate,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Description: strings.TrimSpace(request.Description),
		Budget:      request.Budget,
		Status:      status,
	}

	if len(request.Itinerary) > 0 {
		if !json.Valid(request.Itinerary) {
			return nil, fmt.Errorf("%w: itinerary must be valid JSON", utils.ErrInvalidInput)
		}
		trip.Itinerary = datatypes.JSON(request.Itinerary)
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.BuildTripResponse(trip)
	return &resp, nil
}

func (t *TripService) GetTrip(ctx context.Context, userId string, tripId string) (*response_models.TripResponse, error) {

	trip, err := t.findOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}

	resp := response_models.BuildTripResponse(trip)
	return &resp, nil
}

func (t *TripService) UpdateTrip(ctx context.Context, userId string, tripId string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error) {

	trip, err := t.findOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		trip.Title = strings.TrimSpace(*request.Title)
	}
	if request.Destination != nil {
		trip.Destination = strings.TrimSpace(*request.Destination)
	}
	if request.Description != nil {
		trip.Description = strings.TrimSpace(*request.Description)
	}

	// Re-validate the date range with whichever endpoints changed.
	startStr := utils.FormatDate(trip.StartDate)
	endStr := utils.FormatDate(trip.EndDate)
	if request.StartDate != nil {
		startStr = *request.StartDate
	}
	if request.EndDate != nil {
		endStr = *request.EndDate
	}
	if request.StartDate != nil || request.EndDate != nil {
		startDate, endDate, err := parseTripDates(startStr, endStr)
		if err != nil {
			return nil, err
		}
		trip.StartDate = startDate
		trip.EndDate = endDate
	}

	if request.Latitude != nil || request.Longitude != nil {
		lat := trip.Latitude
		lng := trip.Longitude
		if request.Latitude != nil {
			lat = request.Latitude
		}
		if request.Longitude != nil {
			lng = request.Longitude
		}
		if err := validateCoordinates(lat, lng); err != nil {
			return nil, err
		}
		trip.Latitude = lat
		trip.Longitude = lng
	}

	if request.Budget != nil {
		if *request.Budget < 0 {
			return nil, utils.ErrInvalidBudget
		}
		trip.Budget = request.Budget
	}

	if request.Status != nil {
		if !db_models.IsValidTripStatus(*request.Status) {
			return nil, utils.ErrInvalidStatus
		}
		trip.Status = *request.Status
	}

	if len(request.Itinerary) > 0 {
		if !json.Valid(request.Itinerary) {
			return nil, fmt.Errorf("%w: itinerary must be valid JSON", utils.ErrInvalidInput)
		}
		trip.Itinerary = datatypes.JSON(request.Itinerary)
	}

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.BuildTripResponse(trip)
	return &resp, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userId string, tripId string) error {

	trip, err := t.findOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return err
	}

	if err := t.tripRepo.Delete(ctx, trip); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (t *TripService) GetStats(ctx context.Context, userId string) (*response_models.TripStatsResponse, error) {

	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	counts, err := t.tripRepo.CountByStatus(ctx, userUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalBudget, err := t.tripRepo.SumBudget(ctx, userUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	upcoming, err := t.tripRepo.FindUpcoming(ctx, userUUID, upcomingTripsLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	upcomingOut := make([]response_models.TripResponse, 0, len(upcoming))
	for i := range upcoming {
		upcomingOut = append(upcomingOut, response_models.BuildTripResponse(&upcoming[i]))
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &response_models.TripStatsResponse{
		TotalTrips:    total,
		Planned:       counts[db_models.TripStatusPlanned],
		Active:        counts[db_models.TripStatusActive],
		Completed:     counts[db_models.TripStatusCompleted],
		Cancelled:     counts[db_models.TripStatusCancelled],
		TotalBudget:   totalBudget,
		UpcomingTrips: upcomingOut,
	}, nil
}

func (t *TripService) GenerateItinerary(ctx context.Context, userId string, tripId string, overwrite bool) (*response_models.ItineraryResult, error) {

	trip, err := t.findOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}

	plans := itinerary.Generate(trip.StartDate, trip.EndDate, trip.Destination, trip.Description, trip.Title)

	if hasItinerary(trip) && !overwrite {
		return &response_models.ItineraryResult{
			TripID:    trip.ID.String(),
			Applied:   false,
			Existing:  json.RawMessage(trip.Itinerary),
			Suggested: plans,
		}, nil
	}

	serialized, err := json.Marshal(plans)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	trip.Itinerary = serialized

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ItineraryResult{
		TripID:    trip.ID.String(),
		Applied:   true,
		Itinerary: plans,
	}, nil
}

func (t *TripService) PreviewItinerary(request request_models.PreviewItineraryRequest) (*response_models.ItineraryPreviewResponse, error) {

	startDate, endDate, err := parseTripDates(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	plans := itinerary.Generate(startDate, endDate, request.Destination, request.Description, request.Title)

	return &response_models.ItineraryPreviewResponse{
		PreviewItinerary: plans,
		DestinationType:  itinerary.Classify(request.Destination, request.Description).String(),
		DurationDays:     utils.DurationDays(startDate, endDate),
	}, nil
}

func (t *TripService) findOwnedTrip(ctx context.Context, userId string, tripId string) (*db_models.Trip, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if _, err := uuid.Parse(tripId); err != nil {
		return nil, utils.ErrTripNotFound
	}

	trip, err := t.tripRepo.FindByIdAndUser(ctx, tripId, userUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	return trip, nil
}

func hasItinerary(trip *db_models.Trip) bool {
	raw := strings.TrimSpace(string(trip.Itinerary))
	return raw != "" && raw != "null" && raw != "[]"
}

func parseTripDates(startStr, endStr string) (time.Time, time.Time, error) {
	startDate, err := utils.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", utils.ErrInvalidInput)
	}

	endDate, err := utils.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", utils.ErrInvalidInput)
	}

	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, utils.ErrInvalidDateRange
	}

	if utils.DurationDays(startDate, endDate) > maxTripDurationDays {
		return time.Time{}, time.Time{}, utils.ErrTripTooLong
	}

	return startDate, endDate, nil
}

func validateCoordinates(lat, lng *float64) error {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return fmt.Errorf("%w: latitude must be between -90 and 90", utils.ErrInvalidCoordinates)
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return fmt.Errorf("%w: longitude must be between -180 and 180", utils.ErrInvalidCoordinates)
	}
	return nil
}
