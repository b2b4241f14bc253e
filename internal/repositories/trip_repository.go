// internal/repositories/trip_repository.go
package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "planventure/internal/models/db_models"
)

// TripFilter narrows ListByUser. Zero values mean "no filter"; Destination
// matches case-insensitively anywhere in the column.
type TripFilter struct {
	Status      string
	Destination string
	Page        int
	PerPage     int
}

type TripRepository interface {
	Insert(ctx context.Context, trip *dbm.Trip) error
	FindByIdAndUser(ctx context.Context, tripId string, userId uuid.UUID) (*dbm.Trip, error)
	ListByUser(ctx context.Context, userId uuid.UUID, filter TripFilter) ([]dbm.Trip, int64, error)
	Update(ctx context.Context, trip *dbm.Trip) error
	Delete(ctx context.Context, trip *dbm.Trip) error
	CountByStatus(ctx context.Context, userId uuid.UUID) (map[string]int64, error)
	SumBudget(ctx context.Context, userId uuid.UUID) (float64, error)
	FindUpcoming(ctx context.Context, userId uuid.UUID, limit int) ([]dbm.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

func (r *tripRepository) Insert(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindByIdAndUser(ctx context.Context, tripId string, userId uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripId, userId).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userId uuid.UUID, filter TripFilter) ([]dbm.Trip, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("user_id = ?", userId)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Destination != "" {
		query = query.Where("destination ILIKE ?", "%"+filter.Destination+"%")
	}

	// Fresh sessions so the count and the page query do not share statement
	// state.
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trips []dbm.Trip
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}

	return trips, total, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Delete(trip).Error
}

func (r *tripRepository) CountByStatus(ctx context.Context, userId uuid.UUID) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userId).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (r *tripRepository) SumBudget(ctx context.Context, userId uuid.UUID) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Select("SUM(budget)").
		Where("user_id = ? AND budget IS NOT NULL", userId).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *tripRepository) FindUpcoming(ctx context.Context, userId uuid.UUID, limit int) ([]dbm.Trip, error) {
	today := time.Now().Truncate(24 * time.Hour)

	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_date > ? AND status IN ?",
			userId, today, []string{dbm.TripStatusPlanned, dbm.TripStatusActive}).
		Order("start_date ASC").
		Limit(limit).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}

	return trips, nil
}
