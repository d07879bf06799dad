package repository

import (
	"context"

	"gorm.io/gorm"

	"cafeyak/internal/model"
)

// ReservationRepository defines reservation persistence operations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository builds a GORM-backed repository.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}
