package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"cafeyak/internal/model"
	"cafeyak/internal/repository"
)

// ReservationService handles table bookings.
type ReservationService interface {
	Book(ctx context.Context, reservation *model.Reservation) (uuid.UUID, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
}

// NewReservationService creates a new reservation service.
func NewReservationService(reservationRepo repository.ReservationRepository) ReservationService {
	return &reservationService{reservationRepo: reservationRepo}
}

func (s *reservationService) Book(ctx context.Context, reservation *model.Reservation) (uuid.UUID, error) {
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return uuid.Nil, fmt.Errorf("create reservation: %w", err)
	}
	return reservation.ID, nil
}
