package dto

import (
	"time"

	"github.com/sanjanammmm/Monty-s-Magicians/internal/models"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/service"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/slot"
)

// CreateBookingResponse is the admission result.
type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID uint   `json:"booking_id"`
}

type BookingResponse struct {
	ID          uint      `json:"booking_id"`
	ClubID      uint      `json:"club_id"`
	SpaceID     uint      `json:"space_id"`
	BookingDate string    `json:"booking_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}

type ClubResponse struct {
	ID   uint   `json:"club_id"`
	Name string `json:"club_name"`
}

type SpaceResponse struct {
	ID   uint   `json:"space_id"`
	Name string `json:"space_name"`
}

type AvailabilityResponse struct {
	SpaceID   uint             `json:"space_id"`
	Date      string           `json:"date"`
	FreeSlots []service.Window `json:"free_slots"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		ClubID:      b.ClubID,
		SpaceID:     b.SpaceID,
		BookingDate: b.BookingDate.Format(slot.DateLayout),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		CreatedAt:   b.CreatedAt,
	}
}

func ToClubResponse(c *models.Club) ClubResponse {
	return ClubResponse{ID: c.ID, Name: c.Name}
}

func ToSpaceResponse(s *models.Space) SpaceResponse {
	return SpaceResponse{ID: s.ID, Name: s.Name}
}
