package service

import (
	"context"
	"errors"
	"log"

	"github.com/sanjanammmm/Monty-s-Magicians/internal/auth"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/models"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/repository"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/slot"
	"github.com/sanjanammmm/Monty-s-Magicians/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrClubNotFound    = errors.New("club not found")
	ErrSpaceNotFound   = errors.New("space not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotTaken       = errors.New("this time slot is already booked for the selected space")
)

type BookingService interface {
	CreateBooking(ctx context.Context, ident auth.Identity, clubName string, spaceID uint, bookingDate, startTime string) (*models.Booking, error)
	CheckConflict(ctx context.Context, spaceID uint, s slot.Slot) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, spaceID uint, date string) ([]models.Booking, error)
	DayAvailability(ctx context.Context, spaceID uint, date string) ([]Window, error)
}

// Window is a free bookable hour, rendered back to wall-clock form.
type Window struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type bookingService struct {
	clubRepo    repository.ClubRepository
	spaceRepo   repository.SpaceRepository
	bookingRepo repository.BookingRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(
	clubRepo repository.ClubRepository,
	spaceRepo repository.SpaceRepository,
	bookingRepo repository.BookingRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		clubRepo:    clubRepo,
		spaceRepo:   spaceRepo,
		bookingRepo: bookingRepo,
		publisher:   publisher,
	}
}

// CreateBooking admits a one-hour reservation. The conflict check and the
// insert run in a single transaction that first locks the space row, so two
// concurrent admissions for the same space cannot both pass the check. The
// unique index over (space_id, booking_date, start_time) backs this up at
// the storage layer.
func (s *bookingService) CreateBooking(ctx context.Context, ident auth.Identity, clubName string, spaceID uint, bookingDate, startTime string) (*models.Booking, error) {
	sl, err := slot.Normalize(bookingDate, startTime)
	if err != nil {
		return nil, err
	}

	var result *models.Booking
	err = s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		club, err := s.clubRepo.FindByName(ctx, tx, clubName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClubNotFound
			}
			return err
		}

		// Lock the space row so concurrent admissions for it serialize
		space, err := s.spaceRepo.FindByIDForUpdate(ctx, tx, spaceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSpaceNotFound
			}
			return err
		}

		conflict, err := s.findConflict(ctx, tx, space.ID, sl)
		if err != nil {
			return err
		}
		if conflict != nil {
			return ErrSlotTaken
		}

		booking := &models.Booking{
			ClubID:      club.ID,
			SpaceID:     space.ID,
			BookingDate: sl.Date,
			StartTime:   sl.Start.String(),
			EndTime:     sl.End.String(),
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return err
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("booking %d created by %s: club %q, space %d, %s %s-%s",
		result.ID, ident.Email, clubName, spaceID, bookingDate, result.StartTime, result.EndTime)

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", result)
	}

	return result, nil
}

// CheckConflict returns the first booking whose interval overlaps the
// candidate slot on the same space and date, or nil if the slot is free.
func (s *bookingService) CheckConflict(ctx context.Context, spaceID uint, sl slot.Slot) (*models.Booking, error) {
	return s.findConflict(ctx, nil, spaceID, sl)
}

func (s *bookingService) findConflict(ctx context.Context, tx *gorm.DB, spaceID uint, sl slot.Slot) (*models.Booking, error) {
	existing, err := s.bookingRepo.FindBySpaceAndDate(ctx, tx, spaceID, sl.Date)
	if err != nil {
		return nil, err
	}
	candidate := sl.Interval()
	for i := range existing {
		if slot.Overlaps(bookingInterval(&existing[i]), candidate) {
			return &existing[i], nil
		}
	}
	return nil, nil
}

func bookingInterval(b *models.Booking) slot.Interval {
	start, _ := slot.ParseTimeOfDay(b.StartTime)
	end, _ := slot.ParseTimeOfDay(b.EndTime)
	return slot.NewInterval(start, end)
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, spaceID uint, date string) ([]models.Booking, error) {
	d, err := slot.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if _, err := s.spaceRepo.FindByID(ctx, spaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return s.bookingRepo.FindBySpaceAndDate(ctx, nil, spaceID, d)
}

// DayAvailability lists the hour slots still free for a space on a date.
func (s *bookingService) DayAvailability(ctx context.Context, spaceID uint, date string) ([]Window, error) {
	d, err := slot.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if _, err := s.spaceRepo.FindByID(ctx, spaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}

	existing, err := s.bookingRepo.FindBySpaceAndDate(ctx, nil, spaceID, d)
	if err != nil {
		return nil, err
	}

	taken := make([]slot.Interval, len(existing))
	for i := range existing {
		taken[i] = bookingInterval(&existing[i])
	}

	windows := make([]Window, 0, 24)
	for hour := 0; hour < 24; hour++ {
		candidate := slot.NewInterval(
			slot.TimeOfDay{Hour: hour},
			slot.TimeOfDay{Hour: slot.EndHour(hour)},
		)
		free := true
		for _, iv := range taken {
			if slot.Overlaps(iv, candidate) {
				free = false
				break
			}
		}
		if free {
			windows = append(windows, Window{
				StartTime: slot.FormatHour(hour),
				EndTime:   slot.FormatHour(slot.EndHour(hour)),
			})
		}
	}
	return windows, nil
}
