package models

import "time"

// Club and Space are reference data owned by an administrator; bookings
// only ever point at them.

type Club struct {
	ID        uint      `gorm:"column:club_id;primaryKey" json:"club_id"`
	Name      string    `gorm:"column:club_name;uniqueIndex;not null" json:"club_name"`
	CreatedAt time.Time `json:"created_at"`
}

type Space struct {
	ID        uint      `gorm:"column:space_id;primaryKey" json:"space_id"`
	Name      string    `gorm:"column:space_name;uniqueIndex;not null" json:"space_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Booking is insert-only: it is created once by the admission path and
// never updated. The unique index over (space_id, booking_date, start_time)
// backs up the in-transaction conflict check.
type Booking struct {
	ID          uint      `gorm:"column:booking_id;primaryKey" json:"booking_id"`
	ClubID      uint      `gorm:"column:club_id;not null" json:"club_id"`
	SpaceID     uint      `gorm:"column:space_id;not null;uniqueIndex:idx_booking_slot" json:"space_id"`
	BookingDate time.Time `gorm:"column:booking_date;type:date;not null;uniqueIndex:idx_booking_slot" json:"booking_date"`
	StartTime   string    `gorm:"column:start_time;type:varchar(5);not null;uniqueIndex:idx_booking_slot" json:"start_time"`
	EndTime     string    `gorm:"column:end_time;type:varchar(5);not null" json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`

	Club  *Club  `gorm:"foreignKey:ClubID" json:"club,omitempty"`
	Space *Space `gorm:"foreignKey:SpaceID" json:"space,omitempty"`
}
