package dto

// CreateBookingRequest carries the booking form fields. Bind accepts both
// form-encoded and JSON bodies.
type CreateBookingRequest struct {
	ClubName    string `json:"club_name" form:"club_name"`
	SpaceID     uint   `json:"space_id" form:"space_id"`
	BookingDate string `json:"booking_date" form:"booking_date"`
	StartTime   string `json:"start_time" form:"start_time"`
}

type CreateClubRequest struct {
	Name string `json:"club_name" form:"club_name"`
}

type CreateSpaceRequest struct {
	Name string `json:"space_name" form:"space_name"`
}
