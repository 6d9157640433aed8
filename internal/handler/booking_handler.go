package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sanjanammmm/Monty-s-Magicians/internal/auth"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/dto"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/service"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/slot"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	api := e.Group("/api/v1")
	api.POST("/bookings", h.CreateBooking, requireAuth)
	api.GET("/bookings/:id", h.GetBooking)
	api.GET("/spaces/:id/bookings", h.ListBookings)
	api.GET("/spaces/:id/availability", h.DayAvailability)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	ident, ok := auth.From(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ClubName == "" || req.SpaceID == 0 || req.BookingDate == "" || req.StartTime == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "club_name, space_id, booking_date and start_time are required")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), ident, req.ClubName, req.SpaceID, req.BookingDate, req.StartTime)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrMalformedInput),
			errors.Is(err, service.ErrClubNotFound),
			errors.Is(err, service.ErrSpaceNotFound),
			errors.Is(err, service.ErrSlotTaken):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Message:   "Booking successful!",
		BookingID: booking.ID,
	})
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	spaceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid space id")
	}
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required")
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), uint(spaceID), date)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrMalformedInput):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSpaceNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) DayAvailability(c echo.Context) error {
	spaceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid space id")
	}
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required")
	}

	windows, err := h.svc.DayAvailability(c.Request().Context(), uint(spaceID), date)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrMalformedInput):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSpaceNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.AvailabilityResponse{
		SpaceID:   uint(spaceID),
		Date:      date,
		FreeSlots: windows,
	})
}
