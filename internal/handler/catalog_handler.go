package handler

import (
	"errors"
	"net/http"

	"github.com/sanjanammmm/Monty-s-Magicians/internal/dto"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/models"
	"github.com/sanjanammmm/Monty-s-Magicians/internal/repository"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CatalogHandler serves the club and space reference data. Reads are open;
// creation is the administrative side the booking flow depends on.
type CatalogHandler struct {
	clubRepo  repository.ClubRepository
	spaceRepo repository.SpaceRepository
}

func NewCatalogHandler(clubRepo repository.ClubRepository, spaceRepo repository.SpaceRepository) *CatalogHandler {
	return &CatalogHandler{clubRepo: clubRepo, spaceRepo: spaceRepo}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	api := e.Group("/api/v1")
	api.GET("/clubs", h.ListClubs)
	api.POST("/clubs", h.CreateClub, requireAuth)
	api.GET("/spaces", h.ListSpaces)
	api.POST("/spaces", h.CreateSpace, requireAuth)
}

func (h *CatalogHandler) ListClubs(c echo.Context) error {
	clubs, err := h.clubRepo.FindAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ClubResponse, len(clubs))
	for i := range clubs {
		resp[i] = dto.ToClubResponse(&clubs[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) CreateClub(c echo.Context) error {
	var req dto.CreateClubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "club_name is required")
	}

	club := &models.Club{Name: req.Name}
	if err := h.clubRepo.Create(c.Request().Context(), club); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "club already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToClubResponse(club))
}

func (h *CatalogHandler) ListSpaces(c echo.Context) error {
	spaces, err := h.spaceRepo.FindAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.SpaceResponse, len(spaces))
	for i := range spaces {
		resp[i] = dto.ToSpaceResponse(&spaces[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) CreateSpace(c echo.Context) error {
	var req dto.CreateSpaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "space_name is required")
	}

	space := &models.Space{Name: req.Name}
	if err := h.spaceRepo.Create(c.Request().Context(), space); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "space already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToSpaceResponse(space))
}
