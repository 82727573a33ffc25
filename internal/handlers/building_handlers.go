package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"propertyhub/internal/common"
	"propertyhub/internal/models"
	"propertyhub/internal/repositories"
	"propertyhub/internal/services"
)

type BuildingHandlers struct {
	buildingSvc services.BuildingService
}

func NewBuildingHandlers(buildingSvc services.BuildingService) *BuildingHandlers {
	return &BuildingHandlers{buildingSvc: buildingSvc}
}

func (h *BuildingHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit, offset := parsePagination(c)

	filter := &repositories.BuildingFilter{}
	if search := c.QueryParam("search"); search != "" {
		filter.Search = &search
	}
	if ownerStr := c.QueryParam("ownerId"); ownerStr != "" {
		ownerID, err := uuid.Parse(ownerStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid ownerId format")
		}
		filter.OwnerID = &ownerID
	}

	// Owners only ever see their own buildings.
	if role, _ := common.GetRoleFromContext(ctx); role == models.RoleOwner {
		userID, _ := common.GetUserIDFromContext(ctx)
		filter.OwnerID = &userID
	}

	buildings, total, err := h.buildingSvc.List(ctx, filter, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list buildings")
	}
	return common.RespondList(c, buildings, common.NewPagination(page, limit, total))
}

func (h *BuildingHandlers) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	building, err := h.buildingSvc.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Building not found")
	}
	return common.RespondData(c, http.StatusOK, building)
}

type BuildingRequest struct {
	Name         string  `json:"name" validate:"required"`
	AddressLine1 string  `json:"addressLine1" validate:"required"`
	AddressLine2 *string `json:"addressLine2"`
	City         string  `json:"city" validate:"required"`
	State        string  `json:"state" validate:"required"`
	PostalCode   string  `json:"postalCode" validate:"required"`
	OwnerID      string  `json:"ownerId" validate:"required,uuid"`
}

func (h *BuildingHandlers) Create(c echo.Context) error {
	var req BuildingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid ownerId format")
	}

	building := &models.Building{
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		OwnerID:      ownerID,
	}
	if err := h.buildingSvc.Create(c.Request().Context(), building); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusCreated, building)
}

func (h *BuildingHandlers) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req BuildingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid ownerId format")
	}

	ctx := c.Request().Context()
	building, err := h.buildingSvc.GetByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Building not found")
	}

	building.Name = req.Name
	building.AddressLine1 = req.AddressLine1
	building.AddressLine2 = req.AddressLine2
	building.City = req.City
	building.State = req.State
	building.PostalCode = req.PostalCode
	building.OwnerID = ownerID

	if err := h.buildingSvc.Update(ctx, building); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusOK, building)
}

func (h *BuildingHandlers) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.buildingSvc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete building")
	}
	return common.RespondMessage(c, "Building deleted")
}
