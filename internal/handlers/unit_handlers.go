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

type UnitHandlers struct {
	unitSvc services.UnitService
}

func NewUnitHandlers(unitSvc services.UnitService) *UnitHandlers {
	return &UnitHandlers{unitSvc: unitSvc}
}

func (h *UnitHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit, offset := parsePagination(c)

	filter := &repositories.UnitFilter{}
	if buildingStr := c.QueryParam("buildingId"); buildingStr != "" {
		buildingID, err := uuid.Parse(buildingStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid buildingId format")
		}
		filter.BuildingID = &buildingID
	}
	if status := c.QueryParam("status"); status != "" {
		if !models.ValidUnitStatus(status) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
		}
		filter.Status = &status
	}
	if search := c.QueryParam("search"); search != "" {
		filter.Search = &search
	}

	// Owners see units in their own buildings only.
	if role, _ := common.GetRoleFromContext(ctx); role == models.RoleOwner {
		userID, _ := common.GetUserIDFromContext(ctx)
		filter.OwnerID = &userID
	}

	units, total, err := h.unitSvc.List(ctx, filter, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list units")
	}
	return common.RespondList(c, units, common.NewPagination(page, limit, total))
}

func (h *UnitHandlers) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	unit, err := h.unitSvc.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Unit not found")
	}
	return common.RespondData(c, http.StatusOK, unit)
}

type UnitRequest struct {
	BuildingID string   `json:"buildingId" validate:"required,uuid"`
	UnitNumber string   `json:"unitNumber" validate:"required"`
	Floor      *int     `json:"floor"`
	Bedrooms   int      `json:"bedrooms" validate:"min=0"`
	Bathrooms  int      `json:"bathrooms" validate:"min=0"`
	AreaSqft   *float64 `json:"areaSqft"`
	RentAmount float64  `json:"rentAmount" validate:"required,gt=0"`
	UnitType   string   `json:"unitType" validate:"required,oneof=APARTMENT STUDIO TOWNHOUSE COMMERCIAL"`
	Status     string   `json:"status" validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
}

func (h *UnitHandlers) Create(c echo.Context) error {
	var req UnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	buildingID, err := uuid.Parse(req.BuildingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid buildingId format")
	}

	unit := &models.Unit{
		BuildingID: buildingID,
		UnitNumber: req.UnitNumber,
		Floor:      req.Floor,
		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
		AreaSqft:   req.AreaSqft,
		RentAmount: req.RentAmount,
		UnitType:   req.UnitType,
		Status:     req.Status,
	}
	if err := h.unitSvc.Create(c.Request().Context(), unit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusCreated, unit)
}

func (h *UnitHandlers) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	unit, err := h.unitSvc.GetByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Unit not found")
	}

	unit.UnitNumber = req.UnitNumber
	unit.Floor = req.Floor
	unit.Bedrooms = req.Bedrooms
	unit.Bathrooms = req.Bathrooms
	unit.AreaSqft = req.AreaSqft
	unit.RentAmount = req.RentAmount
	unit.UnitType = req.UnitType
	if req.Status != "" {
		unit.Status = req.Status
	}

	if err := h.unitSvc.Update(ctx, unit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusOK, unit)
}

func (h *UnitHandlers) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.unitSvc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondMessage(c, "Unit deleted")
}
