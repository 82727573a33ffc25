package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"propertyhub/internal/common"
	"propertyhub/internal/models"
	"propertyhub/internal/repositories"
	"propertyhub/internal/services"
)

type TenancyHandlers struct {
	tenancySvc services.TenancyService
}

func NewTenancyHandlers(tenancySvc services.TenancyService) *TenancyHandlers {
	return &TenancyHandlers{tenancySvc: tenancySvc}
}

func (h *TenancyHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit, offset := parsePagination(c)

	filter := &repositories.TenancyFilter{}
	if tenantStr := c.QueryParam("tenantId"); tenantStr != "" {
		tenantID, err := uuid.Parse(tenantStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid tenantId format")
		}
		filter.TenantID = &tenantID
	}
	if unitStr := c.QueryParam("unitId"); unitStr != "" {
		unitID, err := uuid.Parse(unitStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid unitId format")
		}
		filter.UnitID = &unitID
	}
	if activeStr := c.QueryParam("isActive"); activeStr != "" {
		active := activeStr == "true"
		filter.IsActive = &active
	}

	// Scope down by role: tenants see their own tenancies, owners the
	// tenancies in their buildings.
	role, _ := common.GetRoleFromContext(ctx)
	userID, _ := common.GetUserIDFromContext(ctx)
	switch role {
	case models.RoleTenant:
		filter.TenantID = &userID
	case models.RoleOwner:
		filter.OwnerID = &userID
	}

	tenancies, total, err := h.tenancySvc.List(ctx, filter, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list tenancies")
	}
	return common.RespondList(c, tenancies, common.NewPagination(page, limit, total))
}

// MyTenancies returns the calling tenant's own tenancy history.
func (h *TenancyHandlers) MyTenancies(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	tenancies, err := h.tenancySvc.ListByTenant(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list tenancies")
	}
	return common.RespondData(c, http.StatusOK, tenancies)
}

func (h *TenancyHandlers) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	tenancy, err := h.tenancySvc.GetByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Tenancy not found")
	}

	// Tenants may only read their own tenancies.
	if role, _ := common.GetRoleFromContext(ctx); role == models.RoleTenant {
		userID, _ := common.GetUserIDFromContext(ctx)
		if tenancy.TenantID != userID {
			return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
		}
	}
	return common.RespondData(c, http.StatusOK, tenancy)
}

type TenancyRequest struct {
	TenantID      string    `json:"tenantId" validate:"required,uuid"`
	UnitID        string    `json:"unitId" validate:"required,uuid"`
	StartDate     time.Time `json:"startDate" validate:"required"`
	EndDate       time.Time `json:"endDate" validate:"required"`
	MonthlyRent   float64   `json:"monthlyRent" validate:"min=0"`
	DepositAmount float64   `json:"depositAmount" validate:"min=0"`
}

func (h *TenancyHandlers) Create(c echo.Context) error {
	var req TenancyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid tenantId format")
	}
	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid unitId format")
	}

	tenancy := &models.Tenancy{
		TenantID:      tenantID,
		UnitID:        unitID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		MonthlyRent:   req.MonthlyRent,
		DepositAmount: req.DepositAmount,
	}
	ctx := c.Request().Context()
	if err := h.tenancySvc.Create(ctx, tenancy); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.tenancySvc.GetByID(ctx, tenancy.ID)
	if err != nil {
		return common.RespondData(c, http.StatusCreated, tenancy)
	}
	return common.RespondData(c, http.StatusCreated, created)
}

func (h *TenancyHandlers) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req TenancyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	tenancy, err := h.tenancySvc.GetByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Tenancy not found")
	}

	tenancy.StartDate = req.StartDate
	tenancy.EndDate = req.EndDate
	tenancy.MonthlyRent = req.MonthlyRent
	tenancy.DepositAmount = req.DepositAmount

	if err := h.tenancySvc.Update(ctx, tenancy); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusOK, tenancy)
}

type EndTenancyRequest struct {
	EndDate time.Time `json:"endDate"`
	Reason  *string   `json:"reason"`
}

func (h *TenancyHandlers) End(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req EndTenancyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	tenancy, err := h.tenancySvc.End(c.Request().Context(), id, req.EndDate, req.Reason)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusOK, tenancy)
}

func (h *TenancyHandlers) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.tenancySvc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondMessage(c, "Tenancy deleted")
}
