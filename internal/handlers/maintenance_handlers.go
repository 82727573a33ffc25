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

// Attachment uploads are capped at 10 MiB.
const maxAttachmentSize = 10 << 20

type MaintenanceHandlers struct {
	maintenanceSvc services.MaintenanceService
}

func NewMaintenanceHandlers(maintenanceSvc services.MaintenanceService) *MaintenanceHandlers {
	return &MaintenanceHandlers{maintenanceSvc: maintenanceSvc}
}

func (h *MaintenanceHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()
	page, limit, offset := parsePagination(c)

	filter := &repositories.MaintenanceFilter{}
	if status := c.QueryParam("status"); status != "" {
		if !models.ValidMaintenanceStatus(status) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
		}
		filter.Status = &status
	}
	if priority := c.QueryParam("priority"); priority != "" {
		if !models.ValidMaintenancePriority(priority) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid priority")
		}
		filter.Priority = &priority
	}
	if category := c.QueryParam("category"); category != "" {
		if !models.ValidMaintenanceCategory(category) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid category")
		}
		filter.Category = &category
	}
	if unitStr := c.QueryParam("unitId"); unitStr != "" {
		unitID, err := uuid.Parse(unitStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid unitId format")
		}
		filter.UnitID = &unitID
	}

	role, _ := common.GetRoleFromContext(ctx)
	userID, _ := common.GetUserIDFromContext(ctx)
	switch role {
	case models.RoleTenant:
		filter.TenantID = &userID
	case models.RoleOwner:
		filter.OwnerID = &userID
	}

	requests, total, err := h.maintenanceSvc.List(ctx, filter, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list maintenance requests")
	}
	return common.RespondList(c, requests, common.NewPagination(page, limit, total))
}

func (h *MaintenanceHandlers) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	request, err := h.maintenanceSvc.GetByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Maintenance request not found")
	}

	if role, _ := common.GetRoleFromContext(ctx); role == models.RoleTenant {
		userID, _ := common.GetUserIDFromContext(ctx)
		if request.TenantID != userID {
			return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
		}
	}
	return common.RespondData(c, http.StatusOK, request)
}

type CreateMaintenanceRequest struct {
	UnitID      string `json:"unitId" validate:"required,uuid"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=PLUMBING ELECTRICAL HVAC APPLIANCE STRUCTURAL OTHER"`
	Priority    string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}

// Create files a request on behalf of the calling tenant.
func (h *MaintenanceHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req CreateMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid unitId format")
	}

	request := &models.MaintenanceRequest{
		UnitID:      unitID,
		TenantID:    userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	}
	if err := h.maintenanceSvc.Create(ctx, request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusCreated, request)
}

type UpdateMaintenanceRequest struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description" validate:"required"`
	Priority        string     `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
	Status          string     `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	ResolutionNotes *string    `json:"resolutionNotes"`
	ResolvedAt      *time.Time `json:"resolvedAt"`
}

func (h *MaintenanceHandlers) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	request, err := h.maintenanceSvc.GetByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Maintenance request not found")
	}

	request.Title = req.Title
	request.Description = req.Description
	request.Priority = req.Priority
	request.Status = req.Status
	request.ResolutionNotes = req.ResolutionNotes
	request.ResolvedAt = req.ResolvedAt

	if err := h.maintenanceSvc.Update(ctx, request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusOK, request)
}

// Cancel lets the filing tenant withdraw a pending request.
func (h *MaintenanceHandlers) Cancel(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	request, err := h.maintenanceSvc.Cancel(ctx, id, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusOK, request)
}

func (h *MaintenanceHandlers) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.maintenanceSvc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete maintenance request")
	}
	return common.RespondMessage(c, "Maintenance request deleted")
}

// MyUnits lists the units the calling tenant can file requests against.
func (h *MaintenanceHandlers) MyUnits(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	units, err := h.maintenanceSvc.RentedUnits(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list units")
	}
	return common.RespondData(c, http.StatusOK, units)
}

func (h *MaintenanceHandlers) UploadAttachment(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file")
	}
	if fileHeader.Size > maxAttachmentSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "File exceeds the 10MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read file")
	}
	defer file.Close()

	attachment, err := h.maintenanceSvc.AddAttachment(c.Request().Context(), id,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusCreated, attachment)
}

func (h *MaintenanceHandlers) ListAttachments(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	attachments, err := h.maintenanceSvc.ListAttachments(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list attachments")
	}
	return common.RespondData(c, http.StatusOK, attachments)
}

func (h *MaintenanceHandlers) DeleteAttachment(c echo.Context) error {
	attachmentID, err := parseIDParam(c, "attachmentId")
	if err != nil {
		return err
	}

	if err := h.maintenanceSvc.DeleteAttachment(c.Request().Context(), attachmentID); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondMessage(c, "Attachment deleted")
}
