package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"propertyhub/internal/common"
	"propertyhub/internal/models"
	"propertyhub/internal/repositories"
	"propertyhub/internal/services"
)

type UserHandlers struct {
	userSvc services.UserService
}

func NewUserHandlers(userSvc services.UserService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc}
}

func (h *UserHandlers) List(c echo.Context) error {
	page, limit, offset := parsePagination(c)

	filter := &repositories.UserFilter{}
	if role := c.QueryParam("role"); role != "" {
		filter.Role = &role
	}
	if search := c.QueryParam("search"); search != "" {
		filter.Search = &search
	}
	if activeStr := c.QueryParam("isActive"); activeStr != "" {
		active := activeStr == "true"
		filter.IsActive = &active
	}

	users, total, err := h.userSvc.List(c.Request().Context(), filter, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list users")
	}
	return common.RespondList(c, users, common.NewPagination(page, limit, total))
}

func (h *UserHandlers) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userSvc.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return common.RespondData(c, http.StatusOK, user)
}

type CreateUserRequest struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role" validate:"required,oneof=ADMIN OWNER TENANT"`
}

func (h *UserHandlers) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
	}
	if err := h.userSvc.Create(c.Request().Context(), user, req.Password); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusCreated, user)
}

// UpdateUserRequest deliberately has no email field: email is fixed at
// creation time.
type UpdateUserRequest struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role" validate:"required,oneof=ADMIN OWNER TENANT"`
}

func (h *UserHandlers) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.userSvc.GetByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	user.Role = req.Role

	if err := h.userSvc.Update(ctx, user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusOK, user)
}

func (h *UserHandlers) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.userSvc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete user")
	}
	return common.RespondMessage(c, "User deleted")
}

func (h *UserHandlers) Activate(c echo.Context) error {
	return h.setActive(c, true, "User activated")
}

func (h *UserHandlers) Deactivate(c echo.Context) error {
	return h.setActive(c, false, "User deactivated")
}

func (h *UserHandlers) setActive(c echo.Context, active bool, message string) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.userSvc.SetActive(ctx, id, active); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	user, err := h.userSvc.GetByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return common.RespondData(c, http.StatusOK, user)
}

// GetProfile returns the calling user's own record.
func (h *UserHandlers) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userSvc.GetByID(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return common.RespondData(c, http.StatusOK, user)
}

type UpdateProfileRequest struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Phone     *string `json:"phone"`
}

// UpdateProfile lets any authenticated user edit their own name and phone.
func (h *UserHandlers) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userSvc.UpdateProfile(ctx, userID, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return common.RespondData(c, http.StatusOK, user)
}
