package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bnbhub/internal/errors"
	"bnbhub/internal/model"
	"bnbhub/internal/service"
)

// OwnerHandler handles owner registration, login, and contact lookup.
type OwnerHandler struct {
	ownerService service.OwnerService
}

// NewOwnerHandler creates a new owner handler.
func NewOwnerHandler(ownerService service.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

// RegisterRequest represents an owner registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
}

// LoginRequest represents an owner login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Message string             `json:"message"`
	Owner   model.OwnerSummary `json:"owner"`
}

// Register godoc
// @Summary Register a new owner
// @Tags owners
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /owners/register [post]
func (h *OwnerHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.ownerService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Phone, req.Whatsapp)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Owner registered successfully!",
	})
}

// Login godoc
// @Summary Login an owner
// @Tags owners
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /owners/login [post]
func (h *OwnerHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	owner, err := h.ownerService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Unknown owner at login is a 400, not a 404, matching the
		// original contract.
		if err == errors.ErrOwnerNotFound {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "OWNER_NOT_FOUND",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful!",
		Owner:   *owner,
	})
}

// HostContact godoc
// @Summary Get host contact info by owner id
// @Tags owners
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} service.ContactInfo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /owners/host/{id} [get]
func (h *OwnerHandler) HostContact(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid owner ID",
			Code:  "INVALID_UUID",
		})
	}

	info, err := h.ownerService.GetContactInfo(c.Request().Context(), ownerID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, info)
}
