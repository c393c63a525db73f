package handler

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bnbhub/internal/errors"
	"bnbhub/internal/media"
	"bnbhub/internal/model"
	"bnbhub/internal/service"
)

// ListingHandler handles listing lifecycle endpoints.
type ListingHandler struct {
	listingService service.ListingService
	uploader       media.Uploader
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(listingService service.ListingService, uploader media.Uploader) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		uploader:       uploader,
	}
}

// ListingResponse wraps a listing mutation result.
type ListingResponse struct {
	Message string         `json:"message"`
	Listing *model.Listing `json:"listing"`
}

// AvailabilityValue accepts either a JSON boolean or the strings
// "available" / "booked".
type AvailabilityValue struct {
	available bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *AvailabilityValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		v.available = b
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "available", "true":
		v.available = true
	case "booked", "false":
		v.available = false
	default:
		return fmt.Errorf("invalid availability value %q", s)
	}
	return nil
}

// AvailabilityRequest represents an availability change.
type AvailabilityRequest struct {
	OwnerEmail   string            `json:"ownerEmail" validate:"required,email"`
	Availability AvailabilityValue `json:"availability"`
}

// DeleteRequest carries the claimed owner email for a delete.
type DeleteRequest struct {
	OwnerEmail string `json:"ownerEmail" validate:"required,email"`
}

func fieldsFromForm(c echo.Context) service.ListingFields {
	price, _ := decimal.NewFromString(c.FormValue("price"))
	rooms, _ := strconv.Atoi(c.FormValue("rooms"))
	return service.ListingFields{
		Name:        c.FormValue("name"),
		Location:    c.FormValue("location"),
		Price:       price,
		Description: c.FormValue("description"),
		Rooms:       rooms,
		HouseType:   c.FormValue("houseType"),
	}
}

func formImages(c echo.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}

// Add godoc
// @Summary Add a new listing
// @Tags bnbs
// @Accept mpfd
// @Produce json
// @Param owner formData string true "Owner email"
// @Param name formData string true "Listing name"
// @Param location formData string true "Location"
// @Param price formData number true "Price per night"
// @Param description formData string true "Description"
// @Param rooms formData int false "Room count"
// @Param houseType formData string false "House type"
// @Param images formData file false "Up to 5 images (jpg, jpeg, png)"
// @Success 201 {object} ListingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bnbs/add [post]
func (h *ListingHandler) Add(c echo.Context) error {
	ownerEmail := c.FormValue("owner")
	fields := fieldsFromForm(c)

	imageRefs, err := h.uploadImages(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	listing, err := h.listingService.Create(c.Request().Context(), ownerEmail, fields, imageRefs)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, ListingResponse{
		Message: "BNB added successfully!",
		Listing: listing,
	})
}

// List godoc
// @Summary List all listings for public browsing
// @Tags bnbs
// @Produce json
// @Success 200 {array} model.Listing
// @Failure 500 {object} errors.ErrorResponse
// @Router /bnbs/ [get]
func (h *ListingHandler) List(c echo.Context) error {
	listings, err := h.listingService.ListAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, listings)
}

// ListByOwner godoc
// @Summary List listings belonging to one owner
// @Tags bnbs
// @Produce json
// @Param email path string true "Owner email"
// @Success 200 {array} model.Listing
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bnbs/owner/{email} [get]
func (h *ListingHandler) ListByOwner(c echo.Context) error {
	email := strings.TrimSpace(c.Param("email"))

	listings, err := h.listingService.ListByOwner(c.Request().Context(), email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, listings)
}

// Get godoc
// @Summary Get a single listing by id
// @Tags bnbs
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} model.Listing
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bnbs/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid listing ID",
			Code:  "INVALID_UUID",
		})
	}

	listing, err := h.listingService.GetByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, listing)
}

// Update godoc
// @Summary Update a listing; only its owner may edit
// @Tags bnbs
// @Accept mpfd
// @Produce json
// @Param id path string true "Listing ID"
// @Param ownerEmail formData string true "Claimed owner email"
// @Param images formData file false "Replacement images (optional)"
// @Success 200 {object} ListingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bnbs/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid listing ID",
			Code:  "INVALID_UUID",
		})
	}

	ownerEmail := c.FormValue("ownerEmail")
	fields := fieldsFromForm(c)

	imageRefs, err := h.uploadImages(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	listing, err := h.listingService.Update(c.Request().Context(), id, ownerEmail, fields, imageRefs)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ListingResponse{
		Message: "BNB updated successfully!",
		Listing: listing,
	})
}

// SetAvailability godoc
// @Summary Set listing availability; only its owner may change it
// @Tags bnbs
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body AvailabilityRequest true "Availability change"
// @Success 200 {object} ListingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bnbs/{id}/availability [put]
func (h *ListingHandler) SetAvailability(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid listing ID",
			Code:  "INVALID_UUID",
		})
	}

	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.listingService.SetAvailability(c.Request().Context(), id, req.OwnerEmail, req.Availability.available)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ListingResponse{
		Message: "Availability updated successfully!",
		Listing: listing,
	})
}

// Delete godoc
// @Summary Delete a listing; only its owner may delete
// @Tags bnbs
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body DeleteRequest true "Claimed owner email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bnbs/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid listing ID",
			Code:  "INVALID_UUID",
		})
	}

	var req DeleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.listingService.Delete(c.Request().Context(), id, req.OwnerEmail); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "BNB deleted successfully!",
	})
}

// uploadImages pushes any submitted files to the upload provider and returns
// their reference URLs. No files means no upload call at all.
func (h *ListingHandler) uploadImages(c echo.Context) ([]string, error) {
	files := formImages(c)
	if len(files) == 0 {
		return nil, nil
	}
	return h.uploader.Upload(c.Request().Context(), files)
}
