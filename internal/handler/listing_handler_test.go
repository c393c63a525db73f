package handler

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bnbhub/internal/errors"
	"bnbhub/internal/model"
	"bnbhub/internal/service"
)

// MockListingService is a mock implementation of service.ListingService.
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) Create(ctx context.Context, ownerEmail string, fields service.ListingFields, imageRefs []string) (*model.Listing, error) {
	args := m.Called(ctx, ownerEmail, fields, imageRefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Listing), args.Error(1)
}

func (m *MockListingService) ListAll(ctx context.Context) ([]model.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Listing), args.Error(1)
}

func (m *MockListingService) ListByOwner(ctx context.Context, ownerEmail string) ([]model.Listing, error) {
	args := m.Called(ctx, ownerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Listing), args.Error(1)
}

func (m *MockListingService) GetByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Listing), args.Error(1)
}

func (m *MockListingService) Update(ctx context.Context, id uuid.UUID, submittedOwnerEmail string, fields service.ListingFields, newImageRefs []string) (*model.Listing, error) {
	args := m.Called(ctx, id, submittedOwnerEmail, fields, newImageRefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Listing), args.Error(1)
}

func (m *MockListingService) SetAvailability(ctx context.Context, id uuid.UUID, submittedOwnerEmail string, available bool) (*model.Listing, error) {
	args := m.Called(ctx, id, submittedOwnerEmail, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Listing), args.Error(1)
}

func (m *MockListingService) Delete(ctx context.Context, id uuid.UUID, submittedOwnerEmail string) error {
	args := m.Called(ctx, id, submittedOwnerEmail)
	return args.Error(0)
}

// MockUploader is a mock implementation of media.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func TestAvailabilityValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		available bool
		wantErr   bool
	}{
		{name: "boolean true", payload: `true`, available: true},
		{name: "boolean false", payload: `false`, available: false},
		{name: "string available", payload: `"available"`, available: true},
		{name: "string booked", payload: `"booked"`, available: false},
		{name: "mixed case booked", payload: `"Booked"`, available: false},
		{name: "garbage string", payload: `"maybe"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v AvailabilityValue
			err := json.Unmarshal([]byte(tt.payload), &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.available, v.available)
		})
	}
}

func TestListingHandler_SetAvailability(t *testing.T) {
	listingID := uuid.New()
	booked := &model.Listing{ID: listingID, IsAvailable: false}

	svc := new(MockListingService)
	svc.On("SetAvailability", mock.Anything, listingID, "a@x.com", false).Return(booked, nil)

	h := NewListingHandler(svc, new(MockUploader))
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"ownerEmail":"a@x.com","availability":"booked"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())

	err := h.SetAvailability(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestListingHandler_Delete_StatusMapping(t *testing.T) {
	listingID := uuid.New()

	tests := []struct {
		name         string
		serviceError error
		expectedCode int
	}{
		{name: "non-owner gets 403", serviceError: errors.ErrNotListingOwner, expectedCode: http.StatusForbidden},
		{name: "missing listing gets 404", serviceError: errors.ErrListingNotFound, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockListingService)
			svc.On("Delete", mock.Anything, listingID, "b@x.com").Return(tt.serviceError)

			h := NewListingHandler(svc, new(MockUploader))
			e := newTestEcho()

			req := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(`{"ownerEmail":"b@x.com"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(listingID.String())

			err := h.Delete(c)

			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestListingHandler_Add_FormFields(t *testing.T) {
	var body strings.Builder
	w := multipart.NewWriter(&body)
	_ = w.WriteField("owner", "a@x.com")
	_ = w.WriteField("name", "Cabin")
	_ = w.WriteField("location", "Lake")
	_ = w.WriteField("price", "100")
	_ = w.WriteField("description", "nice")
	_ = w.WriteField("rooms", "2")
	_ = w.WriteField("houseType", "cabin")
	_ = w.Close()

	created := &model.Listing{ID: uuid.New(), Name: "Cabin", IsAvailable: true}

	svc := new(MockListingService)
	svc.On("Create", mock.Anything, "a@x.com", service.ListingFields{
		Name:        "Cabin",
		Location:    "Lake",
		Price:       decimal.NewFromInt(100),
		Description: "nice",
		Rooms:       2,
		HouseType:   "cabin",
	}, []string(nil)).Return(created, nil)

	h := NewListingHandler(svc, new(MockUploader))
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body.String()))
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Add(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}
