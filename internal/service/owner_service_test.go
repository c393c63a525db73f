package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bnbhub/internal/errors"
	"bnbhub/internal/model"
)

// MockOwnerRepository is a mock implementation of OwnerRepository.
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) Create(ctx context.Context, owner *model.Owner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockOwnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockOwnerRepository) FindByEmail(ctx context.Context, email string) (*model.Owner, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func TestOwnerService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockOwnerRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "sharon@example.com",
			password: "password123",
			setupMock: func(m *MockOwnerRepository) {
				m.On("FindByEmail", mock.Anything, "sharon@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Owner")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already registered",
			email:    "taken@example.com",
			password: "password123",
			setupMock: func(m *MockOwnerRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.Owner{Email: "taken@example.com"}, nil)
			},
			expectedError: errors.ErrEmailRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOwnerRepository)
			tt.setupMock(mockRepo)

			svc := NewOwnerService(mockRepo, nil)
			err := svc.Register(context.Background(), "Sharon", tt.email, tt.password, "+254700000001", "+254700000001")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOwnerService_Register_StoresHashNotPassword(t *testing.T) {
	mockRepo := new(MockOwnerRepository)
	mockRepo.On("FindByEmail", mock.Anything, "sharon@example.com").Return(nil, gorm.ErrRecordNotFound)

	var created *model.Owner
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Owner")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Owner)
		}).Return(nil)

	svc := NewOwnerService(mockRepo, nil)
	err := svc.Register(context.Background(), "Sharon", "sharon@example.com", "password123", "", "")

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
}

func TestOwnerService_Authenticate(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	ownerID := uuid.New()

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockOwnerRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "sharon@example.com",
			password: "password123",
			setupMock: func(m *MockOwnerRepository) {
				m.On("FindByEmail", mock.Anything, "sharon@example.com").Return(&model.Owner{
					ID:           ownerID,
					Name:         "Sharon",
					Email:        "sharon@example.com",
					PasswordHash: string(hashed),
					Whatsapp:     "+254700000001",
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown owner",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(m *MockOwnerRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrOwnerNotFound,
		},
		{
			name:     "wrong password",
			email:    "sharon@example.com",
			password: "not-the-password",
			setupMock: func(m *MockOwnerRepository) {
				m.On("FindByEmail", mock.Anything, "sharon@example.com").Return(&model.Owner{
					ID:           ownerID,
					Email:        "sharon@example.com",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOwnerRepository)
			tt.setupMock(mockRepo)

			svc := NewOwnerService(mockRepo, nil)
			summary, err := svc.Authenticate(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, summary)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, summary)
				assert.Equal(t, tt.email, summary.Email)
				assert.Equal(t, ownerID, summary.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// The login summary must never leak the stored hash.
func TestOwnerService_Authenticate_NeverReturnsHash(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	mockRepo := new(MockOwnerRepository)
	mockRepo.On("FindByEmail", mock.Anything, "sharon@example.com").Return(&model.Owner{
		ID:           uuid.New(),
		Name:         "Sharon",
		Email:        "sharon@example.com",
		PasswordHash: string(hashed),
	}, nil)

	svc := NewOwnerService(mockRepo, nil)
	summary, err := svc.Authenticate(context.Background(), "sharon@example.com", "password123")

	assert.NoError(t, err)
	assert.NotContains(t, []string{summary.Name, summary.Email, summary.Phone, summary.Whatsapp}, string(hashed))
}

func TestOwnerService_GetContactInfo(t *testing.T) {
	ownerID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockOwnerRepository)
		mockRepo.On("FindByID", mock.Anything, ownerID).Return(&model.Owner{
			ID:       ownerID,
			Name:     "Sharon",
			Phone:    "+254700000001",
			Whatsapp: "+254711000001",
		}, nil)

		svc := NewOwnerService(mockRepo, nil)
		info, err := svc.GetContactInfo(context.Background(), ownerID)

		assert.NoError(t, err)
		assert.Equal(t, "Sharon", info.Name)
		assert.Equal(t, "+254700000001", info.Phone)
		assert.Equal(t, "+254711000001", info.Whatsapp)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockOwnerRepository)
		mockRepo.On("FindByID", mock.Anything, ownerID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewOwnerService(mockRepo, nil)
		info, err := svc.GetContactInfo(context.Background(), ownerID)

		assert.Nil(t, info)
		assert.Equal(t, errors.ErrOwnerNotFound, err)
		mockRepo.AssertExpectations(t)
	})
}
