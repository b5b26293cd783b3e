package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vova4o/dronelog/internal/app/models"
	"github.com/vova4o/dronelog/package/logger"
)

// MockAccounter is a mock implementation of the Accounter interface
type MockAccounter struct {
	mock.Mock
}

func (m *MockAccounter) Current() models.UserPreferences {
	args := m.Called()
	return args.Get(0).(models.UserPreferences)
}

func (m *MockAccounter) Register(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *MockAccounter) SetLoginStatus(ctx context.Context, isLoggedIn bool) error {
	args := m.Called(ctx, isLoggedIn)
	return args.Error(0)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		cached      models.UserPreferences
		username    string
		password    string
		statusErr   error
		expectWrite bool
		wantOK      bool
		wantErr     bool
	}{
		{
			name:        "matching credentials log in",
			cached:      models.UserPreferences{Username: "anna", Password: "secret"},
			username:    "anna",
			password:    "secret",
			expectWrite: true,
			wantOK:      true,
		},
		{
			name:     "wrong password rejected",
			cached:   models.UserPreferences{Username: "anna", Password: "secret"},
			username: "anna",
			password: "nope",
			wantOK:   false,
		},
		{
			name:     "wrong username rejected",
			cached:   models.UserPreferences{Username: "anna", Password: "secret"},
			username: "bob",
			password: "secret",
			wantOK:   false,
		},
		{
			name:     "empty store rejects non-empty credentials",
			cached:   models.UserPreferences{},
			username: "anna",
			password: "secret",
			wantOK:   false,
		},
		{
			name:        "persistence failure fails the login",
			cached:      models.UserPreferences{Username: "anna", Password: "secret"},
			username:    "anna",
			password:    "secret",
			statusErr:   errors.New("storage error"),
			expectWrite: true,
			wantOK:      false,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAccounts := new(MockAccounter)
			mockAccounts.On("Current").Once().Return(tt.cached)
			if tt.expectWrite {
				mockAccounts.On("SetLoginStatus", mock.Anything, true).Once().Return(tt.statusErr)
			}

			handler := NewAccountHandler(mockAccounts, logger.NewLogger("error"))

			ok, err := handler.Login(context.Background(), tt.username, tt.password)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockAccounts.AssertExpectations(t)
		})
	}
}

func TestRegister(t *testing.T) {
	mockAccounts := new(MockAccounter)
	mockAccounts.On("Register", mock.Anything, "anna", "secret").Once().Return(nil)

	handler := NewAccountHandler(mockAccounts, logger.NewLogger("error"))

	require.NoError(t, handler.Register(context.Background(), "anna", "secret"))
	mockAccounts.AssertExpectations(t)
}

func TestRegisterErrorPropagates(t *testing.T) {
	mockAccounts := new(MockAccounter)
	mockAccounts.On("Register", mock.Anything, "anna", "secret").Once().Return(errors.New("storage error"))

	handler := NewAccountHandler(mockAccounts, logger.NewLogger("error"))

	err := handler.Register(context.Background(), "anna", "secret")
	assert.EqualError(t, err, "storage error")
	mockAccounts.AssertExpectations(t)
}

func TestLogout(t *testing.T) {
	mockAccounts := new(MockAccounter)
	mockAccounts.On("SetLoginStatus", mock.Anything, false).Once().Return(nil)

	handler := NewAccountHandler(mockAccounts, logger.NewLogger("error"))

	require.NoError(t, handler.Logout(context.Background()))
	mockAccounts.AssertExpectations(t)
}
