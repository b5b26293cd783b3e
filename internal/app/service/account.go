package service

import (
	"context"
	"sync"

	"github.com/vova4o/dronelog/internal/app/models"
	"github.com/vova4o/dronelog/package/logger"
	"github.com/vova4o/dronelog/package/notifier"
)

// AccountStorager interface
type AccountStorager interface {
	GetPreferences(ctx context.Context) (models.UserPreferences, error)
	SaveUser(ctx context.Context, username, password string) error
	SetLoginStatus(ctx context.Context, isLoggedIn bool) error
}

// AccountService is the reactive user preferences store. Subscribers receive
// the current preferences on subscribe and after every write.
type AccountService struct {
	stor   AccountStorager
	logger *logger.Logger
	mu     sync.Mutex
	prefs  *notifier.Notifier[models.UserPreferences]
}

// NewAccountService creates the service and publishes the stored preferences
func NewAccountService(ctx context.Context, stor AccountStorager, logger *logger.Logger) (*AccountService, error) {
	s := &AccountService{
		stor:   stor,
		logger: logger,
		prefs:  notifier.New[models.UserPreferences](),
	}

	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Subscribe delivers the current preferences immediately and then again
// after every write
func (s *AccountService) Subscribe() (<-chan models.UserPreferences, func()) {
	return s.prefs.Subscribe()
}

// Current returns the last observed preferences snapshot
func (s *AccountService) Current() models.UserPreferences {
	prefs, _ := s.prefs.Latest()
	return prefs
}

// Register overwrites the stored identity and logs it in. All three fields
// are written atomically.
func (s *AccountService) Register(ctx context.Context, username, password string) error {
	s.logger.Info("Registering user")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stor.SaveUser(ctx, username, password); err != nil {
		s.logger.Error("Failed to save user")
		return err
	}

	return s.refresh(ctx)
}

// SetLoginStatus persists the session flag only
func (s *AccountService) SetLoginStatus(ctx context.Context, isLoggedIn bool) error {
	s.logger.Info("Updating login status")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stor.SetLoginStatus(ctx, isLoggedIn); err != nil {
		s.logger.Error("Failed to update login status")
		return err
	}

	return s.refresh(ctx)
}

func (s *AccountService) refresh(ctx context.Context) error {
	prefs, err := s.stor.GetPreferences(ctx)
	if err != nil {
		s.logger.Error("Failed to read preferences from storage")
		return err
	}

	s.prefs.Publish(prefs)
	return nil
}
