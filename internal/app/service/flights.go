package service

import (
	"context"
	"sync"

	"github.com/vova4o/dronelog/internal/app/models"
	"github.com/vova4o/dronelog/package/logger"
	"github.com/vova4o/dronelog/package/notifier"
)

// FlightStorager interface
type FlightStorager interface {
	InsertFlight(ctx context.Context, flight models.Flight) error
	ListFlights(ctx context.Context) ([]models.Flight, error)
	DeleteFlight(ctx context.Context, id int) error
}

// FlightService is the reactive flight store. Every mutation re-reads the
// flight list from storage and pushes it to all subscribers, newest id first.
type FlightService struct {
	stor    FlightStorager
	logger  *logger.Logger
	mu      sync.Mutex
	flights *notifier.Notifier[[]models.Flight]
}

// NewFlightService creates the service and publishes the initial flight list
func NewFlightService(ctx context.Context, stor FlightStorager, logger *logger.Logger) (*FlightService, error) {
	s := &FlightService{
		stor:    stor,
		logger:  logger,
		flights: notifier.New[[]models.Flight](),
	}

	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Subscribe delivers the current flight list immediately and then again
// after every insert or delete
func (s *FlightService) Subscribe() (<-chan []models.Flight, func()) {
	return s.flights.Subscribe()
}

// Flights returns the last published flight list
func (s *FlightService) Flights() []models.Flight {
	flights, _ := s.flights.Latest()
	return flights
}

// Insert persists a new flight record
func (s *FlightService) Insert(ctx context.Context, flight models.Flight) error {
	s.logger.Info("Adding flight to storage")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stor.InsertFlight(ctx, flight); err != nil {
		s.logger.Error("Failed to add flight to storage")
		return err
	}

	return s.refresh(ctx)
}

// Delete removes a flight record, a no-op when the id is already gone
func (s *FlightService) Delete(ctx context.Context, flight models.Flight) error {
	s.logger.Info("Deleting flight from storage")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stor.DeleteFlight(ctx, flight.ID); err != nil {
		s.logger.Error("Failed to delete flight from storage")
		return err
	}

	return s.refresh(ctx)
}

func (s *FlightService) refresh(ctx context.Context) error {
	flights, err := s.stor.ListFlights(ctx)
	if err != nil {
		s.logger.Error("Failed to read flights from storage")
		return err
	}

	s.flights.Publish(flights)
	return nil
}
