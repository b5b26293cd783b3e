package handlers

import (
	"context"
	"sync"

	"github.com/vova4o/dronelog/internal/app/models"
	"github.com/vova4o/dronelog/package/logger"
	"github.com/vova4o/dronelog/package/notifier"
)

// Flighter interface
type Flighter interface {
	Insert(ctx context.Context, flight models.Flight) error
	Delete(ctx context.Context, flight models.Flight) error
	Subscribe() (<-chan []models.Flight, func())
}

// Draft holds the in-memory fields of a not-yet-submitted flight.
// Empty strings and a nil location are valid intermediate states.
type Draft struct {
	DroneModel     string
	StartTime      string
	EndTime        string
	FlightType     string
	AdditionalInfo string
	Location       *models.GeoPoint
}

// FlightHandler drives the flight registration form: it collects draft field
// values, derives form completeness on every change and materializes the
// draft into a flight record on submit.
type FlightHandler struct {
	flights  Flighter
	logger   *logger.Logger
	mu       sync.Mutex
	draft    Draft
	complete *notifier.Notifier[bool]
}

// NewFlightHandler creates a handler with an empty draft
func NewFlightHandler(flights Flighter, logger *logger.Logger) *FlightHandler {
	h := &FlightHandler{
		flights:  flights,
		logger:   logger,
		draft:    defaultDraft(),
		complete: notifier.New[bool](),
	}
	h.complete.Publish(false)
	return h
}

func defaultDraft() Draft {
	return Draft{FlightType: models.FlightTypeDefault}
}

// SetDrone updates the drone model field
func (h *FlightHandler) SetDrone(drone string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft.DroneModel = drone
	h.complete.Publish(h.isCompleteLocked())
}

// SetStartTime updates the start time field, an HH:MM string
func (h *FlightHandler) SetStartTime(start string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft.StartTime = start
	h.complete.Publish(h.isCompleteLocked())
}

// SetEndTime updates the end time field, an HH:MM string
func (h *FlightHandler) SetEndTime(end string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft.EndTime = end
	h.complete.Publish(h.isCompleteLocked())
}

// SetFlightType updates the flight type field
func (h *FlightHandler) SetFlightType(flightType string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft.FlightType = flightType
	h.complete.Publish(h.isCompleteLocked())
}

// SetAdditionalInfo updates the free-text info field
func (h *FlightHandler) SetAdditionalInfo(info string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft.AdditionalInfo = info
	h.complete.Publish(h.isCompleteLocked())
}

// SetLocation updates the selected coordinate, nil clears the selection
func (h *FlightHandler) SetLocation(location *models.GeoPoint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft.Location = location
	h.complete.Publish(h.isCompleteLocked())
}

// Draft returns a snapshot of the current draft fields
func (h *FlightHandler) Draft() Draft {
	h.mu.Lock()
	defer h.mu.Unlock()

	draft := h.draft
	if h.draft.Location != nil {
		location := *h.draft.Location
		draft.Location = &location
	}
	return draft
}

// IsComplete reports whether drone, start time, end time and location
// are all filled in
func (h *FlightHandler) IsComplete() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.isCompleteLocked()
}

// SubscribeComplete delivers the current completeness flag immediately and
// then again after every field change
func (h *FlightHandler) SubscribeComplete() (<-chan bool, func()) {
	return h.complete.Subscribe()
}

func (h *FlightHandler) isCompleteLocked() bool {
	return h.draft.DroneModel != "" &&
		h.draft.StartTime != "" &&
		h.draft.EndTime != "" &&
		h.draft.Location != nil
}

// Submit materializes the draft into a flight record and persists it.
// An incomplete draft makes Submit a no-op, the caller is expected to have
// disabled submission through the completeness flag.
func (h *FlightHandler) Submit(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.isCompleteLocked() {
		h.logger.Info("Submit skipped: flight draft is incomplete")
		return nil
	}

	flight := models.Flight{
		DroneModel:     h.draft.DroneModel,
		StartTime:      h.draft.StartTime,
		EndTime:        h.draft.EndTime,
		Latitude:       h.draft.Location.Lat,
		Longitude:      h.draft.Location.Lon,
		FlightType:     h.draft.FlightType,
		AdditionalInfo: h.draft.AdditionalInfo,
	}

	if err := h.flights.Insert(ctx, flight); err != nil {
		h.logger.Error("Failed to submit flight")
		return err
	}

	h.draft = defaultDraft()
	h.complete.Publish(false)
	return nil
}

// Delete removes a previously persisted flight
func (h *FlightHandler) Delete(ctx context.Context, flight models.Flight) error {
	return h.flights.Delete(ctx, flight)
}

// Subscribe delivers the flight list, newest first, on subscribe and after
// every change
func (h *FlightHandler) Subscribe() (<-chan []models.Flight, func()) {
	return h.flights.Subscribe()
}
