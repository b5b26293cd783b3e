package picker

import (
	"context"
	"sync"

	"github.com/vova4o/dronelog/internal/app/models"
	"github.com/vova4o/dronelog/package/logger"
)

// LocationProvider supplies the device's last known position for the
// initial map center
type LocationProvider interface {
	LastKnown(ctx context.Context) (models.GeoPoint, error)
}

// Picker tracks the single marker used to choose a flight location on the
// map. At most one marker exists at any time: a tap places or moves it, a
// drag commits its end position, a long press removes it. Confirming hands
// the selected coordinate to the caller and discards the picker state.
type Picker struct {
	mu      sync.Mutex
	current *models.GeoPoint
	ack     func(message string)
	logger  *logger.Logger
}

// NewPicker creates an empty picker. The ack callback carries user-visible
// acknowledgments, such as the marker removal notice, and may be nil.
func NewPicker(logger *logger.Logger, ack func(message string)) *Picker {
	return &Picker{
		ack:    ack,
		logger: logger,
	}
}

// Tap places the marker at p, or moves the existing marker there
func (p *Picker) Tap(point models.GeoPoint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = &point
	p.logger.Debug("Marker placed")
}

// DragEnd commits the end position of a marker drag. Intermediate drag
// positions are visual only and never reach the picker. A drag cannot start
// without a marker, so this is a no-op when the picker is empty.
func (p *Picker) DragEnd(point models.GeoPoint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return
	}
	p.current = &point
	p.logger.Debug("Marker drag committed")
}

// LongPress removes the marker and clears the selection. Safe to invoke
// when no marker exists.
func (p *Picker) LongPress() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return
	}
	p.current = nil
	p.logger.Debug("Marker removed")
	if p.ack != nil {
		p.ack("Marker removed")
	}
}

// MarkerPresent reports whether a marker is currently placed
func (p *Picker) MarkerPresent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current != nil
}

// Selection returns the currently selected coordinate, if any
func (p *Picker) Selection() (models.GeoPoint, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return models.GeoPoint{}, false
	}
	return *p.current, true
}

// Confirm returns the selected coordinate and discards the picker state.
// Without a selection it reports false and nothing changes.
func (p *Picker) Confirm() (models.GeoPoint, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return models.GeoPoint{}, false
	}
	point := *p.current
	p.current = nil
	return point, true
}

// Cancel discards the picker state without confirming a selection
func (p *Picker) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = nil
}

// InitialCenter asks the location provider for the map's starting center.
// A missing provider or a failed lookup silently falls back to the default
// center.
func InitialCenter(ctx context.Context, location LocationProvider) models.GeoPoint {
	if location == nil {
		return models.DefaultMapCenter
	}

	point, err := location.LastKnown(ctx)
	if err != nil {
		return models.DefaultMapCenter
	}

	return point
}
