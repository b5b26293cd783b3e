package models

import "fmt"

// Flight is one persisted log entry describing a drone flight.
// Flights are immutable after insert, the only other operation is delete.
type Flight struct {
	ID             int
	DroneModel     string
	StartTime      string
	EndTime        string
	Latitude       float64
	Longitude      float64
	FlightType     string
	AdditionalInfo string
}

// UserPreferences holds the single local identity and its session flag.
// At most one identity exists at a time, registering overwrites it wholesale.
type UserPreferences struct {
	Username   string
	Password   string
	IsLoggedIn bool
}

// GeoPoint is a map coordinate. A nil *GeoPoint means "no selection",
// there is no sentinel coordinate value.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// FlightTypeDefault is preselected in a fresh flight draft
const FlightTypeDefault = "Dydaktyczny"

// DefaultMapCenter is used when no device location is available
var DefaultMapCenter = GeoPoint{Lat: 51.10, Lon: 17.03}

// Drones returns the fixed catalog of selectable drone models
func Drones() []string {
	return []string{"DJI Mini 3 Pro", "DJI Mavic 3", "Autel Evo II Pro", "DJI FPV"}
}

// FlightTypes returns the selectable flight types
func FlightTypes() []string {
	return []string{"Dydaktyczny", "Operacyjny"}
}

// FormatHHMM renders a time of day the way the time picker emits it
func FormatHHMM(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
