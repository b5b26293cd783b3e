package storage

import (
	"context"
	"database/sql"
	"fmt"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/vova4o/dronelog/internal/app/models"
	"github.com/vova4o/dronelog/package/logger"
)

// Storage struct for storage
type Storage struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewStorage creates the storage and initializes the SQLite database
func NewStorage(dbPath string, logger *logger.Logger) (*Storage, error) {
	if dbPath == "" {
		dbPath = "dronelog.db"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %v", err)
	}

	storage := &Storage{
		db:     db,
		logger: logger,
	}

	if err := storage.createTables(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to create tables: %v", err)
	}

	logger.Info("SQLite database initialized successfully")
	return storage, nil
}

func (s *Storage) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS flights (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            drone_model TEXT NOT NULL,
            start_time TEXT NOT NULL,
            end_time TEXT NOT NULL,
            latitude REAL NOT NULL,
            longitude REAL NOT NULL,
            flight_type TEXT NOT NULL DEFAULT '',
            additional_info TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS user_settings (
            id INTEGER PRIMARY KEY CHECK (id = 1),
            username TEXT NOT NULL DEFAULT '',
            password TEXT NOT NULL DEFAULT '',
            is_logged_in BOOLEAN NOT NULL DEFAULT 0
        )`,
		// The singleton preferences row, present from the first start
		`INSERT OR IGNORE INTO user_settings (id, username, password, is_logged_in) VALUES (1, '', '', 0)`,
	}

	for _, query := range queries {
		_, err := s.db.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}

	return nil
}

// InsertFlight persists a flight record. A flight carrying an explicit id
// replaces the row with that id, otherwise the id is assigned by the database.
func (s *Storage) InsertFlight(ctx context.Context, flight models.Flight) error {
	if flight.ID != 0 {
		query := `INSERT OR REPLACE INTO flights (id, drone_model, start_time, end_time, latitude, longitude, flight_type, additional_info)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := s.db.ExecContext(ctx, query, flight.ID, flight.DroneModel, flight.StartTime, flight.EndTime,
			flight.Latitude, flight.Longitude, flight.FlightType, flight.AdditionalInfo)
		if err != nil {
			s.logger.Error("Failed to insert flight: " + err.Error())
			return err
		}
		s.logger.Info("Flight saved successfully")
		return nil
	}

	query := `INSERT INTO flights (drone_model, start_time, end_time, latitude, longitude, flight_type, additional_info)
        VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, flight.DroneModel, flight.StartTime, flight.EndTime,
		flight.Latitude, flight.Longitude, flight.FlightType, flight.AdditionalInfo)
	if err != nil {
		s.logger.Error("Failed to insert flight: " + err.Error())
		return err
	}

	s.logger.Info("Flight saved successfully")
	return nil
}

// ListFlights reads all flight records, newest id first
func (s *Storage) ListFlights(ctx context.Context) ([]models.Flight, error) {
	query := `SELECT id, drone_model, start_time, end_time, latitude, longitude, flight_type, additional_info
        FROM flights ORDER BY id DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("Failed to read flights: " + err.Error())
		return nil, err
	}
	defer rows.Close()

	var flights []models.Flight
	for rows.Next() {
		var flight models.Flight
		err := rows.Scan(&flight.ID, &flight.DroneModel, &flight.StartTime, &flight.EndTime,
			&flight.Latitude, &flight.Longitude, &flight.FlightType, &flight.AdditionalInfo)
		if err != nil {
			s.logger.Error("Failed to scan flight: " + err.Error())
			return nil, err
		}
		flights = append(flights, flight)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error("Rows error: " + err.Error())
		return nil, err
	}

	return flights, nil
}

// DeleteFlight removes the flight with the given id.
// Deleting an id that is already absent is not an error.
func (s *Storage) DeleteFlight(ctx context.Context, id int) error {
	query := `DELETE FROM flights WHERE id = ?`
	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		s.logger.Error("Failed to delete flight: " + err.Error())
		return err
	}

	s.logger.Info("Flight deleted successfully")
	return nil
}

// GetPreferences reads the singleton user preferences record
func (s *Storage) GetPreferences(ctx context.Context) (models.UserPreferences, error) {
	query := `SELECT username, password, is_logged_in FROM user_settings WHERE id = 1`
	var prefs models.UserPreferences
	err := s.db.QueryRowContext(ctx, query).Scan(&prefs.Username, &prefs.Password, &prefs.IsLoggedIn)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.UserPreferences{}, nil
		}
		s.logger.Error("Failed to read preferences: " + err.Error())
		return models.UserPreferences{}, err
	}

	return prefs, nil
}

// SaveUser stores a new identity and logs it in. Username, password and the
// session flag are written in a single statement, readers never observe a
// partial update.
func (s *Storage) SaveUser(ctx context.Context, username, password string) error {
	query := `UPDATE user_settings SET username = ?, password = ?, is_logged_in = 1 WHERE id = 1`
	_, err := s.db.ExecContext(ctx, query, username, password)
	if err != nil {
		s.logger.Error("Failed to save user: " + err.Error())
		return err
	}

	s.logger.Info("User saved successfully")
	return nil
}

// SetLoginStatus persists the session flag, leaving the credentials untouched
func (s *Storage) SetLoginStatus(ctx context.Context, isLoggedIn bool) error {
	query := `UPDATE user_settings SET is_logged_in = ? WHERE id = 1`
	_, err := s.db.ExecContext(ctx, query, isLoggedIn)
	if err != nil {
		s.logger.Error("Failed to update login status: " + err.Error())
		return err
	}

	s.logger.Info("Login status updated successfully")
	return nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}
