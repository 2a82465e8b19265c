// Package db provides sqlite-backed storage for the reference telemetry server.
package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fleetworks/vehicle-telemetry/pkg/telemetry"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrVehicleExists   = errors.New("vehicle already registered")
)

// Database wraps the SQLite connection.
type Database struct {
	conn *sql.DB
}

// New opens (and if necessary creates) the database at dbPath.
func New(dbPath string) (*Database, error) {
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on", dbPath)
	conn, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer.
	conn.SetMaxOpenConns(1)

	db := &Database{conn: conn}
	if err := db.initialize(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func (db *Database) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS vehicles (
		serial TEXT PRIMARY KEY,
		status TEXT NOT NULL DEFAULT 'inactive',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sensor_data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		vehicle_serial TEXT NOT NULL,
		sensor_type TEXT NOT NULL,
		sensor_data REAL NOT NULL,
		timestamp TEXT NOT NULL,
		FOREIGN KEY (vehicle_serial) REFERENCES vehicles(serial)
	);

	CREATE INDEX IF NOT EXISTS idx_sensor_data_serial ON sensor_data(vehicle_serial);
	CREATE INDEX IF NOT EXISTS idx_sensor_data_serial_type ON sensor_data(vehicle_serial, sensor_type);
	`
	_, err := db.conn.Exec(schema)
	return err
}

func (db *Database) Close() error {
	return db.conn.Close()
}

// RegisterVehicle creates a vehicle record with an initial status of inactive.
func (db *Database) RegisterVehicle(serial string) error {
	result, err := db.conn.Exec(
		`INSERT INTO vehicles (serial, status) VALUES (?, ?) ON CONFLICT (serial) DO NOTHING`,
		serial, telemetry.StatusInactive.String(),
	)
	if err != nil {
		return err
	}
	if inserted, err := result.RowsAffected(); err == nil && inserted == 0 {
		return fmt.Errorf("%w: %s", ErrVehicleExists, serial)
	}
	return nil
}

// VehicleStatus returns the current status of a registered vehicle.
func (db *Database) VehicleStatus(serial string) (telemetry.VehicleStatus, error) {
	var name string
	err := db.conn.QueryRow(`SELECT status FROM vehicles WHERE serial = ?`, serial).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrVehicleNotFound, serial)
	}
	if err != nil {
		return 0, err
	}
	return telemetry.ParseVehicleStatus(name)
}

// UpdateVehicleStatus sets the status of a registered vehicle.
func (db *Database) UpdateVehicleStatus(serial string, status telemetry.VehicleStatus) error {
	result, err := db.conn.Exec(
		`UPDATE vehicles SET status = ? WHERE serial = ?`,
		status.String(), serial,
	)
	if err != nil {
		return err
	}
	if updated, err := result.RowsAffected(); err == nil && updated == 0 {
		return fmt.Errorf("%w: %s", ErrVehicleNotFound, serial)
	}
	return nil
}

// InsertReading records a sensor reading for a registered vehicle.
func (db *Database) InsertReading(reading *telemetry.SensorReading) error {
	if _, err := db.VehicleStatus(reading.VehicleSerial); err != nil {
		return err
	}
	_, err := db.conn.Exec(
		`INSERT INTO sensor_data (vehicle_serial, sensor_type, sensor_data, timestamp) VALUES (?, ?, ?, ?)`,
		reading.VehicleSerial, reading.SensorType.String(), reading.SensorData, reading.Timestamp,
	)
	return err
}

// Readings returns all readings for a vehicle, newest first.
func (db *Database) Readings(serial string) ([]telemetry.SensorReading, error) {
	return db.queryReadings(
		`SELECT vehicle_serial, sensor_type, sensor_data, timestamp FROM sensor_data
		 WHERE vehicle_serial = ? ORDER BY timestamp DESC`, serial)
}

// SensorReadings returns readings of one sensor type for a vehicle, newest first.
func (db *Database) SensorReadings(serial string, sensorType telemetry.SensorType) ([]telemetry.SensorReading, error) {
	return db.queryReadings(
		`SELECT vehicle_serial, sensor_type, sensor_data, timestamp FROM sensor_data
		 WHERE vehicle_serial = ? AND sensor_type = ? ORDER BY timestamp DESC`, serial, sensorType.String())
}

func (db *Database) queryReadings(query string, args ...interface{}) ([]telemetry.SensorReading, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []telemetry.SensorReading
	for rows.Next() {
		var reading telemetry.SensorReading
		var sensorType string
		if err := rows.Scan(&reading.VehicleSerial, &sensorType, &reading.SensorData, &reading.Timestamp); err != nil {
			return nil, err
		}
		if reading.SensorType, err = telemetry.ParseSensorType(sensorType); err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}
	return readings, rows.Err()
}

// Vehicles returns the serial numbers of all registered vehicles.
func (db *Database) Vehicles() ([]string, error) {
	rows, err := db.conn.Query(`SELECT serial FROM vehicles ORDER BY serial`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var serials []string
	for rows.Next() {
		var serial string
		if err := rows.Scan(&serial); err != nil {
			return nil, err
		}
		serials = append(serials, serial)
	}
	return serials, rows.Err()
}
