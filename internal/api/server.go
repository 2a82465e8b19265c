// Package api implements the reference telemetry server consumed by the client in pkg/telemetry.
// Command endpoints reply with a {"status": "success", ...} envelope; rejections carry a detail
// field, matching the contract the client parses.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/fleetworks/vehicle-telemetry/internal/db"
	"github.com/fleetworks/vehicle-telemetry/internal/log"
	"github.com/fleetworks/vehicle-telemetry/internal/metrics"
	"github.com/fleetworks/vehicle-telemetry/pkg/telemetry"
)

// Store is the persistence interface the server requires.
type Store interface {
	RegisterVehicle(serial string) error
	VehicleStatus(serial string) (telemetry.VehicleStatus, error)
	UpdateVehicleStatus(serial string, status telemetry.VehicleStatus) error
	InsertReading(reading *telemetry.SensorReading) error
	Readings(serial string) ([]telemetry.SensorReading, error)
	SensorReadings(serial string, sensorType telemetry.SensorType) ([]telemetry.SensorReading, error)
}

// Server routes telemetry API requests to a Store.
type Server struct {
	store  Store
	router *mux.Router
}

func NewServer(store Store) *Server {
	s := &Server{
		store:  store,
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/add-sensor-data/", s.handleAddSensorData).Methods(http.MethodPost)
	s.router.HandleFunc("/update-vehicle-status/", s.handleUpdateVehicleStatus).Methods(http.MethodPost)
	s.router.HandleFunc("/get-vehicle-status/", s.handleGetVehicleStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/register-vehicle/", s.handleRegisterVehicle).Methods(http.MethodPost)
	s.router.HandleFunc("/sensor-data/{serial}", s.handleAllSensorData).Methods(http.MethodGet)
	s.router.HandleFunc("/sensor-data/{serial}/{type}", s.handleSensorData).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	s.router.Use(loggingMiddleware)
	s.router.Use(metrics.Middleware)
}

// Router returns the configured router.
func (s *Server) Router() *mux.Router {
	return s.router
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondSuccess(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": message,
	})
}

// respondDetail reports a rejection in the envelope the client surfaces verbatim.
func respondDetail(w http.ResponseWriter, status int, format string, a ...interface{}) {
	respondJSON(w, status, map[string]string{"detail": fmt.Sprintf(format, a...)})
}

func detailStatus(err error) int {
	if errors.Is(err, db.ErrVehicleNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleAddSensorData(w http.ResponseWriter, r *http.Request) {
	var reading telemetry.SensorReading
	if err := json.NewDecoder(r.Body).Decode(&reading); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid request body: %s", err)
		return
	}
	if reading.VehicleSerial == "" {
		respondDetail(w, http.StatusBadRequest, "vehicle_serial is required")
		return
	}
	if _, err := time.Parse(telemetry.TimestampLayout, reading.Timestamp); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid timestamp '%s'", reading.Timestamp)
		return
	}
	if err := s.store.InsertReading(&reading); err != nil {
		respondDetail(w, detailStatus(err), "%s", err)
		return
	}
	metrics.ReadingsRecordedTotal.WithLabelValues(reading.SensorType.String()).Inc()
	respondSuccess(w, "Sensor data recorded.")
}

func (s *Server) handleUpdateVehicleStatus(w http.ResponseWriter, r *http.Request) {
	var update struct {
		VehicleSerial string                  `json:"vehicle_serial"`
		VehicleStatus telemetry.VehicleStatus `json:"vehicle_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid request body: %s", err)
		return
	}
	if update.VehicleSerial == "" {
		respondDetail(w, http.StatusBadRequest, "vehicle_serial is required")
		return
	}
	if err := s.store.UpdateVehicleStatus(update.VehicleSerial, update.VehicleStatus); err != nil {
		respondDetail(w, detailStatus(err), "%s", err)
		return
	}
	respondSuccess(w, fmt.Sprintf("Status updated for vehicle with serial number %s to %s.",
		update.VehicleSerial, update.VehicleStatus))
}

func (s *Server) handleGetVehicleStatus(w http.ResponseWriter, r *http.Request) {
	serial := r.URL.Query().Get("vehicle_serial")
	if serial == "" {
		respondDetail(w, http.StatusBadRequest, "vehicle_serial is required")
		return
	}
	status, err := s.store.VehicleStatus(serial)
	if err != nil {
		respondDetail(w, detailStatus(err), "No vehicle found with serial %s", serial)
		return
	}
	// The status is returned as a bare JSON string literal.
	respondJSON(w, http.StatusOK, status.String())
}

func (s *Server) handleRegisterVehicle(w http.ResponseWriter, r *http.Request) {
	serial := r.URL.Query().Get("vehicle_serial")
	if serial == "" {
		respondDetail(w, http.StatusBadRequest, "vehicle_serial is required")
		return
	}
	if err := s.store.RegisterVehicle(serial); err != nil {
		respondDetail(w, detailStatus(err), "%s", err)
		return
	}
	respondSuccess(w, fmt.Sprintf("Registered new vehicle with serial number %s.", serial))
}

func (s *Server) handleAllSensorData(w http.ResponseWriter, r *http.Request) {
	serial := mux.Vars(r)["serial"]
	readings, err := s.store.Readings(serial)
	if err != nil {
		respondDetail(w, detailStatus(err), "%s", err)
		return
	}
	respondJSON(w, http.StatusOK, readings)
}

func (s *Server) handleSensorData(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sensorType, err := telemetry.ParseSensorType(vars["type"])
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "%s", err)
		return
	}
	readings, err := s.store.SensorReadings(vars["serial"], sensorType)
	if err != nil {
		respondDetail(w, detailStatus(err), "%s", err)
		return
	}
	respondJSON(w, http.StatusOK, readings)
}
