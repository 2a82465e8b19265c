// Package telemetry implements a client for a remote vehicle-telemetry HTTP API. A [Client] can
// submit sensor readings, update a vehicle's status, and fetch a vehicle's current status. Each
// operation performs a single synchronous HTTP round trip; the package adds no retries, caching,
// or batching.
package telemetry

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the wire format for reading timestamps: UTC ISO-8601 with microsecond
// precision and a literal Z suffix.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// FormatTimestamp renders t in the wire format. Fractional seconds are always six digits,
// zero-padded.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// SensorType identifies the kind of measurement carried by a SensorReading.
type SensorType int

const (
	SensorTemperature SensorType = iota
	SensorWeight
	SensorFuel
)

func (s SensorType) String() string {
	switch s {
	case SensorTemperature:
		return "temperature"
	case SensorWeight:
		return "weight"
	case SensorFuel:
		return "fuel"
	default:
		return "unknown"
	}
}

// ParseSensorType translates the wire name of a sensor type into its native value.
func ParseSensorType(name string) (SensorType, error) {
	switch name {
	case "temperature":
		return SensorTemperature, nil
	case "weight":
		return SensorWeight, nil
	case "fuel":
		return SensorFuel, nil
	}
	return 0, fmt.Errorf("unrecognized sensor type '%s'", name)
}

func (s SensorType) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SensorType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseSensorType(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// VehicleStatus describes the operational state of a vehicle.
type VehicleStatus int

const (
	StatusActive VehicleStatus = iota
	StatusInactive
	StatusMaintenance
	StatusError
)

func (v VehicleStatus) String() string {
	switch v {
	case StatusActive:
		return "active"
	case StatusInactive:
		return "inactive"
	case StatusMaintenance:
		return "maintenance"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseVehicleStatus translates the wire name of a vehicle status into its native value.
func ParseVehicleStatus(name string) (VehicleStatus, error) {
	switch name {
	case "active":
		return StatusActive, nil
	case "inactive":
		return StatusInactive, nil
	case "maintenance":
		return StatusMaintenance, nil
	case "error":
		return StatusError, nil
	}
	return 0, fmt.Errorf("unrecognized vehicle status '%s'", name)
}

func (v VehicleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *VehicleStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseVehicleStatus(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// SensorReading is a single timestamped measurement tagged with a sensor type and the serial
// number of the vehicle that produced it.
type SensorReading struct {
	SensorType    SensorType `json:"sensor_type"`
	Timestamp     string     `json:"timestamp"`
	SensorData    float64    `json:"sensor_data"`
	VehicleSerial string     `json:"vehicle_serial"`
}
