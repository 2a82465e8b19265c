package telemetry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSensorTypeStrings(t *testing.T) {
	testCases := map[SensorType]string{
		SensorTemperature: "temperature",
		SensorWeight:      "weight",
		SensorFuel:        "fuel",
		SensorType(17):    "unknown",
		SensorType(-1):    "unknown",
	}
	for sensorType, expected := range testCases {
		if name := sensorType.String(); name != expected {
			t.Errorf("expected SensorType(%d) to serialize as '%s', but got '%s'", sensorType, expected, name)
		}
	}
}

func TestVehicleStatusStrings(t *testing.T) {
	testCases := map[VehicleStatus]string{
		StatusActive:      "active",
		StatusInactive:    "inactive",
		StatusMaintenance: "maintenance",
		StatusError:       "error",
		VehicleStatus(42): "unknown",
	}
	for status, expected := range testCases {
		if name := status.String(); name != expected {
			t.Errorf("expected VehicleStatus(%d) to serialize as '%s', but got '%s'", status, expected, name)
		}
	}
}

func TestParseSensorType(t *testing.T) {
	for _, sensorType := range []SensorType{SensorTemperature, SensorWeight, SensorFuel} {
		parsed, err := ParseSensorType(sensorType.String())
		if err != nil {
			t.Errorf("failed to parse '%s': %s", sensorType, err)
		} else if parsed != sensorType {
			t.Errorf("expected '%s' to parse to %d, but got %d", sensorType, sensorType, parsed)
		}
	}
	if _, err := ParseSensorType("unknown"); err == nil {
		t.Error("expected error parsing 'unknown'")
	}
	if _, err := ParseSensorType("Temperature"); err == nil {
		t.Error("expected error parsing mixed-case name")
	}
}

func TestParseVehicleStatus(t *testing.T) {
	for _, status := range []VehicleStatus{StatusActive, StatusInactive, StatusMaintenance, StatusError} {
		parsed, err := ParseVehicleStatus(status.String())
		if err != nil {
			t.Errorf("failed to parse '%s': %s", status, err)
		} else if parsed != status {
			t.Errorf("expected '%s' to parse to %d, but got %d", status, status, parsed)
		}
	}
	if _, err := ParseVehicleStatus(""); err == nil {
		t.Error("expected error parsing empty status")
	}
}

func TestFormatTimestamp(t *testing.T) {
	type params struct {
		instant  time.Time
		expected string
	}
	testCases := []params{
		{
			instant:  time.Date(2024, 11, 2, 12, 0, 0, 0, time.UTC),
			expected: "2024-11-02T12:00:00.000000Z",
		},
		{
			instant:  time.Date(2024, 11, 2, 12, 0, 0, 123456789, time.UTC),
			expected: "2024-11-02T12:00:00.123456Z",
		},
		{
			instant:  time.Date(2024, 11, 2, 12, 0, 0, 7000, time.UTC),
			expected: "2024-11-02T12:00:00.000007Z",
		},
		{
			// Non-UTC instants are converted before formatting.
			instant:  time.Date(2024, 11, 2, 13, 30, 0, 0, time.FixedZone("CET", 90*60)),
			expected: "2024-11-02T12:00:00.000000Z",
		},
	}
	for _, test := range testCases {
		if formatted := FormatTimestamp(test.instant); formatted != test.expected {
			t.Errorf("expected FormatTimestamp(%s) = '%s', but got '%s'", test.instant, test.expected, formatted)
		}
	}
}

func TestSensorReadingJSON(t *testing.T) {
	reading := SensorReading{
		SensorType:    SensorFuel,
		Timestamp:     "2024-11-02T12:00:00.000000Z",
		SensorData:    75.5,
		VehicleSerial: "VEH123",
	}
	data, err := json.Marshal(&reading)
	if err != nil {
		t.Fatalf("failed to marshal reading: %s", err)
	}
	expected := `{"sensor_type":"fuel","timestamp":"2024-11-02T12:00:00.000000Z","sensor_data":75.5,"vehicle_serial":"VEH123"}`
	if string(data) != expected {
		t.Errorf("unexpected reading JSON: %s", data)
	}

	var decoded SensorReading
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal reading: %s", err)
	}
	if decoded != reading {
		t.Errorf("reading did not round trip: %+v", decoded)
	}

	if err := json.Unmarshal([]byte(`{"sensor_type":"pressure"}`), &decoded); err == nil {
		t.Error("expected error decoding unrecognized sensor type")
	}
}
