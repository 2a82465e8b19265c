package telemetry

import (
	"bytes"
	"context"
	_ "embed" // Used to embed version for use with user agent
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/fleetworks/vehicle-telemetry/internal/log"
)

// MaxResponseLength caps how many bytes of a server response the client will read.
const MaxResponseLength = 1 << 20

//go:embed version.txt
var libraryVersion string

func buildUserAgent(app string) string {
	library := strings.TrimSpace("vehicle-telemetry/" + libraryVersion)
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return library
	}
	if app == "" {
		path := strings.Split(build.Path, "/")
		if len(path) == 0 {
			return library
		}
		app = path[len(path)-1]
		if build.Main.Version != "(devel)" && build.Main.Version != "" {
			app = fmt.Sprintf("%s/%s", app, build.Main.Version)
		}
	}
	return fmt.Sprintf("%s %s", app, library)
}

// Client sends telemetry operations to a server. Operations block until the HTTP round trip
// completes; the client performs no retries and adds no synchronization beyond what
// [http.Client] provides.
type Client struct {
	// The default UserAgent is constructed from the module version, but can be overridden.
	UserAgent string
	baseURL   string
	client    http.Client
}

// NewClient returns a Client that sends requests to the server at baseURL. No network I/O is
// performed until the first operation.
func NewClient(baseURL string) *Client {
	return &Client{
		UserAgent: buildUserAgent(""),
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// AddSensorData submits a single sensor reading, stamped with the current time.
func (c *Client) AddSensorData(ctx context.Context, sensorType SensorType, value float64, vehicleSerial string) error {
	reading := SensorReading{
		SensorType:    sensorType,
		Timestamp:     FormatTimestamp(time.Now()),
		SensorData:    value,
		VehicleSerial: vehicleSerial,
	}
	return c.sendCommand(ctx, "/add-sensor-data/", &reading)
}

// UpdateVehicleStatus sets the operational status of the vehicle identified by vehicleSerial.
func (c *Client) UpdateVehicleStatus(ctx context.Context, vehicleSerial string, status VehicleStatus) error {
	update := struct {
		VehicleSerial string        `json:"vehicle_serial"`
		VehicleStatus VehicleStatus `json:"vehicle_status"`
	}{
		VehicleSerial: vehicleSerial,
		VehicleStatus: status,
	}
	return c.sendCommand(ctx, "/update-vehicle-status/", &update)
}

// RegisterVehicle creates a record for a new vehicle on the server. Readings and status updates
// for a serial number are rejected until the vehicle is registered.
func (c *Client) RegisterVehicle(ctx context.Context, vehicleSerial string) error {
	query := url.Values{"vehicle_serial": {vehicleSerial}}
	return c.sendCommand(ctx, "/register-vehicle/?"+query.Encode(), nil)
}

// GetVehicleStatus fetches the current status of the vehicle identified by vehicleSerial. The
// returned string is the server's status name (e.g., "active").
func (c *Client) GetVehicleStatus(ctx context.Context, vehicleSerial string) (string, error) {
	query := url.Values{"vehicle_serial": {vehicleSerial}}
	endpoint := "/get-vehicle-status/?" + query.Encode()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return "", &RequestError{Err: err}
	}
	request.Header.Set("User-Agent", c.UserAgent)
	request.Header.Set("Accept", "*/*")

	log.Debug("Requesting %s%s...", c.baseURL, endpoint)
	response, err := c.client.Do(request)
	if err != nil {
		log.Error("Request to %s failed: %s", endpoint, err)
		return "", &RequestError{Err: err, Sent: true}
	}
	defer response.Body.Close()

	raw, err := readBody(response.Body)
	if err != nil {
		return "", &RequestError{Err: err, Sent: true}
	}
	log.Debug("Server returned %d: %s: %s", response.StatusCode, http.StatusText(response.StatusCode), raw)

	// A bare JSON string literal is the status itself; anything else is an error envelope.
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var status string
		if err := json.Unmarshal(trimmed, &status); err != nil {
			return "", &ResponseError{Err: err, Body: string(raw)}
		}
		return status, nil
	}

	var reply struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(trimmed, &reply); err != nil {
		return "", &ResponseError{Err: err, Body: string(raw)}
	}
	if reply.Detail != "" {
		return "", &ServerError{Detail: reply.Detail}
	}
	return "", &ResponseError{Body: string(raw)}
}

// sendCommand POSTs payload to endpoint as JSON and interprets the server's reply. A nil payload
// sends an empty body.
func (c *Client) sendCommand(ctx context.Context, endpoint string, payload interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &RequestError{Err: err}
		}
		log.Debug("Sending request to %s%s: %s", c.baseURL, endpoint, data)
		body = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, body)
	if err != nil {
		return &RequestError{Err: err}
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", c.UserAgent)
	request.Header.Set("Accept", "*/*")

	response, err := c.client.Do(request)
	if err != nil {
		log.Error("Request to %s failed: %s", endpoint, err)
		return &RequestError{Err: err, Sent: true}
	}
	defer response.Body.Close()

	raw, err := readBody(response.Body)
	if err != nil {
		return &RequestError{Err: err, Sent: true}
	}
	log.Debug("Server returned %d: %s: %s", response.StatusCode, http.StatusText(response.StatusCode), raw)
	return interpretReply(raw)
}

// interpretReply maps a server reply onto the command result. The server signals rejection
// through a detail field rather than relying on HTTP status codes alone, so the body is parsed
// regardless of status.
func interpretReply(raw []byte) error {
	var reply struct {
		Status string `json:"status"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		log.Error("Failed to parse server response: %s", err)
		log.Error("Raw response: %s", raw)
		return &ResponseError{Err: err, Body: string(raw)}
	}
	if reply.Status == "success" {
		return nil
	}
	if reply.Detail != "" {
		log.Error("Server rejected request: %s", reply.Detail)
		return &ServerError{Detail: reply.Detail}
	}
	log.Error("Unexpected response: %s", raw)
	return &ResponseError{Body: string(raw)}
}

func readBody(r io.Reader) ([]byte, error) {
	reader := io.LimitedReader{R: r, N: MaxResponseLength}
	return io.ReadAll(&reader)
}
