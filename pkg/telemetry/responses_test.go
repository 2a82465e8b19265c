package telemetry_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/jarcoal/httpmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fleetworks/vehicle-telemetry/pkg/telemetry"
)

const (
	serverURL = "http://telemetry.example.com"
	serial    = "VEH123"
)

var _ = Describe("Client", func() {
	var client *telemetry.Client

	BeforeEach(func() {
		// The client's zero-value http.Client falls through to http.DefaultTransport, which
		// httpmock replaces.
		httpmock.Activate()
		DeferCleanup(httpmock.DeactivateAndReset)
		client = telemetry.NewClient(serverURL)
	})

	Describe("AddSensorData", func() {
		It("succeeds when the server reports success", func() {
			httpmock.RegisterResponder(http.MethodPost, serverURL+"/add-sensor-data/",
				httpmock.NewStringResponder(http.StatusOK, `{"status": "success", "message": "Sensor data recorded."}`))
			err := client.AddSensorData(context.Background(), telemetry.SensorWeight, 700, serial)
			Expect(err).NotTo(HaveOccurred())
		})

		It("sends the reading fields on the wire", func() {
			var reading telemetry.SensorReading
			httpmock.RegisterResponder(http.MethodPost, serverURL+"/add-sensor-data/",
				func(r *http.Request) (*http.Response, error) {
					body, err := io.ReadAll(r.Body)
					Expect(err).NotTo(HaveOccurred())
					Expect(json.Unmarshal(body, &reading)).To(Succeed())
					return httpmock.NewStringResponse(http.StatusOK, `{"status": "success"}`), nil
				})
			Expect(client.AddSensorData(context.Background(), telemetry.SensorFuel, 75.5, serial)).To(Succeed())
			Expect(reading.SensorType).To(Equal(telemetry.SensorFuel))
			Expect(reading.SensorData).To(Equal(75.5))
			Expect(reading.VehicleSerial).To(Equal(serial))
			Expect(reading.Timestamp).To(MatchRegexp(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z$`))
		})

		It("surfaces the server's detail message on rejection", func() {
			httpmock.RegisterResponder(http.MethodPost, serverURL+"/add-sensor-data/",
				httpmock.NewStringResponder(http.StatusBadRequest, `{"detail": "bad serial"}`))
			err := client.AddSensorData(context.Background(), telemetry.SensorTemperature, 23.5, serial)
			var serverErr *telemetry.ServerError
			Expect(err).To(BeAssignableToTypeOf(serverErr))
			Expect(err.Error()).To(Equal("bad serial"))
		})

		It("fails without crashing on invalid JSON", func() {
			httpmock.RegisterResponder(http.MethodPost, serverURL+"/add-sensor-data/",
				httpmock.NewStringResponder(http.StatusOK, `<html>gateway error</html>`))
			err := client.AddSensorData(context.Background(), telemetry.SensorTemperature, 23.5, serial)
			var responseErr *telemetry.ResponseError
			Expect(err).To(BeAssignableToTypeOf(responseErr))
			Expect(err.Error()).To(HavePrefix("Failed to parse response:"))
		})

		It("treats a body with neither status nor detail as unexpected", func() {
			httpmock.RegisterResponder(http.MethodPost, serverURL+"/add-sensor-data/",
				httpmock.NewStringResponder(http.StatusOK, `{"message": "recorded"}`))
			err := client.AddSensorData(context.Background(), telemetry.SensorTemperature, 23.5, serial)
			Expect(err).To(MatchError("Unexpected response format"))
			Expect(telemetry.Attempted(err)).To(BeTrue())
		})
	})

	Describe("UpdateVehicleStatus", func() {
		It("sends the lowercase status name", func() {
			var update map[string]string
			httpmock.RegisterResponder(http.MethodPost, serverURL+"/update-vehicle-status/",
				func(r *http.Request) (*http.Response, error) {
					body, err := io.ReadAll(r.Body)
					Expect(err).NotTo(HaveOccurred())
					Expect(json.Unmarshal(body, &update)).To(Succeed())
					return httpmock.NewStringResponse(http.StatusOK, `{"status": "success"}`), nil
				})
			Expect(client.UpdateVehicleStatus(context.Background(), serial, telemetry.StatusMaintenance)).To(Succeed())
			Expect(update).To(Equal(map[string]string{
				"vehicle_serial": serial,
				"vehicle_status": "maintenance",
			}))
		})

		It("surfaces the server's detail message on rejection", func() {
			httpmock.RegisterResponder(http.MethodPost, serverURL+"/update-vehicle-status/",
				httpmock.NewStringResponder(http.StatusNotFound, `{"detail": "bad serial"}`))
			err := client.UpdateVehicleStatus(context.Background(), serial, telemetry.StatusActive)
			Expect(err.Error()).To(Equal("bad serial"))
		})
	})

	Describe("RegisterVehicle", func() {
		It("passes the serial as a query parameter", func() {
			httpmock.RegisterResponder(http.MethodPost, serverURL+"/register-vehicle/",
				func(r *http.Request) (*http.Response, error) {
					Expect(r.URL.Query().Get("vehicle_serial")).To(Equal(serial))
					return httpmock.NewStringResponse(http.StatusOK, `{"status": "success"}`), nil
				})
			Expect(client.RegisterVehicle(context.Background(), serial)).To(Succeed())
		})
	})

	Describe("GetVehicleStatus", func() {
		register := func(body string) {
			httpmock.RegisterResponder(http.MethodGet, serverURL+"/get-vehicle-status/",
				httpmock.NewStringResponder(http.StatusOK, body))
		}

		It("unquotes a JSON string literal body", func() {
			register(`"active"`)
			status, err := client.GetVehicleStatus(context.Background(), serial)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal("active"))
		})

		It("returns the detail message from an error envelope", func() {
			register(`{"detail": "not found"}`)
			_, err := client.GetVehicleStatus(context.Background(), serial)
			var serverErr *telemetry.ServerError
			Expect(err).To(BeAssignableToTypeOf(serverErr))
			Expect(err.Error()).To(Equal("not found"))
		})

		It("rejects an object without a detail field", func() {
			register(`{"status": "active"}`)
			_, err := client.GetVehicleStatus(context.Background(), serial)
			Expect(err).To(MatchError("Unexpected response format"))
		})

		It("reports the parser error for invalid JSON", func() {
			register(`not json`)
			_, err := client.GetVehicleStatus(context.Background(), serial)
			Expect(err.Error()).To(HavePrefix("Failed to parse response:"))
		})

		It("reports transport failures", func() {
			// No responder registered: httpmock returns a connection error.
			_, err := client.GetVehicleStatus(context.Background(), serial)
			var reqErr *telemetry.RequestError
			Expect(err).To(BeAssignableToTypeOf(reqErr))
			Expect(err.Error()).To(HavePrefix("Request failed:"))
			Expect(telemetry.Attempted(err)).To(BeTrue())
		})
	})
})
