/*
Package cli facilitates building command-line applications that talk to a telemetry server. It
defines a [Config] type that can be used to register common command-line flags (using the Golang
flag package) and environment variable equivalents.

# Examples

	import flag

	config := cli.NewConfig()
	config.RegisterCommandLineFlags() // Adds command-line flags for the server URL, serial, etc.
	flag.Parse()
	config.ReadFromEnvironment()      // Fills in missing fields using environment variables

	client, err := config.Client()
	if err != nil {
		panic(err)
	}
*/
package cli

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/fleetworks/vehicle-telemetry/internal/log"
	"github.com/fleetworks/vehicle-telemetry/pkg/telemetry"
)

// Environment variable names used by [Config.ReadFromEnvironment] to set common parameters.
const (
	EnvTelemetryServer  = "TELEMETRY_SERVER"
	EnvTelemetrySerial  = "TELEMETRY_SERIAL"
	EnvTelemetryVerbose = "TELEMETRY_VERBOSE"
)

const DefaultTimeout = 5 * time.Second

var (
	ErrNoServer = errors.New("telemetry server URL not provided")
	ErrNoSerial = errors.New("vehicle serial number not provided")
)

// Config fields determine what server a client talks to and what vehicle its commands refer to.
type Config struct {
	ServerURL     string        // Base URL of the telemetry server.
	VehicleSerial string        // Serial number commands apply to.
	Timeout       time.Duration // Per-request timeout.
	Debug         bool          // Enables debug-level logging.
}

func NewConfig() *Config {
	return &Config{Timeout: DefaultTimeout}
}

// RegisterCommandLineFlags adds standard command-line flags to the default flag set. Values
// provided on the command line take precedence over environment variables.
func (c *Config) RegisterCommandLineFlags() {
	flag.StringVar(&c.ServerURL, "server", "", "Base URL of the telemetry `server`")
	flag.StringVar(&c.VehicleSerial, "serial", "", "Vehicle `serial` number")
	flag.DurationVar(&c.Timeout, "timeout", DefaultTimeout, "Set timeout for requests sent to the server.")
	flag.BoolVar(&c.Debug, "debug", false, "Enable verbose debugging messages")
}

// ReadFromEnvironment populates fields that were not set on the command line from environment
// variables.
func (c *Config) ReadFromEnvironment() {
	if c.ServerURL == "" {
		c.ServerURL = os.Getenv(EnvTelemetryServer)
	}
	if c.VehicleSerial == "" {
		c.VehicleSerial = os.Getenv(EnvTelemetrySerial)
	}
	if !c.Debug {
		if verbose, ok := os.LookupEnv(EnvTelemetryVerbose); ok {
			c.Debug = verbose != "false" && verbose != "0"
		}
	}
}

// Client returns a [telemetry.Client] for the configured server. Returns ErrNoServer if no
// server URL was provided on the command line or in the environment.
func (c *Config) Client() (*telemetry.Client, error) {
	if c.ServerURL == "" {
		return nil, ErrNoServer
	}
	if c.Debug {
		log.SetLevel(log.LevelDebug)
	}
	return telemetry.NewClient(c.ServerURL), nil
}
