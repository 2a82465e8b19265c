package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fleetworks/vehicle-telemetry/pkg/telemetry"
)

var (
	ErrCommandLineArgs = errors.New("invalid command line arguments")
	ErrRequiresSerial  = errors.New("command requires a vehicle serial number")
	ErrUnknownCommand  = errors.New("unrecognized command")
)

type Argument struct {
	name string
	help string
}

type Handler func(ctx context.Context, client *telemetry.Client, serial string, args map[string]string) error

type Command struct {
	help           string
	requiresSerial bool // True if the command targets a specific vehicle.
	persistent     bool // True if the command runs until interrupted instead of timing out.
	args           []Argument
	optional       []Argument
	handler        Handler
}

func GetSensorValue(valueStr string) (float64, error) {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sensor value '%s'", valueStr)
	}
	return value, nil
}

func GetInterval(intervalStr string) (time.Duration, error) {
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return 0, fmt.Errorf("invalid interval '%s': expected a duration such as 5s or 1m", intervalStr)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	return interval, nil
}

func checkReadiness(commandName string, haveSerial bool) (*Command, error) {
	info, ok := commands[commandName]
	if !ok {
		return nil, ErrUnknownCommand
	}
	if info.requiresSerial && !haveSerial {
		return nil, ErrRequiresSerial
	}
	return info, nil
}

func execute(ctx context.Context, client *telemetry.Client, serial string, args []string) error {
	if len(args) == 0 {
		return errors.New("missing COMMAND")
	}

	info, err := checkReadiness(args[0], serial != "")
	if err != nil {
		return err
	}

	if len(args)-1 < len(info.args) || len(args)-1 > len(info.args)+len(info.optional) {
		writeErr("Invalid number of command line arguments: %d (%d required, %d optional).", len(args)-1, len(info.args), len(info.optional))
		err = ErrCommandLineArgs
	} else {
		keywords := make(map[string]string)
		for i, argInfo := range info.args {
			keywords[argInfo.name] = args[i+1]
		}
		index := len(info.args) + 1
		for _, argInfo := range info.optional {
			if index >= len(args) {
				break
			}
			keywords[argInfo.name] = args[index]
			index++
		}
		err = info.handler(ctx, client, serial, keywords)
	}

	// Print command-specific help
	if errors.Is(err, ErrCommandLineArgs) {
		info.Usage(args[0])
	}
	return err
}

func (c *Command) Usage(name string) {
	fmt.Printf("Usage: %s", name)
	maxLength := 0
	for _, arg := range c.args {
		fmt.Printf(" %s", arg.name)
		if len(arg.name) > maxLength {
			maxLength = len(arg.name)
		}
	}
	if len(c.optional) > 0 {
		fmt.Printf(" [")
	}
	for _, arg := range c.optional {
		fmt.Printf(" %s", arg.name)
		if len(arg.name) > maxLength {
			maxLength = len(arg.name)
		}
	}
	if len(c.optional) > 0 {
		fmt.Printf(" ]")
	}
	fmt.Printf("\n%s\n", c.help)
	maxLength++
	for _, arg := range c.args {
		fmt.Printf("    %s:%s%s\n", arg.name, strings.Repeat(" ", maxLength-len(arg.name)), arg.help)
	}
	for _, arg := range c.optional {
		fmt.Printf("    %s:%s%s\n", arg.name, strings.Repeat(" ", maxLength-len(arg.name)), arg.help)
	}
}

var commands = map[string]*Command{
	"add-sensor-data": &Command{
		help:           "Submit a sensor reading for the vehicle",
		requiresSerial: true,
		args: []Argument{
			Argument{name: "TYPE", help: "Sensor type: temperature, weight, or fuel."},
			Argument{name: "VALUE", help: "Measured value."},
		},
		handler: func(ctx context.Context, client *telemetry.Client, serial string, args map[string]string) error {
			sensorType, err := telemetry.ParseSensorType(args["TYPE"])
			if err != nil {
				return fmt.Errorf("%w: %s", ErrCommandLineArgs, err)
			}
			value, err := GetSensorValue(args["VALUE"])
			if err != nil {
				return fmt.Errorf("%w: %s", ErrCommandLineArgs, err)
			}
			if err := client.AddSensorData(ctx, sensorType, value, serial); err != nil {
				return err
			}
			fmt.Printf("%s data sent successfully\n", sensorType)
			return nil
		},
	},
	"update-status": &Command{
		help:           "Update the vehicle's operational status",
		requiresSerial: true,
		args: []Argument{
			Argument{name: "STATUS", help: "New status: active, inactive, maintenance, or error."},
		},
		handler: func(ctx context.Context, client *telemetry.Client, serial string, args map[string]string) error {
			status, err := telemetry.ParseVehicleStatus(args["STATUS"])
			if err != nil {
				return fmt.Errorf("%w: %s", ErrCommandLineArgs, err)
			}
			if err := client.UpdateVehicleStatus(ctx, serial, status); err != nil {
				return err
			}
			fmt.Printf("Status updated to %s\n", status)
			return nil
		},
	},
	"get-status": &Command{
		help:           "Fetch the vehicle's current status",
		requiresSerial: true,
		handler: func(ctx context.Context, client *telemetry.Client, serial string, args map[string]string) error {
			status, err := client.GetVehicleStatus(ctx, serial)
			if err != nil {
				return err
			}
			fmt.Printf("Vehicle status: %s\n", status)
			return nil
		},
	},
	"register": &Command{
		help:           "Register the vehicle with the server",
		requiresSerial: true,
		handler: func(ctx context.Context, client *telemetry.Client, serial string, args map[string]string) error {
			if err := client.RegisterVehicle(ctx, serial); err != nil {
				return err
			}
			fmt.Printf("Registered vehicle %s\n", serial)
			return nil
		},
	},
	"watch": &Command{
		help:           "Poll the vehicle's status until interrupted",
		requiresSerial: true,
		persistent:     true,
		optional: []Argument{
			Argument{name: "INTERVAL", help: "Time between polls (default 5s)."},
		},
		handler: func(ctx context.Context, client *telemetry.Client, serial string, args map[string]string) error {
			interval := 5 * time.Second
			if intervalStr, ok := args["INTERVAL"]; ok {
				var err error
				if interval, err = GetInterval(intervalStr); err != nil {
					return fmt.Errorf("%w: %s", ErrCommandLineArgs, err)
				}
			}
			for {
				status, err := client.GetVehicleStatus(ctx, serial)
				if err != nil {
					writeErr("Poll failed: %s", err)
				} else {
					fmt.Printf("%s %s\n", telemetry.FormatTimestamp(time.Now()), status)
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(interval):
				}
			}
		},
	},
}
