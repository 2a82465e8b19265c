package main

import (
	"errors"
	"testing"
	"time"
)

func TestGetSensorValue(t *testing.T) {
	type params struct {
		str   string
		value float64
		isErr bool
	}
	testCases := []params{
		{str: "23.5", value: 23.5},
		{str: "-40", value: -40},
		{str: "0", value: 0},
		{str: "1e3", value: 1000},
		{str: "", isErr: true},
		{str: "23.5C", isErr: true},
		{str: "high", isErr: true},
	}
	for _, test := range testCases {
		value, err := GetSensorValue(test.str)
		if (err != nil) != test.isErr {
			t.Errorf("value string '%s' gave unexpected err = %s", test.str, err)
		} else if value != test.value {
			t.Errorf("expected GetSensorValue('%s') = %f, but got %f", test.str, test.value, value)
		}
	}
}

func TestGetInterval(t *testing.T) {
	type params struct {
		str      string
		interval time.Duration
		isErr    bool
	}
	testCases := []params{
		{str: "5s", interval: 5 * time.Second},
		{str: "1m30s", interval: 90 * time.Second},
		{str: "0s", isErr: true},
		{str: "-5s", isErr: true},
		{str: "5", isErr: true},
		{str: "soon", isErr: true},
	}
	for _, test := range testCases {
		interval, err := GetInterval(test.str)
		if (err != nil) != test.isErr {
			t.Errorf("interval string '%s' gave unexpected err = %s", test.str, err)
		} else if interval != test.interval {
			t.Errorf("expected GetInterval('%s') = %s, but got %s", test.str, test.interval, interval)
		}
	}
}

func TestCheckReadiness(t *testing.T) {
	for name := range commands {
		if _, err := checkReadiness(name, true); err != nil {
			t.Errorf("command '%s' not ready with serial: %s", name, err)
		}
	}
	if _, err := checkReadiness("get-status", false); !errors.Is(err, ErrRequiresSerial) {
		t.Errorf("expected ErrRequiresSerial, got %v", err)
	}
	if _, err := checkReadiness("self-destruct", true); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}
