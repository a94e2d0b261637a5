package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"

	"github.com/imamik/hubctl/internal/confstore"
	"github.com/imamik/hubctl/internal/sas"
	"github.com/imamik/hubctl/internal/telemetry"
	"github.com/imamik/hubctl/internal/ui"
)

// Replaced in tests.
var (
	writeClipboard                = clipboard.WriteAll
	sasSink        telemetry.Sink = nil
)

// HubSAS generates a hub-scoped shared access token. The connection
// string defaults to the stored one; hours may be fractional.
func HubSAS(hours float64, connectionString string) error {
	if err := sas.ValidateExpiry(hours); err != nil {
		return err
	}

	if connectionString == "" {
		stored, ok, err := loadStoredConnectionString()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no connection string stored; run `hubctl create` or `hubctl select` first")
		}
		connectionString = stored
	}

	cs, err := sas.Parse(connectionString)
	if err != nil {
		return err
	}

	token, err := sas.HubToken(cs, hoursToDuration(hours))
	if err != nil {
		return err
	}

	emitToken(token, "hub")
	return nil
}

// DeviceSAS generates a device-scoped shared access token from an
// explicit device connection string.
func DeviceSAS(hours float64, deviceConnectionString string) error {
	if err := sas.ValidateExpiry(hours); err != nil {
		return err
	}

	cs, err := sas.ParseDevice(deviceConnectionString)
	if err != nil {
		return err
	}

	token, err := sas.DeviceToken(cs, hoursToDuration(hours))
	if err != nil {
		return err
	}

	emitToken(token, "device")
	return nil
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

func loadStoredConnectionString() (string, bool, error) {
	store, err := openStore()
	if err != nil {
		return "", false, fmt.Errorf("open config store: %w", err)
	}
	return store.Get(confstore.KeyConnectionString)
}

func emitToken(token, scope string) {
	fmt.Println(token)
	if err := writeClipboard(token); err != nil {
		log.Printf("Warning: could not copy token to clipboard: %v", err)
	} else {
		fmt.Println(ui.Dim("Token copied to clipboard."))
	}
	sink().SendEvent("sas.generated", map[string]string{"scope": scope})
}

func sink() telemetry.Sink {
	if sasSink == nil {
		return telemetry.NewLogSink(cliLogger())
	}
	return sasSink
}
