// Package sas handles IoT Hub connection strings and shared access
// signature tokens.
package sas

import (
	"fmt"
	"strings"
)

// ConnectionString is a parsed iothub-scoped connection string.
type ConnectionString struct {
	HostName            string
	SharedAccessKeyName string
	SharedAccessKey     string
}

// DeviceConnectionString is a parsed device-scoped connection string.
// Device credentials carry a device id instead of a policy name.
type DeviceConnectionString struct {
	HostName        string
	DeviceID        string
	SharedAccessKey string
}

// Compose builds the canonical hub connection string persisted to
// configuration and handed to downstream tooling.
func Compose(hostName, keyName, key string) string {
	return fmt.Sprintf("HostName=%s;SharedAccessKeyName=%s;SharedAccessKey=%s", hostName, keyName, key)
}

// Parse splits a hub connection string into its three required fields.
func Parse(s string) (ConnectionString, error) {
	fields, err := splitFields(s)
	if err != nil {
		return ConnectionString{}, err
	}

	cs := ConnectionString{
		HostName:            fields["HostName"],
		SharedAccessKeyName: fields["SharedAccessKeyName"],
		SharedAccessKey:     fields["SharedAccessKey"],
	}
	if cs.HostName == "" || cs.SharedAccessKeyName == "" || cs.SharedAccessKey == "" {
		return ConnectionString{}, fmt.Errorf("connection string is missing HostName, SharedAccessKeyName or SharedAccessKey")
	}
	return cs, nil
}

// ParseDevice splits a device connection string into its three required
// fields.
func ParseDevice(s string) (DeviceConnectionString, error) {
	fields, err := splitFields(s)
	if err != nil {
		return DeviceConnectionString{}, err
	}

	cs := DeviceConnectionString{
		HostName:        fields["HostName"],
		DeviceID:        fields["DeviceId"],
		SharedAccessKey: fields["SharedAccessKey"],
	}
	if cs.HostName == "" || cs.DeviceID == "" || cs.SharedAccessKey == "" {
		return DeviceConnectionString{}, fmt.Errorf("device connection string is missing HostName, DeviceId or SharedAccessKey")
	}
	return cs, nil
}

func splitFields(s string) (map[string]string, error) {
	fields := make(map[string]string)
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("malformed connection string segment %q", part)
		}
		fields[key] = value
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty connection string")
	}
	return fields, nil
}
