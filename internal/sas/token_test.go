package sas

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"math"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"
)

var testKey = base64.StdEncoding.EncodeToString([]byte("super-secret-key"))

func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = orig })
}

func expectedSignature(resourceURI, expiry string) string {
	rawKey, _ := base64.StdEncoding.DecodeString(testKey)
	mac := hmac.New(sha256.New, rawKey)
	mac.Write([]byte(url.QueryEscape(resourceURI) + "\n" + expiry))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestHubToken(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixNow(t, at)

	cs := ConnectionString{
		HostName:            "my-hub.azure-devices.net",
		SharedAccessKeyName: "iothubowner",
		SharedAccessKey:     testKey,
	}

	tok, err := HubToken(cs, time.Hour)
	if err != nil {
		t.Fatalf("HubToken() error = %v", err)
	}

	expiry := strconv.FormatInt(at.Add(time.Hour).Unix(), 10)

	want := "SharedAccessSignature sr=" + url.QueryEscape(cs.HostName) +
		"&sig=" + url.QueryEscape(expectedSignature(cs.HostName, expiry)) +
		"&se=" + expiry +
		"&skn=iothubowner"
	if tok != want {
		t.Errorf("HubToken() = %q, want %q", tok, want)
	}
}

func TestDeviceTokenOmitsPolicyName(t *testing.T) {
	fixNow(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	cs := DeviceConnectionString{
		HostName:        "my-hub.azure-devices.net",
		DeviceID:        "sensor-1",
		SharedAccessKey: testKey,
	}

	tok, err := DeviceToken(cs, 30*time.Minute)
	if err != nil {
		t.Fatalf("DeviceToken() error = %v", err)
	}
	if strings.Contains(tok, "skn=") {
		t.Errorf("device token contains a policy name: %q", tok)
	}
	wantSR := "sr=" + url.QueryEscape("my-hub.azure-devices.net/devices/sensor-1")
	if !strings.Contains(tok, wantSR) {
		t.Errorf("device token %q missing resource URI %q", tok, wantSR)
	}
}

func TestTokenRejectsUndecodableKey(t *testing.T) {
	cs := ConnectionString{
		HostName:            "my-hub.azure-devices.net",
		SharedAccessKeyName: "iothubowner",
		SharedAccessKey:     "not base64 !!!",
	}
	if _, err := HubToken(cs, time.Hour); err == nil {
		t.Error("HubToken() accepted an undecodable key")
	}
}

func TestValidateExpiry(t *testing.T) {
	tests := []struct {
		name    string
		hours   float64
		wantErr bool
	}{
		{"one hour", 1, false},
		{"fractional", 0.5, false},
		{"zero", 0, true},
		{"negative", -2, true},
		{"nan", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpiry(tt.hours)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExpiry(%v) error = %v, wantErr %v", tt.hours, err, tt.wantErr)
			}
		})
	}
}

func TestParseComposeRoundTrip(t *testing.T) {
	in := Compose("my-hub.azure-devices.net", "iothubowner", testKey)
	cs, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cs.HostName != "my-hub.azure-devices.net" || cs.SharedAccessKeyName != "iothubowner" || cs.SharedAccessKey != testKey {
		t.Errorf("Parse() = %+v", cs)
	}
}

func TestParseRejectsIncomplete(t *testing.T) {
	inputs := []string{
		"",
		"HostName=my-hub.azure-devices.net",
		"HostName=h;SharedAccessKeyName=owner",
		"garbage",
	}
	for _, in := range inputs {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestParseDevice(t *testing.T) {
	cs, err := ParseDevice("HostName=h.azure-devices.net;DeviceId=d1;SharedAccessKey=" + testKey)
	if err != nil {
		t.Fatalf("ParseDevice() error = %v", err)
	}
	if cs.DeviceID != "d1" {
		t.Errorf("DeviceID = %q, want %q", cs.DeviceID, "d1")
	}

	if _, err := ParseDevice("HostName=h;SharedAccessKey=" + testKey); err == nil {
		t.Error("ParseDevice() accepted a string without DeviceId")
	}
}
