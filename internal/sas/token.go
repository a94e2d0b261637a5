package sas

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"
)

// timeNow is replaced in tests for deterministic expiry values.
var timeNow = time.Now

// ValidateExpiry checks a token lifetime given in (possibly fractional)
// hours. Zero, negative and non-finite values are rejected.
func ValidateExpiry(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return fmt.Errorf("expiry must be a finite number of hours")
	}
	if hours <= 0 {
		return fmt.Errorf("expiry must be greater than zero hours")
	}
	return nil
}

// HubToken generates a hub-scoped shared access signature from a parsed
// connection string, valid for the given duration.
func HubToken(cs ConnectionString, ttl time.Duration) (string, error) {
	return token(cs.HostName, cs.SharedAccessKeyName, cs.SharedAccessKey, ttl)
}

// DeviceToken generates a device-scoped shared access signature. Device
// tokens sign the device resource URI and carry no policy name.
func DeviceToken(cs DeviceConnectionString, ttl time.Duration) (string, error) {
	return token(cs.HostName+"/devices/"+cs.DeviceID, "", cs.SharedAccessKey, ttl)
}

// token signs the URL-escaped resource URI together with the expiry
// timestamp using HMAC-SHA256 keyed by the base64-decoded access key.
func token(resourceURI, policyName, key string, ttl time.Duration) (string, error) {
	rawKey, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return "", fmt.Errorf("decode shared access key: %w", err)
	}

	expiry := strconv.FormatInt(timeNow().UTC().Add(ttl).Unix(), 10)
	sr := url.QueryEscape(resourceURI)

	mac := hmac.New(sha256.New, rawKey)
	mac.Write([]byte(sr + "\n" + expiry))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	tok := fmt.Sprintf("SharedAccessSignature sr=%s&sig=%s&se=%s", sr, url.QueryEscape(sig), expiry)
	if policyName != "" {
		tok += "&skn=" + policyName
	}
	return tok, nil
}
