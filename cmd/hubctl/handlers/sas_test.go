package handlers

import (
	"encoding/base64"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/hubctl/internal/confstore"
	"github.com/imamik/hubctl/internal/telemetry"
)

var testSASKey = base64.StdEncoding.EncodeToString([]byte("secret"))

func stubCollaborators(t *testing.T, store confstore.Store) (tokens *[]string, rec *telemetry.Recorder) {
	t.Helper()

	var copied []string
	origClipboard := writeClipboard
	writeClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	t.Cleanup(func() { writeClipboard = origClipboard })

	origStore := openStore
	openStore = func() (confstore.Store, error) { return store, nil }
	t.Cleanup(func() { openStore = origStore })

	recorder := &telemetry.Recorder{}
	origSink := sasSink
	sasSink = recorder
	t.Cleanup(func() { sasSink = origSink })

	return &copied, recorder
}

func TestHubSASFromStoredConnectionString(t *testing.T) {
	store := confstore.NewMemory()
	require.NoError(t, store.Update(confstore.KeyConnectionString,
		"HostName=h.azure-devices.net;SharedAccessKeyName=iothubowner;SharedAccessKey="+testSASKey, true))
	copied, rec := stubCollaborators(t, store)

	require.NoError(t, HubSAS(1, ""))

	require.Len(t, *copied, 1)
	token := (*copied)[0]
	assert.True(t, strings.HasPrefix(token, "SharedAccessSignature sr="), "token = %q", token)
	assert.Contains(t, token, "&skn=iothubowner")
	assert.Equal(t, []string{"sas.generated"}, rec.Names())
}

func TestHubSASExplicitConnectionStringOverridesStore(t *testing.T) {
	store := confstore.NewMemory()
	require.NoError(t, store.Update(confstore.KeyConnectionString, "HostName=stored;SharedAccessKeyName=x;SharedAccessKey="+testSASKey, true))
	copied, _ := stubCollaborators(t, store)

	explicit := "HostName=explicit.azure-devices.net;SharedAccessKeyName=service;SharedAccessKey=" + testSASKey
	require.NoError(t, HubSAS(0.5, explicit))

	require.Len(t, *copied, 1)
	assert.Contains(t, (*copied)[0], "sr=explicit.azure-devices.net")
	assert.Contains(t, (*copied)[0], "&skn=service")
}

func TestHubSASWithoutStoredConnectionString(t *testing.T) {
	stubCollaborators(t, confstore.NewMemory())

	err := HubSAS(1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no connection string stored")
}

func TestHubSASRejectsInvalidExpiry(t *testing.T) {
	stubCollaborators(t, confstore.NewMemory())

	assert.Error(t, HubSAS(0, ""))
	assert.Error(t, HubSAS(-1, ""))
	assert.Error(t, HubSAS(math.NaN(), ""))
	assert.Error(t, HubSAS(math.Inf(1), ""))
}

func TestDeviceSAS(t *testing.T) {
	copied, rec := stubCollaborators(t, confstore.NewMemory())

	require.NoError(t, DeviceSAS(2, "HostName=h.azure-devices.net;DeviceId=sensor-1;SharedAccessKey="+testSASKey))

	require.Len(t, *copied, 1)
	token := (*copied)[0]
	assert.NotContains(t, token, "skn=", "device tokens must not carry a policy name")
	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "device", events[0].Props["scope"])
}

func TestDeviceSASRejectsMalformedConnectionString(t *testing.T) {
	stubCollaborators(t, confstore.NewMemory())

	assert.Error(t, DeviceSAS(1, "HostName=h;SharedAccessKey="+testSASKey))
}
