package azure

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

func responseError(code string, body string) *azcore.ResponseError {
	return &azcore.ResponseError{
		ErrorCode:  code,
		StatusCode: http.StatusBadRequest,
		RawResponse: &http.Response{
			StatusCode: http.StatusBadRequest,
			Body:       io.NopCloser(strings.NewReader(body)),
		},
	}
}

func TestErrorMessageNestedBody(t *testing.T) {
	err := responseError("QuotaExceeded", `{"error":{"message":"quota exceeded"}}`)
	if got := ErrorMessage(err); got != "quota exceeded" {
		t.Errorf("ErrorMessage() = %q, want %q", got, "quota exceeded")
	}
}

func TestErrorMessageTopLevelBodyWins(t *testing.T) {
	err := responseError("BadRequest", `{"message":"top level","error":{"message":"nested"}}`)
	if got := ErrorMessage(err); got != "top level" {
		t.Errorf("ErrorMessage() = %q, want %q", got, "top level")
	}
}

func TestErrorMessageFallsBackToErrorCode(t *testing.T) {
	err := responseError("SomeCode", `not json at all`)
	if got := ErrorMessage(err); got != "SomeCode" {
		t.Errorf("ErrorMessage() = %q, want %q", got, "SomeCode")
	}
}

func TestErrorMessageWrappedResponseError(t *testing.T) {
	err := fmt.Errorf("create IoT Hub: %w", responseError("", `{"error":{"message":"quota exceeded"}}`))
	if got := ErrorMessage(err); got != "quota exceeded" {
		t.Errorf("ErrorMessage() = %q, want %q", got, "quota exceeded")
	}
}

func TestErrorMessagePlainError(t *testing.T) {
	err := errors.New("dial tcp: connection refused")
	if got := ErrorMessage(err); got != "dial tcp: connection refused" {
		t.Errorf("ErrorMessage() = %q", got)
	}
}

func TestErrorMessageNil(t *testing.T) {
	if got := ErrorMessage(nil); got != "" {
		t.Errorf("ErrorMessage(nil) = %q, want empty", got)
	}
}

func TestResourceGroupFromID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"/subscriptions/abc/resourceGroups/my-rg/providers/Microsoft.Devices/IotHubs/h1", "my-rg"},
		{"/subscriptions/abc/resourcegroups/other/providers/x/y", "other"},
		{"", ""},
		{"/subscriptions/abc", ""},
	}
	for _, tt := range tests {
		if got := resourceGroupFromID(tt.id); got != tt.want {
			t.Errorf("resourceGroupFromID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
