package azure

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// armErrorBody mirrors the error payload shapes the control plane
// returns: either a top-level message or one nested under "error".
type armErrorBody struct {
	Message string `json:"message"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ErrorMessage extracts the most specific human-readable message from a
// control-plane error: the response-body message first, then the ARM
// error code, then the error's own text, then a generic fallback.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		if msg := responseBodyMessage(respErr.RawResponse); msg != "" {
			return msg
		}
		if respErr.ErrorCode != "" {
			return respErr.ErrorCode
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "request failed"
}

func responseBodyMessage(resp *http.Response) string {
	if resp == nil || resp.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	// Leave the body readable for anyone else holding the response.
	resp.Body = io.NopCloser(bytes.NewReader(raw))

	var body armErrorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	if body.Error != nil {
		return body.Error.Message
	}
	return ""
}
