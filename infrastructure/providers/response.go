// ABOUTME: Shared response handling for the external provider adapters
// ABOUTME: Turns non-2xx replies into ProviderErrors and decodes JSON bodies

package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	coreerrors "poi-translation-api/core/errors"
	"poi-translation-api/core/interfaces"
)

// maxErrorBody caps how much of an error response is kept in the message
const maxErrorBody = 512

// CheckStatus closes resp and returns a ProviderError when the status is not 2xx
func CheckStatus(provider string, resp interfaces.Response) error {
	code := resp.StatusCode()
	if code >= 200 && code < 300 {
		return nil
	}
	defer resp.Body().Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body(), maxErrorBody))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d", code)
	}
	return &coreerrors.ProviderError{Provider: provider, StatusCode: code, Message: msg}
}

// DecodeJSON checks the status, then decodes the body into v and closes it
func DecodeJSON(provider string, resp interfaces.Response, v interface{}) error {
	if err := CheckStatus(provider, resp); err != nil {
		return err
	}
	defer resp.Body().Close()

	if err := json.NewDecoder(resp.Body()).Decode(v); err != nil {
		return &coreerrors.ProviderError{Provider: provider, StatusCode: resp.StatusCode(), Message: "invalid JSON response: " + err.Error()}
	}
	return nil
}
