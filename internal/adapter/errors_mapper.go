package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusTooManyRequests:       ErrTooManyRequests,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
}

// serverError is the JSON error body written by the server.
type serverError struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return statusError(resp.StatusCode(), resp.Body())
}

func statusError(status int, rawBody []byte) error {
	message := errorMessage(status, rawBody)

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("http %d: %s", status, message)
}

// errorMessage prefers the decoded error body and falls back to the raw body
// or the status text.
func errorMessage(status int, rawBody []byte) string {
	body := strings.TrimSpace(string(rawBody))

	var decoded serverError
	if json.Unmarshal([]byte(body), &decoded) == nil && decoded.Error != "" {
		if len(decoded.Errors) > 0 {
			return decoded.Error + ": " + strings.Join(decoded.Errors, "; ")
		}
		return decoded.Error
	}

	if body == "" {
		return http.StatusText(status)
	}
	return body
}
