package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-file-share/internal/validators"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusServiceUnavailable:    ErrUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	if err, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", err, message)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}

// errorBody is the JSON error envelope of the server. Errors is only set on
// validation failures.
type errorBody struct {
	models.StatusResponse
	Errors []validators.FieldError `json:"errors"`
}

// responseMessage prefers the message of a JSON error envelope and falls
// back to the raw body.
func responseMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Message == "" {
		return strings.TrimSpace(string(body))
	}

	if len(parsed.Errors) == 0 {
		return parsed.Message
	}
	fields := make([]string, 0, len(parsed.Errors))
	for _, f := range parsed.Errors {
		fields = append(fields, f.Field+" "+f.Message)
	}
	return parsed.Message + ": " + strings.Join(fields, ", ")
}
