package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/service"
	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/internal/validators"
	"github.com/MKhiriev/go-file-share/models"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

// notFoundMessage is the single answer for a missing resource and for every
// access denial, so the two cannot be told apart.
const notFoundMessage = "not found"

type errorStatus struct {
	err     error
	status  int
	message string // empty means err.Error()
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{err: service.ErrAccessDenied, status: http.StatusNotFound, message: notFoundMessage},
	{err: service.ErrFileNotFound, status: http.StatusNotFound, message: notFoundMessage},
	{err: service.ErrFileCorrupted, status: http.StatusInternalServerError, message: http.StatusText(http.StatusInternalServerError)},
	{err: service.ErrServiceUnavailable, status: http.StatusServiceUnavailable, message: "service temporarily unavailable"},

	{err: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{err: service.ErrExpirationNotInFuture, status: http.StatusBadRequest},
	{err: service.ErrExpirationRequired, status: http.StatusBadRequest},
	{err: service.ErrRecipientNotFound, status: http.StatusBadRequest},
	{err: service.ErrInvalidPage, status: http.StatusBadRequest},
	{err: service.ErrEmptyFile, status: http.StatusBadRequest},

	{err: ErrInvalidJSON, status: http.StatusBadRequest},
	{err: ErrInvalidID, status: http.StatusBadRequest},
	{err: ErrInvalidForm, status: http.StatusBadRequest},
	{err: ErrMissingFile, status: http.StatusBadRequest},
	{err: ErrInvalidExpiration, status: http.StatusBadRequest},
	{err: ErrInvalidQuery, status: http.StatusBadRequest},
	{err: ErrUploadTooLarge, status: http.StatusRequestEntityTooLarge},

	{err: service.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{err: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized},
	{err: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized},
	{err: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized},
	{err: ErrNoUserInContext, status: http.StatusUnauthorized},

	{err: service.ErrEmailTaken, status: http.StatusConflict},
	{err: service.ErrLinkNotActive, status: http.StatusConflict},
	{err: service.ErrUserNotFound, status: http.StatusNotFound},
}

func statusFromError(err error) (int, string) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			if es.message == "" {
				return es.status, es.err.Error()
			}
			return es.status, es.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// validationResponse lists the rejected fields of a request.
type validationResponse struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	Errors  []validators.FieldError `json:"errors"`
}

// writeError answers r with the status mapped from err. The full error is
// logged; the body only ever carries the mapped message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		log.Info().Err(err).Msg("request rejected by validation")
		utils.WriteJSON(w, validationResponse{
			Status:  statusFail,
			Message: validators.ErrValidation.Error(),
			Errors:  vErr.Fields,
		}, http.StatusBadRequest)
		return
	}

	status, message := statusFromError(err)

	event := log.Info()
	respStatus := statusFail
	if status >= http.StatusInternalServerError {
		event = log.Error()
		respStatus = statusError
	}
	event.Err(err).Int("status", status).Msg("request failed")

	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "1")
	}
	utils.WriteJSON(w, models.StatusResponse{Status: respStatus, Message: message}, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: statusFail, Message: notFoundMessage}, http.StatusNotFound)
}
