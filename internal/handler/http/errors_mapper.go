package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/service"
	"github.com/MKhiriev/go-bookshelf/internal/store"
)

// errorStatus maps a sentinel error to a status code and response body.
// An empty message means the error text itself is sent.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: service.ErrValidationNoID, status: http.StatusBadRequest, message: msgInvalidID},
	{target: service.ErrValidationNoTitles, status: http.StatusBadRequest},

	{target: store.ErrInvalidIdentifier, status: http.StatusBadRequest, message: msgInvalidID},
	{target: store.ErrUserNotFound, status: http.StatusNotFound, message: msgUserNotFound},
	{target: store.ErrDuplicateID, status: http.StatusConflict, message: msgDuplicateID},

	{target: context.DeadlineExceeded, status: http.StatusGatewayTimeout, message: msgTimeout},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.message == "" {
				return e.status, err.Error()
			}
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, msgInternalError
}

// writeError logs err with the request-scoped logger and sends the mapped
// status. Driver errors never reach the response body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	http.Error(w, message, status)
}
