package http

import (
	"errors"

	"intentions-tracker/internal/extract"
	"intentions-tracker/internal/tracker"
	pkgErrors "intentions-tracker/pkg/errors"
	"intentions-tracker/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. Unknown errors become opaque 500s.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, tracker.ErrEmptyTranscript),
		errors.Is(err, tracker.ErrInvalidDateKey),
		errors.Is(err, tracker.ErrNoIntentionsGiven),
		errors.Is(err, tracker.ErrEmptyTitle),
		errors.Is(err, tracker.ErrInvalidTarget),
		errors.Is(err, tracker.ErrInvalidTimeframe):
		return pkgErrors.NewHTTPError(400, err.Error())

	case errors.Is(err, tracker.ErrIntentionNotFound),
		errors.Is(err, tracker.ErrOverrideNotFound):
		return pkgErrors.NewHTTPError(404, err.Error())

	case errors.Is(err, tracker.ErrNoActiveSet):
		return pkgErrors.NewHTTPError(409, err.Error())

	case errors.Is(err, tracker.ErrNoIntentionsParsed),
		errors.Is(err, extract.ErrInvalidPayload):
		// The LLM produced nothing usable; the client can retry with a
		// clearer transcript.
		return pkgErrors.NewHTTPError(422, "could not extract anything usable from the transcript")

	default:
		return pkgErrors.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
