package http

import (
	"intentions-tracker/internal/tracker"
	"intentions-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc tracker.UseCase
}

// New creates a new HTTP handler for the tracker domain.
func New(l log.Logger, uc tracker.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
