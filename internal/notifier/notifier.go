// Package notifier delivers transient user-facing notifications.
package notifier

import (
	"context"

	"github.com/rs/zerolog"
)

// Levels of a notification.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Sink receives notifications. Implementations must not block for long and never fail
// the caller.
type Sink interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// Log writes notifications to the request logger.
type Log struct{}

// Success logs a success notification.
func (Log) Success(ctx context.Context, message string) {
	zerolog.Ctx(ctx).Info().Str("level_notification", LevelSuccess).Msg(message)
}

// Error logs an error notification.
func (Log) Error(ctx context.Context, message string) {
	zerolog.Ctx(ctx).Info().Str("level_notification", LevelError).Msg(message)
}

// Multi fans a notification out to every sink in order.
type Multi []Sink

// Success notifies every sink.
func (m Multi) Success(ctx context.Context, message string) {
	for _, s := range m {
		s.Success(ctx, message)
	}
}

// Error notifies every sink.
func (m Multi) Error(ctx context.Context, message string) {
	for _, s := range m {
		s.Error(ctx, message)
	}
}

// Recorder keeps the last notification. It is meant for a single request.
type Recorder struct {
	Level   string
	Message string
}

// Success records a success notification.
func (r *Recorder) Success(_ context.Context, message string) {
	r.Level, r.Message = LevelSuccess, message
}

// Error records an error notification.
func (r *Recorder) Error(_ context.Context, message string) {
	r.Level, r.Message = LevelError, message
}
