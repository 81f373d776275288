package logging

import (
	"github.com/arthur-debert/layout/pkg/types"
	"github.com/rs/zerolog"
)

// Observer forwards reconciliation events to a zerolog logger
type Observer struct {
	logger zerolog.Logger
}

// NewObserver creates an Observer writing to logger
func NewObserver(logger zerolog.Logger) *Observer {
	return &Observer{logger: logger}
}

// OnInfo logs a successful step at info level
func (o *Observer) OnInfo(ev types.Event) {
	o.logger.Info().
		Str("op", ev.Op).
		Str("path", ev.Path).
		Msg(ev.Msg)
}

// OnError logs a failed or rejected step at error level
func (o *Observer) OnError(ev types.Event) {
	e := o.logger.Error().
		Str("op", ev.Op).
		Str("path", ev.Path)
	if ev.Err != nil {
		e = e.Err(ev.Err)
	}
	e.Msg(ev.Msg)
}
