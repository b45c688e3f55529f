package trigger

import (
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TriggerFactory = (*Factory)(nil)

// Factory creates the trigger named in the configuration.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// NewTrigger returns the trigger selected by cfg.Trigger.
func (f *Factory) NewTrigger(cfg *domain.Config) (ports.Trigger, error) {
	switch cfg.Trigger {
	case domain.TriggerPoll, "":
		return NewPoll(cfg.Interval), nil
	case domain.TriggerFSNotify:
		return NewFSNotify(cfg.Interval, DefaultDebounceWindow, f.logger), nil
	default:
		return nil, zerr.With(domain.ErrUnknownTrigger, "trigger", cfg.Trigger)
	}
}
