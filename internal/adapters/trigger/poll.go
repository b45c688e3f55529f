package trigger

import (
	"context"
	"time"

	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Trigger = (*Poll)(nil)

// Poll signals a pass on a fixed interval.
type Poll struct {
	interval time.Duration
	cancel   context.CancelFunc
}

// NewPoll creates a poll trigger.
func NewPoll(interval time.Duration) *Poll {
	return &Poll{interval: interval}
}

// Start begins ticking. Roots are ignored.
func (p *Poll) Start(ctx context.Context, _ []string) (<-chan struct{}, error) {
	if p.interval <= 0 {
		return nil, zerr.With(domain.ErrInvalidInterval, "interval", p.interval.String())
	}

	ctx, p.cancel = context.WithCancel(ctx)
	sig := newSignal()
	go func() {
		defer sig.close()
		tickLoop(ctx, p.interval, sig)
	}()
	return sig.ch, nil
}

// Stop halts the ticker.
func (p *Poll) Stop() error {
	if p.cancel != nil {
		p.cancel()
	}
	return nil
}

func tickLoop(ctx context.Context, interval time.Duration, sig *signal) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sig.notify()
		}
	}
}
