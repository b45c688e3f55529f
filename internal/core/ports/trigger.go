package ports

import (
	"context"

	"go.trai.ch/rewatch/internal/core/domain"
)

// Trigger signals when the watch loop should run another pass.
// It is a scheduling hint only; change detection always diffs snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=trigger.go -destination=mocks/mock_trigger.go -package=mocks
type Trigger interface {
	// Start begins observing roots. The returned channel receives a value
	// whenever a pass is due and is closed when ctx is done.
	Start(ctx context.Context, roots []string) (<-chan struct{}, error)
	// Stop releases all resources.
	Stop() error
}

// TriggerFactory creates the trigger named in the configuration.
type TriggerFactory interface {
	// NewTrigger returns the trigger for cfg.
	NewTrigger(cfg *domain.Config) (Trigger, error)
}
