package loader

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Load(ctx context.Context, input LoadInput) (LoadOutput, error)
}

// Producer publishes loader events to the broker.
type Producer interface {
	PublishFailedRecord(ctx context.Context, event FailedRecordEvent) error
}
