package interfaces

import (
	"context"
	"storefront/internal/infrastructure/latency"
)

// ILatencySimulator delays a server action before it returns.
type ILatencySimulator interface {
	Wait(ctx context.Context, op latency.Operation) error
}
