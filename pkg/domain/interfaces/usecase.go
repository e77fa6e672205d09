package interfaces

import (
	"context"

	"github.com/m-mizutani/pushbell/pkg/domain/model"
)

// RefUpdateUseCase defines the interface for ref update processing
type RefUpdateUseCase interface {
	// ProcessRefUpdate handles one ref update from classification through
	// notification delivery.
	ProcessRefUpdate(ctx context.Context, ev model.RefUpdateEvent) error
}
