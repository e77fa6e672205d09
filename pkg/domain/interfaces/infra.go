package interfaces

import (
	"context"

	"github.com/m-mizutani/pushbell/pkg/domain/model"
)

// ObjectStore resolves object ids in the repository the hook runs against.
type ObjectStore interface {
	// ObjectType returns the type of the object rev resolves to.
	ObjectType(ctx context.Context, rev string) (model.ObjectType, error)
}

// CommitLog produces the raw commit log text for a revision range, newest
// first, framed per record by the format in the query.
type CommitLog interface {
	Log(ctx context.Context, q model.LogQuery) (string, error)
}

// Notifier delivers one composed notification to its destination.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}
