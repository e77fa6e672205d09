package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/m-mizutani/pushbell/pkg/domain/interfaces"
	"github.com/m-mizutani/pushbell/pkg/domain/model"
)

// Ignore explains why a ref update produces no notification. It is a normal
// classification outcome, not an error.
type Ignore struct {
	Reason string
}

type refClass struct {
	prefix string
	object model.ObjectType
}

// Decision table over (reference namespace, object type). Combinations not
// listed here are unrecognized and ignored.
var refKinds = map[refClass]model.RefKind{
	{model.RefsTags, model.ObjectCommit}:    model.RefTag,
	{model.RefsTags, model.ObjectTag}:       model.RefAnnotatedTag,
	{model.RefsHeads, model.ObjectCommit}:   model.RefBranch,
	{model.RefsRemotes, model.ObjectCommit}: model.RefTrackingBranch,
}

// Classify decides the change type and reference kind for one ref update.
// Exactly one of the return values is non-nil. Object lookup failures become
// ignores so a single bad event never aborts the batch.
func Classify(ctx context.Context, store interfaces.ObjectStore, ev model.RefUpdateEvent, filter *regexp.Regexp) (*model.ClassifiedEvent, *Ignore) {
	change, ok := model.ChangeTypeOf(ev.OldID, ev.NewID)
	if !ok {
		return nil, &Ignore{Reason: "both object ids are zero"}
	}

	rev := ev.NewID
	if change == model.ChangeDelete {
		rev = ev.OldID
	}

	objType, err := store.ObjectType(ctx, rev)
	if err != nil {
		return nil, &Ignore{Reason: fmt.Sprintf("object %s is not resolvable: %v", rev, err)}
	}

	kind, ok := refKinds[refClass{prefix: model.RefPrefix(ev.RefName), object: objType}]
	if !ok {
		return nil, &Ignore{Reason: "unrecognized ref update"}
	}
	if kind == model.RefTrackingBranch {
		return nil, &Ignore{Reason: "tracking branch push"}
	}

	short := model.ShortRefName(ev.RefName)
	if filter != nil && !filter.MatchString(short) {
		return nil, &Ignore{Reason: "filtered by branch pattern"}
	}

	return &model.ClassifiedEvent{
		RefUpdateEvent: ev,
		Change:         change,
		Kind:           kind,
		ShortName:      short,
		RelevantID:     rev,
	}, nil
}
