package usecase

import (
	"context"
	"regexp"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pushbell/pkg/domain/interfaces"
	"github.com/m-mizutani/pushbell/pkg/domain/model"
)

// Settings is the immutable per-run configuration of the notification
// pipeline, consolidated once at startup.
type Settings struct {
	RepoName           string
	RepoPath           string
	ReposRoot          string
	BranchFilter       *regexp.Regexp
	ChangesetURL       string
	CompareURL         string
	ShowOnlyLastCommit bool
	ShowFullCommit     bool
}

type notifyUseCase struct {
	store    interfaces.ObjectStore
	commits  interfaces.CommitLog
	notifier interfaces.Notifier
	settings Settings
	boundary string
}

// NewNotify creates the ref update use case wiring the git collaborators to
// the notification destination.
func NewNotify(store interfaces.ObjectStore, commits interfaces.CommitLog, notifier interfaces.Notifier, st Settings) interfaces.RefUpdateUseCase {
	return &notifyUseCase{
		store:    store,
		commits:  commits,
		notifier: notifier,
		settings: st,
		boundary: NewBoundary(),
	}
}

// ProcessRefUpdate handles one ref update end to end: classify, read the
// commit log, parse records, compose the message and deliver it.
func (uc *notifyUseCase) ProcessRefUpdate(ctx context.Context, ev model.RefUpdateEvent) error {
	logger := ctxlog.From(ctx)

	classified, ignore := Classify(ctx, uc.store, ev, uc.settings.BranchFilter)
	if ignore != nil {
		logger.Info("skipping ref update",
			"ref", ev.RefName,
			"reason", ignore.Reason,
		)
		return nil
	}

	var records []model.CommitRecord
	if classified.Change != model.ChangeDelete {
		raw, err := uc.commits.Log(ctx, uc.logQuery(classified))
		if err != nil {
			// A notification without attachments is still worth sending,
			// e.g. the first push into an empty repository has no HEAD yet.
			logger.Warn("commit log unavailable",
				"ref", ev.RefName,
				"error", err,
			)
		} else {
			records = parseCommitRecords(raw, uc.boundary)
		}
	}

	n := Compose(classified, records, uc.settings)
	logger.Info("sending push notification",
		"ref", ev.RefName,
		"change", classified.Change,
		"kind", classified.Kind,
		"commits", len(records),
	)

	if err := uc.notifier.Notify(ctx, n); err != nil {
		return goerr.Wrap(err, "failed to deliver notification", goerr.V("ref", ev.RefName))
	}
	return nil
}

func (uc *notifyUseCase) logQuery(ev *model.ClassifiedEvent) model.LogQuery {
	body := "%s"
	if uc.settings.ShowFullCommit {
		body = "%s%n%n%b"
	}

	// Creates have no previous revision to bound the range, so the log
	// starts from the synthetic HEAD origin instead.
	origin := ev.OldID
	if ev.Change == model.ChangeCreate {
		origin = "HEAD"
	}

	return model.LogQuery{
		Origin: origin,
		Target: ev.NewID,
		Format: "%an" + uc.boundary + "%h" + uc.boundary + body + uc.boundary,
	}
}
