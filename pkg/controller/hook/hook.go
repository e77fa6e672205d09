package hook

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pushbell/pkg/domain/interfaces"
	"github.com/m-mizutani/pushbell/pkg/domain/model"
)

// Runner feeds post-receive input lines to the ref update use case.
type Runner struct {
	uc interfaces.RefUpdateUseCase
}

// NewRunner creates a new hook input runner
func NewRunner(uc interfaces.RefUpdateUseCase) *Runner {
	return &Runner{uc: uc}
}

// Run reads "old new ref" triples from in until EOF and processes them in
// order. A malformed line or a failed delivery is logged and the batch
// continues; only an input read failure aborts the run.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	logger := ctxlog.From(ctx)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		ev, err := model.ParseRefUpdate(line)
		if err != nil {
			logger.Error("invalid post-receive input", "input", line)
			continue
		}

		if err := r.uc.ProcessRefUpdate(ctx, *ev); err != nil {
			logger.Error("failed to process ref update",
				"ref", ev.RefName,
				"error", err,
			)
		}
	}

	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read post-receive input")
	}
	return nil
}
