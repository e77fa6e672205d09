package gitrepo

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	git "github.com/gogs/git-module"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pushbell/pkg/domain/model"
)

// Repository runs git against one local repository. It implements the
// ObjectStore and CommitLog collaborator contracts and serves as the
// git-config source.
type Repository struct {
	path string
}

// Open validates that path is inside a git repository. Hooks run with the
// repository (or its git dir) as working directory, so "." is the usual path.
func Open(path string) (*Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve repository path", goerr.V("path", path))
	}
	if _, err := git.NewCommand("rev-parse", "--git-dir").RunInDir(abs); err != nil {
		return nil, goerr.Wrap(err, "not a git repository", goerr.V("path", abs))
	}
	return &Repository{path: abs}, nil
}

// Path returns the absolute repository path.
func (r *Repository) Path() string {
	return r.path
}

// Name returns the repository directory name without the bare ".git" suffix,
// used as the default display name.
func (r *Repository) Name() string {
	return strings.TrimSuffix(filepath.Base(r.path), ".git")
}

// ObjectType resolves rev to its git object type.
func (r *Repository) ObjectType(_ context.Context, rev string) (model.ObjectType, error) {
	out, err := git.NewCommand("cat-file", "-t", rev).RunInDir(r.path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve object type", goerr.V("rev", rev))
	}
	switch t := strings.TrimSpace(string(out)); t {
	case "commit":
		return model.ObjectCommit, nil
	case "tag":
		return model.ObjectTag, nil
	default:
		return "", goerr.New("unsupported object type", goerr.V("rev", rev), goerr.V("type", t))
	}
}

// Log returns the raw commit log text for q, newest first.
func (r *Repository) Log(_ context.Context, q model.LogQuery) (string, error) {
	cmd := git.NewCommand("log", "--pretty=format:"+q.Format)
	if q.Limit > 0 {
		cmd.AddArgs(fmt.Sprintf("-%d", q.Limit))
	}
	cmd.AddArgs(q.Origin + ".." + q.Target)

	out, err := cmd.RunInDir(r.path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read commit log",
			goerr.V("origin", q.Origin),
			goerr.V("target", q.Target),
		)
	}
	return string(out), nil
}

// ConfigValue reads one dotted git config key. Missing keys yield "", never
// an error.
func (r *Repository) ConfigValue(key string) string {
	out, err := git.NewCommand("config", "--get", key).RunInDir(r.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
