package gitrepo_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	git "github.com/gogs/git-module"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pushbell/pkg/domain/model"
	"github.com/m-mizutani/pushbell/pkg/infra/gitrepo"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := git.NewCommand(args...).RunInDir(dir)
	gt.NoError(t, err)
	return strings.TrimSpace(string(out))
}

// initTestRepo creates a repository with three commits, a lightweight tag and
// an annotated tag.
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.name", "tester")
	runGit(t, dir, "config", "user.email", "tester@example.com")

	gt.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one\n"), 0o600))
	runGit(t, dir, "add", "a.txt")
	runGit(t, dir, "commit", "-m", "first commit")

	gt.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("two\n"), 0o600))
	runGit(t, dir, "add", "a.txt")
	runGit(t, dir, "commit", "-m", "second commit")

	gt.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("three\n"), 0o600))
	runGit(t, dir, "add", "a.txt")
	runGit(t, dir, "commit", "-m", "third commit")

	runGit(t, dir, "tag", "light")
	runGit(t, dir, "tag", "-a", "-m", "release", "annotated")

	return dir
}

func TestRepository(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	dir := initTestRepo(t)

	repo, err := gitrepo.Open(dir)
	gt.NoError(t, err)

	t.Run("open rejects a plain directory", func(t *testing.T) {
		_, err := gitrepo.Open(t.TempDir())
		gt.Error(t, err)
	})

	t.Run("object types", func(t *testing.T) {
		typ, err := repo.ObjectType(ctx, "HEAD")
		gt.NoError(t, err)
		gt.V(t, typ).Equal(model.ObjectCommit)

		typ, err = repo.ObjectType(ctx, "refs/tags/light")
		gt.NoError(t, err)
		gt.V(t, typ).Equal(model.ObjectCommit)

		typ, err = repo.ObjectType(ctx, "refs/tags/annotated")
		gt.NoError(t, err)
		gt.V(t, typ).Equal(model.ObjectTag)

		_, err = repo.ObjectType(ctx, "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
		gt.Error(t, err)
	})

	t.Run("log with separator framing", func(t *testing.T) {
		oldRev := runGit(t, dir, "rev-parse", "HEAD~1")
		newRev := runGit(t, dir, "rev-parse", "HEAD")
		sep := "PUSHBELL-TEST-BOUNDARY"

		out, err := repo.Log(ctx, model.LogQuery{
			Origin: oldRev,
			Target: newRev,
			Format: "%an" + sep + "%h" + sep + "%s" + sep,
		})
		gt.NoError(t, err)

		fields := strings.Split(out, sep)
		gt.V(t, len(fields)).Equal(4)
		gt.V(t, fields[0]).Equal("tester")
		gt.V(t, fields[2]).Equal("third commit")
	})

	t.Run("log limit", func(t *testing.T) {
		newRev := runGit(t, dir, "rev-parse", "HEAD")
		sep := "|"

		out, err := repo.Log(ctx, model.LogQuery{
			Origin: "HEAD~2",
			Target: newRev,
			Format: "%s" + sep,
			Limit:  1,
		})
		gt.NoError(t, err)
		gt.V(t, strings.Count(out, sep)).Equal(1)
	})

	t.Run("config values", func(t *testing.T) {
		runGit(t, dir, "config", "hooks.slack.channel", "#dev")
		gt.V(t, repo.ConfigValue("hooks.slack.channel")).Equal("#dev")
		gt.V(t, repo.ConfigValue("hooks.slack.missing")).Equal("")
	})

	t.Run("name strips the bare suffix", func(t *testing.T) {
		gt.V(t, repo.Name()).Equal(filepath.Base(dir))
	})
}
