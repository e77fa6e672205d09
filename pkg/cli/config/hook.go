package config

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Hook holds repository and message formatting configuration.
type Hook struct {
	RepoPath           string
	RepoName           string
	ReposRoot          string
	BranchRegexp       string
	ChangesetURL       string
	CompareURL         string
	ShowOnlyLastCommit bool
	ShowFullCommit     bool
}

// Flags returns CLI flags for hook configuration
func (c *Hook) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repo-path",
			Usage:       "Path of the repository the hook runs against",
			Value:       ".",
			Destination: &c.RepoPath,
			Sources:     cli.EnvVars("PUSHBELL_REPO_PATH"),
		},
		&cli.StringFlag{
			Name:        "repo-name",
			Usage:       "Repository display name (defaults to the directory name)",
			Destination: &c.RepoName,
			Sources:     cli.EnvVars("PUSHBELL_REPO_NAME"),
		},
		&cli.StringFlag{
			Name:        "repos-root",
			Usage:       "Root path stripped from the repository path in URL templates",
			Destination: &c.ReposRoot,
			Sources:     cli.EnvVars("PUSHBELL_REPOS_ROOT"),
		},
		&cli.StringFlag{
			Name:        "branch-regexp",
			Usage:       "Only notify for branches whose short name matches",
			Destination: &c.BranchRegexp,
			Sources:     cli.EnvVars("PUSHBELL_BRANCH_REGEXP"),
		},
		&cli.StringFlag{
			Name:        "changeset-url-pattern",
			Usage:       "URL template for per-commit links (%repo_path%, %rev_hash%, ...)",
			Destination: &c.ChangesetURL,
			Sources:     cli.EnvVars("PUSHBELL_CHANGESET_URL_PATTERN"),
		},
		&cli.StringFlag{
			Name:        "compare-url-pattern",
			Usage:       "URL template for commit range links (%old_rev_hash%, %new_rev_hash%, ...)",
			Destination: &c.CompareURL,
			Sources:     cli.EnvVars("PUSHBELL_COMPARE_URL_PATTERN"),
		},
		&cli.BoolFlag{
			Name:        "show-only-last-commit",
			Usage:       "Attach only the most recent commit of the push",
			Destination: &c.ShowOnlyLastCommit,
			Sources:     cli.EnvVars("PUSHBELL_SHOW_ONLY_LAST_COMMIT"),
		},
		&cli.BoolFlag{
			Name:        "show-full-commit",
			Usage:       "Include the full commit message, not only the subject",
			Destination: &c.ShowFullCommit,
			Sources:     cli.EnvVars("PUSHBELL_SHOW_FULL_COMMIT"),
		},
	}
}

// Fill reads the hooks.slack.* git config keys for every field not already
// set by a flag, environment variable or config file.
func (c *Hook) Fill(lookup func(key string) string) {
	fillString(&c.RepoName, lookup("hooks.slack.repo-nice-name"))
	fillString(&c.ReposRoot, lookup("hooks.slack.repos-root"))
	fillString(&c.BranchRegexp, lookup("hooks.slack.branch-regexp"))
	fillString(&c.ChangesetURL, lookup("hooks.slack.changeset-url-pattern"))
	fillString(&c.CompareURL, lookup("hooks.slack.compare-url-pattern"))
	fillBool(&c.ShowOnlyLastCommit, lookup("hooks.slack.show-only-last-commit"))
	fillBool(&c.ShowFullCommit, lookup("hooks.slack.show-full-commit"))
}

// CompileFilter compiles the branch filter, or returns nil when unset.
func (c *Hook) CompileFilter() (*regexp.Regexp, error) {
	if c.BranchRegexp == "" {
		return nil, nil
	}
	re, err := regexp.Compile(c.BranchRegexp)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid branch filter", goerr.V("pattern", c.BranchRegexp))
	}
	return re, nil
}
