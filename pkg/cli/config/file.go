package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File is an optional TOML configuration file. Its values sit between
// flags/environment and git config in precedence: a field set by a flag wins,
// a field left empty everywhere falls through to git config.
type File struct {
	Slack struct {
		WebhookURL string `toml:"webhook_url"`
		Channel    string `toml:"channel"`
		Username   string `toml:"username"`
		IconURL    string `toml:"icon_url"`
		IconEmoji  string `toml:"icon_emoji"`
	} `toml:"slack"`

	Hook struct {
		RepoName           string `toml:"repo_name"`
		ReposRoot          string `toml:"repos_root"`
		BranchRegexp       string `toml:"branch_regexp"`
		ChangesetURL       string `toml:"changeset_url_pattern"`
		CompareURL         string `toml:"compare_url_pattern"`
		ShowOnlyLastCommit bool   `toml:"show_only_last_commit"`
		ShowFullCommit     bool   `toml:"show_full_commit"`
	} `toml:"hook"`
}

// LoadFile parses the TOML configuration at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	return &f, nil
}

// Apply fills fields not already set by flags or environment.
func (f *File) Apply(slack *Slack, hook *Hook) {
	fillString(&slack.WebhookURL, f.Slack.WebhookURL)
	fillString(&slack.Channel, f.Slack.Channel)
	fillString(&slack.Username, f.Slack.Username)
	fillString(&slack.IconURL, f.Slack.IconURL)
	fillString(&slack.IconEmoji, f.Slack.IconEmoji)

	fillString(&hook.RepoName, f.Hook.RepoName)
	fillString(&hook.ReposRoot, f.Hook.ReposRoot)
	fillString(&hook.BranchRegexp, f.Hook.BranchRegexp)
	fillString(&hook.ChangesetURL, f.Hook.ChangesetURL)
	fillString(&hook.CompareURL, f.Hook.CompareURL)
	if f.Hook.ShowOnlyLastCommit {
		hook.ShowOnlyLastCommit = true
	}
	if f.Hook.ShowFullCommit {
		hook.ShowFullCommit = true
	}
}
