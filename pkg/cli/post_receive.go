package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pushbell/pkg/cli/config"
	"github.com/m-mizutani/pushbell/pkg/controller/hook"
	"github.com/m-mizutani/pushbell/pkg/domain/interfaces"
	"github.com/m-mizutani/pushbell/pkg/infra/gitrepo"
	"github.com/m-mizutani/pushbell/pkg/infra/slack"
	"github.com/m-mizutani/pushbell/pkg/usecase"
)

func cmdPostReceive() *cli.Command {
	var (
		slackCfg   config.Slack
		hookCfg    config.Hook
		configPath string
	)

	flags := append(slackCfg.Flags(), hookCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "config",
		Usage:       "TOML configuration file",
		Destination: &configPath,
		Sources:     cli.EnvVars("PUSHBELL_CONFIG"),
	})

	return &cli.Command{
		Name:    "post-receive",
		Aliases: []string{"hook"},
		Usage:   "Read ref updates from stdin and post push notifications",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			repo, err := gitrepo.Open(hookCfg.RepoPath)
			if err != nil {
				return err
			}

			// Precedence: flags/env > config file > git config.
			if configPath != "" {
				file, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				file.Apply(&slackCfg, &hookCfg)
			}
			slackCfg.Fill(repo.ConfigValue)
			hookCfg.Fill(repo.ConfigValue)

			if err := slackCfg.Validate(); err != nil {
				printWebhookGuidance(os.Stderr)
				return err
			}

			filter, err := hookCfg.CompileFilter()
			if err != nil {
				return err
			}
			if hookCfg.RepoName == "" {
				hookCfg.RepoName = repo.Name()
			}

			var notifier interfaces.Notifier
			if slackCfg.DryRun {
				notifier = slack.NewDryRun(os.Stdout, slackCfg.Overrides())
			} else {
				notifier = slack.NewWebhook(slackCfg.WebhookURL, slack.WithOverrides(slackCfg.Overrides()))
			}

			uc := usecase.NewNotify(repo, repo, notifier, usecase.Settings{
				RepoName:           hookCfg.RepoName,
				RepoPath:           repo.Path(),
				ReposRoot:          hookCfg.ReposRoot,
				BranchFilter:       filter,
				ChangesetURL:       hookCfg.ChangesetURL,
				CompareURL:         hookCfg.CompareURL,
				ShowOnlyLastCommit: hookCfg.ShowOnlyLastCommit,
				ShowFullCommit:     hookCfg.ShowFullCommit,
			})

			logger.Info("processing ref updates",
				slog.String("repo", hookCfg.RepoName),
				slog.String("path", repo.Path()),
				slog.Bool("dry_run", slackCfg.DryRun),
			)

			return hook.NewRunner(uc).Run(ctx, os.Stdin)
		},
	}
}

func printWebhookGuidance(w io.Writer) {
	warn := color.New(color.FgYellow, color.Bold).FprintlnFunc()
	warn(w, "pushbell: no Slack webhook URL is configured")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Set one of the following and push again:")
	fmt.Fprintln(w, "  git config hooks.slack.webhook-url <url>")
	fmt.Fprintln(w, "  PUSHBELL_WEBHOOK_URL=<url>")
	fmt.Fprintln(w, "  pushbell post-receive --webhook-url <url>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Optional keys: hooks.slack.channel, hooks.slack.username,")
	fmt.Fprintln(w, "  hooks.slack.icon-url, hooks.slack.icon-emoji,")
	fmt.Fprintln(w, "  hooks.slack.repo-nice-name, hooks.slack.branch-regexp,")
	fmt.Fprintln(w, "  hooks.slack.changeset-url-pattern, hooks.slack.compare-url-pattern,")
	fmt.Fprintln(w, "  hooks.slack.repos-root, hooks.slack.show-only-last-commit,")
	fmt.Fprintln(w, "  hooks.slack.show-full-commit")
}
