package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/pushbell/pkg/domain/model"
)

// Placeholders recognized in changeset and compare URL patterns.
const (
	phRepoPath   = "%repo_path%"
	phOldRevHash = "%old_rev_hash%"
	phNewRevHash = "%new_rev_hash%"
	phRevHash    = "%rev_hash%"
	phRepoPrefix = "%repo_prefix%"
)

// Compose builds the notification for one classified ref update. records are
// expected newest first as emitted by the log source; an empty list yields a
// notification with no attachment lines.
func Compose(ev *model.ClassifiedEvent, records []model.CommitRecord, st Settings) model.Notification {
	return model.Notification{
		Header: composeHeader(ev, len(records), st),
		Lines:  composeLines(ev, records, st),
	}
}

func composeHeader(ev *model.ClassifiedEvent, count int, st Settings) string {
	var b strings.Builder
	switch ev.Change {
	case model.ChangeCreate:
		fmt.Fprintf(&b, "New %s *%s* has been created in %s", ev.Kind, ev.ShortName, st.RepoName)
	case model.ChangeDelete:
		fmt.Fprintf(&b, "%s *%s* has been deleted from %s", capitalize(string(ev.Kind)), ev.ShortName, st.RepoName)
	case model.ChangeUpdate:
		if count == 1 {
			fmt.Fprintf(&b, "A new commit has been *pushed* to *%s* in %s", ev.ShortName, st.RepoName)
		} else {
			fmt.Fprintf(&b, "%s *pushed* to *%s* in %s", countPhrase(ev, count, st), ev.ShortName, st.RepoName)
		}
	}

	if st.ShowOnlyLastCommit && ev.Change != model.ChangeDelete {
		noun := "commit"
		if count > 1 {
			noun = "one"
		}
		fmt.Fprintf(&b, ", showing last %s:", noun)
	}

	return b.String()
}

// countPhrase renders the "N new commits" part of the update header. The
// compare link wraps the phrase as a typed part of the header rather than
// being spliced in afterwards; the singular header carries no count token, so
// only the plural form can link.
func countPhrase(ev *model.ClassifiedEvent, count int, st Settings) string {
	phrase := fmt.Sprintf("%d new commits", count)
	if st.CompareURL != "" && ev.Kind == model.RefBranch {
		return fmt.Sprintf("<%s|%s>", expandURL(st.CompareURL, ev, "", st), phrase)
	}
	return phrase
}

func composeLines(ev *model.ClassifiedEvent, records []model.CommitRecord, st Settings) []model.AttachmentLine {
	if ev.Change == model.ChangeDelete {
		return nil
	}
	if st.ShowOnlyLastCommit && len(records) > 1 {
		records = records[:1]
	}

	linkable := st.ChangesetURL != "" && ev.Kind == model.RefBranch
	lines := make([]model.AttachmentLine, 0, len(records))
	for _, rec := range records {
		value := rec.Body
		if linkable {
			url := expandURL(st.ChangesetURL, ev, rec.Hash, st)
			value = fmt.Sprintf("<%s|%s> %s", url, rec.Hash, rec.Body)
		}
		lines = append(lines, model.AttachmentLine{Title: rec.Author, Value: value})
	}
	return lines
}

func expandURL(pattern string, ev *model.ClassifiedEvent, rev string, st Settings) string {
	return strings.NewReplacer(
		phRepoPath, st.relativeRepoPath(),
		phOldRevHash, ev.OldID,
		phNewRevHash, ev.NewID,
		phRevHash, rev,
		phRepoPrefix, st.ReposRoot,
	).Replace(pattern)
}

// relativeRepoPath is the repository path relative to the repos root, without
// the bare ".git" suffix.
func (st Settings) relativeRepoPath() string {
	p := st.RepoPath
	if st.ReposRoot != "" {
		p = strings.TrimPrefix(p, strings.TrimSuffix(st.ReposRoot, "/"))
		p = strings.TrimPrefix(p, string(filepath.Separator))
	}
	return strings.TrimSuffix(p, ".git")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
