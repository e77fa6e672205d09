package model

import (
	"strings"

	git "github.com/gogs/git-module"
	"github.com/m-mizutani/goerr/v2"
)

// Reference name prefixes recognized by the classifier.
const (
	RefsHeads   = git.RefsHeads
	RefsTags    = git.RefsTags
	RefsRemotes = "refs/remotes/"
)

// ZeroID is the all-zero object id marking an absent side of a ref update.
const ZeroID = git.EmptyID

// IsZeroID reports whether id is the all-zero sentinel.
func IsZeroID(id string) bool {
	if len(id) < 40 {
		return false
	}
	for _, c := range id {
		if c != '0' {
			return false
		}
	}
	return true
}

// RefUpdateEvent is a single "old new ref" triple read from post-receive
// input. It is immutable once read.
type RefUpdateEvent struct {
	OldID   string
	NewID   string
	RefName string
}

// ParseRefUpdate parses one post-receive input line into an event.
func ParseRefUpdate(line string) (*RefUpdateEvent, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, goerr.New("invalid ref update line", goerr.V("line", line))
	}
	return &RefUpdateEvent{
		OldID:   fields[0],
		NewID:   fields[1],
		RefName: fields[2],
	}, nil
}

// ShortRefName returns the short name of ref, e.g. "main" for
// "refs/heads/main".
func ShortRefName(ref string) string {
	return git.RefShortName(ref)
}

// ChangeType is the semantic nature of a ref update.
type ChangeType string

const (
	ChangeCreate ChangeType = "create"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// ChangeTypeOf derives the change type from the zero-id sentinels. The second
// return value is false when both sides are zero, which is not a valid
// standalone event.
func ChangeTypeOf(oldID, newID string) (ChangeType, bool) {
	switch {
	case IsZeroID(oldID) && IsZeroID(newID):
		return "", false
	case IsZeroID(oldID):
		return ChangeCreate, true
	case IsZeroID(newID):
		return ChangeDelete, true
	default:
		return ChangeUpdate, true
	}
}

// RefKind is the semantic category of an updated reference.
type RefKind string

const (
	RefBranch         RefKind = "branch"
	RefTrackingBranch RefKind = "tracking branch"
	RefTag            RefKind = "tag"
	RefAnnotatedTag   RefKind = "annotated tag"
)

// RefPrefix returns the recognized prefix of ref, or "" when the reference
// namespace is unknown.
func RefPrefix(ref string) string {
	for _, p := range []string{RefsHeads, RefsTags, RefsRemotes} {
		if strings.HasPrefix(ref, p) {
			return p
		}
	}
	return ""
}

// ClassifiedEvent is a ref update that produced a classification. RelevantID
// is the object id used for downstream lookups: the new id for create and
// update, the old id for delete.
type ClassifiedEvent struct {
	RefUpdateEvent

	Change     ChangeType
	Kind       RefKind
	ShortName  string
	RelevantID string
}
