package model

// ObjectType is the git object type a revision resolves to.
type ObjectType string

const (
	ObjectCommit ObjectType = "commit"
	ObjectTag    ObjectType = "tag"
)

// CommitRecord is one parsed unit of the commit log. Body holds the subject,
// or the subject plus the full message when full output is requested, as a
// single textual field.
type CommitRecord struct {
	Author string
	Hash   string
	Body   string
}

// LogQuery describes one commit log read. The result covers commits reachable
// from Target but not from Origin, newest first.
type LogQuery struct {
	Origin string
	Target string
	Format string
	Limit  int // most recent N only; 0 means no limit
}
