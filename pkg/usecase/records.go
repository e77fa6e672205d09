package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/m-mizutani/pushbell/pkg/domain/model"
)

// Fields per commit record: author, abbreviated hash, body.
const recordFieldCount = 3

// NewBoundary returns the record separator used to frame commit log output.
// Commit messages may contain arbitrary characters, so records cannot be
// split on any fixed single character; a fresh random boundary per process
// makes a collision with message text vanishingly unlikely.
func NewBoundary() string {
	return uuid.NewString() + uuid.NewString()
}

// NextRecord splits one separator-framed record off the front of stream,
// assigning each chunk before a separator to the next field slot. Records are
// newline-padded by the log source, so trailing newlines are stripped from
// the remaining stream. A truncated stream yields empty trailing fields.
func NextRecord(stream, sep string, n int) ([]string, string) {
	fields := make([]string, n)
	rest := stream
	for i := 0; i < n; i++ {
		field, after, found := strings.Cut(rest, sep)
		fields[i] = field
		if !found {
			rest = ""
			return fields, rest
		}
		rest = after
	}
	return fields, strings.TrimLeft(rest, "\n")
}

// parseCommitRecords consumes the whole stream one record at a time.
func parseCommitRecords(stream, sep string) []model.CommitRecord {
	var records []model.CommitRecord
	for stream != "" {
		fields, rest := NextRecord(stream, sep, recordFieldCount)
		records = append(records, model.CommitRecord{
			Author: fields[0],
			Hash:   fields[1],
			Body:   fields[2],
		})
		stream = rest
	}
	return records
}
