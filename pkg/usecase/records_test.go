package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/pushbell/pkg/usecase"
)

func TestNextRecord(t *testing.T) {
	sep := usecase.NewBoundary()

	t.Run("round trip", func(t *testing.T) {
		// Bodies deliberately contain newlines, pipes and lone separator-ish
		// text; only the exact boundary string is off limits.
		records := [][2]string{
			{"Alice", "fix: handle empty input\n\nLong explanation | with pipes"},
			{"Bob", "feat: add tags"},
			{"Carol", "merge 'release/1.0'\n\n* subject one\n* subject two"},
		}

		var b strings.Builder
		for i, rec := range records {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(rec[0])
			b.WriteString(sep)
			b.WriteString(rec[1])
			b.WriteString(sep)
		}

		stream := b.String()
		var got [][2]string
		for stream != "" {
			fields, rest := usecase.NextRecord(stream, sep, 2)
			got = append(got, [2]string{fields[0], fields[1]})
			stream = rest
		}

		gt.V(t, len(got)).Equal(len(records))
		for i := range records {
			gt.V(t, got[i]).Equal(records[i])
		}
	})

	t.Run("strips newline padding between records", func(t *testing.T) {
		stream := "a" + sep + "b" + sep + "\n\nnext"
		fields, rest := usecase.NextRecord(stream, sep, 2)
		gt.V(t, fields[0]).Equal("a")
		gt.V(t, fields[1]).Equal("b")
		gt.V(t, rest).Equal("next")
	})

	t.Run("truncated stream yields empty trailing fields", func(t *testing.T) {
		fields, rest := usecase.NextRecord("only-author", sep, 3)
		gt.V(t, fields[0]).Equal("only-author")
		gt.V(t, fields[1]).Equal("")
		gt.V(t, fields[2]).Equal("")
		gt.V(t, rest).Equal("")
	})

	t.Run("boundary is fresh and long", func(t *testing.T) {
		a := usecase.NewBoundary()
		b := usecase.NewBoundary()
		gt.V(t, a).NotEqual(b)
		gt.V(t, len(a) >= 64).Equal(true)
	})
}
