package model_test

import (
	"testing"

	"github.com/m-mizutani/pushbell/pkg/domain/model"
)

func TestIsZeroID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{
			name:     "all-zero sentinel",
			id:       "0000000000000000000000000000000000000000",
			expected: true,
		},
		{
			name:     "regular commit id",
			id:       "a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0",
			expected: false,
		},
		{
			name:     "short zero string",
			id:       "0000000",
			expected: false,
		},
		{
			name:     "empty string",
			id:       "",
			expected: false,
		},
		{
			name:     "sha256 zero id",
			id:       "0000000000000000000000000000000000000000000000000000000000000000",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.IsZeroID(tt.id); got != tt.expected {
				t.Errorf("IsZeroID(%q) = %v, want %v", tt.id, got, tt.expected)
			}
		})
	}
}

func TestChangeTypeOf(t *testing.T) {
	const (
		zero = "0000000000000000000000000000000000000000"
		rev  = "a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0"
		rev2 = "b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0a1"
	)

	tests := []struct {
		name     string
		oldID    string
		newID    string
		expected model.ChangeType
		ok       bool
	}{
		{
			name:     "create",
			oldID:    zero,
			newID:    rev,
			expected: model.ChangeCreate,
			ok:       true,
		},
		{
			name:     "delete",
			oldID:    rev,
			newID:    zero,
			expected: model.ChangeDelete,
			ok:       true,
		},
		{
			name:     "update",
			oldID:    rev,
			newID:    rev2,
			expected: model.ChangeUpdate,
			ok:       true,
		},
		{
			name:  "both zero is undefined",
			oldID: zero,
			newID: zero,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := model.ChangeTypeOf(tt.oldID, tt.newID)
			if ok != tt.ok {
				t.Fatalf("ChangeTypeOf() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("ChangeTypeOf() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseRefUpdate(t *testing.T) {
	ev, err := model.ParseRefUpdate("aaa bbb refs/heads/main")
	if err != nil {
		t.Fatalf("ParseRefUpdate() unexpected error = %v", err)
	}
	if ev.OldID != "aaa" || ev.NewID != "bbb" || ev.RefName != "refs/heads/main" {
		t.Errorf("ParseRefUpdate() = %+v", ev)
	}

	for _, line := range []string{"", "one two", "one two three four"} {
		if _, err := model.ParseRefUpdate(line); err == nil {
			t.Errorf("ParseRefUpdate(%q) should fail", line)
		}
	}
}

func TestRefPrefix(t *testing.T) {
	tests := []struct {
		ref      string
		expected string
	}{
		{"refs/heads/main", model.RefsHeads},
		{"refs/tags/v1.0.0", model.RefsTags},
		{"refs/remotes/origin/main", model.RefsRemotes},
		{"refs/notes/commits", ""},
		{"HEAD", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := model.RefPrefix(tt.ref); got != tt.expected {
				t.Errorf("RefPrefix(%q) = %q, want %q", tt.ref, got, tt.expected)
			}
		})
	}
}

func TestShortRefName(t *testing.T) {
	if got := model.ShortRefName("refs/heads/main"); got != "main" {
		t.Errorf("ShortRefName() = %q, want %q", got, "main")
	}
	if got := model.ShortRefName("refs/tags/v1.2.3"); got != "v1.2.3" {
		t.Errorf("ShortRefName() = %q, want %q", got, "v1.2.3")
	}
}
