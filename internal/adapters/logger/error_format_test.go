package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/modres/internal/adapters/logger"
	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
			wantMetadata: []map[string]any{{}},
		},
		{
			name:         "wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "resolution error",
			err:          domain.NewResolutionError(domain.ErrFileNotFound, "./src/missing", "/project"),
			wantMessages: []string{`cannot resolve "./src/missing"`, "file not found"},
			wantMetadata: []map[string]any{
				{"specifier": "./src/missing", "from": "/project"},
				{},
			},
		},
		{
			name:         "metadata on a standard error",
			err:          zerr.With(errors.New("permission denied"), "path", "/etc/shadow"),
			wantMessages: []string{"permission denied"},
			wantMetadata: []map[string]any{{"path": "/etc/shadow"}},
		},
		{
			name:         "nil",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			if tt.err == nil {
				assert.Empty(t, entries)
				return
			}

			assert.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message, "message at %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata at %d", i)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name: "causes",
			entries: []logger.ErrorEntry{
				{Message: "first"},
				{Message: "second"},
				{Message: "third"},
			},
			want: "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{
				{Message: "error", Metadata: map[string]any{"zebra": "z", "alpha": "a"}},
				{Message: "cause", Metadata: map[string]any{"k": 1}},
			},
			want: "Error: error\n       alpha: a\n       zebra: z\n\n  Caused by:\n    → cause\n      k: 1",
		},
		{
			name: "multiline",
			entries: []logger.ErrorEntry{
				{Message: "line1\nline2"},
				{Message: "cause1\ncause2"},
			},
			want: "Error: line1\n       line2\n\n  Caused by:\n    → cause1\n      cause2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
