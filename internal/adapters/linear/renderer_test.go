package linear_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modres/internal/adapters/linear"
	"go.trai.ch/modres/internal/core/domain"
)

func sampleResults() []domain.Resolution {
	from := "/project"
	return []domain.Resolution{
		domain.NewResolution(
			domain.ResolutionRequest{Specifier: "left-pad", From: from},
			domain.KindLibrary, "/project/node_modules/left-pad/index.js", nil,
		),
		domain.NewResolution(
			domain.ResolutionRequest{Specifier: "fs", From: from},
			domain.KindBuiltin, "fs", nil,
		),
		domain.NewResolution(
			domain.ResolutionRequest{Specifier: "./missing", From: from},
			domain.KindFile, "", domain.NewResolutionError(domain.ErrFileNotFound, "./missing", from),
		),
	}
}

func TestRenderer_Modes(t *testing.T) {
	tests := []struct {
		mode       linear.Mode
		goldenName string
	}{
		{mode: linear.ModePretty, goldenName: "render_pretty"},
		{mode: linear.ModePlain, goldenName: "render_plain"},
		{mode: linear.ModeJSON, goldenName: "render_json"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			r := linear.NewRenderer(buf, tt.mode)
			require.NoError(t, r.Render(sampleResults()))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestRenderer_DefaultsToPretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	r := linear.NewRenderer(buf, "")
	require.NoError(t, r.Render(sampleResults()[:1]))

	assert.Equal(t, "✓ left-pad [library] → /project/node_modules/left-pad/index.js\n", buf.String())
}

func TestRenderer_JSONEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	r := linear.NewRenderer(buf, linear.ModeJSON)
	require.NoError(t, r.Render(nil))

	assert.JSONEq(t, "[]", buf.String())
}
