// Package linear provides a line-oriented renderer for resolution results.
package linear

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
	"go.trai.ch/modres/internal/ui/output"
	"go.trai.ch/modres/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Mode selects how results are written.
type Mode string

const (
	// ModePretty writes one colored line per result.
	ModePretty Mode = "pretty"
	// ModePlain writes only the resolved paths, one per line.
	ModePlain Mode = "plain"
	// ModeJSON writes the results as a JSON array.
	ModeJSON Mode = "json"
)

// Renderer implements ports.Renderer on a writer.
type Renderer struct {
	mu     sync.Mutex
	w      io.Writer
	output *termenv.Output
	mode   Mode
}

// NewRenderer creates a new Renderer writing to w, or stdout when w is nil.
func NewRenderer(w io.Writer, mode Mode) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	if mode == "" {
		mode = ModePretty
	}
	return &Renderer{
		w:      w,
		output: output.New(w),
		mode:   mode,
	}
}

// Render writes results in the renderer's mode.
func (r *Renderer) Render(results []domain.Resolution) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.mode {
	case ModeJSON:
		return r.renderJSON(results)
	case ModePlain:
		return r.renderPlain(results)
	default:
		return r.renderPretty(results)
	}
}

func (r *Renderer) renderJSON(results []domain.Resolution) error {
	if results == nil {
		results = []domain.Resolution{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode results")
	}
	_, err = fmt.Fprintf(r.w, "%s\n", data)
	return err
}

// renderPlain skips failures; they are reported through the logger.
func (r *Renderer) renderPlain(results []domain.Resolution) error {
	for _, res := range results {
		if !res.OK() {
			continue
		}
		if _, err := fmt.Fprintln(r.w, res.Path); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderPretty(results []domain.Resolution) error {
	for _, res := range results {
		kind := r.output.String("[" + string(res.Kind) + "]").
			Foreground(termenv.RGBColor(string(style.KindColor(string(res.Kind))))).String()

		var line string
		if res.OK() {
			icon := r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
			arrow := r.output.String(style.Arrow).Faint().String()
			line = fmt.Sprintf("%s %s %s %s %s", icon, res.Specifier, kind, arrow, res.Path)
		} else {
			icon := r.output.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
			msg := r.output.String(res.Error).Foreground(termenv.RGBColor(string(style.Red))).String()
			line = fmt.Sprintf("%s %s %s: %s", icon, res.Specifier, kind, msg)
		}

		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}
