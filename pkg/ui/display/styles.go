package display

import "github.com/charmbracelet/lipgloss"

// Renderer applies terminal styles to report fragments. With color disabled
// every style is a no-op, so output stays clean in pipes and logs.
type Renderer struct {
	header  lipgloss.Style
	path    lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

// NewRenderer creates a Renderer, styled or plain.
func NewRenderer(color bool) *Renderer {
	if !color {
		plain := lipgloss.NewStyle()
		return &Renderer{
			header:  plain,
			path:    plain,
			success: plain,
			err:     plain,
			muted:   plain,
		}
	}
	return &Renderer{
		header:  lipgloss.NewStyle().Bold(true),
		path:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Italic(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (r *Renderer) Header(s string) string  { return r.header.Render(s) }
func (r *Renderer) Path(s string) string    { return r.path.Render(s) }
func (r *Renderer) Success(s string) string { return r.success.Render(s) }
func (r *Renderer) Error(s string) string   { return r.err.Render(s) }
func (r *Renderer) Muted(s string) string   { return r.muted.Render(s) }
