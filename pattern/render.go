package pattern

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorAttr selects the render role a color applies to.
type ColorAttr int

const (
	ValueColor ColorAttr = iota
	SepColor
	EllipsisColor
)

// Colors maps render roles to sprint functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

// NewColors returns the default color scheme.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[ValueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[SepColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[EllipsisColor] = color.RGB(96, 96, 96).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// AutoColors returns the default color scheme when w is a terminal, nil
// otherwise.
func AutoColors(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	return NewColors()
}

func (c *Colors) get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

type renderState struct {
	maxDepth    int
	headLen     int
	truncateLen int
	format      func(any) string
	colors      *Colors
}

// RenderOption configures Render.
type RenderOption func(*renderState)

// MaxDepth bounds nesting in the rendering; deeper subtrees render as "...".
func MaxDepth(n int) RenderOption {
	return func(rs *renderState) { rs.maxDepth = n }
}

// MaxElements sets the element-count threshold beyond which an element list
// is truncated to its head.
func MaxElements(n int) RenderOption {
	return func(rs *renderState) { rs.truncateLen = n }
}

// HeadElements sets how many leading elements of a truncated list render.
func HeadElements(n int) RenderOption {
	return func(rs *renderState) { rs.headLen = n }
}

// FormatValue overrides the value formatter, which defaults to fmt.Sprint.
func FormatValue(f func(any) string) RenderOption {
	return func(rs *renderState) { rs.format = f }
}

// WithColors enables colored output. A nil Colors leaves output plain.
func WithColors(c *Colors) RenderOption {
	return func(rs *renderState) { rs.colors = c }
}

// Render returns a bounded human-readable form of p: "(value elem elem)".
// Depth is truncated at the configured bound so a pathologically deep
// pattern cannot produce unbounded output, and long element lists render
// only their head plus an element count.
func Render[V any](p Pattern[V], opts ...RenderOption) string {
	rs := &renderState{
		maxDepth:    10,
		headLen:     5,
		truncateLen: 10,
		format:      func(v any) string { return fmt.Sprint(v) },
	}
	for _, opt := range opts {
		opt(rs)
	}
	var sb strings.Builder
	render(&sb, rs, p, 0)
	return sb.String()
}

func render[V any](sb *strings.Builder, rs *renderState, p Pattern[V], depth int) {
	if depth > rs.maxDepth {
		sb.WriteString(rs.paint(EllipsisColor, "..."))
		return
	}
	sb.WriteString(rs.paint(SepColor, "("))
	sb.WriteString(rs.paint(ValueColor, rs.format(p.Value)))
	for i, e := range p.Elements {
		sb.WriteByte(' ')
		if i >= rs.headLen && len(p.Elements) > rs.truncateLen {
			sb.WriteString(rs.paint(EllipsisColor, fmt.Sprintf("... (%d more)", len(p.Elements)-rs.headLen)))
			break
		}
		render(sb, rs, e, depth+1)
	}
	sb.WriteString(rs.paint(SepColor, ")"))
}

func (rs *renderState) paint(a ColorAttr, s string) string {
	if rs.colors == nil {
		return s
	}
	return rs.colors.get(a)(s)
}
