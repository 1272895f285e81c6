package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/tourkit/geometry"
)

// DefaultScale maps one coordinate unit to one Graphviz point.
const DefaultScale = 1.0

// Options configures DOT output.
type Options struct {
	// Title is drawn as the graph label when non-empty.
	Title string

	// Scale multiplies every coordinate. Zero selects DefaultScale.
	Scale float64

	// Closed adds the return edge from the last point to the first.
	Closed bool

	// Labels prints the visit index inside each node.
	Labels bool
}

// ToDOT converts path to an undirected neato graph. Node i sits at path[i]
// scaled by opts.Scale; y is kept as is, so the origin is bottom-left.
func ToDOT(path geometry.Path, opts Options) string {
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
	}
	if opts.Labels {
		buf.WriteString("  node [shape=circle, fixedsize=true, width=0.3, fontsize=8];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.08];\n")
	}
	buf.WriteString("  edge [color=\"#2a7ab0\"];\n")
	buf.WriteString("\n")

	for i, p := range path {
		label := ""
		if opts.Labels {
			label = strconv.Itoa(i)
		}
		fmt.Fprintf(&buf, "  n%d [pos=\"%s,%s!\", label=%q];\n", i, fmtCoord(p.X*scale), fmtCoord(p.Y*scale), label)
	}

	buf.WriteString("\n")
	for i := 1; i < len(path); i++ {
		fmt.Fprintf(&buf, "  n%d -- n%d;\n", i-1, i)
	}
	if opts.Closed && len(path) > 2 {
		fmt.Fprintf(&buf, "  n%d -- n0 [style=dashed];\n", len(path)-1)
	}

	buf.WriteString("}\n")

	return buf.String()
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG lays out a DOT document with the neato engine, which honours
// the pinned positions ToDOT writes, and returns the SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
