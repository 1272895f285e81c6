// Package render draws a computed path as a Graphviz graph.
//
// ToDOT emits a DOT document whose nodes are pinned at the point
// coordinates (neato layout, pos="x,y!") and whose edges follow the path
// order. RenderSVG lays the document out in-process with
// [github.com/goccy/go-graphviz] and returns SVG bytes.
//
//	dot := render.ToDOT(path, render.Options{Scale: 0.1, Closed: true})
//	svg, err := render.RenderSVG(ctx, dot)
package render
