// Package goldmark cross-checks the line-start scanner against the goldmark
// CommonMark parser. It parses a file with goldmark, records the line on
// which each blockquote, list item and task checkbox begins, and compares
// those lines with what the scanner found, in both directions.
package goldmark

import (
	"context"
	"fmt"
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdprefix/pkg/blockprefix"
	"github.com/yaklabco/mdprefix/pkg/mdast"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Start is a container opening reported by goldmark.
type Start struct {
	// Kind is the container kind.
	Kind blockprefix.Kind

	// Line is the 1-based line the container opens on, or 0 when goldmark
	// gives no position for it (e.g. an item that opens with a fenced code
	// block or is empty).
	Line int

	// Char is the list marker byte for list items.
	Char byte

	// Checked is the state of a task checkbox.
	Checked bool

	// Nested is set when the container sits inside an enclosing list item.
	Nested bool
}

// Parser wraps a goldmark instance configured for one flavor.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a new goldmark-based parser for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Outline is what goldmark reports about one file's container structure.
type Outline struct {
	// Starts lists every container opening in document order.
	Starts []Start

	// Opaque lists, in ascending order, lines whose text goldmark reads as
	// code, raw HTML or paragraph continuation. A marker-like prefix on
	// such a line opens nothing.
	Opaque []int
}

// Starts parses the snapshot and returns every container opening in
// document order.
func (p *Parser) Starts(ctx context.Context, snap *mdast.FileSnapshot) ([]Start, error) {
	outline, err := p.Outline(ctx, snap)
	if err != nil {
		return nil, err
	}
	return outline.Starts, nil
}

// Outline parses the snapshot and returns its container openings together
// with the lines no container can open on.
func (p *Parser) Outline(ctx context.Context, snap *mdast.FileSnapshot) (Outline, error) {
	if err := ctx.Err(); err != nil {
		return Outline{}, fmt.Errorf("parse cancelled: %w", err)
	}

	reader := text.NewReader(snap.Content)
	doc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return Outline{}, fmt.Errorf("parse cancelled: %w", err)
	}

	collector := &startCollector{snap: snap, opaque: make(map[int]struct{})}
	if err := ast.Walk(doc, collector.visit); err != nil {
		return Outline{}, fmt.Errorf("walk %s: %w", snap.Path, err)
	}

	opaque := make([]int, 0, len(collector.opaque))
	for line := range collector.opaque {
		opaque = append(opaque, line)
	}
	slices.Sort(opaque)

	return Outline{Starts: collector.starts, Opaque: opaque}, nil
}

// startCollector gathers Start values during an ast.Walk.
type startCollector struct {
	snap   *mdast.FileSnapshot
	starts []Start
	opaque map[int]struct{}

	// itemDepth counts the list items enclosing the current node.
	itemDepth int
}

func (c *startCollector) visit(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Blockquote:
		if entering {
			c.starts = append(c.starts, Start{
				Kind:   blockprefix.KindBlockquote,
				Line:   c.anchorLine(n),
				Char:   '>',
				Nested: c.itemDepth > 0,
			})
		}

	case *ast.ListItem:
		if !entering {
			c.itemDepth--
			return ast.WalkContinue, nil
		}

		start := Start{
			Kind:   blockprefix.KindBullet,
			Line:   c.anchorLine(n),
			Nested: c.itemDepth > 0,
		}
		if list, ok := n.Parent().(*ast.List); ok {
			start.Char = list.Marker
			if list.IsOrdered() {
				start.Kind = blockprefix.KindOrdered
			}
		}
		c.starts = append(c.starts, start)
		c.itemDepth++

	case *east.TaskCheckBox:
		if entering {
			c.starts = append(c.starts, Start{
				Kind:    blockprefix.KindTask,
				Line:    c.blockLine(n.Parent()),
				Checked: n.IsChecked,
				Nested:  c.itemDepth > 1,
			})
		}

	case *ast.CodeBlock, *ast.FencedCodeBlock:
		if entering {
			c.markOpaque(n, 0)
		}

	case *ast.HTMLBlock:
		if entering {
			c.markOpaque(n, 0)
			if n.HasClosure() {
				c.opaque[c.snap.PositionAt(n.ClosureLine.Start).Line] = struct{}{}
			}
		}

	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			c.markOpaque(n, 1)
		}
	}

	return ast.WalkContinue, nil
}

// markOpaque records the lines of block's segments, skipping the first
// skip segments.
func (c *startCollector) markOpaque(block ast.Node, skip int) {
	lines := block.Lines()
	if lines == nil {
		return
	}
	for i := skip; i < lines.Len(); i++ {
		c.opaque[c.snap.PositionAt(lines.At(i).Start).Line] = struct{}{}
	}
}

// anchorLine finds the line a container opens on by following first
// children down to a leaf block whose first line goldmark records.
func (c *startCollector) anchorLine(container ast.Node) int {
	for child := container.FirstChild(); child != nil; child = child.FirstChild() {
		switch child.(type) {
		case *ast.Blockquote, *ast.List, *ast.ListItem:
			continue
		case *ast.Paragraph, *ast.TextBlock, *ast.Heading, *ast.CodeBlock, *ast.HTMLBlock:
			return c.blockLine(child)
		default:
			return 0
		}
	}
	return 0
}

// blockLine returns the line of a block node's first segment.
func (c *startCollector) blockLine(block ast.Node) int {
	if block == nil || block.Type() != ast.TypeBlock {
		return 0
	}
	lines := block.Lines()
	if lines == nil || lines.Len() == 0 {
		return 0
	}
	return c.snap.PositionAt(lines.At(0).Start).Line
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}
