package outline

import (
	"fmt"

	latex "github.com/eolymp/go-latexdoc"
)

// Node is an element of the outline body. Type selects the component, the rest of the fields are used
// depending on the type.
type Node struct {
	Type    string     `yaml:"type"`
	Title   string     `yaml:"title"`   // part, chapter, section, subsection, frame, block
	Name    string     `yaml:"name"`    // environment, input, math character, macro to call
	Text    string     `yaml:"text"`    // text, raw
	Style   string     `yaml:"style"`   // text
	List    string     `yaml:"list"`    // list: itemize or enumerate
	Op      string     `yaml:"op"`      // math
	Left    string     `yaml:"left"`    // math surround
	Right   string     `yaml:"right"`   // math surround
	Path    string     `yaml:"path"`    // image, figure
	Caption string     `yaml:"caption"` // figure
	Key     string     `yaml:"key"`     // label, ref
	Args    []string   `yaml:"args"`    // call, math
	Options []string   `yaml:"options"` // environment, list, image, figure
	Columns string     `yaml:"columns"` // table column spec, like |l|c|
	Head    []string   `yaml:"head"`    // table
	Rows    [][]string `yaml:"rows"`    // table
	Body    []Node     `yaml:"body"`
}

var unaryOps = map[string]func(*latex.Text) *latex.Builtin{
	"ensuremath": latex.EnsureMath,
	"sin":        latex.Sin,
	"cos":        latex.Cos,
	"tan":        latex.Tan,
	"log":        latex.Log,
	"ln":         latex.Ln,
	"lg":         latex.Lg,
	"arg":        latex.Arg,
	"min":        latex.Min,
	"max":        latex.Max,
}

type builder struct {
	doc *latex.Document
}

func (b *builder) build(n Node, path string) (latex.Component, error) {
	c, err := b.component(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if len(n.Body) == 0 {
		return c, nil
	}

	var children []latex.Component
	for i, child := range n.Body {
		cc, err := b.build(child, fmt.Sprintf("%s.body[%d]", path, i))
		if err != nil {
			return nil, err
		}

		children = append(children, cc)
	}

	if err := latex.AttachAll(c, children...); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

func (b *builder) component(n Node) (latex.Component, error) {
	switch n.Type {
	case "part":
		return latex.NewPart(n.Title), nil
	case "chapter":
		return latex.NewChapter(n.Title), nil
	case "section":
		return latex.NewSection(n.Title), nil
	case "subsection":
		return latex.NewSubsection(n.Title), nil
	case "paragraph":
		return latex.NewParagraph(), nil
	case "line":
		return latex.NewLine(), nil
	case "frame":
		return latex.NewFrame(n.Title), nil
	case "block":
		return latex.NewBlock(n.Title), nil
	case "environment":
		env := latex.NewEnvironment(n.Name)
		env.Options = n.Options
		return env, nil
	case "list":
		typ := latex.Itemize
		if n.List != "" {
			var err error
			if typ, err = latex.ParseListType(n.List); err != nil {
				return nil, err
			}
		}

		list := latex.NewList(typ)
		list.Options = n.Options
		return list, nil
	case "text":
		return text(n.Text, n.Style)
	case "raw":
		return latex.Command(n.Text), nil
	case "call":
		return b.doc.Call(n.Name, n.Args...)
	case "math":
		return math(n)
	case "image":
		return latex.NewImage(n.Path, n.Options...), nil
	case "figure":
		fig := latex.NewFigure(latex.NewImage(n.Path), n.Caption)
		fig.Options = n.Options
		return fig, nil
	case "input":
		return latex.NewInput(n.Name), nil
	case "label":
		return latex.ParseLabel(n.Key), nil
	case "ref":
		return latex.ParseReference(n.Key), nil
	case "table":
		return table(n), nil
	default:
		return nil, fmt.Errorf("node type %#v: %w", n.Type, latex.ErrVariantUndefined)
	}
}

func text(body, style string) (*latex.Text, error) {
	s := latex.Normal
	if style != "" {
		var err error
		if s, err = latex.ParseTextStyle(style); err != nil {
			return nil, err
		}
	}

	return latex.NewText(body, s), nil
}

func math(n Node) (latex.Component, error) {
	operand := func(i int) *latex.Text {
		if i < len(n.Args) {
			return latex.NewText(n.Args[i], latex.Normal)
		}

		return latex.NewText("", latex.Normal)
	}

	if op, ok := unaryOps[n.Op]; ok {
		return op(operand(0)), nil
	}

	switch n.Op {
	case "sum":
		return latex.Sum(operand(0), operand(1)), nil
	case "prod":
		return latex.Prod(operand(0), operand(1)), nil
	case "char":
		return latex.Character(n.Name), nil
	case "surround":
		return latex.Surround(first(n.Left, '('), operand(0), first(n.Right, ')')), nil
	default:
		return nil, fmt.Errorf("math operator %#v: %w", n.Op, latex.ErrVariantUndefined)
	}
}

func first(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}

	return fallback
}

func table(n Node) *latex.Table {
	head := latex.TextRow(n.Head...)

	var t *latex.Table
	if n.Columns != "" {
		t = latex.NewTableSpec(n.Columns, head)
	} else {
		t = latex.NewTable(len(n.Head), head)
	}

	for _, row := range n.Rows {
		t.Add(latex.TextRow(row...))
	}

	return t
}
