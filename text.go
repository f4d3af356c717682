package latex

import (
	"fmt"
	"io"
	"os"
)

// TextStyle defines how text body is wrapped when rendered.
type TextStyle int

const (
	Normal TextStyle = iota
	Bold
	Italic
	Teletype
	MathBold
	MathCal
	MathBb
	MathRm
	Underlined
	InlineMath
	DisplayMath
	Scope
	Verbatim
	Strikethrough
)

var styleNames = map[string]TextStyle{
	"normal":        Normal,
	"bold":          Bold,
	"italic":        Italic,
	"teletype":      Teletype,
	"mathbf":        MathBold,
	"mathcal":       MathCal,
	"mathbb":        MathBb,
	"mathrm":        MathRm,
	"underline":     Underlined,
	"inline":        InlineMath,
	"display":       DisplayMath,
	"scope":         Scope,
	"verbatim":      Verbatim,
	"strikethrough": Strikethrough,
}

// ParseTextStyle converts style name (normal, bold, italic, inline, display etc) into a TextStyle.
func ParseTextStyle(raw string) (TextStyle, error) {
	if style, ok := styleNames[raw]; ok {
		return style, nil
	}

	return Normal, fmt.Errorf("text style %#v: %w", raw, ErrVariantUndefined)
}

// Text is a span of text, typically placed in a Paragraph or a Line.
type Text struct {
	Body  string
	Style TextStyle
}

func NewText(body string, style TextStyle) *Text {
	return &Text{Body: body, Style: style}
}

// ReadText reads the whole file into a text span. The content is passed through esc, nil keeps it as is.
func ReadText(path string, style TextStyle, esc Escaper) (*Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	body := string(data)
	if esc != nil {
		body = esc(body)
	}

	return &Text{Body: body, Style: style}, nil
}

func (t *Text) Kind() Kind { return TextKind }

// attach concatenates bodies of other text spans, other components are rejected.
func (t *Text) attach(children ...Component) error {
	for _, child := range children {
		if _, ok := child.(*Text); !ok {
			return &RankError{Child: Rank(child), Parent: Rank(t)}
		}
	}

	for _, child := range children {
		t.Body += child.(*Text).Body
	}

	return nil
}

func (t *Text) render(w io.Writer) error {
	var err error

	switch t.Style {
	case Italic:
		_, err = fmt.Fprint(w, "\\textit{", t.Body, "} ")
	case Bold:
		_, err = fmt.Fprint(w, "\\textbf{", t.Body, "} ")
	case Teletype:
		_, err = fmt.Fprint(w, "\\texttt{", t.Body, "} ")
	case MathBold:
		_, err = fmt.Fprint(w, "\\mathbf{", t.Body, "} ")
	case MathCal:
		_, err = fmt.Fprint(w, "\\mathcal{", t.Body, "} ")
	case MathBb:
		_, err = fmt.Fprint(w, "\\mathbb{", t.Body, "} ")
	case MathRm:
		_, err = fmt.Fprint(w, "\\mathrm{", t.Body, "} ")
	case Underlined:
		_, err = fmt.Fprint(w, "\\underline{", t.Body, "} ")
	case InlineMath:
		_, err = fmt.Fprint(w, "\\(", t.Body, "\\)")
	case DisplayMath:
		_, err = fmt.Fprint(w, "\\[", t.Body, "\\]")
	case Scope:
		_, err = fmt.Fprint(w, "\\{", t.Body, "\\}")
	case Verbatim:
		_, err = fmt.Fprint(w, "\\verb|", t.Body, "|")
	case Strikethrough:
		_, err = fmt.Fprint(w, "\\sout{", t.Body, "} ")
	default:
		_, err = fmt.Fprint(w, t.Body, " ")
	}

	return err
}
