package latex

import (
	"fmt"
	"io"
	"strings"
)

// Part is \part{}, available in book class only.
type Part struct {
	content
	Name string
}

func NewPart(name string, children ...Component) *Part {
	return &Part{Name: Escape(name), content: content{children: children}}
}

func (p *Part) Kind() Kind { return PartKind }

func (p *Part) render(w io.Writer) error {
	return renderChildrenAndWrap(w, p.children, "\\part{"+p.Name+"} \n ", " \n ")
}

// Chapter is \chapter{}, available in book and report classes.
type Chapter struct {
	content
	Name string
}

func NewChapter(name string, children ...Component) *Chapter {
	return &Chapter{Name: Escape(name), content: content{children: children}}
}

func (c *Chapter) Kind() Kind { return ChapterKind }

func (c *Chapter) render(w io.Writer) error {
	return renderChildrenAndWrap(w, c.children, "\\chapter{"+c.Name+"} \n ", " \n ")
}

type Section struct {
	content
	Name string
}

func NewSection(name string, children ...Component) *Section {
	return &Section{Name: Escape(name), content: content{children: children}}
}

func (s *Section) Kind() Kind { return SectionKind }

func (s *Section) render(w io.Writer) error {
	return renderChildrenAndWrap(w, s.children, "\\section{"+s.Name+"} \n ", " \n ")
}

type Subsection struct {
	content
	Name string
}

func NewSubsection(name string, children ...Component) *Subsection {
	return &Subsection{Name: Escape(name), content: content{children: children}}
}

func (s *Subsection) Kind() Kind { return SubsectionKind }

func (s *Subsection) render(w io.Writer) error {
	return renderChildrenAndWrap(w, s.children, "\\subsection{"+s.Name+"} \n ", " \n ")
}

// Paragraph is a block of text separated by empty lines.
type Paragraph struct {
	content
}

func NewParagraph(children ...Component) *Paragraph {
	return &Paragraph{content: content{children: children}}
}

func (p *Paragraph) Kind() Kind { return ParagraphKind }

func (p *Paragraph) render(w io.Writer) error {
	return renderChildrenAndWrap(w, p.children, "\n\n ", " \n\n ")
}

// Line is terminated by a line break. An empty line renders as a bare newline, since \\ on an empty
// line is an error.
type Line struct {
	content
}

func NewLine(children ...Component) *Line {
	return &Line{content: content{children: children}}
}

func (l *Line) Kind() Kind { return LineKind }

func (l *Line) render(w io.Writer) error {
	var body strings.Builder
	if err := renderChildren(&body, l.children); err != nil {
		return err
	}

	if strings.TrimSpace(body.String()) == "" {
		_, err := fmt.Fprint(w, "\n")
		return err
	}

	_, err := fmt.Fprint(w, body.String(), " \\\\\n")
	return err
}
