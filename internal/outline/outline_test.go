package outline

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	latex "github.com/eolymp/go-latexdoc"
)

func TestParse(t *testing.T) {
	input := `
class: book
options: [a4paper]
title: Notes
authors: [Ada, Charles]
toc: true
packages:
  - name: parskip
    options: [parfill]
macros:
  - name: brak
    args: 1
    body: \ensuremath{\left(#1\right)}
body:
  - type: part
    title: One
    body:
      - type: chapter
        title: First
`

	got, err := Parse([]byte(input))
	if err != nil {
		t.Fatal(err)
	}

	want := &Outline{
		Class:           "book",
		Options:         []string{"a4paper"},
		Title:           "Notes",
		Authors:         []string{"Ada", "Charles"},
		TableOfContents: true,
		Packages:        []Package{{Name: "parskip", Options: []string{"parfill"}}},
		Macros:          []Macro{{Name: "brak", Args: 1, Body: "\\ensuremath{\\left(#1\\right)}"}},
		Body: []Node{{
			Type:  "part",
			Title: "One",
			Body:  []Node{{Type: "chapter", Title: "First"}},
		}},
	}

	if !cmp.Equal(got, want) {
		t.Errorf("Outline does not match:\n%s\n", cmp.Diff(want, got))
	}
}

func TestDocument(t *testing.T) {
	tt := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name: "sections and text",
			input: `
title: Report
body:
  - type: section
    title: Intro_1
    body:
      - type: paragraph
        body:
          - type: text
            text: bold
            style: bold
`,
			contains: []string{
				"\\documentclass{article}",
				"\\title{Report}",
				"\\section{Intro\\_1} \n \n\n \\textbf{bold}  \n\n  \n ",
			},
		},
		{
			name: "macro call",
			input: `
macros:
  - name: brak
    args: 1
    body: (#1)
body:
  - type: call
    name: brak
    args: [x]
`,
			contains: []string{"\\newcommand{\\brak}[1]{(#1)} \n", "\\brak{x}"},
		},
		{
			name: "graphics path",
			input: `
graphics: [img, ../img]
hyperref: false
body:
  - type: image
    path: a.png
    options: [scale=0.5]
`,
			contains: []string{
				"\\usepackage{graphicx}\n\n",
				"\\graphicspath{{img}{../img}}\n\\begin{document}",
				"\\includegraphics[scale=0.5]{a.png} \n",
			},
		},
		{
			name: "table",
			input: `
body:
  - type: table
    columns: "|l|r|"
    head: [a, b]
    rows: [[c, d]]
`,
			contains: []string{"\\begin{tabular}{|l|r|} \n \\hline \n a  & b  \\\\ \n \n \\hline \n c  & d  \\\\ \n \\hline \\end{tabular} "},
		},
		{
			name: "math",
			input: `
body:
  - type: math
    op: sum
    args: [i=1, n]
  - type: math
    op: char
    name: infty
`,
			contains: []string{"\\sum_{i=1 }^{n }", "\\infty"},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			o, err := Parse([]byte(tc.input))
			if err != nil {
				t.Fatal(err)
			}

			doc, err := o.Document()
			if err != nil {
				t.Fatal(err)
			}

			got := doc.String()
			for _, want := range tc.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Rendered document does not contain %#v:\n%s", want, got)
				}
			}
		})
	}
}

func TestDocumentErrors(t *testing.T) {
	tt := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{
			name:  "unknown class",
			input: "class: letter",
			check: func(err error) bool { return errors.Is(err, latex.ErrVariantUndefined) },
		},
		{
			name:  "unknown node type",
			input: "body: [{type: video}]",
			check: func(err error) bool { return errors.Is(err, latex.ErrVariantUndefined) },
		},
		{
			name:  "undeclared macro",
			input: "body: [{type: call, name: brak}]",
			check: func(err error) bool { return errors.Is(err, latex.ErrUndefined) },
		},
		{
			name:  "wrong number of arguments",
			input: "macros: [{name: brak, args: 2, body: x}]\nbody: [{type: call, name: brak, args: [a]}]",
			check: func(err error) bool { return errors.Is(err, latex.ErrArgumentCount) },
		},
		{
			name:  "section inside paragraph",
			input: "body: [{type: paragraph, body: [{type: section, title: x}]}]",
			check: func(err error) bool {
				var rank *latex.RankError
				return errors.As(err, &rank) && rank.Child == 2 && rank.Parent == 5
			},
		},
		{
			name:  "children of a leaf",
			input: "body: [{type: input, name: a, body: [{type: text, text: x}]}]",
			check: func(err error) bool {
				var capability *latex.CapabilityError
				return errors.As(err, &capability) && capability.Kind == latex.InputKind
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			o, err := Parse([]byte(tc.input))
			if err != nil {
				t.Fatal(err)
			}

			_, err = o.Document()
			if err == nil {
				t.Fatal("expected an error")
			}

			if !tc.check(err) {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
