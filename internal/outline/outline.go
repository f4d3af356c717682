// Package outline builds documents from YAML outlines.
//
// An outline describes document metadata, preamble and a tree of body nodes:
//
//	class: article
//	title: Notes
//	authors: [Ada, Charles]
//	packages:
//	  - name: parskip
//	    options: [parfill]
//	body:
//	  - type: section
//	    title: Introduction
//	    body:
//	      - type: paragraph
//	        body:
//	          - type: text
//	            text: Hello
//	            style: bold
package outline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	latex "github.com/eolymp/go-latexdoc"
)

// Outline is the top level of the YAML file.
type Outline struct {
	Class           string    `yaml:"class"`
	Options         []string  `yaml:"options"`
	Title           string    `yaml:"title"`
	Authors         []string  `yaml:"authors"`
	MakeTitle       *bool     `yaml:"maketitle"`
	TableOfContents bool      `yaml:"toc"`
	Date            bool      `yaml:"date"`
	Scratch         bool      `yaml:"scratch"`
	Hyperref        *bool     `yaml:"hyperref"`
	Graphics        []string  `yaml:"graphics"` // graphics path, first entry enables graphicx
	Packages        []Package `yaml:"packages"`
	Macros          []Macro   `yaml:"macros"`
	Body            []Node    `yaml:"body"`
}

type Package struct {
	Name    string   `yaml:"name"`
	Options []string `yaml:"options"`
}

type Macro struct {
	Name string `yaml:"name"`
	Args int    `yaml:"args"`
	Body string `yaml:"body"`
}

// LoadFile reads a YAML outline.
func LoadFile(path string) (*Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes a YAML outline.
func Parse(data []byte) (*Outline, error) {
	o := &Outline{}
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("parse outline: %w", err)
	}

	return o, nil
}

// Document builds the document described by the outline.
func (o *Outline) Document() (*latex.Document, error) {
	kind := latex.Article
	if o.Class != "" {
		var err error
		if kind, err = latex.ParseClassKind(o.Class); err != nil {
			return nil, err
		}
	}

	doc := latex.NewDocument(latex.NewDocumentClass(kind, o.Options...))

	if o.Title != "" {
		doc.SetTitle(o.Title)
	}

	if len(o.Authors) > 0 {
		doc.SetAuthors(o.Authors...)
	}

	if o.MakeTitle != nil {
		doc.MakeTitle = *o.MakeTitle
	}

	doc.TableOfContents = o.TableOfContents
	doc.Date = o.Date

	if o.Scratch {
		doc.Scratch()
	}

	if o.Hyperref != nil && !*o.Hyperref {
		doc.DisableHyperref()
	}

	for i, path := range o.Graphics {
		if i == 0 {
			doc.DisableGraphics()
			doc.EnableGraphics(path)
			continue
		}

		if err := doc.AddGraphicsPath(path); err != nil {
			return nil, err
		}
	}

	for _, p := range o.Packages {
		doc.AddPackage(latex.NewPackage(p.Name, p.Options...))
	}

	for _, m := range o.Macros {
		doc.DeclareMacro(latex.NewMacro(m.Name, m.Args, m.Body))
	}

	b := builder{doc: doc}
	for i, node := range o.Body {
		c, err := b.build(node, fmt.Sprintf("body[%d]", i))
		if err != nil {
			return nil, err
		}

		doc.Attach(c)
	}

	return doc, nil
}
