package latex

import (
	"fmt"
)

type ClassKind int

const (
	Article ClassKind = iota
	Amsart
	PartClass
	Report
	Book
	Beamer
)

var classNames = map[ClassKind]string{
	Article:   "article",
	Amsart:    "amsart",
	PartClass: "part",
	Report:    "report",
	Book:      "book",
	Beamer:    "beamer",
}

func (k ClassKind) String() string {
	if name, ok := classNames[k]; ok {
		return name
	}

	return classNames[Article]
}

// ParseClassKind converts class name used in \documentclass into a ClassKind.
func ParseClassKind(raw string) (ClassKind, error) {
	for kind, name := range classNames {
		if name == raw {
			return kind, nil
		}
	}

	return Article, fmt.Errorf("document class %#v: %w", raw, ErrVariantUndefined)
}

// DocumentClass is \documentclass with its options. Options are not validated.
type DocumentClass struct {
	Kind    ClassKind
	Options []string
}

func NewDocumentClass(kind ClassKind, opts ...string) *DocumentClass {
	return &DocumentClass{Kind: kind, Options: opts}
}

func (c *DocumentClass) AddOption(opt string) {
	c.Options = append(c.Options, opt)
}

func (c *DocumentClass) String() string {
	return "\\documentclass" + options(c.Options) + "{" + c.Kind.String() + "}"
}

// Package is \usepackage with its options.
type Package struct {
	Name    string
	Options []string
}

func NewPackage(name string, opts ...string) *Package {
	return &Package{Name: name, Options: opts}
}

func (p *Package) AddOption(opt string) {
	p.Options = append(p.Options, opt)
}

func (p *Package) String() string {
	return "\\usepackage" + options(p.Options) + "{" + p.Name + "}\n"
}
