package latex

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const (
	graphicsPackage = "graphicx"
	hyperrefPackage = "hyperref"
)

// Document is the root of the tree, it renders into a complete LaTeX file.
type Document struct {
	Class   *DocumentClass
	Title   string
	Authors []string

	MakeTitle       bool // render \maketitle
	TableOfContents bool // render \tableofcontents
	Date            bool // render current date

	scratch      bool
	packages     []*Package
	macros       macros
	children     []Component
	graphicsPath []string
}

// NewDocument creates a document of the given class with graphicx and hyperref packages enabled.
func NewDocument(class *DocumentClass) *Document {
	if class == nil {
		class = NewDocumentClass(Article)
	}

	d := &Document{
		Class:     class,
		Title:     "title",
		Authors:   []string{"author"},
		MakeTitle: true,
	}

	d.AddPackage(NewPackage(graphicsPackage))
	d.AddPackage(NewPackage(hyperrefPackage))

	return d
}

func (d *Document) SetTitle(title string) {
	d.Title = title
}

func (d *Document) SetAuthors(authors ...string) {
	d.Authors = authors
}

// Scratch disables metadata (title, authors etc), use it to generate a fragment rather than a full document.
func (d *Document) Scratch() {
	d.scratch = true
}

// Attach adds components to the top level of the document, there are no rank restrictions at this level.
func (d *Document) Attach(children ...Component) {
	d.children = append(d.children, children...)
}

func (d *Document) Children() []Component {
	return d.children
}

// AddPackage adds package to the preamble, packages are not deduplicated.
func (d *Document) AddPackage(p *Package) {
	d.packages = append(d.packages, p)
}

// Packages returns a copy of the package list.
func (d *Document) Packages() []*Package {
	return append([]*Package(nil), d.packages...)
}

func (d *Document) removePackage(name string) {
	var kept []*Package
	for _, p := range d.packages {
		if p.Name != name {
			kept = append(kept, p)
		}
	}

	d.packages = kept
}

// DeclareMacro registers macro, a macro with the same name is replaced.
func (d *Document) DeclareMacro(m *Macro) {
	d.macros.set(m)
}

// Macro returns previously declared macro.
func (d *Document) Macro(name string) (*Macro, error) {
	m, ok := d.macros.get(name)
	if !ok {
		return nil, fmt.Errorf("macro %#v: %w", name, ErrUndefined)
	}

	return m, nil
}

// Call renders invocation of a previously declared macro.
func (d *Document) Call(name string, args ...string) (Command, error) {
	m, err := d.Macro(name)
	if err != nil {
		return "", err
	}

	return m.Call(args...)
}

// EnableGraphics adds graphicx package and sets graphics path.
func (d *Document) EnableGraphics(path string) {
	d.AddPackage(NewPackage(graphicsPackage))
	d.graphicsPath = []string{path}
}

// DisableGraphics removes graphicx package and graphics path.
func (d *Document) DisableGraphics() {
	d.removePackage(graphicsPackage)
	d.graphicsPath = nil
}

// AddGraphicsPath adds a directory to search images in, graphics must be enabled first.
func (d *Document) AddGraphicsPath(path string) error {
	if d.graphicsPath == nil {
		return ErrNoGraphicsPath
	}

	d.graphicsPath = append(d.graphicsPath, path)
	return nil
}

func (d *Document) EnableHyperref() {
	d.AddPackage(NewPackage(hyperrefPackage))
}

func (d *Document) DisableHyperref() {
	d.removePackage(hyperrefPackage)
}

// CheckReferences makes sure every reference in the document points to a label.
func (d *Document) CheckReferences() error {
	labels := map[string]bool{}
	var refs []*Reference

	for _, child := range d.children {
		Walk(child, func(c Component) bool {
			switch v := c.(type) {
			case *Label:
				labels[v.Key()] = true
			case *Reference:
				refs = append(refs, v)
			}

			return true
		})
	}

	for _, ref := range refs {
		if !labels[ref.Key()] {
			return fmt.Errorf("reference %#v: %w", ref.Key(), ErrLabelUndefined)
		}
	}

	return nil
}

// class falls back to article for documents created without NewDocument.
func (d *Document) class() *DocumentClass {
	if d.Class == nil {
		return NewDocumentClass(Article)
	}

	return d.Class
}

// Render writes complete LaTeX document.
func (d *Document) Render(w io.Writer) error {
	if _, err := fmt.Fprint(w, d.class().String(), "\n"); err != nil {
		return err
	}

	for _, p := range d.packages {
		if _, err := fmt.Fprint(w, p.String()); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "\n"); err != nil {
		return err
	}

	for _, m := range d.macros.list {
		if _, err := fmt.Fprint(w, m.Declare(), "\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "\n", d.renderGraphicsPath(), "\\begin{document}\n"); err != nil {
		return err
	}

	if err := d.renderSlides(w); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, d.renderMetadata(), "\n"); err != nil {
		return err
	}

	if err := renderChildren(w, d.children); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "\n\\end{document}")
	return err
}

func (d *Document) String() string {
	buffer := bytes.NewBuffer(nil)
	_ = d.Render(buffer)
	return buffer.String()
}

func (d *Document) renderGraphicsPath() string {
	if d.graphicsPath == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\graphicspath{")
	for _, path := range d.graphicsPath {
		b.WriteString("{" + path + "}")
	}

	b.WriteString("}\n")
	return b.String()
}

func (d *Document) renderMetadata() string {
	if d.scratch {
		return "\n"
	}

	meta := "\\title{" + d.Title + "}\n\\author{" + strings.Join(d.Authors, "\\\\ \\and ") + "}\n\n"

	if d.class().Kind == Beamer {
		if d.Date {
			meta += "\\date{\\today}"
		}

		return meta + "\n"
	}

	if d.Date {
		meta += "\\today"
	}

	meta += "\n"

	if d.MakeTitle {
		meta += "\\maketitle"
	}

	meta += "\n"

	if d.TableOfContents {
		meta += "\\tableofcontents"
	}

	return meta + "\n"
}

// renderSlides writes title and table of contents frames for beamer documents.
func (d *Document) renderSlides(w io.Writer) error {
	if d.class().Kind != Beamer {
		_, err := fmt.Fprint(w, "\n")
		return err
	}

	if err := NewFrame("", NewText("\\titlepage", Normal)).render(w); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "\n"); err != nil {
		return err
	}

	if d.TableOfContents {
		if err := NewFrame("", NewText("\\tableofcontents", Normal)).render(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "\n")
	return err
}
