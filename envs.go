package latex

import (
	"fmt"
	"io"
)

// Environment is a generic \begin{name} ... \end{name} block. Use List for itemize and enumerate.
type Environment struct {
	content
	Name    string
	Options []string
}

func NewEnvironment(name string, children ...Component) *Environment {
	return &Environment{Name: name, content: content{children: children}}
}

func (e *Environment) Kind() Kind { return EnvironmentKind }

func (e *Environment) AddOption(opt string) {
	e.Options = append(e.Options, opt)
}

func (e *Environment) render(w io.Writer) error {
	return renderChildrenAndWrap(w, e.children,
		"\\begin{"+e.Name+"}"+options(e.Options)+" \n ",
		" \n \\end{"+e.Name+"} \n ",
	)
}

type ListType int

const (
	Itemize ListType = iota
	Enumerate
)

func (t ListType) String() string {
	if t == Enumerate {
		return "enumerate"
	}

	return "itemize"
}

// ParseListType converts environment name into a ListType.
func ParseListType(raw string) (ListType, error) {
	switch raw {
	case "itemize":
		return Itemize, nil
	case "enumerate":
		return Enumerate, nil
	default:
		return Itemize, fmt.Errorf("list type %#v: %w", raw, ErrVariantUndefined)
	}
}

// List renders each child as an \item of itemize or enumerate environment.
type List struct {
	content
	Type    ListType
	Options []string
}

func NewList(typ ListType, items ...Component) *List {
	return &List{Type: typ, content: content{children: items}}
}

func (l *List) Kind() Kind { return ListKind }

func (l *List) AddOption(opt string) {
	l.Options = append(l.Options, opt)
}

func (l *List) render(w io.Writer) error {
	if _, err := fmt.Fprint(w, "\\begin{"+l.Type.String()+"}"+options(l.Options)+" \n "); err != nil {
		return err
	}

	for _, item := range l.children {
		if err := renderChildrenAndWrap(w, []Component{item}, "\t\\item ", "\n"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, " \n \\end{"+l.Type.String()+"} \n ")
	return err
}

// Figure places an image into a floating figure environment with a caption.
type Figure struct {
	Image   *Image
	Caption string
	Options []string
}

func NewFigure(img *Image, caption string) *Figure {
	return &Figure{Image: img, Caption: caption}
}

func (f *Figure) Kind() Kind { return FigureKind }

func (f *Figure) AddOption(opt string) {
	f.Options = append(f.Options, opt)
}

func (f *Figure) render(w io.Writer) error {
	if _, err := fmt.Fprint(w, "\\begin{figure}", options(f.Options), " \n \\centering \n "); err != nil {
		return err
	}

	if f.Image != nil {
		if err := f.Image.render(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, " \n \\caption{", f.Caption, "} \n \\end{figure} ")
	return err
}
