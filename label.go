package latex

import (
	"fmt"
	"io"
	"strings"
)

// Category of a label, rendered as identifier prefix.
type Category int

const (
	StandardCategory Category = iota
	ChapterCategory
	SectionCategory
	SubsectionCategory
	EquationCategory
	TableCategory
	FigureCategory
	CodeCategory
	ItemCategory
	AlgorithmCategory
)

var prefixes = map[Category]string{
	StandardCategory:   "std",
	ChapterCategory:    "ch",
	SectionCategory:    "sec",
	SubsectionCategory: "subsec",
	EquationCategory:   "eq",
	TableCategory:      "tab",
	FigureCategory:     "fig",
	CodeCategory:       "lst",
	ItemCategory:       "itm",
	AlgorithmCategory:  "alg",
}

func (c Category) Prefix() string {
	if p, ok := prefixes[c]; ok {
		return p
	}

	return prefixes[StandardCategory]
}

// parseKey splits raw value into category and identifier on the first colon. When the prefix is not a
// known category the whole value, colon included, becomes identifier of a standard label.
func parseKey(raw string) (Category, string) {
	prefix, id, ok := strings.Cut(raw, ":")
	if !ok {
		return StandardCategory, raw
	}

	for category, p := range prefixes {
		if p == prefix {
			return category, id
		}
	}

	return StandardCategory, raw
}

// Label marks a place in the document, see Reference.
type Label struct {
	Category Category
	ID       string
}

// ParseLabel creates a label from a prefixed identifier like "fig:plot".
func ParseLabel(raw string) *Label {
	category, id := parseKey(raw)
	return &Label{Category: category, ID: id}
}

// Key is the identifier used in the document, prefix included.
func (l *Label) Key() string {
	return l.Category.Prefix() + ":" + l.ID
}

func (l *Label) Kind() Kind { return LabelKind }

func (l *Label) render(w io.Writer) error {
	_, err := fmt.Fprint(w, " \\label{", l.Key(), "} \n")
	return err
}

// Reference points to a Label.
type Reference struct {
	Category Category
	ID       string
}

// ParseReference creates a reference from a prefixed identifier like "fig:plot", see ParseLabel.
func ParseReference(raw string) *Reference {
	category, id := parseKey(raw)
	return &Reference{Category: category, ID: id}
}

func (r *Reference) Key() string {
	return r.Category.Prefix() + ":" + r.ID
}

func (r *Reference) Kind() Kind { return ReferenceKind }

func (r *Reference) render(w io.Writer) error {
	_, err := fmt.Fprint(w, "~\\ref{", r.Key(), "} \n")
	return err
}
