package latex

import "io"

type Kind int

const (
	PartKind Kind = iota
	ChapterKind
	SectionKind
	SubsectionKind
	ParagraphKind
	LineKind
	FrameKind
	BlockKind
	InputKind
	EnvironmentKind
	ListKind
	FigureKind
	TextKind
	CommandKind
	ImageKind
	TableKind
	RowKind
	BuiltinKind
	LabelKind
	ReferenceKind
)

var kindNames = map[Kind]string{
	PartKind:        "part",
	ChapterKind:     "chapter",
	SectionKind:     "section",
	SubsectionKind:  "subsection",
	ParagraphKind:   "paragraph",
	LineKind:        "line",
	FrameKind:       "frame",
	BlockKind:       "block",
	InputKind:       "input",
	EnvironmentKind: "environment",
	ListKind:        "list",
	FigureKind:      "figure",
	TextKind:        "text",
	CommandKind:     "command",
	ImageKind:       "image",
	TableKind:       "table",
	RowKind:         "row",
	BuiltinKind:     "builtin",
	LabelKind:       "label",
	ReferenceKind:   "reference",
}

// ranks defines how significant each kind is structurally, 0 being the most significant. A component may
// only contain components with the same or higher rank.
var ranks = map[Kind]int{
	PartKind:        0,
	ChapterKind:     1,
	SectionKind:     2,
	SubsectionKind:  3,
	FrameKind:       4,
	ParagraphKind:   5,
	BlockKind:       5,
	ListKind:        7,
	TableKind:       7,
	EnvironmentKind: 8,
	FigureKind:      8,
	InputKind:       9,
	LineKind:        10,
	TextKind:        10,
	CommandKind:     10,
	ImageKind:       10,
	RowKind:         10,
	BuiltinKind:     10,
	LabelKind:       10,
	ReferenceKind:   10,
}

// lowestRank is used for kinds missing from the rank table, so that they are treated as leaves.
const lowestRank = 10

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Rank of the kind, see Rank.
func (k Kind) Rank() int {
	if rank, ok := ranks[k]; ok {
		return rank
	}

	return lowestRank
}

// Component is an element of the document tree. The set of implementations is closed, use Kind to
// distinguish between them.
type Component interface {
	Kind() Kind
	render(w io.Writer) error
}

// container is implemented by components which can hold other components.
type container interface {
	Component
	attach(children ...Component) error
}

// Rank returns structural rank of the component.
func Rank(c Component) int {
	return c.Kind().Rank()
}

// Attach adds child to the parent making sure the child is allowed to be placed inside the parent.
func Attach(parent, child Component) error {
	if pr, cr := Rank(parent), Rank(child); pr > cr {
		return &RankError{Child: cr, Parent: pr}
	}

	p, ok := parent.(container)
	if !ok {
		return &CapabilityError{Kind: parent.Kind()}
	}

	return p.attach(child)
}

// AttachAll adds children to the parent. Either all children are added or none of them.
func AttachAll(parent Component, children ...Component) error {
	if len(children) == 0 {
		return nil
	}

	pr := Rank(parent)
	for _, child := range children {
		if cr := Rank(child); pr > cr {
			return &RankError{Child: cr, Parent: pr}
		}
	}

	p, ok := parent.(container)
	if !ok {
		return &CapabilityError{Kind: parent.Kind()}
	}

	return p.attach(children...)
}

// Walk visits component and all its descendants depth-first. Returning false from fn skips children of
// the visited component.
func Walk(c Component, fn func(Component) bool) {
	if !fn(c) {
		return
	}

	if t, ok := c.(*Table); ok && t.Head != nil {
		Walk(t.Head, fn)
	}

	if p, ok := c.(interface{ Children() []Component }); ok {
		for _, child := range p.Children() {
			Walk(child, fn)
		}
	}
}
