package latex

import (
	"fmt"
	"io"
)

type MathOp int

const (
	EnsureMathOp MathOp = iota
	SinOp
	CosOp
	TanOp
	LogOp
	LnOp
	LgOp
	SumOp
	ProdOp
	ArgOp
	MinOp
	MaxOp
	CharacterOp
	SurroundOp
)

// commands for operators taking a single operand
var unary = map[MathOp]string{
	EnsureMathOp: "\\ensuremath",
	SinOp:        "\\sin",
	CosOp:        "\\cos",
	TanOp:        "\\tan",
	LogOp:        "\\log",
	LnOp:         "\\ln",
	LgOp:         "\\lg",
	ArgOp:        "\\arg",
	MinOp:        "\\min",
	MaxOp:        "\\max",
}

// Builtin is a math operator with its operands. Operands are rendered with their own style, so an
// operand may be bold or inline math itself.
type Builtin struct {
	Op       MathOp
	Operands []*Text
	Name     string // character name, for CharacterOp
	Left     rune   // brackets, for SurroundOp
	Right    rune
}

func EnsureMath(t *Text) *Builtin { return &Builtin{Op: EnsureMathOp, Operands: []*Text{t}} }
func Sin(t *Text) *Builtin        { return &Builtin{Op: SinOp, Operands: []*Text{t}} }
func Cos(t *Text) *Builtin        { return &Builtin{Op: CosOp, Operands: []*Text{t}} }
func Tan(t *Text) *Builtin        { return &Builtin{Op: TanOp, Operands: []*Text{t}} }
func Log(t *Text) *Builtin        { return &Builtin{Op: LogOp, Operands: []*Text{t}} }
func Ln(t *Text) *Builtin         { return &Builtin{Op: LnOp, Operands: []*Text{t}} }
func Lg(t *Text) *Builtin         { return &Builtin{Op: LgOp, Operands: []*Text{t}} }
func Arg(t *Text) *Builtin        { return &Builtin{Op: ArgOp, Operands: []*Text{t}} }
func Min(t *Text) *Builtin        { return &Builtin{Op: MinOp, Operands: []*Text{t}} }
func Max(t *Text) *Builtin        { return &Builtin{Op: MaxOp, Operands: []*Text{t}} }

// Sum is \sum with lower and upper bounds.
func Sum(lower, upper *Text) *Builtin {
	return &Builtin{Op: SumOp, Operands: []*Text{lower, upper}}
}

// Prod is \prod with lower and upper bounds.
func Prod(lower, upper *Text) *Builtin {
	return &Builtin{Op: ProdOp, Operands: []*Text{lower, upper}}
}

// Character is an arbitrary command without arguments, like greek letters or \infty.
func Character(name string) *Builtin {
	return &Builtin{Op: CharacterOp, Name: name}
}

// Surround wraps operand into \left and \right brackets.
func Surround(left rune, t *Text, right rune) *Builtin {
	return &Builtin{Op: SurroundOp, Operands: []*Text{t}, Left: left, Right: right}
}

func (b *Builtin) Kind() Kind { return BuiltinKind }

func (b *Builtin) operand(i int) string {
	if i >= len(b.Operands) || b.Operands[i] == nil {
		return ""
	}

	return String(b.Operands[i])
}

func (b *Builtin) render(w io.Writer) error {
	var err error

	switch b.Op {
	case SumOp:
		_, err = fmt.Fprint(w, "\\sum_{", b.operand(0), "}^{", b.operand(1), "}")
	case ProdOp:
		_, err = fmt.Fprint(w, "\\prod_{", b.operand(0), "}^{", b.operand(1), "}")
	case CharacterOp:
		_, err = fmt.Fprint(w, "\\", b.Name)
	case SurroundOp:
		_, err = fmt.Fprint(w, "\\left", string(b.Left), " ", b.operand(0), " \\right", string(b.Right))
	default:
		_, err = fmt.Fprint(w, unary[b.Op], "{", b.operand(0), "}")
	}

	return err
}
