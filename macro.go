package latex

import (
	"fmt"
	"strings"
)

// Macro is a user defined LaTeX command. It has to be declared in the document before it can be called,
// see Document.DeclareMacro.
type Macro struct {
	Name string
	Args int
	Body string // raw LaTeX, arguments are referenced as #1, #2 ...
}

func NewMacro(name string, args int, body string) *Macro {
	return &Macro{Name: name, Args: args, Body: body}
}

// Declare renders \newcommand definition.
func (m *Macro) Declare() string {
	return fmt.Sprintf("\\newcommand{\\%s}[%d]{%s} ", m.Name, m.Args, m.Body)
}

// Call renders macro invocation with given arguments.
func (m *Macro) Call(args ...string) (Command, error) {
	if len(args) != m.Args {
		return "", fmt.Errorf("macro %s takes %d arguments, got %d: %w", m.Name, m.Args, len(args), ErrArgumentCount)
	}

	var b strings.Builder
	b.WriteString("\\" + m.Name)
	for _, arg := range args {
		b.WriteString("{" + arg + "}")
	}

	return Command(b.String()), nil
}

// macros keeps declarations in the order they were first declared.
type macros struct {
	index map[string]int
	list  []*Macro
}

func (m *macros) set(macro *Macro) {
	if m.index == nil {
		m.index = map[string]int{}
	}

	if i, ok := m.index[macro.Name]; ok {
		m.list[i] = macro
		return
	}

	m.index[macro.Name] = len(m.list)
	m.list = append(m.list, macro)
}

func (m *macros) get(name string) (*Macro, bool) {
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}

	return m.list[i], true
}
