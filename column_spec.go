package latex

import (
	"regexp"
	"strings"
)

var whitespaces = regexp.MustCompile("[ \n\t\r]+")

type ColumnSpec struct {
	BorderLeft  bool   // column should have left border
	BorderRight bool   // column should have right border
	Align       string // column alignment: c, l or r
}

// ColumnSpecs parses column spec in tabular environment
// todo: add support for repeated syntax *{x}{...}
func ColumnSpecs(raw string) (spec []ColumnSpec) {
	raw = whitespaces.ReplaceAllString(raw, "") // remove all spaces since they don't have any meaning
	for pos, char := range raw {
		if char == '|' {
			continue
		}

		if char == 'c' || char == 'l' || char == 'r' {
			spec = append(spec, ColumnSpec{
				BorderLeft:  pos > 0 && raw[pos-1] == '|',
				BorderRight: pos < len(raw)-1 && raw[pos+1] == '|',
				Align:       string([]rune{char}),
			})
		}
	}

	return
}

// FormatColumnSpecs is the reverse of ColumnSpecs, a border shared by two adjacent columns is written once.
func FormatColumnSpecs(spec []ColumnSpec) string {
	var b strings.Builder
	for i, col := range spec {
		if col.BorderLeft && (i == 0 || !spec[i-1].BorderRight) {
			b.WriteString("|")
		}

		align := col.Align
		if align == "" {
			align = "c"
		}

		b.WriteString(align)

		if col.BorderRight {
			b.WriteString("|")
		}
	}

	return b.String()
}

// BorderedColumns returns n centered columns separated by borders, like |c|c|c|.
func BorderedColumns(n int) []ColumnSpec {
	spec := make([]ColumnSpec, n)
	for i := range spec {
		spec[i] = ColumnSpec{BorderLeft: true, BorderRight: true, Align: "c"}
	}

	return spec
}
