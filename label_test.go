package latex_test

import (
	"testing"

	latex "github.com/eolymp/go-latexdoc"
)

func TestParseLabel(t *testing.T) {
	tt := []struct {
		input    string
		category latex.Category
		id       string
		render   string
	}{
		{input: "fig:plot1", category: latex.FigureCategory, id: "plot1", render: " \\label{fig:plot1} \n"},
		{input: "plot1", category: latex.StandardCategory, id: "plot1", render: " \\label{std:plot1} \n"},
		{input: "x", category: latex.StandardCategory, id: "x", render: " \\label{std:x} \n"},
		{input: "", category: latex.StandardCategory, id: "", render: " \\label{std:} \n"},
		{input: "foo:bar", category: latex.StandardCategory, id: "foo:bar", render: " \\label{std:foo:bar} \n"},
		{input: "eq:a:b", category: latex.EquationCategory, id: "a:b", render: " \\label{eq:a:b} \n"},
		{input: "std:s", category: latex.StandardCategory, id: "s", render: " \\label{std:s} \n"},
		{input: "ch:1", category: latex.ChapterCategory, id: "1", render: " \\label{ch:1} \n"},
		{input: "sec:1", category: latex.SectionCategory, id: "1", render: " \\label{sec:1} \n"},
		{input: "subsec:1", category: latex.SubsectionCategory, id: "1", render: " \\label{subsec:1} \n"},
		{input: "tab:1", category: latex.TableCategory, id: "1", render: " \\label{tab:1} \n"},
		{input: "lst:1", category: latex.CodeCategory, id: "1", render: " \\label{lst:1} \n"},
		{input: "itm:1", category: latex.ItemCategory, id: "1", render: " \\label{itm:1} \n"},
		{input: "alg:1", category: latex.AlgorithmCategory, id: "1", render: " \\label{alg:1} \n"},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			label := latex.ParseLabel(tc.input)
			if label.Category != tc.category || label.ID != tc.id {
				t.Errorf("Label does not match: want %v %#v, got %v %#v", tc.category, tc.id, label.Category, label.ID)
			}

			if got := latex.String(label); got != tc.render {
				t.Errorf("Rendered label does not match:\nWANT:\n  %#v\nGOT:\n  %#v\n", tc.render, got)
			}

			ref := latex.ParseReference(tc.input)
			if ref.Category != tc.category || ref.ID != tc.id {
				t.Errorf("Reference does not match: want %v %#v, got %v %#v", tc.category, tc.id, ref.Category, ref.ID)
			}

			if ref.Key() != label.Key() {
				t.Errorf("Reference key %#v does not match label key %#v", ref.Key(), label.Key())
			}
		})
	}
}
