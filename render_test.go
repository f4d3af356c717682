package latex_test

import (
	"bytes"
	"testing"

	latex "github.com/eolymp/go-latexdoc"
)

func TestRender(t *testing.T) {
	text := func(t string) *latex.Text {
		return latex.NewText(t, latex.Normal)
	}

	styled := func(t string, style latex.TextStyle) *latex.Text {
		return latex.NewText(t, style)
	}

	tt := []struct {
		name      string
		render    string
		component latex.Component
	}{
		{name: "normal text", render: "one two ", component: text("one two")},
		{name: "bold text", render: "\\textbf{bold} ", component: styled("bold", latex.Bold)},
		{name: "italic text", render: "\\textit{it} ", component: styled("it", latex.Italic)},
		{name: "teletype text", render: "\\texttt{tt} ", component: styled("tt", latex.Teletype)},
		{name: "math bold", render: "\\mathbf{x} ", component: styled("x", latex.MathBold)},
		{name: "math cal", render: "\\mathcal{x} ", component: styled("x", latex.MathCal)},
		{name: "math bb", render: "\\mathbb{R} ", component: styled("R", latex.MathBb)},
		{name: "math rm", render: "\\mathrm{d} ", component: styled("d", latex.MathRm)},
		{name: "underlined", render: "\\underline{u} ", component: styled("u", latex.Underlined)},
		{name: "inline math", render: "\\(a+b\\)", component: styled("a+b", latex.InlineMath)},
		{name: "display math", render: "\\[a+b\\]", component: styled("a+b", latex.DisplayMath)},
		{name: "scope", render: "\\{x\\}", component: styled("x", latex.Scope)},
		{name: "verbatim", render: "\\verb|x_1|", component: styled("x_1", latex.Verbatim)},
		{name: "strikethrough", render: "\\sout{gone} ", component: styled("gone", latex.Strikethrough)},
		{
			name:      "part",
			render:    "\\part{One} \n \\chapter{Two} \n  \n  \n ",
			component: latex.NewPart("One", latex.NewChapter("Two")),
		},
		{
			name:      "escaped section name",
			render:    "\\section{50\\% of \\$x\\_1\\} \n  \n ",
			component: latex.NewSection("50% of $x_1}"),
		},
		{
			name:      "subsection",
			render:    "\\subsection{Sub} \n a  \n ",
			component: latex.NewSubsection("Sub", text("a")),
		},
		{
			name:      "paragraph",
			render:    "\n\n a b  \n\n ",
			component: latex.NewParagraph(text("a"), text("b")),
		},
		{
			name:      "line",
			render:    "a  \\\\\n",
			component: latex.NewLine(text("a")),
		},
		{
			name:      "empty line",
			render:    "\n",
			component: latex.NewLine(),
		},
		{
			name:      "whitespace line",
			render:    "\n",
			component: latex.NewLine(text(" "), text("\t")),
		},
		{
			name:      "frame",
			render:    "\\begin{frame}{Intro} \n \\begin{block}{Note} \n x  \\end{block} \n  \\end{frame} \n ",
			component: latex.NewFrame("Intro", latex.NewBlock("Note", text("x"))),
		},
		{
			name:      "environment",
			render:    "\\begin{center} \n x  \n \\end{center} \n ",
			component: latex.NewEnvironment("center", text("x")),
		},
		{
			name:   "environment with options",
			render: "\\begin{lstlisting}[language=Go, numbers=left] \n x  \n \\end{lstlisting} \n ",
			component: func() latex.Component {
				env := latex.NewEnvironment("lstlisting", text("x"))
				env.AddOption("language=Go")
				env.AddOption("numbers=left")
				return env
			}(),
		},
		{
			name:      "itemize",
			render:    "\\begin{itemize} \n \t\\item a \n\t\\item b \n \n \\end{itemize} \n ",
			component: latex.NewList(latex.Itemize, text("a"), text("b")),
		},
		{
			name:   "enumerate with options",
			render: "\\begin{enumerate}[label=(\\alph*)] \n \t\\item a \n \n \\end{enumerate} \n ",
			component: func() latex.Component {
				list := latex.NewList(latex.Enumerate, text("a"))
				list.AddOption("label=(\\alph*)")
				return list
			}(),
		},
		{
			name:      "table",
			render:    "\\begin{tabular}{|c|c|} \n \\hline \n a  & b  \\\\ \n \n \\hline \n c  & d  \\\\ \n \\hline \\end{tabular} ",
			component: latex.NewTable(2, latex.TextRow("a", "b"), latex.TextRow("c", "d")),
		},
		{
			name:      "table with mismatched row",
			render:    "\\begin{tabular}{|c|c|c|} \n \\hline \n a  \\\\ \n \n \\hline \n  \\hline \\end{tabular} ",
			component: latex.NewTable(3, latex.TextRow("a")),
		},
		{
			name:      "image",
			render:    "\\includegraphics[scale=0.5, angle=90]{a.png} \n",
			component: latex.NewImage("a.png", "scale=0.5", "angle=90"),
		},
		{
			name:      "image without options",
			render:    "\\includegraphics{a.png} \n",
			component: latex.NewImage("a.png"),
		},
		{
			name:   "figure",
			render: "\\begin{figure}[h] \n \\centering \n \\includegraphics{a.png} \n \n \\caption{A plot} \n \\end{figure} ",
			component: func() latex.Component {
				fig := latex.NewFigure(latex.NewImage("a.png"), "A plot")
				fig.AddOption("h")
				return fig
			}(),
		},
		{name: "input", render: "\\input{chapter1}", component: latex.NewInput("chapter1")},
		{name: "command", render: "\\brak{x}", component: latex.Command("\\brak{x}")},
		{name: "label", render: " \\label{fig:plot} \n", component: latex.ParseLabel("fig:plot")},
		{name: "reference", render: "~\\ref{eq:one} \n", component: latex.ParseReference("eq:one")},
		{name: "ensuremath", render: "\\ensuremath{x }", component: latex.EnsureMath(text("x"))},
		{name: "sin", render: "\\sin{\\(x\\)}", component: latex.Sin(styled("x", latex.InlineMath))},
		{name: "cos", render: "\\cos{x }", component: latex.Cos(text("x"))},
		{name: "tan", render: "\\tan{x }", component: latex.Tan(text("x"))},
		{name: "log", render: "\\log{x }", component: latex.Log(text("x"))},
		{name: "ln", render: "\\ln{x }", component: latex.Ln(text("x"))},
		{name: "lg", render: "\\lg{x }", component: latex.Lg(text("x"))},
		{name: "arg", render: "\\arg{z }", component: latex.Arg(text("z"))},
		{name: "min", render: "\\min{S }", component: latex.Min(text("S"))},
		{name: "max", render: "\\max{\\mathbf{S} }", component: latex.Max(styled("S", latex.MathBold))},
		{name: "sum", render: "\\sum_{i=1 }^{n }", component: latex.Sum(text("i=1"), text("n"))},
		{name: "prod", render: "\\prod_{i=1 }^{n }", component: latex.Prod(text("i=1"), text("n"))},
		{name: "character", render: "\\phi", component: latex.Character("phi")},
		{name: "surround", render: "\\left( x  \\right)", component: latex.Surround('(', text("x"), ')')},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			buffer := bytes.NewBuffer(nil)

			err := latex.Render(buffer, tc.component)
			if err != nil {
				t.Fatal("unable to render:", err)
			}

			if got := buffer.String(); got != tc.render {
				t.Errorf("Rendered latex does not match:\nWANT:\n  %#v\nGOT:\n  %#v\n", tc.render, got)
			}

			if s := latex.String(tc.component); s != tc.render {
				t.Errorf("String does not match Render:\nWANT:\n  %#v\nGOT:\n  %#v\n", tc.render, s)
			}
		})
	}
}
