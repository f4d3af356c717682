// Command latexdoc generates LaTeX documents.
//
// Usage:
//
//	latexdoc blank --title <title> --author <author> [-o out.tex]
//	latexdoc collate <dir> [-o out.tex]
//	latexdoc build <outline.yaml> [-o out.tex]
package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	latex "github.com/eolymp/go-latexdoc"
	"github.com/eolymp/go-latexdoc/internal/outline"
)

const version = "0.1.0"

// CLI defines the command-line interface for latexdoc.
var CLI struct {
	Debug bool `help:"Enable debug logging"`

	Blank   BlankCmd   `cmd:"" help:"Render an empty document with metadata"`
	Collate CollateCmd `cmd:"" help:"Render every file of a directory as a source listing"`
	Build   BuildCmd   `cmd:"" help:"Render a document described by a YAML outline"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// BlankCmd renders a document without body.
type BlankCmd struct {
	Class      string   `help:"Document class" default:"article" enum:"article,amsart,part,report,book,beamer"`
	Title      string   `help:"Document title" default:"title"`
	Author     []string `help:"Document author, can be repeated"`
	TOC        bool     `name:"toc" help:"Render table of contents"`
	Date       bool     `help:"Render current date"`
	NoGraphics bool     `help:"Do not include graphicx package"`
	NoHyperref bool     `help:"Do not include hyperref package"`
	Out        string   `short:"o" help:"Output file (default: stdout)" type:"path"`
}

func (c *BlankCmd) Run(logger *slog.Logger) error {
	kind, err := latex.ParseClassKind(c.Class)
	if err != nil {
		return err
	}

	doc := latex.NewDocument(latex.NewDocumentClass(kind))
	doc.SetTitle(c.Title)
	if len(c.Author) > 0 {
		doc.SetAuthors(c.Author...)
	}

	doc.TableOfContents = c.TOC
	doc.Date = c.Date

	if c.NoGraphics {
		doc.DisableGraphics()
	}

	if c.NoHyperref {
		doc.DisableHyperref()
	}

	return write(logger, doc, c.Out)
}

// CollateCmd puts every file of a directory into its own section as an lstlisting environment.
type CollateCmd struct {
	Dir   string `arg:"" help:"Directory to collate" type:"existingdir"`
	Class string `help:"Document class" default:"amsart"`
	Out   string `short:"o" help:"Output file (default: stdout)" type:"path"`
}

func (c *CollateCmd) Run(logger *slog.Logger) error {
	kind, err := latex.ParseClassKind(c.Class)
	if err != nil {
		return err
	}

	doc := latex.NewDocument(latex.NewDocumentClass(kind))
	doc.DisableHyperref()
	doc.AddPackage(latex.NewPackage("listings"))

	err = filepath.WalkDir(c.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		logger.Debug("collate file", "path", path)

		body, err := latex.ReadText(path, latex.Normal, nil)
		if err != nil {
			return err
		}

		listing := latex.NewEnvironment("lstlisting")
		if err := latex.Attach(listing, body); err != nil {
			return err
		}

		section := latex.NewSection(path)
		if err := latex.Attach(section, listing); err != nil {
			return err
		}

		doc.Attach(section)
		return nil
	})
	if err != nil {
		return fmt.Errorf("collate %s: %w", c.Dir, err)
	}

	return write(logger, doc, c.Out)
}

// BuildCmd renders a YAML outline.
type BuildCmd struct {
	Outline string `arg:"" help:"Path to YAML outline" type:"existingfile"`
	Check   bool   `help:"Fail when a reference points to an undefined label"`
	Out     string `short:"o" help:"Output file (default: stdout)" type:"path"`
}

func (c *BuildCmd) Run(logger *slog.Logger) error {
	o, err := outline.LoadFile(c.Outline)
	if err != nil {
		return fmt.Errorf("load outline: %w", err)
	}

	doc, err := o.Document()
	if err != nil {
		return fmt.Errorf("build %s: %w", c.Outline, err)
	}

	if c.Check {
		if err := doc.CheckReferences(); err != nil {
			return err
		}
	}

	return write(logger, doc, c.Out)
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("latexdoc version %s\n", version)
	return nil
}

func write(logger *slog.Logger, doc *latex.Document, out string) error {
	if out == "" {
		return render(os.Stdout, doc)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	if err := renderAndClose(f, doc); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	logger.Debug("document written", "out", out)
	return nil
}

// renderAndClose renders the document and closes w, the close error is reported when rendering succeeded.
func renderAndClose(w io.WriteCloser, doc *latex.Document) error {
	if err := render(w, doc); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}

func render(w io.Writer, doc *latex.Document) error {
	if err := doc.Render(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	_, err := fmt.Fprintln(w)
	return err
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("latexdoc"),
		kong.Description("Generate LaTeX documents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level := slog.LevelInfo
	if CLI.Debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := ctx.Run(logger); err != nil {
		logger.Error("command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
