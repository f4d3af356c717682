package latex

import (
	"fmt"
	"io"
	"strings"
)

// Image is \includegraphics. Graphics have to be enabled in the document, see Document.EnableGraphics.
type Image struct {
	Path    string
	Options []string
}

func NewImage(path string, opts ...string) *Image {
	return &Image{Path: path, Options: opts}
}

func (i *Image) Kind() Kind { return ImageKind }

func (i *Image) AddOption(opt string) {
	i.Options = append(i.Options, opt)
}

// SetWidth adds width option, the value must be a valid measurement, for example 5cm or 0.5\textwidth.
func (i *Image) SetWidth(raw string) error {
	return i.setMeasure("width", raw)
}

// SetHeight adds height option, see SetWidth.
func (i *Image) SetHeight(raw string) error {
	return i.setMeasure("height", raw)
}

func (i *Image) setMeasure(key, raw string) error {
	if _, _, err := Measure(raw); err != nil {
		return fmt.Errorf("image %s %#v: %w", key, raw, err)
	}

	i.AddOption(key + "=" + raw)
	return nil
}

// Option returns value of key=value option, when option is given more than once the last one wins.
func (i *Image) Option(key string) (string, bool) {
	value, ok := KeyValue(strings.Join(i.Options, ","))[strings.ToLower(key)]
	return value, ok
}

func (i *Image) render(w io.Writer) error {
	_, err := fmt.Fprint(w, "\\includegraphics", options(i.Options), "{", i.Path, "} \n")
	return err
}

// Input is \input{}, includes another file.
type Input struct {
	Name string
}

func NewInput(name string) *Input {
	return &Input{Name: name}
}

func (i *Input) Kind() Kind { return InputKind }

func (i *Input) render(w io.Writer) error {
	_, err := fmt.Fprint(w, "\\input{", i.Name, "}")
	return err
}

// Command is raw LaTeX, usually an invocation of a Macro.
type Command string

func (c Command) Kind() Kind { return CommandKind }

func (c Command) render(w io.Writer) error {
	_, err := fmt.Fprint(w, string(c))
	return err
}
