package latex

import (
	"bytes"
	"fmt"
	"io"
)

// Render writes component as LaTeX markup.
func Render(w io.Writer, c Component) error {
	return c.render(w)
}

// String renders component to a string.
func String(c Component) string {
	buffer := bytes.NewBuffer(nil)
	_ = c.render(buffer) // writing to a buffer never fails
	return buffer.String()
}

func renderChildren(w io.Writer, children []Component) error {
	for _, child := range children {
		if err := child.render(w); err != nil {
			return err
		}
	}

	return nil
}

func renderChildrenAndWrap(w io.Writer, children []Component, prefix, suffix string) error {
	if _, err := fmt.Fprint(w, prefix); err != nil {
		return err
	}

	if err := renderChildren(w, children); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, suffix); err != nil {
		return err
	}

	return nil
}

func renderToString(c Component) (string, error) {
	buffer := bytes.NewBuffer(nil)
	if err := c.render(buffer); err != nil {
		return "", err
	}

	return buffer.String(), nil
}
