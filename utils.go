package latex

import "strings"

// content is an ordered list of child components, embedded by all containers.
type content struct {
	children []Component
}

// Add appends children without checking their rank.
func (c *content) Add(children ...Component) {
	c.children = append(c.children, children...)
}

// Children returns components in the order they were added.
func (c *content) Children() []Component {
	return c.children
}

func (c *content) attach(children ...Component) error {
	c.Add(children...)
	return nil
}

// options formats optional arguments, returns empty string when there are no options
func options(opts []string) string {
	if len(opts) == 0 {
		return ""
	}

	return "[" + strings.Join(opts, ", ") + "]"
}
