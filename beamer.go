package latex

import "io"

// Frame is a beamer slide.
type Frame struct {
	content
	Title string
}

func NewFrame(title string, children ...Component) *Frame {
	return &Frame{Title: Escape(title), content: content{children: children}}
}

func (f *Frame) Kind() Kind { return FrameKind }

func (f *Frame) render(w io.Writer) error {
	return renderChildrenAndWrap(w, f.children, "\\begin{frame}{"+f.Title+"} \n ", " \\end{frame} \n ")
}

// Block is a titled box within a beamer slide.
type Block struct {
	content
	Title string
}

func NewBlock(title string, children ...Component) *Block {
	return &Block{Title: Escape(title), content: content{children: children}}
}

func (b *Block) Kind() Kind { return BlockKind }

func (b *Block) render(w io.Writer) error {
	return renderChildrenAndWrap(w, b.children, "\\begin{block}{"+b.Title+"} \n ", " \\end{block} \n ")
}
