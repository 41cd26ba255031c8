package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// renderer prints one line per insertion step.
type renderer struct {
	w      io.Writer
	width  int
	unit   *color.Color
	empty  *color.Color
	merged *color.Color
}

func newRenderer(w io.Writer, width int) *renderer {
	return &renderer{
		w:      w,
		width:  width,
		unit:   color.New(color.FgCyan),
		empty:  color.New(color.FgHiBlack),
		merged: color.New(color.FgYellow, color.Bold),
	}
}

func (r *renderer) render(s step) {
	var line strings.Builder
	head := fmt.Sprintf("%5d  +%-4d ", s.n, s.item)
	line.WriteString(head)
	visible := len(head)
	m := fmt.Sprintf("%d merge(s) ", s.merges)
	if s.merges > 0 {
		line.WriteString(r.merged.Sprint(m))
	} else {
		line.WriteString(m)
	}
	visible += len(m)
	line.WriteString("|")
	visible++
	for _, size := range s.layout {
		cell := " ·"
		c := r.empty
		if size >= 0 {
			cell = " " + strconv.Itoa(size)
			c = r.unit
		}
		if r.width > 0 && visible+len(cell)+2 > r.width {
			line.WriteString(" …")
			break
		}
		line.WriteString(c.Sprint(cell))
		visible += len(cell)
	}
	line.WriteString(" |")
	fmt.Fprintln(r.w, line.String())
}

// terminalWidth returns the width of stdout if it is a terminal, 0 otherwise.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < 20 {
		return 0
	}
	return w
}
