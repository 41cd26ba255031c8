package dynamize

import (
	"fmt"
	"io"
	"math/bits"
)

// Units2Dot outputs the slot layout of an engine in Graphviz DOT format
// (for debugging purposes). Every slot is drawn as a node labelled with its
// index and the size of the unit it holds; empty slots are drawn as circles.
func Units2Dot[C Static[C]](d *Dynamic[C], w io.Writer) {
	Layout2Dot(d.Layout(), w)
}

// Layout2Dot outputs a layout as returned by Dynamic.Layout in Graphviz DOT
// format. Negative sizes denote empty slots.
func Layout2Dot(layout []int, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	for i, size := range layout {
		if size < 0 {
			nodelist += fmt.Sprintf("\t\"%d\" [label=\"%d\" %s];\n", i, i, emptyNode())
		} else {
			label := fmt.Sprintf("#%d\\n%d", i, size)
			nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", i, label, unitDotStyles(size))
		}
		if i > 0 {
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", i-1, i)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return ",color=black,shape=circle,fixedsize=true,width=.4"
}

func unitDotStyles(size int) string {
	s := ",style=filled,shape=box"
	shade := min(bits.Len(uint(size)), len(hexcolors)-1)
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[shade])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
