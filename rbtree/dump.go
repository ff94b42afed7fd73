package rbtree

import (
	"fmt"
	"io"
	"os"

	ansi "github.com/fatih/color"
	"golang.org/x/term"
)

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Node labels are produced by format; red and
// black nodes carry their color as fill style.
func (t *Tree[T]) Dot(w io.Writer, format func(T) string) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t != nil && t.root != nil {
		ids := make(map[*node[T]]int)
		nextID, nilID := 1, 10000
		nodelist, edgelist := "", ""
		stack := []*node[T]{t.root}
		ids[t.root] = nextID
		nextID++
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ids[n], format(n.item), nodeDotStyles(n.color))
			for _, child := range []*node[T]{n.left, n.right} {
				if child == nil {
					nodelist += fmt.Sprintf("\"%d\" %s;\n", nilID, emptyNode)
					edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ids[n], nilID)
					nilID++
					continue
				}
				ids[child] = nextID
				nextID++
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ids[n], ids[child])
				stack = append(stack, child)
			}
		}
		io.WriteString(w, nodelist)
		io.WriteString(w, edgelist)
	}
	io.WriteString(w, "}\n")
}

const emptyNode = "[label=\"\",color=black,shape=point,fixedsize=true,width=.2]"

func nodeDotStyles(c color) string {
	s := ",style=filled,shape=circle"
	if c == red {
		s += ",fillcolor=\"#ffbbbb\""
	} else {
		s += ",fontcolor=white,fillcolor=black"
	}
	return s
}

// Dump writes an indented right-to-left rendering of the tree structure
// to w, one node per line. When w is a terminal, node colors are shown
// using ANSI colors; otherwise a one-letter color tag is appended.
func (t *Tree[T]) Dump(w io.Writer, format func(T) string) {
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "<empty tree>")
		return
	}
	dumpNode(w, t.root, 0, format, dumpPalette(w))
}

type nodePalette struct {
	red, black *ansi.Color
}

// dumpPalette enables colored output only when dumping to a terminal.
func dumpPalette(w io.Writer) *nodePalette {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return &nodePalette{
		red:   ansi.New(ansi.FgRed),
		black: ansi.New(ansi.FgHiBlack),
	}
}

func dumpNode[T any](w io.Writer, n *node[T], depth int, format func(T) string, palette *nodePalette) {
	if n.right != nil {
		dumpNode(w, n.right, depth+1, format, palette)
	}
	for i := 0; i < depth; i++ {
		io.WriteString(w, "    ")
	}
	fmt.Fprintln(w, dumpLabel(n, format, palette))
	if n.left != nil {
		dumpNode(w, n.left, depth+1, format, palette)
	}
}

func dumpLabel[T any](n *node[T], format func(T) string, palette *nodePalette) string {
	label := format(n.item)
	if palette == nil {
		if n.color == red {
			return label + " (r)"
		}
		return label + " (b)"
	}
	if n.color == red {
		return palette.red.Sprint(label)
	}
	return palette.black.Sprint(label)
}
