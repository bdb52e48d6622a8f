// Package tree mirrors the folder/file layout discovered by a scan.
//
// The root node is the scanned directory. Every folder that holds at least
// one file gets a node directly under the root, and every file is a leaf
// under its folder, keyed by its full path.
package tree

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"sort"
)

// Node is a single tree node.
type Node struct {
	ID       string // Full path
	Tag      string // Display label
	Parent   *Node
	children []*Node
}

// Children returns the node's children sorted by tag.
func (n *Node) Children() []*Node {
	out := append([]*Node(nil), n.children...)
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Tree indexes nodes by ID.
type Tree struct {
	root  *Node
	nodes map[string]*Node
}

// New creates a tree with a single root node for dir.
func New(dir string) *Tree {
	root := &Node{ID: dir, Tag: dir}
	return &Tree{
		root:  root,
		nodes: map[string]*Node{dir: root},
	}
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Contains reports whether a node with id exists.
func (t *Tree) Contains(id string) bool {
	_, ok := t.nodes[id]
	return ok
}

// Get returns the node with id, or nil.
func (t *Tree) Get(id string) *Node {
	return t.nodes[id]
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// AddFile inserts folder (under the root, if new) and the file leaf.
func (t *Tree) AddFile(folder, name string) (*Node, error) {
	parent, ok := t.nodes[folder]
	if !ok {
		parent = t.add(folder, folder, t.root)
	}

	id := filepath.Join(folder, name)
	if _, dup := t.nodes[id]; dup {
		return nil, fmt.Errorf("duplicate node %q", id)
	}
	return t.add(id, name, parent), nil
}

func (t *Tree) add(id, tag string, parent *Node) *Node {
	n := &Node{ID: id, Tag: tag, Parent: parent}
	parent.children = append(parent.children, n)
	t.nodes[id] = n
	return n
}

// Render writes an indented listing of the tree using box drawing characters.
func (t *Tree) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, t.root.Tag)
	renderChildren(bw, t.root, "")
	return bw.Flush()
}

func renderChildren(w io.Writer, n *Node, prefix string) {
	children := n.Children()
	for i, c := range children {
		branch, indent := "├── ", "│   "
		if i == len(children)-1 {
			branch, indent = "└── ", "    "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, c.Tag)
		renderChildren(w, c, prefix+indent)
	}
}
