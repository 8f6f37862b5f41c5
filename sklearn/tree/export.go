package tree

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

// maxExportDepth bounds heap ids (2i+1, 2i+2) to what fits in uint64.
const maxExportDepth = 63

// GraphNode is one tree node keyed by its heap index.
type GraphNode struct {
	ID    uint64
	Label string
}

// GraphEdge links a parent heap index to a child heap index.
type GraphEdge struct {
	Parent uint64
	Child  uint64
}

// Graph is the node/edge listing of one tree.
type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}

// Export lists the nodes of root in pre-order using binary-heap ids
// (root 0, left 2i+1, right 2i+2) and one edge per parent/child pair.
// Every call returns a fresh Graph.
func Export(root Node) (Graph, error) {
	if d := Depth(root); d > maxExportDepth {
		return Graph{}, errors.NewValueError("tree.Export",
			"tree depth "+strconv.Itoa(d)+" exceeds the heap id range")
	}
	var g Graph
	var walk func(n Node, id uint64)
	walk = func(n Node, id uint64) {
		if n == nil {
			return
		}
		g.Nodes = append(g.Nodes, GraphNode{ID: id, Label: n.String()})
		s, ok := n.(*Split)
		if !ok {
			return
		}
		if s.Left != nil {
			g.Edges = append(g.Edges, GraphEdge{Parent: id, Child: 2*id + 1})
		}
		if s.Right != nil {
			g.Edges = append(g.Edges, GraphEdge{Parent: id, Child: 2*id + 2})
		}
		walk(s.Left, 2*id+1)
		walk(s.Right, 2*id+2)
	}
	walk(root, 0)
	return g, nil
}

// WriteNodesCSV writes one "id,label" record per node.
func (g Graph) WriteNodesCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, n := range g.Nodes {
		if err := cw.Write([]string{strconv.FormatUint(n.ID, 10), n.Label}); err != nil {
			return errors.Wrap(err, "writing node record")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing node records")
}

// WriteEdgesCSV writes one "parent,child,Undirected,1" record per edge.
func (g Graph) WriteEdgesCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, e := range g.Edges {
		rec := []string{strconv.FormatUint(e.Parent, 10), strconv.FormatUint(e.Child, 10), "Undirected", "1"}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "writing edge record")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing edge records")
}

// WriteCSV exports root to dir/nodes-<name>.csv and dir/edges-<name>.csv,
// replacing existing files.
func WriteCSV(root Node, dir, name string) (nodesPath, edgesPath string, err error) {
	g, err := Export(root)
	if err != nil {
		return "", "", err
	}
	nodesPath = filepath.Join(dir, "nodes-"+name+".csv")
	edgesPath = filepath.Join(dir, "edges-"+name+".csv")

	if err := writeFile(nodesPath, g.WriteNodesCSV); err != nil {
		return "", "", err
	}
	if err := writeFile(edgesPath, g.WriteEdgesCSV); err != nil {
		return "", "", err
	}
	return nodesPath, edgesPath, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()
	return write(f)
}

// ToDOT renders root as a Graphviz digraph.
func ToDOT(root Node) (string, error) {
	g, err := Export(root)
	if err != nil {
		return "", err
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName("G"); err != nil {
		return "", errors.Wrap(err, "naming graph")
	}
	if err := graph.SetDir(true); err != nil {
		return "", errors.Wrap(err, "setting graph direction")
	}
	for _, n := range g.Nodes {
		attrs := map[string]string{"label": strconv.Quote(n.Label), "shape": "box"}
		if err := graph.AddNode("G", strconv.FormatUint(n.ID, 10), attrs); err != nil {
			return "", errors.Wrapf(err, "adding node %d", n.ID)
		}
	}
	for _, e := range g.Edges {
		if err := graph.AddEdge(strconv.FormatUint(e.Parent, 10), strconv.FormatUint(e.Child, 10), true, nil); err != nil {
			return "", errors.Wrapf(err, "adding edge %d->%d", e.Parent, e.Child)
		}
	}
	return graph.String(), nil
}
