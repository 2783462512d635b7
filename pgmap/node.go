package pgmap

import (
	"context"

	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

// node is a maps.Node fetched from a single openlr_nodes row. Outgoing
// and Incoming are resolved lazily, one query each, the first time
// they're called, mirroring the original's outgoing_lines/incoming_lines
// generators.
type node struct {
	m     *Map
	ctx   context.Context
	id    int64
	coord openlr.Coordinate

	out, in             []maps.Line
	outLoaded, inLoaded bool
}

// ID implements maps.Node.
func (n *node) ID() int64 { return n.id }

// Coordinates implements maps.Node.
func (n *node) Coordinates() openlr.Coordinate { return n.coord }

// Outgoing implements maps.Node, querying every line whose startnode is
// this node.
func (n *node) Outgoing() []maps.Line {
	if !n.outLoaded {
		lines, err := n.m.linesByEndpoint(n.ctx, "startnode", n.id)
		if err == nil {
			n.out = lines
		}
		n.outLoaded = true
	}
	return n.out
}

// Incoming implements maps.Node, querying every line whose endnode is
// this node.
func (n *node) Incoming() []maps.Line {
	if !n.inLoaded {
		lines, err := n.m.linesByEndpoint(n.ctx, "endnode", n.id)
		if err == nil {
			n.in = lines
		}
		n.inLoaded = true
	}
	return n.in
}

// linesByEndpoint queries every line whose column (one of "startnode" or
// "endnode", both fixed internal literals, never user input) equals id.
func (m *Map) linesByEndpoint(ctx context.Context, column string, id int64) ([]maps.Line, error) {
	rows, err := m.pool.Query(ctx, selectLineColumns+" WHERE "+column+" = $1", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []maps.Line
	for rows.Next() {
		l, err := scanLine(ctx, m, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// errNode stands in for a node a line references but which GetNode could
// not resolve (a dangling startnode/endnode foreign key): StartNode and
// EndNode have no error return, so this is the only way to surface the
// failure without changing the maps.Node/maps.Line contract shared by
// every backend in this module.
type errNode struct {
	id  int64
	err error
}

func (e *errNode) ID() int64                      { return e.id }
func (e *errNode) Coordinates() openlr.Coordinate { return openlr.Coordinate{} }
func (e *errNode) Outgoing() []maps.Line          { return nil }
func (e *errNode) Incoming() []maps.Line          { return nil }

var (
	_ maps.Node = (*node)(nil)
	_ maps.Node = (*errNode)(nil)
)
