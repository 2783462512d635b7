package memmap

import (
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

// Node is a junction of a Graph.
type Node struct {
	id    int64
	coord openlr.Coordinate
	out   []maps.Line
	in    []maps.Line
}

// ID implements maps.Node.
func (n *Node) ID() int64 { return n.id }

// Coordinates implements maps.Node.
func (n *Node) Coordinates() openlr.Coordinate { return n.coord }

// Outgoing implements maps.Node.
func (n *Node) Outgoing() []maps.Line { return n.out }

// Incoming implements maps.Node.
func (n *Node) Incoming() []maps.Line { return n.in }

var _ maps.Node = (*Node)(nil)
