// Package core defines the planar Graph, Vertex and Edge types, the graph
// options and the sentinel errors.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/stickloop/geom"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates no edge joins the requested vertices.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a canonical point of the planar graph.
type Vertex struct {
	// Key is the canonical identity of this vertex.
	Key geom.Key

	// Point is the canonical location the Key was derived from.
	Point geom.Point
}

// Edge is one sub-segment of a stick.
//
// From and To record the direction the subdivider walked the stick in;
// the edge itself is undirected.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From and To are the endpoint keys.
	From, To geom.Key

	// Stick is the ID of the stick this edge was cut from.
	Stick int

	// Length is the Euclidean length of the sub-segment.
	Length float64
}

// Other returns the endpoint of e opposite to k.
// If k is not an endpoint, From is returned.
func (e *Edge) Other(k geom.Key) geom.Key {
	if e.From == k {
		return e.To
	}

	return e.From
}

// Pair returns the undirected identity of e.
func (e *Edge) Pair() geom.PairKey {
	return geom.PairOf(e.From, e.To)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithKernel sets the kernel used to derive vertex keys from points.
// The default is geom.NewKernel().
func WithKernel(k geom.Kernel) GraphOption {
	return func(g *Graph) { g.kernel = k }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the planar graph of canonical points and sub-segments.
//
// mu guards every catalog. nextEdgeID is an atomic counter for Edge.ID.
// order and edgeOrder keep insertion order for deterministic enumeration.
type Graph struct {
	mu sync.RWMutex

	kernel geom.Kernel // derives vertex keys

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64                   // atomic edge ID generator
	vertices   map[geom.Key]*Vertex     // key → Vertex
	order      []geom.Key               // vertex insertion order
	edges      map[string]*Edge         // edge ID → Edge
	edgeOrder  []*Edge                  // edge insertion order
	adjacency  map[geom.Key][]*Edge     // key → incident edges, insertion order
	pairs      map[geom.PairKey][]*Edge // undirected pair → edges
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph has no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		kernel:    geom.NewKernel(),
		vertices:  make(map[geom.Key]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[geom.Key][]*Edge),
		pairs:     make(map[geom.PairKey][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Kernel returns the kernel used to derive vertex keys.
func (g *Graph) Kernel() geom.Kernel { return g.kernel }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }
