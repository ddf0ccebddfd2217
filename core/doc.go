// Package core provides the planar graph that stickloop builds from
// sub-segments: vertices are canonical points (geom.Key), edges are the
// pieces of sticks between consecutive points lying on them.
//
// The Graph G = (V,E) is undirected and, by default, simple:
//
//   - Vertex identity is geom.Key; the canonical geom.Point is kept alongside.
//   - Each Edge remembers the stick it was cut from and its own length.
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - A single sync.RWMutex guards the catalogs; reads are safe to share.
//
// Why not sorted order like a general graph library?
//
//   - The cycle finder's result must be reproducible from the input order of
//     sticks. Vertices(), Edges() and Neighbors() therefore return insertion
//     order, which is fixed by the subdivider, not key order.
//
// Configuration Options (GraphOption):
//
//	– WithKernel(k geom.Kernel)
//	    Kernel used to canonicalize points and derive keys (default geom.NewKernel()).
//
//	– WithMultiEdges()
//	    Allows several edges between the same two points.
//	    Otherwise a second AddEdge(a,b) or AddEdge(b,a) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits edges whose endpoints share a Key; otherwise → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Construction (no removal: the graph is read-only once built)
//	AddVertex(p geom.Point) geom.Key                                        // O(1)
//	AddEdge(from,to geom.Point, stick int, length float64) (string, error) // O(1)†
//	Points(keys []geom.Key) ([]geom.Point, error)                          // O(k)
//
//	// Query
//	HasVertex(k) bool                 // O(1)
//	Vertex(k) (*Vertex, error)        // O(1)
//	Vertices() []geom.Key             // O(V), insertion order
//	Neighbors(k) ([]*Edge, error)     // O(d), insertion order
//	Degree(k) (int, error)            // O(1)
//	HasEdge(a,b) bool                 // O(1), undirected
//	EdgeBetween(a,b) (*Edge, error)   // O(1), undirected
//	Edges() []*Edge                   // O(E), insertion order
//	VertexCount(), EdgeCount() int    // O(1)
//
// † amortized.
//
// Errors:
//
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – no edge between two vertices
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
