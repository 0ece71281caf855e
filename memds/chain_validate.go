package memds

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/topo"
)

var (
	_ graph.Directed = (*chainGraphAdapter[int])(nil)
	_ graph.Node     = chainNodeAdapter(0)
	_ graph.Edge     = (*chainEdgeAdapter)(nil)
)

// validate checks the structural invariants of the chain, it returns an error wrapping
// ErrCorrupted if one of them does not hold.
func (c *chain[T]) validate() error {
	fail := func(format string, args ...any) error {
		err := fmt.Errorf("%w: "+format, append([]any{ErrCorrupted}, args...)...)
		c.logger.Error().Err(err).Msg("invariant violated")
		return err
	}

	if c.length < 0 {
		return fail("negative length %d", c.length)
	}
	if (c.length == 0) != (c.head == nil) {
		return fail("length is %d but head is nil=%t", c.length, c.head == nil)
	}
	if c.tracksTail() {
		if (c.head == nil) != (c.tail == nil) {
			return fail("head is nil=%t but tail is nil=%t", c.head == nil, c.tail == nil)
		}
	} else if c.tail != nil {
		return fail("tail is set but not tracked")
	}
	if c.live != c.length {
		return fail("%d live nodes, length is %d", c.live, c.length)
	}

	if c.head == nil {
		return nil
	}

	g := newChainGraphAdapter(c.head)

	//self edges are not reported by DirectedCyclesIn.
	if g.HasEdgeFromTo(int64(len(g.nodes)-1), int64(len(g.nodes)-1)) {
		return fail("node %d links to itself", len(g.nodes)-1)
	}
	if cycles := topo.DirectedCyclesIn(g); len(cycles) > 0 {
		return fail("cycle of %d nodes", len(cycles[0])-1)
	}
	if len(g.nodes) != c.length {
		return fail("%d nodes reachable from head, length is %d", len(g.nodes), c.length)
	}
	if g.To(0).Len() != 0 {
		return fail("head has a predecessor")
	}
	if c.tracksTail() && g.nodes[len(g.nodes)-1] != c.tail {
		return fail("tail is not the last node")
	}

	for i, n := range g.nodes {
		var expectedPrev *node[T]
		if c.doublyLinked() && i > 0 {
			expectedPrev = g.nodes[i-1]
		}
		if n.prev != expectedPrev {
			return fail("invalid prev link at index %d", i)
		}
	}

	return nil
}

// chainGraphAdapter exposes the next links of a chain as a directed graph,
// node ids are the indexes of the nodes in the order they are reached from the head.
type chainGraphAdapter[T any] struct {
	nodes []*node[T]
	ids   map[*node[T]]int64

	//id -> id of the next node
	next map[int64]int64
}

func newChainGraphAdapter[T any](head *node[T]) *chainGraphAdapter[T] {
	g := &chainGraphAdapter[T]{
		ids:  map[*node[T]]int64{},
		next: map[int64]int64{},
	}

	for n := head; n != nil; n = n.next {
		id := int64(len(g.nodes))
		g.ids[n] = id
		g.nodes = append(g.nodes, n)

		if n.next == nil {
			break
		}
		if nextId, ok := g.ids[n.next]; ok {
			//cycle
			g.next[id] = nextId
			break
		}
		g.next[id] = id + 1
	}

	return g
}

func (g *chainGraphAdapter[T]) has(id int64) bool {
	return id >= 0 && id < int64(len(g.nodes))
}

func (g *chainGraphAdapter[T]) Node(id int64) graph.Node {
	if !g.has(id) {
		return nil
	}
	return chainNodeAdapter(id)
}

func (g *chainGraphAdapter[T]) Nodes() graph.Nodes {
	nodeMap := make(map[int64]graph.Node, len(g.nodes))
	for id := range g.nodes {
		nodeMap[int64(id)] = chainNodeAdapter(id)
	}
	return iterator.NewNodes(nodeMap)
}

func (g *chainGraphAdapter[T]) From(id int64) graph.Nodes {
	nodeMap := map[int64]graph.Node{}
	if nextId, ok := g.next[id]; ok {
		nodeMap[nextId] = chainNodeAdapter(nextId)
	}
	return iterator.NewNodes(nodeMap)
}

func (g *chainGraphAdapter[T]) To(id int64) graph.Nodes {
	nodeMap := map[int64]graph.Node{}
	for from, to := range g.next {
		if to == id {
			nodeMap[from] = chainNodeAdapter(from)
		}
	}
	return iterator.NewNodes(nodeMap)
}

func (g *chainGraphAdapter[T]) HasEdgeFromTo(uid int64, vid int64) bool {
	nextId, ok := g.next[uid]
	return ok && nextId == vid
}

func (g *chainGraphAdapter[T]) HasEdgeBetween(xid int64, yid int64) bool {
	return g.HasEdgeFromTo(xid, yid) || g.HasEdgeFromTo(yid, xid)
}

func (g *chainGraphAdapter[T]) Edge(uid int64, vid int64) graph.Edge {
	if !g.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return &chainEdgeAdapter{from: uid, to: vid}
}

type chainNodeAdapter int64

func (n chainNodeAdapter) ID() int64 {
	return int64(n)
}

type chainEdgeAdapter struct {
	from, to int64
}

func (e *chainEdgeAdapter) From() graph.Node {
	return chainNodeAdapter(e.from)
}

func (e *chainEdgeAdapter) To() graph.Node {
	return chainNodeAdapter(e.to)
}

func (e *chainEdgeAdapter) ReversedEdge() graph.Edge {
	return &chainEdgeAdapter{from: e.to, to: e.from}
}
