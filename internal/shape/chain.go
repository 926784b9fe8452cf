package shape

import (
	"github.com/iburimskiy/window-line-ball/internal/anim"
	"github.com/iburimskiy/window-line-ball/internal/config"
)

// None marks a missing neighbor.
const None = -1

// Node is one window-line-ball shape. Next and Prev are indices into the
// owning Chain, or None at either end.
type Node struct {
	Index int
	Next  int
	Prev  int
	State anim.State
}

// Neighbor returns the node index in direction dir (-1 for Prev, anything else
// for Next). ok is false at the chain boundary.
func (n *Node) Neighbor(dir int) (idx int, ok bool) {
	idx = n.Next
	if dir == -1 {
		idx = n.Prev
	}
	return idx, idx != None
}

// Chain owns all nodes and tracks the one currently on screen.
type Chain struct {
	nodes     []Node
	current   int
	direction int
}

// NewChain builds size linked nodes, starting at node 0 moving forward.
func NewChain(size int) *Chain {
	nodes := make([]Node, size)
	for i := range nodes {
		nodes[i] = Node{Index: i, Next: None, Prev: None}
		if i > 0 {
			nodes[i].Prev = i - 1
			nodes[i-1].Next = i
		}
	}
	return &Chain{nodes: nodes, direction: 1}
}

func (c *Chain) Len() int { return len(c.nodes) }

// Node returns the node at index i.
func (c *Chain) Node(i int) *Node { return &c.nodes[i] }

func (c *Chain) Current() *Node { return &c.nodes[c.current] }

func (c *Chain) Direction() int { return c.direction }

// Update steps the current node. When it completes, the chain moves to the
// neighbor in the current direction, or reverses direction if there is none.
func (c *Chain) Update(gap float64) (anim.UpdateResult, float64) {
	res, v := c.Current().State.Update(gap)
	if res != anim.Completed {
		return res, v
	}
	if next, ok := c.Current().Neighbor(c.direction); ok {
		c.current = next
	} else {
		c.direction *= -1
	}
	return res, v
}

// StartUpdating starts the current node. It returns false if the node is
// already animating.
func (c *Chain) StartUpdating() bool {
	return c.Current().State.StartUpdating()
}

func (c *Chain) Draw(cv Canvas, v config.Variant, p *Paint) {
	n := c.Current()
	DrawNode(cv, v, n.Index, n.State.Scale, p)
}
