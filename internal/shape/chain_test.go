package shape

import (
	"testing"

	"github.com/iburimskiy/window-line-ball/internal/anim"
)

const gap = 0.02 / 5

// settle taps the chain and runs the current node to completion.
func settle(t *testing.T, c *Chain) {
	t.Helper()
	if !c.StartUpdating() {
		t.Fatal("tap was refused")
	}
	for i := 0; i < 1000; i++ {
		if res, _ := c.Update(gap); res == anim.Completed {
			return
		}
	}
	t.Fatal("node never completed")
}

func TestChainLinks(t *testing.T) {
	const size = 5
	c := NewChain(size)
	if c.Len() != size {
		t.Fatalf("Expected %d nodes, got %d", size, c.Len())
	}
	for i := 0; i < size; i++ {
		forward := 0
		for idx := i; idx != None; idx = c.Node(idx).Next {
			forward++
		}
		if forward != size-i {
			t.Errorf("node %d: expected %d nodes forward, got %d", i, size-i, forward)
		}
	}

	back := 0
	for idx := size - 1; idx != None; idx = c.Node(idx).Prev {
		back++
	}
	if back != size {
		t.Errorf("Expected %d nodes back from tail, got %d", size, back)
	}
	if c.Node(0).Prev != None || c.Node(size-1).Next != None {
		t.Error("chain ends should have no outer neighbors")
	}
}

func TestNeighbor(t *testing.T) {
	c := NewChain(3)
	if idx, ok := c.Node(1).Neighbor(1); !ok || idx != 2 {
		t.Errorf("Expected next 2, got %d %v", idx, ok)
	}
	if idx, ok := c.Node(1).Neighbor(-1); !ok || idx != 0 {
		t.Errorf("Expected prev 0, got %d %v", idx, ok)
	}
	if _, ok := c.Node(2).Neighbor(1); ok {
		t.Error("tail should report boundary going forward")
	}
	if _, ok := c.Node(0).Neighbor(-1); ok {
		t.Error("head should report boundary going back")
	}
}

func TestChainFirstTap(t *testing.T) {
	c := NewChain(5)
	settle(t, c)
	if c.Current().Index != 1 {
		t.Errorf("Expected current 1, got %d", c.Current().Index)
	}
	if s := c.Node(0).State; s.Scale != 1 || !s.Idle() {
		t.Errorf("node 0 should rest at 1: %+v", s)
	}
}

func TestChainTapSequence(t *testing.T) {
	const size = 5
	c := NewChain(size)
	for i := 0; i < size-1; i++ {
		settle(t, c)
	}
	if c.Current().Index != size-1 || c.Direction() != 1 {
		t.Fatalf("Expected tail moving forward, got %d dir %d", c.Current().Index, c.Direction())
	}

	settle(t, c)
	if c.Current().Index != size-1 {
		t.Errorf("boundary tap should not move current, got %d", c.Current().Index)
	}
	if c.Direction() != -1 {
		t.Errorf("Expected direction -1, got %d", c.Direction())
	}

	// The tail now animates back to 0 and hands off to its predecessor.
	settle(t, c)
	if c.Current().Index != size-2 {
		t.Errorf("Expected current %d, got %d", size-2, c.Current().Index)
	}
	if s := c.Node(size - 1).State.Scale; s != 0 {
		t.Errorf("tail should be back at 0, got %v", s)
	}
}

func TestChainOscillates(t *testing.T) {
	const size = 5
	c := NewChain(size)
	// Full sweep out and back: 5 forward, 5 back.
	for i := 0; i < 2*size; i++ {
		settle(t, c)
	}
	if c.Current().Index != 0 || c.Direction() != 1 {
		t.Errorf("Expected head moving forward, got %d dir %d", c.Current().Index, c.Direction())
	}
	for i := 0; i < size; i++ {
		if s := c.Node(i).State.Scale; s != 0 {
			t.Errorf("node %d: expected scale 0, got %v", i, s)
		}
	}
}

func TestChainStartWhileAnimating(t *testing.T) {
	c := NewChain(5)
	c.StartUpdating()
	c.Update(gap)
	if c.StartUpdating() {
		t.Error("second tap during animation should be refused")
	}
}
