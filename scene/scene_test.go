package scene

import "testing"

func TestNodeSetDescriptorAndClear(t *testing.T) {
	n := NewNode()
	if n.Descriptor() != nil {
		t.Fatal("expected nil descriptor on fresh node")
	}
	n.SetDescriptor(Descriptor{Type: TypeView, Data: "v1"})
	d := n.Descriptor()
	if d == nil || d.Type != TypeView || d.Data != "v1" {
		t.Fatalf("Descriptor = %+v, want Type=View Data=v1", d)
	}
}

func TestNodeDestroyFiresListenersAndClearsDescriptor(t *testing.T) {
	n := NewNode()
	n.SetDescriptor(Descriptor{Type: TypeSSDButton})

	fired := 0
	n.OnDestroy(func() { fired++ })
	n.OnDestroy(func() { fired++ })

	n.Destroy()

	if fired != 2 {
		t.Fatalf("expected both destroy listeners to fire, got %d", fired)
	}
	if n.Descriptor() != nil {
		t.Fatal("expected descriptor cleared after destroy")
	}
	if !n.Destroyed() {
		t.Fatal("expected Destroyed() true")
	}

	// Safe to call twice, and must not re-fire listeners.
	n.Destroy()
	if fired != 2 {
		t.Fatalf("expected no re-fire on double destroy, got %d", fired)
	}
}

func TestNodeDestroyCascadesToChildren(t *testing.T) {
	root := NewNode()
	child := NewNode()
	child.Attach(root, 5, 5)
	grandchild := NewNode()
	grandchild.Attach(child, 1, 1)

	childDestroyed := false
	grandchildDestroyed := false
	child.OnDestroy(func() { childDestroyed = true })
	grandchild.OnDestroy(func() { grandchildDestroyed = true })

	root.Destroy()

	if !childDestroyed || !grandchildDestroyed {
		t.Fatal("expected destroy to cascade to every descendant")
	}
	if len(root.Children) != 0 {
		t.Fatal("expected children cleared after destroy")
	}
}

func TestNodeDestroyDetachesFromParent(t *testing.T) {
	root := NewNode()
	a := NewNode()
	b := NewNode()
	a.Attach(root, 0, 0)
	b.Attach(root, 0, 0)

	a.Destroy()

	if len(root.Children) != 1 || root.Children[0] != b {
		t.Fatalf("expected only b left under root, got %d children", len(root.Children))
	}
}

func TestWalkVisitsInReverseSiblingOrderAndAccumulatesOrigin(t *testing.T) {
	root := NewNode()
	first := NewNode()
	second := NewNode()
	first.Attach(root, 10, 0)
	second.Attach(root, 20, 0)
	leaf := NewNode()
	leaf.Attach(second, 1, 2)

	var order []*Node
	var leafOrigin [2]int
	root.Walk(func(n *Node, absX, absY int) bool {
		order = append(order, n)
		if n == leaf {
			leafOrigin = [2]int{absX, absY}
		}
		return true
	})

	if order[0] != root || order[1] != second || order[2] != leaf || order[3] != first {
		t.Fatalf("expected root, second(+children), first order (later siblings hit-test first), got %v", order)
	}
	if leafOrigin != [2]int{21, 2} {
		t.Fatalf("expected leaf absolute origin (21,2), got %v", leafOrigin)
	}
}

func TestWalkSkipsDisabledNode(t *testing.T) {
	root := NewNode()
	child := NewNode()
	child.Attach(root, 0, 0)
	child.Enabled = false

	visited := false
	root.Walk(func(n *Node, _, _ int) bool {
		if n == child {
			visited = true
		}
		return true
	})
	if visited {
		t.Fatal("expected Walk to skip a disabled node")
	}
}
