// Package scene implements the compositor's scene-graph node descriptors:
// every node (tree, rect, buffer, surface — the primitive itself is assumed
// provided by the renderer) can carry one Descriptor tagging what it
// represents.
// Descriptor lifetime is tied 1:1 to its node: Node.Destroy clears it, the
// core invariant that guarantees no dangling descriptor ever reaches a
// hit-test.
package scene

// Type is the closed set of logical roles a scene node can carry.
type Type int

const (
	TypeNone Type = iota
	TypeView
	TypeXDGPopup
	TypeXDGUnmanaged
	TypeLayerSurface
	TypeLayerPopup
	TypeMenuItem
	TypeSSDButton
	TypeTree
	TypeSSDRounded
	TypeIMEPopup
	TypeSessionLockSurface
	TypeCycleOSDItem
	TypeScaledSceneBuffer
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeView:
		return "View"
	case TypeXDGPopup:
		return "XDGPopup"
	case TypeXDGUnmanaged:
		return "XDGUnmanaged"
	case TypeLayerSurface:
		return "LayerSurface"
	case TypeLayerPopup:
		return "LayerPopup"
	case TypeMenuItem:
		return "MenuItem"
	case TypeSSDButton:
		return "SSDButton"
	case TypeTree:
		return "Tree"
	case TypeSSDRounded:
		return "SSDRounded"
	case TypeIMEPopup:
		return "IMEPopup"
	case TypeSessionLockSurface:
		return "SessionLockSurface"
	case TypeCycleOSDItem:
		return "CycleOSDItem"
	case TypeScaledSceneBuffer:
		return "ScaledSceneBuffer"
	default:
		return "Unknown"
	}
}

// Descriptor tags a Node with its logical role and a back-reference to the
// compositor object it represents (a *view.View, an *ssd.Button, …).
type Descriptor struct {
	Type Type
	Data any
}

// Node is the minimal surface the scene package needs from the underlying
// scene-graph primitive: a place to attach at most one Descriptor, and a
// destroy signal that fires exactly once. The real primitive (tree, rect,
// buffer or surface node) is assumed provided by the renderer; Node is the
// seam our core code program against.
type Node struct {
	descriptor   *Descriptor
	destroyed    bool
	onDestroy    []func()
	Parent       *Node
	Children     []*Node
	Enabled      bool
	X, Y         int
}

// NewNode creates a detached node. Attach appends it to a parent.
func NewNode() *Node {
	return &Node{Enabled: true}
}

// Attach appends n as a child of parent at logical position (x, y).
func (n *Node) Attach(parent *Node, x, y int) {
	n.Parent = parent
	n.X, n.Y = x, y
	if parent != nil {
		parent.Children = append(parent.Children, n)
	}
}

// SetDescriptor attaches d to n. A node carries at most one descriptor;
// calling SetDescriptor again replaces it.
func (n *Node) SetDescriptor(d Descriptor) {
	n.descriptor = &d
}

// Descriptor returns the node's descriptor, or nil if none is attached or
// the node has been destroyed.
func (n *Node) Descriptor() *Descriptor {
	if n.destroyed {
		return nil
	}
	return n.descriptor
}

// OnDestroy registers fn to run when the node is destroyed, the
// wl_signal_add(&node->events.destroy, ...) of this seam.
func (n *Node) OnDestroy(fn func()) {
	n.onDestroy = append(n.onDestroy, fn)
}

// Destroy fires the destroy signal, detaches the descriptor and recurses
// into children so no descriptor can outlive its node.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	children := n.Children
	n.Children = nil
	for _, c := range children {
		c.Destroy()
	}
	n.destroyed = true
	n.descriptor = nil
	listeners := n.onDestroy
	n.onDestroy = nil
	for _, fn := range listeners {
		fn()
	}
	if n.Parent != nil {
		siblings := n.Parent.Children
		for i, c := range siblings {
			if c == n {
				n.Parent.Children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
		n.Parent = nil
	}
}

// Destroyed reports whether Destroy has already run.
func (n *Node) Destroyed() bool { return n.destroyed }

// Walk calls visit for n and its descendants depth-first, children in
// reverse sibling order (later siblings paint on top and should hit-test
// first), passing each node's absolute origin accumulated from its
// ancestors. Disabled or destroyed nodes and their subtrees are skipped,
// and a false return from visit skips that node's children. Hit-testing
// itself is geometry-specific and lives in the owning packages (ssd,
// view); Walk only walks the structural tree.
func (n *Node) Walk(visit func(node *Node, absX, absY int) bool) {
	n.walk(0, 0, visit)
}

func (n *Node) walk(originX, originY int, visit func(*Node, int, int) bool) {
	if n.destroyed || !n.Enabled {
		return
	}
	absX, absY := originX+n.X, originY+n.Y
	if !visit(n, absX, absY) {
		return
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		n.Children[i].walk(absX, absY, visit)
	}
}
