package buffer

import (
	"reflect"
	"testing"
)

type fakeImpl struct {
	n       int
	created []float64
}

func (f *fakeImpl) CreateBuffer(scale float64) (Handle, error) {
	f.created = append(f.created, scale)
	f.n++
	return f.n, nil
}
func (f *fakeImpl) Destroy()            {}
func (f *fakeImpl) Equal(other Impl) bool { return false }

func TestCacheLRUEviction(t *testing.T) {
	impl := &fakeImpl{}
	sb := NewScaledBuffer(impl, false)

	for _, scale := range []float64{1, 2, 1, 3} {
		if _, err := sb.EnterScale(scale); err != nil {
			t.Fatalf("EnterScale(%v): %v", scale, err)
		}
	}

	got := sb.cache.Scales()
	want := []float64{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cached scales = %v, want %v", got, want)
	}
}

func TestCacheHitDoesNotRerender(t *testing.T) {
	impl := &fakeImpl{}
	sb := NewScaledBuffer(impl, false)

	sb.EnterScale(1)
	sb.EnterScale(2)
	sb.EnterScale(1) // should hit cache, not re-render
	if len(impl.created) != 2 {
		t.Fatalf("created %d buffers, want 2 (one per distinct scale before eviction)", len(impl.created))
	}
}

func TestInvalidateForcesRerenderWhenVisible(t *testing.T) {
	impl := &fakeImpl{}
	sb := NewScaledBuffer(impl, false)
	sb.EnterScale(1)
	before := len(impl.created)
	if err := sb.Invalidate(); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if len(impl.created) != before+1 {
		t.Fatalf("expected a re-render after Invalidate while visible")
	}
}

func TestSharedListBorrowsPeerBuffer(t *testing.T) {
	var list SharedList
	equalA := &equalImpl{}
	equalB := &equalImpl{}
	sbA := NewScaledBuffer(equalA, false)
	sbB := NewScaledBuffer(equalB, false)
	list.Register(sbA)
	list.Register(sbB)

	if _, err := sbA.EnterScale(2); err != nil {
		t.Fatal(err)
	}
	if _, err := sbB.EnterScale(2); err != nil {
		t.Fatal(err)
	}
	if equalB.n != 0 {
		t.Fatalf("sbB should have borrowed sbA's buffer instead of rendering its own, got %d renders", equalB.n)
	}
}

type equalImpl struct {
	n int
}

func (e *equalImpl) CreateBuffer(scale float64) (Handle, error) {
	e.n++
	return e.n, nil
}
func (e *equalImpl) Destroy()             {}
func (e *equalImpl) Equal(other Impl) bool { _, ok := other.(*equalImpl); return ok }

func TestActiveScaleZeroUntilFirstEnter(t *testing.T) {
	sb := NewScaledBuffer(&fakeImpl{}, false)
	if sb.ActiveScale() != 0 {
		t.Fatalf("expected ActiveScale 0 before any EnterScale, got %v", sb.ActiveScale())
	}
	sb.EnterScale(3)
	if sb.ActiveScale() != 3 {
		t.Fatalf("ActiveScale = %v, want 3", sb.ActiveScale())
	}
}

func TestDestroyUnregistersFromSharedListAndDropsBuffer(t *testing.T) {
	var list SharedList
	impl := &fakeImpl{}
	sb := NewScaledBuffer(impl, true)
	list.Register(sb)
	sb.EnterScale(1)

	destroyed := false
	dropImpl := &destroyTrackingImpl{fakeImpl: impl, onDestroy: func() { destroyed = true }}
	sb.impl = dropImpl

	sb.Destroy()

	if !destroyed {
		t.Fatal("expected Destroy to call Impl.Destroy on teardown")
	}
	if len(list.members) != 0 {
		t.Fatalf("expected Destroy to unregister from the shared list, got %d members left", len(list.members))
	}
	if sb.impl != nil || sb.current != nil {
		t.Fatal("expected impl and current handle cleared after Destroy")
	}
}

type destroyTrackingImpl struct {
	*fakeImpl
	onDestroy func()
}

func (d *destroyTrackingImpl) Destroy() { d.onDestroy() }
