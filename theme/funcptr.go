package theme

import "reflect"

// funcPointer returns the entry point of a function value so two Modifier
// callbacks can be compared for identity. Go forbids direct == on func
// values; reflect is the idiomatic escape hatch.
func funcPointer(f Modifier) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}
