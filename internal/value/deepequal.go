package value

// DeepEqual implements structural equality (spec.md §4.A):
//   - same handle -> true
//   - different tags -> false
//   - primitives -> ==
//   - Function -> identity of the underlying callable
//   - Array -> same size, element-wise deep-equal in order
//   - Map -> same size, bijection between entries with deep-equal keys
//     and values (order-independent)
//
// Grounded on value/deep-equal.cpp's Overload visitor.
func DeepEqual(lhs, rhs *Value) bool {
	if SameHandle(lhs, rhs) {
		return true
	}
	if lhs.tag != rhs.tag {
		return false
	}
	switch lhs.tag {
	case TagNull:
		return true
	case TagInt:
		return lhs.i == rhs.i
	case TagFloat:
		return lhs.f == rhs.f
	case TagBool:
		return lhs.b == rhs.b
	case TagString:
		return lhs.s == rhs.s
	case TagFunction:
		return CallableIdentity(lhs.fn) == CallableIdentity(rhs.fn)
	case TagArray:
		if len(lhs.arr) != len(rhs.arr) {
			return false
		}
		for i := range lhs.arr {
			if !DeepEqual(lhs.arr[i], rhs.arr[i]) {
				return false
			}
		}
		return true
	case TagMap:
		lhsEntries, rhsEntries := lhs.m.Entries(), rhs.m.Entries()
		if len(lhsEntries) != len(rhsEntries) {
			return false
		}
		matched := make([]bool, len(rhsEntries))
		for _, le := range lhsEntries {
			found := false
			for i, re := range rhsEntries {
				if matched[i] {
					continue
				}
				if DeepEqual(le.Key, re.Key) && DeepEqual(le.Value, re.Value) {
					matched[i] = true
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		return false
	}
}
