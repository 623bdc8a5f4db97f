package pdf

import (
	"hash/fnv"
	"sort"
)

// Hash computes a structural hash of obj, for use as a hash-bucket key by
// the write pipeline's reference-deduplication algorithm (two objects
// with the same Hash are candidates for Equal, and therefore for sharing
// one allocated Reference). It returns ErrUnhashable if obj (or any value
// reachable from it) is a Real carrying NaN.
func Hash(obj Object) (uint64, error) {
	h := fnv.New64a()
	if err := hashInto(h, obj); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

func hashInto(h interface{ Write([]byte) (int, error) }, obj Object) error {
	if obj == nil {
		_, err := h.Write([]byte{0})
		return err
	}
	if isNaN(obj) {
		return ErrUnhashable
	}
	switch x := obj.(type) {
	case Name:
		_, err := h.Write(append([]byte{1}, x...))
		return err
	case Integer:
		_, err := h.Write(append([]byte{2}, []byte(Real(x).mustFormat())...))
		return err
	case Real:
		_, err := h.Write(append([]byte{3}, []byte(x.mustFormat())...))
		return err
	case Boolean:
		b := byte(0)
		if x {
			b = 1
		}
		_, err := h.Write([]byte{4, b})
		return err
	case String:
		_, err := h.Write(append([]byte{5}, x...))
		return err
	case Reference:
		_, err := h.Write([]byte{6, byte(x), byte(x >> 8), byte(x >> 16), byte(x >> 24)})
		return err
	case Array:
		if _, err := h.Write([]byte{7}); err != nil {
			return err
		}
		for _, elem := range x {
			if err := hashInto(h, elem); err != nil {
				return err
			}
		}
		return nil
	case Dict:
		if _, err := h.Write([]byte{8}); err != nil {
			return err
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, string(k))
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := hashInto(h, Name(k)); err != nil {
				return err
			}
			if err := hashInto(h, x[Name(k)]); err != nil {
				return err
			}
		}
		return nil
	case *Stream:
		if _, err := h.Write([]byte{9}); err != nil {
			return err
		}
		return hashInto(h, x.Dict)
	default:
		_, err := h.Write([]byte{255})
		return err
	}
}

// Equal reports whether a and b are structurally equal PDF values: equal
// primitives, or composites whose elements are pairwise Equal in order
// (Array) or by key (Dict). Two Reference values are Equal only if they
// are the identical reference, not if they happen to resolve to equal
// objects — resolving references is the caller's responsibility.
func Equal(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case Name:
		y, ok := b.(Name)
		return ok && x == y
	case Integer:
		y, ok := b.(Integer)
		return ok && x == y
	case Real:
		y, ok := b.(Real)
		return ok && x == y
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && string(x) == string(y)
	case Reference:
		y, ok := b.(Reference)
		return ok && x == y
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Dict:
		y, ok := b.(Dict)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, v := range x {
			other, has := y[k]
			if !has || !Equal(v, other) {
				return false
			}
		}
		return true
	case *Stream:
		y, ok := b.(*Stream)
		return ok && Equal(x.Dict, y.Dict)
	default:
		return false
	}
}
