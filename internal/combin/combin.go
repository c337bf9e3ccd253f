// Package combin enumerates index combinations.
package combin

// Combinations calls visit with every k-element combination of the indices
// [0, n) in lexicographic order, until visit returns false. The idx slice is
// reused between calls.
func Combinations(n, k int, visit func(idx []int) bool) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !visit(idx) {
			return
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Find returns the first k-combination of values whose elements satisfy ok.
func Find[T any](values []T, k int, ok func(vs []T) bool) ([]T, bool) {
	var found []T
	vs := make([]T, k)
	Combinations(len(values), k, func(idx []int) bool {
		for i, j := range idx {
			vs[i] = values[j]
		}
		if ok(vs) {
			found = vs
			return false
		}
		return true
	})
	return found, found != nil
}

// AnyPair reports whether some pair of distinct elements satisfies ok.
func AnyPair[T any](values []T, ok func(a, b T) bool) bool {
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if ok(values[i], values[j]) {
				return true
			}
		}
	}
	return false
}

// Subsets calls visit with every subset of values, including the empty one.
func Subsets[T any](values []T, visit func(vs []T)) {
	var vs []T
	for k := 0; k <= len(values); k++ {
		Combinations(len(values), k, func(idx []int) bool {
			vs = vs[:0]
			for _, j := range idx {
				vs = append(vs, values[j])
			}
			visit(vs)
			return true
		})
	}
}
