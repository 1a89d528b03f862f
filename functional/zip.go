package functional

// ZipWith combines seqs elementwise: the i-th element of the result
// is fn(seqs[0][i], ..., seqs[k-1][i]). The result length is the
// length of the shortest input, so if any input is empty the result
// is empty. Argument order to fn follows sequence order. Inputs are
// never mutated.
//
// The zip is an explicit index loop, not a recursion, so it is safe
// for sequences of any length.
func ZipWith[T, R any](fn func(...T) R, seqs ...[]T) []R {
	if len(seqs) == 0 {
		return []R{}
	}

	n := len(seqs[0])
	for _, seq := range seqs[1:] {
		if len(seq) < n {
			n = len(seq)
		}
	}

	out := make([]R, n)
	args := make([]T, len(seqs))
	for i := 0; i < n; i++ {
		for j, seq := range seqs {
			args[j] = seq[i]
		}
		out[i] = fn(args...)
	}
	return out
}

// ZipWith2 is the fixed-arity form of ZipWith for the common binary
// case. Same shortest-length and empty-input semantics.
func ZipWith2[A, B, R any](fn func(A, B) R, a []A, b []B) []R {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = fn(a[i], b[i])
	}
	return out
}
