package internal

import (
	"iter"
)

// Concat2 chains pair sequences into a single sequence, in argument order.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Indexed yields each element of list paired with its name from key.
func Indexed[K any, V any](list []V, key func(V) K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, v := range list {
			if !yield(key(v), v) {
				return
			}
		}
	}
}
