// Package collection holds the ordering and merge helpers used to keep the
// dashboard's keyed collections deduplicated and newest-first.
package collection

import (
	"slices"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
)

// SortByTimeDesc returns a copy of items ordered newest first by the
// timestamp returned from at. Invalid timestamps sort last. The sort is
// stable, so equal timestamps keep their relative order and sorting an
// already sorted slice is a no-op.
func SortByTimeDesc[T any](items []T, at func(T) backoffice.Timestamp) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}

	slices.SortStableFunc(out, func(a, b T) int {
		return at(b).Compare(at(a))
	})

	return out
}

// MergeByKey returns incoming followed by every element of existing whose key
// does not appear in incoming. Incoming wins on conflicts; if incoming repeats
// a key only its first occurrence is kept. The result order is not
// meaningful until sorted.
func MergeByKey[T any, K comparable](existing, incoming []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(incoming))
	out := make([]T, 0, len(incoming)+len(existing))

	for _, item := range incoming {
		k := key(item)
		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, item)
	}

	for _, item := range existing {
		if _, replaced := seen[key(item)]; replaced {
			continue
		}

		out = append(out, item)
	}

	return out
}

// Reconcile folds incoming into existing and restores newest-first order.
func Reconcile[T any, K comparable](
	existing, incoming []T,
	key func(T) K,
	at func(T) backoffice.Timestamp,
) []T {
	return SortByTimeDesc(MergeByKey(existing, incoming, key), at)
}
