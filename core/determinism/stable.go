// Package determinism provides primitives for guaranteeing deterministic execution.
// Every engine query that iterates a map must do so through these helpers so
// that identical inputs always produce byte-identical outputs.
package determinism

import (
	"fmt"
	"sort"
)

// StableMap is a map that guarantees iteration order (sorted by key).
// Use this instead of map[K]V wherever iteration order reaches a caller.
type StableMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewStableMap creates a new StableMap
func NewStableMap[K comparable, V any]() *StableMap[K, V] {
	return &StableMap[K, V]{
		values: make(map[K]V),
	}
}

// Set adds or updates a key-value pair
func (m *StableMap[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
		sort.Slice(m.keys, func(i, j int) bool {
			return fmt.Sprint(m.keys[i]) < fmt.Sprint(m.keys[j])
		})
	}
	m.values[key] = value
}

// Get retrieves a value by key
func (m *StableMap[K, V]) Get(key K) (V, bool) {
	val, ok := m.values[key]
	return val, ok
}

// Range iterates in stable sorted order
func (m *StableMap[K, V]) Range(fn func(K, V) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			break
		}
	}
}

// Keys returns all keys in sorted order
func (m *StableMap[K, V]) Keys() []K {
	result := make([]K, len(m.keys))
	copy(result, m.keys)
	return result
}

// Len returns the number of entries
func (m *StableMap[K, V]) Len() int {
	return len(m.values)
}

// SortedKeys returns the keys of a map in sorted order
func SortedKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}

// RangeMapSorted iterates over a map in sorted key order
func RangeMapSorted[K comparable, V any](m map[K]V, fn func(K, V) bool) {
	for _, k := range SortedKeys(m) {
		if !fn(k, m[k]) {
			break
		}
	}
}

// SortSlice sorts a slice in a stable, deterministic manner
func SortSlice[T any](slice []T, less func(a, b T) bool) {
	sort.SliceStable(slice, func(i, j int) bool {
		return less(slice[i], slice[j])
	})
}

// SortStrings sorts a slice of any string-kinded type in place
func SortStrings[T ~string](s []T) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

// DedupSorted returns a sorted copy of s with duplicates removed
func DedupSorted[T ~string](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	SortStrings(out)
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}
