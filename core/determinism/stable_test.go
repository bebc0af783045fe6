package determinism_test

import (
	"reflect"
	"testing"

	"modcheck/core/determinism"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"charlie": 3, "alpha": 1, "bravo": 2}
	got := determinism.SortedKeys(m)
	want := []string{"alpha", "bravo", "charlie"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedKeys = %v, want %v", got, want)
	}
}

func TestStableMapRangeOrder(t *testing.T) {
	m := determinism.NewStableMap[string, int]()
	m.Set("zulu", 1)
	m.Set("alpha", 2)
	m.Set("mike", 3)

	var keys []string
	m.Range(func(k string, _ int) bool {
		keys = append(keys, k)
		return true
	})
	want := []string{"alpha", "mike", "zulu"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Range order = %v, want %v", keys, want)
	}
}

func TestStableMapOverwrite(t *testing.T) {
	m := determinism.NewStableMap[string, int]()
	m.Set("k", 1)
	m.Set("k", 2)

	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
	if v, _ := m.Get("k"); v != 2 {
		t.Errorf("Get = %d, want 2", v)
	}
}

func TestDedupSorted(t *testing.T) {
	type key string
	got := determinism.DedupSorted([]key{"b", "a", "b", "c", "a"})
	want := []key{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupSorted = %v, want %v", got, want)
	}
	if got := determinism.DedupSorted([]key(nil)); len(got) != 0 {
		t.Errorf("DedupSorted(nil) = %v", got)
	}
}
