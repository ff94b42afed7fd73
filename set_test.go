package redblack

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSet(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	set, err := New[int](func(a, b int) int { return a - b }, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !set.IsEmpty() || set.Len() != 0 {
		t.Errorf("new set should be empty")
	}
}

func TestNewSetWithoutComparator(t *testing.T) {
	_, err := New[int](nil, nil)
	if err != ErrNoComparator {
		t.Fatalf("expected ErrNoComparator, got %v", err)
	}
}

func TestSetInsertContainsDelete(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	set, err := New[string](strings.Compare, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	words := []string{"cherry", "apple", "banana"}
	for _, w := range words {
		if !set.Insert(w) {
			t.Fatalf("Insert(%q) failed", w)
		}
	}
	if set.Insert("apple") {
		t.Errorf("duplicate insert should fail")
	}
	if set.Len() != 3 {
		t.Errorf("set should hold 3 items, holds %d", set.Len())
	}
	for _, w := range words {
		if !set.Contains(w) {
			t.Errorf("set should contain %q", w)
		}
	}
	if set.Contains("durian") {
		t.Errorf("set should not contain %q", "durian")
	}
	if !set.Delete("banana") || set.Contains("banana") {
		t.Errorf("delete of banana did not work")
	}
	if set.Delete("banana") {
		t.Errorf("second delete of banana should fail")
	}
}

func TestSetForEachOrder(t *testing.T) {
	set, err := New[int](func(a, b int) int { return a - b }, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, item := range []int{5, 1, 4, 2, 3} {
		set.Insert(item)
	}
	var got []int
	ok := set.ForEach(func(item int) bool {
		got = append(got, item)
		return true
	})
	if !ok {
		t.Fatalf("ForEach should succeed")
	}
	for i, item := range got {
		if item != i+1 {
			t.Fatalf("unexpected order: %v", got)
		}
	}
}

func TestSetForEachShortCircuit(t *testing.T) {
	set, err := New[int](func(a, b int) int { return a - b }, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		set.Insert(i)
	}
	visits := 0
	ok := set.ForEach(func(item int) bool {
		visits++
		return item < 3
	})
	if ok {
		t.Errorf("short-circuited ForEach should report failure")
	}
	if visits != 4 {
		t.Errorf("expected 4 visits (stop at item 3), got %d", visits)
	}
}

func TestSetAllRange(t *testing.T) {
	set, err := New[int](func(a, b int) int { return a - b }, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	set.Insert(2)
	set.Insert(1)
	var got []int
	for item := range set.All() {
		got = append(got, item)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected range result: %v", got)
	}
}

func TestSetMinMax(t *testing.T) {
	set, err := New[int](func(a, b int) int { return a - b }, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	set.Insert(7)
	set.Insert(2)
	set.Insert(9)
	if item, ok := set.Min(); !ok || item != 2 {
		t.Errorf("Min = %d, %v; want 2, true", item, ok)
	}
	if item, ok := set.Max(); !ok || item != 9 {
		t.Errorf("Max = %d, %v; want 9, true", item, ok)
	}
}

func TestSetDestroy(t *testing.T) {
	disposed := 0
	set, err := New[int](func(a, b int) int { return a - b }, func(int) { disposed++ })
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		set.Insert(i)
	}
	set.Destroy()
	if disposed != 10 {
		t.Errorf("expected 10 disposals, got %d", disposed)
	}
	if !set.IsEmpty() {
		t.Errorf("set should be empty after Destroy")
	}
}

func TestNilSetOperations(t *testing.T) {
	var set *Set[int]
	if set.Insert(1) || set.Delete(1) || set.Contains(1) || set.ForEach(func(int) bool { return true }) {
		t.Errorf("operations on nil set should fail")
	}
	if set.Len() != 0 || !set.IsEmpty() {
		t.Errorf("nil set should report empty")
	}
	for range set.All() {
		t.Errorf("nil set range should not yield")
	}
	set.Destroy() // must not panic
}
