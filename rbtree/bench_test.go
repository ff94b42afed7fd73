package rbtree

import (
	"cmp"
	"math/rand"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	tree, err := New(Config[int]{Compare: cmp.Compare[int]})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(i)
	}
}

func BenchmarkInsertDeleteChurn(b *testing.B) {
	tree, err := New(Config[int]{Compare: cmp.Compare[int]})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		item := r.Intn(1 << 16)
		if !tree.Insert(item) {
			tree.Delete(item)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	tree, err := New(Config[int]{Compare: cmp.Compare[int]})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	for i := 0; i < 1<<16; i++ {
		tree.Insert(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Contains(i & (1<<16 - 1))
	}
}
