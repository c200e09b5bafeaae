package tree

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Baselines: the same insert/search load against a few well-known
// tree libraries. None of them is apples-to-apples (they balance,
// they allocate their own nodes), which is rather the point.

const benchN = 100000

func benchValues() []int {
	return rand.New(rand.NewSource(1)).Perm(benchN)
}

func BenchmarkInsert(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := &Tree[int]{}
		nodes := make([]Node[int], len(values))
		for j, v := range values {
			nodes[j].Data = v
			if err := tr.Insert(&nodes[j]); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkInsert_GoogleBTree(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := btree.New(32)
		for _, v := range values {
			tr.ReplaceOrInsert(btree.Int(v))
		}
	}
}

func BenchmarkInsert_GoLLRB(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := llrb.New()
		for _, v := range values {
			tr.InsertNoReplace(llrb.Int(v))
		}
	}
}

func BenchmarkInsert_RedBlackTree(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := redblacktree.NewWithIntComparator()
		for _, v := range values {
			tr.Put(v, nil)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	values := benchValues()
	tr := &Tree[int]{}
	nodes := make([]Node[int], len(values))
	for j, v := range values {
		nodes[j].Data = v
		if err := tr.Insert(&nodes[j]); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !tr.Contains(values[i%len(values)]) {
			b.Fatal("missing value")
		}
	}
}

func BenchmarkContains_GoogleBTree(b *testing.B) {
	values := benchValues()
	tr := btree.New(32)
	for _, v := range values {
		tr.ReplaceOrInsert(btree.Int(v))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !tr.Has(btree.Int(values[i%len(values)])) {
			b.Fatal("missing value")
		}
	}
}

func BenchmarkContains_GoLLRB(b *testing.B) {
	values := benchValues()
	tr := llrb.New()
	for _, v := range values {
		tr.InsertNoReplace(llrb.Int(v))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !tr.Has(llrb.Int(values[i%len(values)])) {
			b.Fatal("missing value")
		}
	}
}

func BenchmarkContains_RedBlackTree(b *testing.B) {
	values := benchValues()
	tr := redblacktree.NewWithIntComparator()
	for _, v := range values {
		tr.Put(v, nil)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := tr.Get(values[i%len(values)]); !ok {
			b.Fatal("missing value")
		}
	}
}
