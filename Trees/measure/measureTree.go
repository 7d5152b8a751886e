// Command measure sweeps the size of the working set queried on a SplayTree
// and reports the time per lookup for each step. Small working sets stay near
// the root, so the cost should grow with the working set, not the tree.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/go-splay/Trees"
)

var (
	bAddN uint32 = 1000000
	bHotN uint32 = bAddN
	bQryN uint32 = bAddN
)
var _R rand.Rand = *rand.New(rand.NewSource(0))

func create(b *testing.B, all []int) (*Trees.SplayTree[int, uint32], []int) {
	b.Helper()
	tree := Trees.New[int, uint32]()
	for range bAddN {
		a := _R.Int()
		tree.Add(a)
		all = append(all, a)
	}
	return tree, all
}

var __r1 bool

func BenchmarkHotQry(b *testing.B) {
	all := make([]int, 0, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree, hot := create(b, all[:0])
		hot = hot[:bHotN]
		b.StartTimer()
		for range bQryN {
			__r1 = tree.Has(hot[_R.Intn(len(hot))])
		}
	}
}

const bNumSteps uint32 = 50

func main() {
	testing.Init()
	var cs []float64
	for i := uint32(1); i < bNumSteps; i++ {
		bHotN = bAddN / bNumSteps * i
		br := testing.Benchmark(BenchmarkHotQry)
		c := float64(br.NsPerOp()) / float64(bQryN)
		cs = append(cs, c)
		fmt.Printf("working set %d: %fns/lookup\n", bHotN, c)
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	fmt.Printf("average: %fns/lookup\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fns/lookup\n", math.Sqrt(sum/float64(len(cs))))
}
