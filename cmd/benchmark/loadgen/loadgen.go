// Package loadgen runs a fixed-duration operation loop across a worker pool
// and reports throughput.
package loadgen

import (
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
)

// Output is used to print elapsed time and ops/sec.
var Output io.Writer

// MemUsage is used to output the memory usage.
var MemUsage bool

// Time keeps `threads` workers calling op for the whole duration. Workers
// come from a pre-allocated ants pool; each gets its own rand source and a
// stable index.
func Time(duration time.Duration, threads int, op func(threadRand *rand.Rand, threadIdx int)) {

	var start time.Time
	var ms1 runtime.MemStats
	output := Output
	if output != nil {
		if MemUsage {
			runtime.GC()
			runtime.ReadMemStats(&ms1)
		}
		start = time.Now()
	}

	pool, err := ants.NewPool(threads, ants.WithPreAlloc(true))
	if err != nil {
		panic(err)
	}
	defer pool.Release()

	var totalCount atomic.Int64
	var wg sync.WaitGroup
	wg.Add(threads)

	for i := 0; i < threads; i++ {
		idx := i
		err = pool.Submit(func() {
			defer wg.Done()
			ticker := time.NewTicker(duration)
			defer ticker.Stop()

			randGen := rand.New(rand.NewSource(time.Now().UnixNano() + int64(idx)))
			for {
				select {
				case <-ticker.C:
					return
				default:
					op(randGen, idx)
					totalCount.Add(1)
				}
			}
		})
		if err != nil {
			panic(err)
		}
	}
	wg.Wait()

	if output != nil {
		dur := time.Since(start)
		var alloc uint64
		if MemUsage {
			runtime.GC()
			var ms2 runtime.MemStats
			runtime.ReadMemStats(&ms2)
			if ms2.HeapAlloc > ms1.HeapAlloc {
				alloc = ms2.HeapAlloc - ms1.HeapAlloc
			}
		}
		WriteOutput(output, totalCount.Load(), threads, dur, alloc)
	}
}

func commaize(n int64) string {
	s1, s2 := fmt.Sprintf("%d", n), ""
	for i, j := len(s1)-1, 0; i >= 0; i, j = i-1, j+1 {
		if j%3 == 0 && j != 0 {
			s2 = "," + s2
		}
		s2 = string(s1[i]) + s2
	}
	return s2
}

// WriteOutput writes an output line to the specified writer.
func WriteOutput(w io.Writer, count int64, threads int, elapsed time.Duration, alloc uint64) {
	fmt.Fprintf(w, "%d threads R = %s ops/sec", threads, commaize(int64(float64(count)/elapsed.Seconds())))
	if MemUsage {
		fmt.Fprintf(w, ", %d bytes", alloc)
	}
	fmt.Fprintln(w)
}
