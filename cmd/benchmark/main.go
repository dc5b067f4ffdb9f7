package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	movingaverage "github.com/RobinUS2/golang-moving-average"
	"github.com/alphadose/zenq/v2"
	"github.com/spf13/cobra"

	"github.com/dborchard/orderedkv/cmd/benchmark/generator"
	"github.com/dborchard/orderedkv/cmd/benchmark/loadgen"
	"github.com/dborchard/orderedkv/pkg/okv"
	"github.com/dborchard/orderedkv/pkg/omap"
)

const statsWindow = 1000

var opts struct {
	backend       string
	duration      time.Duration
	readers       int
	keyRange      int64
	scanWidth     int
	variableWidth bool
}

func main() {
	root := &cobra.Command{
		Use:   "benchmark",
		Short: "Range-scan benchmark over the ordered-map backends",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}
	root.Flags().StringVar(&opts.backend, "backend", "rbtree", "backend: rbtree, btree or skiplist")
	root.Flags().DurationVar(&opts.duration, "duration", 10*time.Second, "how long to run the scan phase")
	root.Flags().IntVar(&opts.readers, "readers", 8, "scan worker count")
	root.Flags().Int64Var(&opts.keyRange, "keyrange", 1_000_000, "key space size")
	root.Flags().IntVar(&opts.scanWidth, "scanwidth", 100, "max keys per range scan")
	root.Flags().BoolVar(&opts.variableWidth, "variable-width", true, "draw scan width uniformly from [1, scanwidth]")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func backendTyp(name string) (omap.Typ, error) {
	switch name {
	case "rbtree":
		return omap.RBTree, nil
	case "btree":
		return omap.BTree, nil
	case "skiplist":
		return omap.SkipList, nil
	}
	return 0, fmt.Errorf("unknown backend %q", name)
}

func run() error {
	typ, err := backendTyp(opts.backend)
	if err != nil {
		return err
	}
	if opts.keyRange < 1 || opts.keyRange > math.MaxInt32 {
		return fmt.Errorf("keyrange must be in [1, %d]", math.MaxInt32)
	}
	if opts.readers < 1 || opts.scanWidth < 1 {
		return fmt.Errorf("readers and scanwidth must be positive")
	}

	loadgen.Output = os.Stdout
	fmt.Printf("** New Run %s **\n", time.Now().Format("2006_01_02_15_04_05"))
	fmt.Printf("Backend = %s, Scan Width = %d, Variable Width = %t\n",
		opts.backend, opts.scanWidth, opts.variableWidth)

	ctx, cancel := context.WithCancel(context.Background())

	// Writer acknowledgements and scan latencies are handed to the stats
	// drainers over zenq, keeping the moving averages single-owner.
	ackQ := zenq.New[int64](1 << 16)
	scanQ := zenq.New[int64](1 << 16)

	writeStats := drainLatencies(ackQ)
	scanStats := drainLatencies(scanQ)

	// Every map instance is single-owner: the writer churns its own copy
	// while each reader scans a private prefilled one.
	writerDone := singleWriter(ctx, typ, ackQ)
	readers := make([]omap.Map, opts.readers)
	for i := range readers {
		readers[i] = prefill(typ, opts.keyRange)
	}

	multiReader(readers, scanQ)

	cancel()
	<-writerDone
	ackQ.Close()
	scanQ.Close()

	w := <-writeStats
	s := <-scanStats
	fmt.Printf(" I = %d, avg put = %s\n", w.count, time.Duration(int64(w.avg)))
	fmt.Printf(" S = %d, avg scan = %s\n", s.count, time.Duration(int64(s.avg)))
	return nil
}

type latencyStats struct {
	count int64
	avg   float64
}

func drainLatencies(q *zenq.ZenQ[int64]) <-chan latencyStats {
	out := make(chan latencyStats, 1)
	go func() {
		ma := movingaverage.New(statsWindow)
		var count int64
		for {
			ns, open := q.Read()
			if !open {
				break
			}
			ma.Add(float64(ns))
			count++
		}
		out <- latencyStats{count: count, avg: ma.Avg()}
	}()
	return out
}

func singleWriter(ctx context.Context, typ omap.Typ, ackQ *zenq.ZenQ[int64]) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		m := okv.New(typ)
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		keygen := generator.Build(generator.UNIFORM, 0, opts.keyRange)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				key := int32(keygen.Next(r))
				start := time.Now()
				m.Set(key, key)
				ackQ.Write(time.Since(start).Nanoseconds())
			}
		}
	}()
	return done
}

// prefill seeds a reader's map with every other key so scans see a half-full
// key space.
func prefill(typ omap.Typ, keyRange int64) omap.Map {
	m := okv.New(typ)
	seed := generator.Build(generator.SEQUENTIAL, 0, keyRange)
	for i := int64(0); i < keyRange; i += 2 {
		k := int32(seed.Next(nil))
		m.Set(k, k)
		seed.Next(nil) // skip the odd key
	}
	return m
}

func multiReader(readers []omap.Map, scanQ *zenq.ZenQ[int64]) {
	fmt.Print(readers[0].Name(), "\t\t")

	keyGen := generator.Build(generator.UNIFORM, 0, opts.keyRange)
	widthGen := generator.Build(generator.UNIFORM, 1, int64(opts.scanWidth))

	bufs := make([][]int32, len(readers))
	for i := range bufs {
		bufs[i] = make([]int32, opts.scanWidth)
	}

	loadgen.Time(opts.duration, len(readers), func(threadRand *rand.Rand, threadIdx int) {
		lo := int32(keyGen.Next(threadRand))
		width := opts.scanWidth
		if opts.variableWidth {
			width = int(widthGen.Next(threadRand))
		}

		start := time.Now()
		readers[threadIdx].Range(lo, int32(opts.keyRange-1), bufs[threadIdx][:width])
		scanQ.Write(time.Since(start).Nanoseconds())
	})
}
