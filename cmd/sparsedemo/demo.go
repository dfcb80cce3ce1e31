package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"

	"github.com/geofduf/sparse-multi-vec/internal/names"
	"github.com/geofduf/sparse-multi-vec/sequence"
)

const placeholder = "---"

// demoTable holds an integer, a floating-point and a text column.
type demoTable = sequence.Table3[int, float64, string]

// counter returns a running value, starting at zero and growing by step on
// every read.
type counter[T int | float64] struct {
	next T
	step T
}

func (c *counter[T]) read() T {
	v := c.next
	c.next += c.step
	return v
}

func newDemoTable(storage string) (*demoTable, error) {
	switch storage {
	case storageSlice:
		return sequence.NewTable3[int, float64, string](), nil
	case storageTree:
		return sequence.NewTable3From(
			sequence.NewSequenceWithStorage[int](sequence.NewTreeStorage[sequence.Slot[int]]()),
			sequence.NewSequenceWithStorage[float64](sequence.NewTreeStorage[sequence.Slot[float64]]()),
			sequence.NewSequenceWithStorage[string](sequence.NewTreeStorage[sequence.Slot[string]]()),
		)
	}
	return nil, fmt.Errorf("unknown storage %q", storage)
}

// fill pushes n rows, each one holding a random combination of present and
// absent values.
func fill(t *demoTable, r *rand.Rand, n int) {
	ints := counter[int]{step: 1}
	floats := counter[float64]{step: 0.5}
	for range n {
		roll := r.IntN(8)
		a, b, c := sequence.None[int](), sequence.None[float64](), sequence.None[string]()
		if roll&1 != 0 {
			a = sequence.Of(ints.read())
		}
		if roll&2 != 0 {
			b = sequence.Of(floats.read())
		}
		if roll&4 != 0 {
			c = sequence.Of(names.Generate(r))
		}
		t.Push(a, b, c)
	}
}

// wreck erases the row at position n. It reports false when the table has
// no such row.
func wreck(t *demoTable, n int) bool {
	it := t.Begin()
	for i := 0; i < n && !it.Done(); i++ {
		it.Next()
	}
	if it.Done() {
		return false
	}
	t.Erase(it)
	return true
}

// render adds 5 to every present integer and writes the table to w.
func render(t *demoTable, w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"#", "int", "float", "string"})
	id := counter[int]{step: 1}
	for _, row := range t.Rows() {
		if row.First != nil {
			*row.First += 5
		}
		tw.AppendRow(table.Row{id.read(), cell(row.First), cell(row.Second), cell(row.Third)})
	}
	tw.Render()
}

func cell[T any](v *T) any {
	if v == nil {
		return placeholder
	}
	return *v
}

func run(cfg config, w io.Writer, log *zap.Logger) error {
	t, err := newDemoTable(cfg.Storage)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	fill(t, rand.New(rand.NewPCG(seed, seed)), cfg.Rows)
	log.Info("table filled",
		zap.Int("rows", t.Len()),
		zap.Uint64("seed", seed),
		zap.String("storage", cfg.Storage),
	)

	if wreck(t, cfg.Wreck) {
		log.Info("row erased", zap.Int("row", cfg.Wreck), zap.Int("rows", t.Len()))
	} else {
		log.Warn("table too short to erase row", zap.Int("row", cfg.Wreck), zap.Int("rows", t.Len()))
	}

	render(t, w)

	for i, st := range t.Table().Stats() {
		log.Debug("column stats",
			zap.Int("column", i),
			zap.Int("present", st.Present),
			zap.Int("absent", st.Absent),
			zap.Int("longest_gap", st.LongestGap),
			zap.Float64("density", st.Density()),
		)
	}
	log.Debug("complete rows", zap.Uint64("count", t.Table().Complete().GetCardinality()))
	return nil
}
