package resolve

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/stickloop/geom"
)

// Resolve computes all pairwise crossings of sticks and the per-stick point
// sets.
//
// Implementation:
//   - Stage 1: Index sticks by ID (ErrDuplicateStickID on collision) and seed
//     each stick's point set with its endpoints A, B.
//   - Stage 2: For each row i, collect the crossings with every j > i into
//     rows[i]; rows run sequentially or on a worker pool.
//   - Stage 3: Merge rows in order, associating each crossing with both sticks.
//
// Complexity: Time O(n²), Memory O(n + C) for C crossings.
func Resolve(sticks []geom.Stick, opts ...Option) (*Incidence, error) {
	o := options{kernel: geom.NewKernel(), workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	n := len(sticks)
	inc := &Incidence{
		Sticks: append([]geom.Stick(nil), sticks...),
		kernel: o.kernel,
		index:  make(map[int]int, n),
		points: make([][]geom.Point, n),
		seen:   make([]map[geom.Key]bool, n),
	}
	for i, s := range inc.Sticks {
		if _, dup := inc.index[s.ID]; dup {
			return nil, fmt.Errorf("Resolve: stick %d: %w", s.ID, ErrDuplicateStickID)
		}
		inc.index[s.ID] = i
		inc.seen[i] = make(map[geom.Key]bool, 2)
		inc.associate(i, s.A)
		inc.associate(i, s.B)
	}

	rows := make([][]Crossing, n)
	if o.workers > 1 && n > 2 {
		resolveParallel(inc.Sticks, o.kernel, o.workers, rows)
	} else {
		for i := range inc.Sticks {
			rows[i] = resolveRow(inc.Sticks, o.kernel, i)
		}
	}

	for i, row := range rows {
		for _, c := range row {
			inc.Crossings = append(inc.Crossings, c)
			inc.associate(i, c.Point)
			inc.associate(inc.index[c.Second], c.Point)
		}
	}

	return inc, nil
}

// resolveRow returns the crossings of sticks[i] with every later stick.
func resolveRow(sticks []geom.Stick, k geom.Kernel, i int) []Crossing {
	var row []Crossing
	for j := i + 1; j < len(sticks); j++ {
		p, ok := k.Intersect(sticks[i], sticks[j])
		if !ok {
			continue
		}
		row = append(row, Crossing{
			Point:  p,
			Key:    k.Key(p),
			First:  sticks[i].ID,
			Second: sticks[j].ID,
		})
	}

	return row
}

// resolveParallel fills rows using a fixed pool of workers fed by a channel
// of row indexes. Each row slot is written by exactly one worker.
func resolveParallel(sticks []geom.Stick, k geom.Kernel, workers int, rows [][]Crossing) {
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rows[i] = resolveRow(sticks, k, i)
			}
		}()
	}
	for i := range sticks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}
