package cloth

import (
	"math/bits"

	"golang.org/x/sync/errgroup"
)

// relax runs the given number of relaxation passes over every active
// constraint. With AlternateOrder, odd passes walk the constraints in
// reverse which evens out the bias a single sweep direction introduces.
func (cloth *Cloth) relax(passes int) {
	cfg := cloth.config
	for i := 0; i < passes; i++ {
		reverse := cfg.AlternateOrder && i%2 == 1
		if cloth.colors != nil {
			cloth.relaxColored(reverse)
		} else {
			cloth.relaxSequential(reverse)
		}
	}
}

func (cloth *Cloth) relaxSequential(reverse bool) {
	relaxation, tear := cloth.config.Relaxation, cloth.config.TearFactor
	constraints := cloth.constraints
	n := len(constraints)
	for i := 0; i < n; i++ {
		c := constraints[i]
		if reverse {
			c = constraints[n-1-i]
		}
		if c.solve(relaxation, tear) {
			cloth.torn = append(cloth.torn, c)
		}
	}
}

// relaxColored solves one color at a time. Constraints inside a color share
// no particle so their chunks run concurrently without write conflicts.
func (cloth *Cloth) relaxColored(reverse bool) {
	relaxation, tear := cloth.config.Relaxation, cloth.config.TearFactor
	workers := cloth.config.Workers

	n := len(cloth.colors)
	for i := 0; i < n; i++ {
		batch := cloth.colors[i]
		if reverse {
			batch = cloth.colors[n-1-i]
		}

		chunk := (len(batch) + workers - 1) / workers
		if chunk == 0 {
			continue
		}
		torn := make([][]*Constraint, workers)

		var g errgroup.Group
		g.SetLimit(workers)
		for w := 0; w < workers; w++ {
			start := w * chunk
			end := min(start+chunk, len(batch))
			if start >= end {
				break
			}
			g.Go(func() error {
				for _, c := range batch[start:end] {
					if c.solve(relaxation, tear) {
						torn[w] = append(torn[w], c)
					}
				}
				return nil
			})
		}
		g.Wait()

		for _, t := range torn {
			cloth.torn = append(cloth.torn, t...)
		}
	}
}

// colorConstraints greedily assigns each constraint the lowest color not
// already used at either of its particles.
func colorConstraints(constraints []*Constraint, particles int) [][]*Constraint {
	used := make([]uint64, particles)
	var colors [][]*Constraint

	for _, c := range constraints {
		a, b := c.a.index, c.b.index
		color := bits.TrailingZeros64(^(used[a] | used[b]))
		assert(color < 64, "Constraint graph degree too high to color")

		used[a] |= 1 << uint(color)
		used[b] |= 1 << uint(color)
		for len(colors) <= color {
			colors = append(colors, nil)
		}
		colors[color] = append(colors[color], c)
	}
	return colors
}

// flushTorn reports tears collected during relaxation.
func (cloth *Cloth) flushTorn() {
	if len(cloth.torn) == 0 {
		return
	}
	cloth.meshDirty = true
	if cloth.OnTear != nil {
		for _, c := range cloth.torn {
			cloth.OnTear(c)
		}
	}
	cloth.torn = cloth.torn[:0]
}
