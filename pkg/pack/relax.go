package pack

import "math"

const (
	centerPull = 0.5 // attraction toward the container center
	repelPush  = 0.5 // pairwise separation per unit of overlap
	wallPush   = 0.5 // boundary correction per unit of penetration
)

// Relax runs the force-directed relaxation loop, mutating bubble centers in
// place. Radii are never touched. With iterations == 0 it is a strict no-op.
//
// Each iteration applies a linearly decaying multiplier
// alpha = 1 - iter/iterations, so large corrective jumps happen early and the
// system settles into small adjustments late; without the decay bubbles could
// oscillate indefinitely. Per bubble, three forces accumulate into a single
// displacement applied at the end of its turn (plain Euler integration, no
// velocity carried between iterations):
//
//   - a pull of magnitude 0.5*alpha toward the container center, the only
//     inward force counterbalancing repulsion;
//   - for every overlapping neighbor (center distance under r1+r2+padding),
//     a push away along the center line of magnitude overlap*0.5*alpha.
//     Coincident centers produce no push that iteration: the direction is
//     undefined, so the pair is skipped rather than divided by zero;
//   - when the bubble's edge (radius plus padding margin) crosses a container
//     edge, a push back inward of half the penetration depth. This one is
//     deliberately not cooled by alpha so bubbles stay inside the visible
//     area even late in the simulation.
//
// The pairwise pass is O(n²) per iteration, fine for the dozens-to-hundreds
// of bubbles this targets. Convergence is heuristic, bounded by the iteration
// count; an overfull container converges to an overlapping layout instead of
// erroring.
func Relax(bubbles []Bubble, width, height, padding float64, iterations int) {
	cx, cy := width/2, height/2

	for iter := 0; iter < iterations; iter++ {
		alpha := 1 - float64(iter)/float64(iterations)

		for i := range bubbles {
			b := &bubbles[i]
			var fx, fy float64

			if dx, dy := cx-b.X, cy-b.Y; dx != 0 || dy != 0 {
				dist := math.Hypot(dx, dy)
				fx += dx / dist * centerPull * alpha
				fy += dy / dist * centerPull * alpha
			}

			for j := range bubbles {
				if j == i {
					continue
				}
				o := &bubbles[j]
				dx, dy := b.X-o.X, b.Y-o.Y
				dist := math.Hypot(dx, dy)
				minDist := b.R + o.R + padding
				if dist > 0 && dist < minDist {
					overlap := minDist - dist
					fx += dx / dist * overlap * repelPush * alpha
					fy += dy / dist * overlap * repelPush * alpha
				}
			}

			if under := b.R + padding - b.X; under > 0 {
				fx += under * wallPush
			}
			if over := b.X + b.R + padding - width; over > 0 {
				fx -= over * wallPush
			}
			if under := b.R + padding - b.Y; under > 0 {
				fy += under * wallPush
			}
			if over := b.Y + b.R + padding - height; over > 0 {
				fy -= over * wallPush
			}

			b.X += fx
			b.Y += fy
		}
	}
}
