package game

import "math"

// clipSlab narrows [tMin,tMax] to the part of the ray o+t*d that lies
// between lo and hi on one axis. ok is false once the interval is empty.
func clipSlab(o, d, lo, hi, tMin, tMax float64) (float64, float64, bool) {
	if math.Abs(d) < 1e-12 {
		return tMin, tMax, o >= lo && o <= hi
	}
	t1, t2 := (lo-o)/d, (hi-o)/d
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	tMin, tMax = math.Max(tMin, t1), math.Min(tMax, t2)
	return tMin, tMax, tMin <= tMax
}

// rayAABBHitT returns the segment parameter in [0,1] at which (ox,oz)->(ex,ez)
// enters the box. A segment starting inside the box hits at 0.
func rayAABBHitT(ox, oz, ex, ez, minX, minZ, maxX, maxZ float64) (float64, bool) {
	tMin, tMax, ok := clipSlab(ox, ex-ox, minX, maxX, 0, 1)
	if !ok {
		return 0, false
	}
	tMin, _, ok = clipSlab(oz, ez-oz, minZ, maxZ, tMin, tMax)
	if !ok {
		return 0, false
	}
	return tMin, true
}

// rayCircleHitT returns the distance along a unit-direction ray (dx,dz) from
// (ox,oz) at which it first touches the circle. A ray starting inside the
// circle hits at 0. Circles entirely behind the origin are a miss.
func rayCircleHitT(ox, oz, dx, dz, cx, cz, r float64) (float64, bool) {
	// Project the centre onto the ray.
	lx, lz := cx-ox, cz-oz
	along := lx*dx + lz*dz
	perp2 := lx*lx + lz*lz - along*along
	r2 := r * r
	if perp2 > r2 {
		return 0, false
	}
	half := math.Sqrt(r2 - perp2)
	t0, t1 := along-half, along+half
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return 0, true
	}
	return t0, true
}

// firstWallHit returns the distance along the unit ray (dx,dz) from (ox,oz)
// to the first wall cell, searching up to maxDist. Cells are boxes of side
// TileSize centred on their grid point.
func (gm *GridMap) firstWallHit(ox, oz, dx, dz, maxDist float64) (float64, bool) {
	ex, ez := ox+dx*maxDist, oz+dz*maxDist
	half := gm.TileSize / 2
	best := math.Inf(1)
	found := false
	for row := 0; row < gm.Rows; row++ {
		for col := 0; col < gm.Cols; col++ {
			if !cellBlocksMovement(gm.cells[row*gm.Cols+col]) {
				continue
			}
			cx, cz := gm.CellCenter(col, row)
			t, hit := rayAABBHitT(ox, oz, ex, ez, cx-half, cz-half, cx+half, cz+half)
			if !hit {
				continue
			}
			if d := t * maxDist; d < best {
				best = d
				found = true
			}
		}
	}
	return best, found
}
