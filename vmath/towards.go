package vmath

// MoveTowards steps (x, y) toward (tx, ty) by at most step along each axis
// Movement is axis-aligned: the X gap closes first, the remaining budget goes to Y
// Lands exactly on the target when within reach, never overshoots
func MoveTowards(x, y, tx, ty, step int64) (int64, int64) {
	if step <= 0 {
		return x, y
	}
	x, step = approach(x, tx, step)
	y, _ = approach(y, ty, step)
	return x, y
}

func approach(v, target, step int64) (int64, int64) {
	gap := target - v
	if Abs(gap) <= step {
		return target, step - Abs(gap)
	}
	if gap > 0 {
		return v + step, 0
	}
	return v - step, 0
}

// Overlap reports whether two axis-aligned squares of the given side strictly intersect
// Touching edges do not count
func Overlap(ax, ay, bx, by, side int64) bool {
	return ax < bx+side && bx < ax+side && ay < by+side && by < ay+side
}
