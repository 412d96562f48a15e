package systems

// HasLineOfSight проверяет прямую видимость между клетками по Брезенхэму.
// Начальная и конечная клетки сами по себе видимость не блокируют.
func HasLineOfSight(field CollisionQuerier, from, to Position) bool {
	x0, y0 := from.X, from.Y
	x1, y1 := to.X, to.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if x0 == x1 && y0 == y1 {
			return true
		}
		// Промежуточные клетки должны быть свободны
		if (x0 != from.X || y0 != from.Y) && field.IsBlocked(x0, y0) {
			return false
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
