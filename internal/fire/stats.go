package fire

// Mean returns the average heat across the whole grid, 0 for empty grids.
func Mean(g *Grid) float64 {
	if len(g.Cells) == 0 {
		return 0
	}
	sum := 0
	for _, h := range g.Cells {
		sum += int(h)
	}
	return float64(sum) / float64(len(g.Cells))
}

// RowMean returns the average heat of one row, 0 for out-of-range rows or
// zero-width grids.
func RowMean(g *Grid, y int) float64 {
	if g.W == 0 || y < 0 || y >= g.H {
		return 0
	}
	sum := 0
	for x := 0; x < g.W; x++ {
		sum += int(g.At(x, y))
	}
	return float64(sum) / float64(g.W)
}
