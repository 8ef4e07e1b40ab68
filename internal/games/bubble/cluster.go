package bubble

// sameColorCluster collects the maximal set of cells connected to
// start via 4-neighbor adjacency and sharing start's color. The
// traversal is an explicit breadth-first queue over the grid with a
// visited marker per cell, so board size never threatens the stack.
func sameColorCluster(g *Grid, start Point) []Point {
	color := g.At(start)
	if color == emptyCell {
		return nil
	}

	visited := make([]bool, g.Cols*g.Rows)
	visited[g.index(start)] = true

	queue := []Point{start}
	cluster := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range neighbors4 {
			n := Point{Col: p.Col + d.Col, Row: p.Row + d.Row}
			if !g.InBounds(n) || visited[g.index(n)] {
				continue
			}
			visited[g.index(n)] = true
			if g.At(n) != color {
				continue
			}
			queue = append(queue, n)
			cluster = append(cluster, n)
		}
	}
	return cluster
}

// groundedMask marks every occupied cell reachable from an occupied
// cell in row 0 across occupied-cell adjacency. Cells cleared earlier
// in the same pass are already empty and act as gaps.
func groundedMask(g *Grid) []bool {
	grounded := make([]bool, g.Cols*g.Rows)
	var queue []Point
	for col := 0; col < g.Cols; col++ {
		p := Point{Col: col, Row: 0}
		if g.Occupied(p) {
			grounded[g.index(p)] = true
			queue = append(queue, p)
		}
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range neighbors4 {
			n := Point{Col: p.Col + d.Col, Row: p.Row + d.Row}
			if !g.InBounds(n) || grounded[g.index(n)] || !g.Occupied(n) {
				continue
			}
			grounded[g.index(n)] = true
			queue = append(queue, n)
		}
	}
	return grounded
}

// dropFloating clears every occupied cell not reachable from the
// ceiling row and returns how many cells were dropped. Running it
// again with no intervening placement drops nothing.
func dropFloating(g *Grid) int {
	grounded := groundedMask(g)
	dropped := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p := Point{Col: col, Row: row}
			if g.Occupied(p) && !grounded[g.index(p)] {
				g.ClearCell(p)
				dropped++
			}
		}
	}
	return dropped
}
