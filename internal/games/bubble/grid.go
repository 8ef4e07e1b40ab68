package bubble

// emptyCell marks an unoccupied grid cell. Occupied cells hold a
// color index in [0, colorCount).
const emptyCell = int8(-1)

// Point addresses a grid cell by column and row. Row 0 touches the
// ceiling; rows grow downward.
type Point struct {
	Col, Row int
}

// Grid is the bubble board, stored as a flat row-major array:
// index = row*Cols + col.
type Grid struct {
	Cols, Rows int
	cells      []int8
}

// NewGrid creates an empty board with the given dimensions.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{
		Cols:  cols,
		Rows:  rows,
		cells: make([]int8, cols*rows),
	}
	g.ClearAll()
	return g
}

func (g *Grid) index(p Point) int {
	return p.Row*g.Cols + p.Col
}

// InBounds reports whether p addresses a cell on the board.
func (g *Grid) InBounds(p Point) bool {
	return p.Col >= 0 && p.Col < g.Cols && p.Row >= 0 && p.Row < g.Rows
}

// At returns the color at p, or emptyCell when p is empty or out of
// bounds.
func (g *Grid) At(p Point) int8 {
	if !g.InBounds(p) {
		return emptyCell
	}
	return g.cells[g.index(p)]
}

// Occupied reports whether p holds a bubble.
func (g *Grid) Occupied(p Point) bool {
	return g.InBounds(p) && g.cells[g.index(p)] != emptyCell
}

// Set writes a color into the cell at p. Out-of-bounds writes are
// ignored.
func (g *Grid) Set(p Point, color int8) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = color
	}
}

// ClearCell empties the cell at p.
func (g *Grid) ClearCell(p Point) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = emptyCell
	}
}

// ClearAll empties every cell.
func (g *Grid) ClearAll() {
	for i := range g.cells {
		g.cells[i] = emptyCell
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c != emptyCell {
			n++
		}
	}
	return n
}

// BottomRowOccupied reports whether any cell in the last row holds a
// bubble.
func (g *Grid) BottomRowOccupied() bool {
	for col := 0; col < g.Cols; col++ {
		if g.Occupied(Point{Col: col, Row: g.Rows - 1}) {
			return true
		}
	}
	return false
}

// ShiftDown moves every row one step toward the bottom and leaves the
// top row empty. The caller must check BottomRowOccupied first; cells
// in the last row are overwritten.
func (g *Grid) ShiftDown() {
	for row := g.Rows - 1; row >= 1; row-- {
		for col := 0; col < g.Cols; col++ {
			g.cells[row*g.Cols+col] = g.cells[(row-1)*g.Cols+col]
		}
	}
	for col := 0; col < g.Cols; col++ {
		g.cells[col] = emptyCell
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]int8, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Cols: g.Cols, Rows: g.Rows, cells: cells}
}

// neighbors4 lists the orthogonal neighbor offsets used for cluster
// and grounding traversals.
var neighbors4 = [4]Point{
	{Col: 1, Row: 0},
	{Col: -1, Row: 0},
	{Col: 0, Row: 1},
	{Col: 0, Row: -1},
}
