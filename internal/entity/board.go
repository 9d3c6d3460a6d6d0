package entity

import "fmt"

// BoardSize is the number of cells along each side of the board.
const BoardSize = 3

// Cell addresses one board position by column and row, both in [0, BoardSize).
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func NewCell(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

func (that Cell) IsValid() bool {
	return that.Col >= 0 && that.Col < BoardSize && that.Row >= 0 && that.Row < BoardSize
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Col, that.Row)
}

// Board is indexed [row][col].
type Board [BoardSize][BoardSize]Team

// At returns the team occupying the cell. The cell must be valid.
func (that *Board) At(cell Cell) Team {
	return that[cell.Row][cell.Col]
}

// EmptyCells lists the empty cells in row-major order.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, BoardSize*BoardSize)
	for row := range that {
		for col := range that[row] {
			if that[row][col] == EmptyCell {
				cells = append(cells, NewCell(col, row))
			}
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	for row := range that {
		for col := range that[row] {
			if that[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

// AllCells lists every cell of the board in row-major order.
func AllCells() []Cell {
	return (&Board{}).EmptyCells()
}
