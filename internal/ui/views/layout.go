package views

// Screen geometry shared by the renderer and mouse hit testing
const (
	mainPadY = 1
	mainPadX = 2

	modalPadY = 1
	modalPadX = 2

	titleRow = 0 // rows inside the main padding
	inputRow = 2
	listRow  = 3
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell x, y is inside r
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 &&
		x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// Layout records where the last frame put each interactive region
type Layout struct {
	Input Rect
	List  Rect // zero when the list is hidden
	Modal Rect // zero when the modal is closed
	Close Rect // close button inside the modal

	ListOffset int // index in the filtered list of the first drawn row
	ListRows   int // suggestion rows drawn
}

// RowAt maps a click to an index in the filtered list
func (l Layout) RowAt(x, y int) (int, bool) {
	if !l.List.Contains(x, y) {
		return 0, false
	}
	row := y - l.List.Y
	if row >= l.ListRows {
		return 0, false
	}
	return l.ListOffset + row, true
}
