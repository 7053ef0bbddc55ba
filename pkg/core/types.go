package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is a cell coordinate. X grows rightward and Y grows downward.
type Point struct {
	X int
	Y int
}

// State is the binary state of a single cell.
type State uint8

const (
	// Dead marks an empty cell.
	Dead State = 0
	// Alive marks a live cell.
	Alive State = 1
)

// Sim defines the contract the drivers and adapters rely on.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	// Step advances one generation and reports the cells that flipped.
	Step() []Point
	// Cells returns a row-major copy of the current states.
	Cells() []uint8
	Generation() int
}
