package game

// Color is the content of a single board cell.
type Color uint8

const (
	Empty Color = iota
	Red
	Green
	Blue
	Orange
	Purple
	Cyan
	Yellow
)

var ansiCodes = [...]string{
	Empty:  "\033[0m",
	Red:    "\033[31m",
	Green:  "\033[32m",
	Blue:   "\033[34m",
	Orange: "\033[33m",
	Purple: "\033[35m",
	Cyan:   "\033[36m",
	Yellow: "\033[93m",
}

// ANSI returns the terminal escape sequence used to draw the color.
func (c Color) ANSI() string {
	return ansiCodes[c]
}

// Family identifies one of the seven tetromino kinds.
type Family uint8

const (
	O Family = iota
	I
	T
	L
	J
	S
	Z
)

// NoFamily marks an empty hold slot.
const NoFamily Family = 0xff

// Families lists every family in catalog order; one bag is a permutation of it.
var Families = [...]Family{O, I, T, L, J, S, Z}

const numFamilies = len(Families)

var familyNames = [...]string{O: "O", I: "I", T: "T", L: "L", J: "J", S: "S", Z: "Z"}

func (f Family) Name() string {
	if int(f) >= numFamilies {
		return "-"
	}
	return familyNames[f]
}

func (f Family) String() string { return f.Name() }

func (f Family) Color() Color { return Catalog(f).Color }

// Orientations returns the number of distinct orientations the family can be in.
func (f Family) Orientations() int {
	if f == O {
		return 1
	}
	return 4
}

// Rotation is a quarter turn; its value is the step applied to the orientation index.
type Rotation int

const (
	CW  Rotation = 1
	CCW Rotation = -1
)

type Point struct {
	X, Y int
}

// Shape is one orientation of a piece: the occupied cells of a Size x Size box.
type Shape struct {
	Size   int
	Points []Point
}

// Rotate returns the shape turned a quarter in direction r.
func (s Shape) Rotate(r Rotation) Shape {
	points := make([]Point, len(s.Points))
	for i, p := range s.Points {
		if r == CW {
			points[i] = Point{X: p.Y, Y: s.Size - 1 - p.X}
		} else {
			points[i] = Point{X: s.Size - 1 - p.Y, Y: p.X}
		}
	}
	return Shape{Size: s.Size, Points: points}
}

// Contains reports whether the shape occupies p.
func (s Shape) Contains(p Point) bool {
	for _, q := range s.Points {
		if q == p {
			return true
		}
	}
	return false
}

// Piece is the immutable catalog entry of a family. Shapes[0] is the spawn
// orientation; Shapes[i+1] is Shapes[i] rotated clockwise.
type Piece struct {
	Family Family
	Name   string
	Color  Color
	Shapes [4]Shape
}

// Shape returns the piece's shape in the given orientation.
func (p *Piece) Shape(orientation int) Shape {
	return p.Shapes[orientation&3]
}

var catalog = buildCatalog()

// Catalog returns the shared definition of family f. It must not be modified.
func Catalog(f Family) *Piece {
	return &catalog[f]
}

func buildCatalog() [numFamilies]Piece {
	spawn := [numFamilies]struct {
		color  Color
		size   int
		points []Point
	}{
		O: {Yellow, 2, []Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		I: {Cyan, 4, []Point{{0, 2}, {1, 2}, {2, 2}, {3, 2}}},
		T: {Purple, 3, []Point{{0, 1}, {1, 1}, {2, 1}, {1, 2}}},
		L: {Orange, 3, []Point{{0, 1}, {1, 1}, {2, 1}, {2, 2}}},
		J: {Blue, 3, []Point{{0, 1}, {1, 1}, {2, 1}, {0, 2}}},
		S: {Green, 3, []Point{{0, 1}, {1, 1}, {1, 2}, {2, 2}}},
		Z: {Red, 3, []Point{{0, 2}, {1, 2}, {1, 1}, {2, 1}}},
	}

	var pieces [numFamilies]Piece
	for _, f := range Families {
		def := spawn[f]
		p := Piece{Family: f, Name: familyNames[f], Color: def.color}
		p.Shapes[0] = Shape{Size: def.size, Points: def.points}
		for i := 1; i < 4; i++ {
			p.Shapes[i] = p.Shapes[i-1].Rotate(CW)
		}
		pieces[f] = p
	}
	return pieces
}
