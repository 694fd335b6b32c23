package game

// Kick is a positional offset tried while resolving a rotation.
type Kick struct {
	DX, DY int
}

type kickTable struct {
	cw  [4][]Kick
	ccw [4][]Kick
}

var normalKicks = kickTable{
	cw: [4][]Kick{
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, -2}},
	},
	ccw: [4][]Kick{
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
}

var iKicks = kickTable{
	cw: [4][]Kick{
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	},
	ccw: [4][]Kick{
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	},
}

var inPlace = []Kick{{0, 0}}

// Wallkicks returns the offsets to try, most preferred first, when rotating a
// piece of family f in direction r out of orientation from. The returned slice
// is shared and must not be modified.
func Wallkicks(f Family, r Rotation, from int) []Kick {
	var table *kickTable
	switch f {
	case O:
		return inPlace
	case I:
		table = &iKicks
	default:
		table = &normalKicks
	}
	if r == CW {
		return table.cw[from&3]
	}
	return table.ccw[from&3]
}
