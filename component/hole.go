package component

// HoleComponent is a pressure-plate style hole consumed by a matching block
type HoleComponent struct {
	// Symbol a block must carry to fill the hole, 0 for plain stones
	Symbol rune
	Filled bool
}

// Accepts reports whether a block carrying symbol may fall into the hole
func (h HoleComponent) Accepts(symbol rune) bool {
	return !h.Filled && h.Symbol == symbol
}
