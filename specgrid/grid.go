package specgrid

import (
	"fmt"
	"math"
	"strings"
)

// Grid is the two-level specification grid. The zero Grid is empty and ready
// to use. A Grid is not safe for concurrent mutation.
type Grid struct {
	field    [2]FieldCell
	aperture [2]ApertureCell
}

// New returns an empty grid.
func New() *Grid { return &Grid{} }

// Field returns the field cell of side s for in-place reads and writes.
// Panics if s is not Object or Image.
func (g *Grid) Field(s Side) *FieldCell {
	mustSide(s)

	return &g.field[s]
}

// Aperture returns the aperture cell of side s for in-place reads and writes.
// Panics if s is not Object or Image.
func (g *Grid) Aperture(s Side) *ApertureCell {
	mustSide(s)

	return &g.aperture[s]
}

// Row is the pair of cells stored under one category.
type Row struct {
	Category Category
	cells    [2]Cell
}

// Cell returns the cell of side s.
func (r Row) Cell(s Side) Cell {
	mustSide(s)

	return r.cells[s]
}

// Count returns how many sides of the row hold a non-empty cell.
func (r Row) Count() int {
	n := 0
	for _, c := range r.cells {
		if !c.Empty() {
			n++
		}
	}

	return n
}

// Populated returns the single populated side. ok is false unless exactly
// one side holds a non-empty cell.
func (r Row) Populated() (side Side, ok bool) {
	if r.Count() != 1 {
		return Object, false
	}
	if !r.cells[Object].Empty() {
		return Object, true
	}

	return Image, true
}

// Row returns the snapshot of category c. Cells are copied; writes must go
// through Field/Aperture.
func (g *Grid) Row(c Category) Row {
	switch c {
	case Field:
		return Row{Category: c, cells: [2]Cell{g.field[Object], g.field[Image]}}
	case Aperture:
		return Row{Category: c, cells: [2]Cell{g.aperture[Object], g.aperture[Image]}}
	default:
		panic(fmt.Sprintf("specgrid: invalid category %d", int(c)))
	}
}

// Counts holds, per category, how many sides carry a non-empty cell (0..2).
type Counts struct {
	Field    int
	Aperture int
}

// Of returns the count for category c.
func (n Counts) Of(c Category) int {
	if c == Aperture {
		return n.Aperture
	}

	return n.Field
}

// Counts returns the per-category population counts.
// Complexity: O(1).
func (g *Grid) Counts() Counts {
	return Counts{
		Field:    g.Row(Field).Count(),
		Aperture: g.Row(Aperture).Count(),
	}
}

// Set stores v under (c, s, l).
// Returns ErrUnknownLabel if l does not belong to c.
func (g *Grid) Set(c Category, s Side, l Label, v float64) error {
	slot, err := g.slot(c, s, l)
	if err != nil {
		return err
	}
	*slot = Of(v)

	return nil
}

// Lookup returns the value stored under (c, s, l).
// Returns ErrUnknownLabel if l does not belong to c.
func (g *Grid) Lookup(c Category, s Side, l Label) (Value, error) {
	slot, err := g.slot(c, s, l)
	if err != nil {
		return Value{}, err
	}

	return *slot, nil
}

func (g *Grid) slot(c Category, s Side, l Label) (*Value, error) {
	switch c {
	case Field:
		return g.Field(s).ref(l)
	case Aperture:
		return g.Aperture(s).ref(l)
	default:
		return nil, fmt.Errorf("%w: category %d", ErrBadKey, int(c))
	}
}

// Validate checks that every stored value is finite.
// Returns an error wrapping ErrNonFinite naming the first offending slot.
func (g *Grid) Validate() error {
	for _, c := range Categories {
		for _, s := range Sides {
			for _, l := range g.Row(c).Cell(s).Labels() {
				v, _ := g.Lookup(c, s, l)
				if x, _ := v.Get(); math.IsNaN(x) || math.IsInf(x, 0) {
					return fmt.Errorf("%w: %s/%s/%s", ErrNonFinite, c, s, l)
				}
			}
		}
	}

	return nil
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g

	return &cp
}

// String renders every cell, one per line, in grid order.
func (g *Grid) String() string {
	var b strings.Builder
	for _, c := range Categories {
		for _, s := range Sides {
			var cell fmt.Stringer
			if c == Field {
				cell = g.field[s]
			} else {
				cell = g.aperture[s]
			}
			fmt.Fprintf(&b, "%s/%s %s\n", c, s, cell)
		}
	}

	return b.String()
}

func mustSide(s Side) {
	if s != Object && s != Image {
		panic(fmt.Sprintf("specgrid: invalid side %d", int(s)))
	}
}
