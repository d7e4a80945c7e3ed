// Package obj defines the two-field integer record filled from input.
package obj

// Obj is a mutable pair of integers. The zero value has x == y == 0.
type Obj struct {
	x int
	y int
}

// X returns the x field.
func (o *Obj) X() int {
	return o.x
}

// SetX sets the x field to v.
func (o *Obj) SetX(v int) {
	o.x = v
}

// Y returns the y field.
func (o *Obj) Y() int {
	return o.y
}

// SetY sets the y field to v.
func (o *Obj) SetY(v int) {
	o.y = v
}

// Pair holds exactly two records with fixed roles.
type Pair struct {
	First  Obj
	Second Obj
}
