// Package pairsum fills a pair of records from an integer source and adds
// the first record's x to the second record's y.
package pairsum

import (
	"strconv"

	"github.com/goose-lang/pairsum/obj"
	"github.com/goose-lang/pairsum/readval"
	"github.com/pkg/errors"
)

// fields names the targets of the four reads, in read order.
var fields = [4]string{"first.x", "first.y", "second.x", "second.y"}

// Input reads four integers from src and assigns them to p in the order
// first.x, first.y, second.x, second.y.
//
// All four values are read before any field is assigned, so on error p is
// left untouched.
func Input(src readval.Source, p *obj.Pair) error {
	var vals [4]int
	for i := range vals {
		n, err := src.Int()
		if err != nil {
			return errors.Wrapf(err, "reading %s", fields[i])
		}
		vals[i] = n
	}
	p.First.SetX(vals[0])
	p.First.SetY(vals[1])
	p.Second.SetX(vals[2])
	p.Second.SetY(vals[3])
	return nil
}

// Add returns x + y, wrapping on overflow.
func Add(x int, y int) int {
	return x + y
}

// Fill builds a zero pair and fills it from src.
func Fill(src readval.Source) (obj.Pair, error) {
	var p obj.Pair
	err := Input(src, &p)
	return p, err
}

// Sum computes the program's result for a filled pair.
func Sum(p *obj.Pair) int {
	return Add(p.First.X(), p.Second.Y())
}

// Run fills a fresh pair from src and returns first.x + second.y.
func Run(src readval.Source) (int, error) {
	p, err := Fill(src)
	if err != nil {
		return 0, err
	}
	return Sum(&p), nil
}

// Format renders a result as a single decimal line.
func Format(n int) string {
	return strconv.Itoa(n) + "\n"
}
