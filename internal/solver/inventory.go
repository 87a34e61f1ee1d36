package solver

import (
	"fmt"

	"github.com/rybkr/canal/internal/tile"
)

// Inventory counts the tiles still available for placement, including any
// tile held in hand but not yet placed.
type Inventory struct {
	Straights int
	Curves    int
}

// Count returns the number of tiles of kind k.
func (inv Inventory) Count(k tile.Kind) int {
	if k == tile.Straight {
		return inv.Straights
	}
	return inv.Curves
}

// Total returns the number of tiles of every kind.
func (inv Inventory) Total() int {
	return inv.Straights + inv.Curves
}

// Valid reports whether both counts are non-negative.
func (inv Inventory) Valid() bool {
	return inv.Straights >= 0 && inv.Curves >= 0
}

// add adjusts the count of kind k by n.
func (inv *Inventory) add(k tile.Kind, n int) {
	if k == tile.Straight {
		inv.Straights += n
	} else {
		inv.Curves += n
	}
}

func (inv Inventory) String() string {
	return fmt.Sprintf("%d straight, %d curve", inv.Straights, inv.Curves)
}
