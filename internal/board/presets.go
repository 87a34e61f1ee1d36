package board

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var ErrUnknownPreset = errors.New("unknown preset")

// presets are hand-drawn positions, parsed and checked at package init.
var presets = map[string]string{
	// A closed 2×2 ring.
	"ring": "┌┐\n" +
		"└┘\n",

	// The ring with its bottom-left corner missing; one curve closes it.
	"corner": "┌┐\n" +
		".┘\n",

	// Two vertical straights with a gap that only a straight can bridge.
	"gap": "│\n" +
		".\n" +
		"│\n",

	// A wide arch, open at both feet.
	"arch": "┌──┐\n" +
		"│..│\n",

	// An L-shaped run still open at both ends.
	"hook": "┌──\n" +
		"│..\n",
}

var presetBoards = map[string]*Board{}

func init() {
	for name, s := range presets {
		b, err := NewFromString(s)
		if err != nil {
			// Presets are hard-coded; panic on bugs.
			panic("preset " + name + " failed validation: " + err.Error())
		}
		presetBoards[name] = b
	}
}

// Preset returns a fresh copy of the named hand-drawn position.
func Preset(name string) (*Board, error) {
	b, ok := presetBoards[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return b.Clone(), nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RandomPreset returns a copy of a preset chosen with rng.
func RandomPreset(rng *rand.Rand) (string, *Board) {
	names := PresetNames()
	name := names[rng.Intn(len(names))]
	return name, presetBoards[name].Clone()
}
