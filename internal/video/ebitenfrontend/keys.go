package ebitenfrontend

import "github.com/hajimehoshi/ebiten/v2"

// keyByName resolves a single-letter key-binding name (as stored in
// app.KeyMapping) to its ebiten key constant. Unrecognized names map to
// ebiten.KeyEscape, so a bad config binds that button to Escape rather than
// panicking.
func keyByName(name string) ebiten.Key {
	switch name {
	case "A":
		return ebiten.KeyA
	case "B":
		return ebiten.KeyB
	case "C":
		return ebiten.KeyC
	case "D":
		return ebiten.KeyD
	case "H":
		return ebiten.KeyH
	case "J":
		return ebiten.KeyJ
	case "M":
		return ebiten.KeyM
	case "N":
		return ebiten.KeyN
	case "S":
		return ebiten.KeyS
	case "W":
		return ebiten.KeyW
	default:
		return ebiten.KeyEscape
	}
}
