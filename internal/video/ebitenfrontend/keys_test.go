package ebitenfrontend

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeyByNameResolvesConfiguredLetters(t *testing.T) {
	assert.Equal(t, ebiten.KeyW, keyByName("W"))
	assert.Equal(t, ebiten.KeyA, keyByName("A"))
	assert.Equal(t, ebiten.KeyS, keyByName("S"))
	assert.Equal(t, ebiten.KeyD, keyByName("D"))
	assert.Equal(t, ebiten.KeyN, keyByName("N"))
	assert.Equal(t, ebiten.KeyM, keyByName("M"))
	assert.Equal(t, ebiten.KeyJ, keyByName("J"))
	assert.Equal(t, ebiten.KeyH, keyByName("H"))
}

func TestKeyByNameUnknownNameFallsBackToEscape(t *testing.T) {
	assert.Equal(t, ebiten.KeyEscape, keyByName("?"))
}
