package app

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/dragsheet/internal/config"
	"github.com/depeter/dragsheet/internal/ui"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":  ebiten.KeySpace,
	"enter":  ebiten.KeyEnter,
	"return": ebiten.KeyEnter,
	"tab":    ebiten.KeyTab,
	"left":   ebiten.KeyArrowLeft,
	"right":  ebiten.KeyArrowRight,
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"a":      ebiten.KeyA,
	"b":      ebiten.KeyB,
	"c":      ebiten.KeyC,
	"d":      ebiten.KeyD,
	"e":      ebiten.KeyE,
	"f":      ebiten.KeyF,
	"g":      ebiten.KeyG,
	"h":      ebiten.KeyH,
	"i":      ebiten.KeyI,
	"j":      ebiten.KeyJ,
	"k":      ebiten.KeyK,
	"l":      ebiten.KeyL,
	"m":      ebiten.KeyM,
	"n":      ebiten.KeyN,
	"o":      ebiten.KeyO,
	"p":      ebiten.KeyP,
	"q":      ebiten.KeyQ,
	"r":      ebiten.KeyR,
	"s":      ebiten.KeyS,
	"t":      ebiten.KeyT,
	"u":      ebiten.KeyU,
	"v":      ebiten.KeyV,
	"w":      ebiten.KeyW,
	"x":      ebiten.KeyX,
	"y":      ebiten.KeyY,
	"z":      ebiten.KeyZ,
	"0":      ebiten.KeyDigit0,
	"1":      ebiten.KeyDigit1,
	"2":      ebiten.KeyDigit2,
	"3":      ebiten.KeyDigit3,
	"4":      ebiten.KeyDigit4,
	"5":      ebiten.KeyDigit5,
	"6":      ebiten.KeyDigit6,
	"7":      ebiten.KeyDigit7,
	"8":      ebiten.KeyDigit8,
	"9":      ebiten.KeyDigit9,

	"escape":    ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
	"f2":        ebiten.KeyF2,
	"f3":        ebiten.KeyF3,
	"f4":        ebiten.KeyF4,
	"f5":        ebiten.KeyF5,
	"f6":        ebiten.KeyF6,
	"f7":        ebiten.KeyF7,
	"f8":        ebiten.KeyF8,
	"f9":        ebiten.KeyF9,
	"f10":       ebiten.KeyF10,
	"f11":       ebiten.KeyF11,
	"f12":       ebiten.KeyF12,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(name)]
	return k, ok
}

// keyJustPressed checks if the key named by the config string was just pressed.
// Presses with a modifier held are left to other shortcuts.
func keyJustPressed(name string) bool {
	if k, ok := parseKey(name); ok {
		return inpututil.IsKeyJustPressed(k) && !ui.IsModifierPressed()
	}
	return false
}

// checkKeybinds reports every configured key name that is not recognized.
func checkKeybinds(kb config.KeybindConfig) []string {
	var unknown []string
	for _, name := range []string{kb.Expand, kb.Collapse, kb.Reset, kb.ToggleSnap, kb.Debug} {
		if _, ok := parseKey(name); !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
