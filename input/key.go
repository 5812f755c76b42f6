// Package input exposes keyboard and mouse state as boolean-indexed
// tables.
//
// genji stores key state in a fixed array of booleans wrapped by the
// [Keys] type. Keyboard keys and mouse buttons share the same [Key]
// space, so a click and a keypress are queried the same way:
//
//	if state.Keys.Down(input.KeySpace) || state.Keys.Down(input.KeyLClick) {
//	    jump()
//	}
package input

import "strconv"

// Key identifies a keyboard key or mouse button.
type Key uint8

// Keyboard keys and mouse buttons, in table order.
const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyUp
	KeyLeft
	KeyDown
	KeyRight

	KeyTab
	KeyShift
	KeyRShift
	KeyCaps
	KeySpace
	KeyEsc
	KeyCtrl
	KeyRCtrl
	KeyAlt
	KeyRAlt
	KeySuper
	KeyRSuper
	KeyBackspace
	KeyEnter

	KeyBacktick
	KeyMinus
	KeyEquals
	KeyBackslash
	KeyLBracket
	KeyRBracket
	KeySemicolon
	KeyApostrophe
	KeyComma
	KeyPeriod
	KeySlash

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyLClick
	KeyRClick
	KeyMClick
	KeyM1
	KeyM2
	KeyM3
	KeyM4

	// KeyCount is the size of the key table, not a key.
	KeyCount
)

var keyNames = map[Key]string{
	KeyUp: "Up", KeyLeft: "Left", KeyDown: "Down", KeyRight: "Right",
	KeyTab: "Tab", KeyShift: "Shift", KeyRShift: "RShift", KeyCaps: "Caps",
	KeySpace: "Space", KeyEsc: "Esc", KeyCtrl: "Ctrl", KeyRCtrl: "RCtrl",
	KeyAlt: "Alt", KeyRAlt: "RAlt", KeySuper: "Super", KeyRSuper: "RSuper",
	KeyBackspace: "Backspace", KeyEnter: "Enter", KeyBacktick: "`",
	KeyMinus: "-", KeyEquals: "=", KeyBackslash: `\`, KeyLBracket: "[",
	KeyRBracket: "]", KeySemicolon: ";", KeyApostrophe: "'", KeyComma: ",",
	KeyPeriod: ".", KeySlash: "/", KeyLClick: "LClick", KeyRClick: "RClick",
	KeyMClick: "MClick", KeyM1: "M1", KeyM2: "M2", KeyM3: "M3", KeyM4: "M4",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch {
	case k <= KeyZ:
		return string(rune('A' + k))
	case k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}
