package input

import "github.com/gogpu/gpucontext"

// FromWindow translates a window-layer key into engine keys.
//
// Most keys translate one-to-one. Numpad keys collapse onto their
// main-row equivalents; numpad multiply has no main-row key of its
// own, so it translates to shift plus eight, consistent with what a
// player's fingers would do on the main row. Returns nil for keys
// genji does not track.
func FromWindow(key gpucontext.Key) []Key {
	if k, ok := windowKeys[key]; ok {
		return []Key{k}
	}
	if ks, ok := shiftedKeys[key]; ok {
		return ks
	}
	return nil
}

// windowKeys maps one-to-one window keys.
var windowKeys = map[gpucontext.Key]Key{
	gpucontext.KeyA: KeyA,
	gpucontext.KeyB: KeyB,
	gpucontext.KeyC: KeyC,
	gpucontext.KeyD: KeyD,
	gpucontext.KeyE: KeyE,
	gpucontext.KeyF: KeyF,
	gpucontext.KeyG: KeyG,
	gpucontext.KeyH: KeyH,
	gpucontext.KeyI: KeyI,
	gpucontext.KeyJ: KeyJ,
	gpucontext.KeyK: KeyK,
	gpucontext.KeyL: KeyL,
	gpucontext.KeyM: KeyM,
	gpucontext.KeyN: KeyN,
	gpucontext.KeyO: KeyO,
	gpucontext.KeyP: KeyP,
	gpucontext.KeyQ: KeyQ,
	gpucontext.KeyR: KeyR,
	gpucontext.KeyS: KeyS,
	gpucontext.KeyT: KeyT,
	gpucontext.KeyU: KeyU,
	gpucontext.KeyV: KeyV,
	gpucontext.KeyW: KeyW,
	gpucontext.KeyX: KeyX,
	gpucontext.KeyY: KeyY,
	gpucontext.KeyZ: KeyZ,

	gpucontext.Key0: Key0,
	gpucontext.Key1: Key1,
	gpucontext.Key2: Key2,
	gpucontext.Key3: Key3,
	gpucontext.Key4: Key4,
	gpucontext.Key5: Key5,
	gpucontext.Key6: Key6,
	gpucontext.Key7: Key7,
	gpucontext.Key8: Key8,
	gpucontext.Key9: Key9,

	gpucontext.KeyUp:    KeyUp,
	gpucontext.KeyLeft:  KeyLeft,
	gpucontext.KeyDown:  KeyDown,
	gpucontext.KeyRight: KeyRight,

	gpucontext.KeyTab:          KeyTab,
	gpucontext.KeyLeftShift:    KeyShift,
	gpucontext.KeyRightShift:   KeyRShift,
	gpucontext.KeyCapsLock:     KeyCaps,
	gpucontext.KeySpace:        KeySpace,
	gpucontext.KeyEscape:       KeyEsc,
	gpucontext.KeyLeftControl:  KeyCtrl,
	gpucontext.KeyRightControl: KeyRCtrl,
	gpucontext.KeyLeftAlt:      KeyAlt,
	gpucontext.KeyRightAlt:     KeyRAlt,
	gpucontext.KeyLeftSuper:    KeySuper,
	gpucontext.KeyRightSuper:   KeyRSuper,
	gpucontext.KeyBackspace:    KeyBackspace,
	gpucontext.KeyEnter:        KeyEnter,

	gpucontext.KeyGrave:        KeyBacktick,
	gpucontext.KeyMinus:        KeyMinus,
	gpucontext.KeyEqual:        KeyEquals,
	gpucontext.KeyBackslash:    KeyBackslash,
	gpucontext.KeyLeftBracket:  KeyLBracket,
	gpucontext.KeyRightBracket: KeyRBracket,
	gpucontext.KeySemicolon:    KeySemicolon,
	gpucontext.KeyApostrophe:   KeyApostrophe,
	gpucontext.KeyComma:        KeyComma,
	gpucontext.KeyPeriod:       KeyPeriod,
	gpucontext.KeySlash:        KeySlash,

	gpucontext.KeyF1:  KeyF1,
	gpucontext.KeyF2:  KeyF2,
	gpucontext.KeyF3:  KeyF3,
	gpucontext.KeyF4:  KeyF4,
	gpucontext.KeyF5:  KeyF5,
	gpucontext.KeyF6:  KeyF6,
	gpucontext.KeyF7:  KeyF7,
	gpucontext.KeyF8:  KeyF8,
	gpucontext.KeyF9:  KeyF9,
	gpucontext.KeyF10: KeyF10,
	gpucontext.KeyF11: KeyF11,
	gpucontext.KeyF12: KeyF12,

	// Numpad collapses onto the main row.
	gpucontext.KeyNumpad0:        Key0,
	gpucontext.KeyNumpad1:        Key1,
	gpucontext.KeyNumpad2:        Key2,
	gpucontext.KeyNumpad3:        Key3,
	gpucontext.KeyNumpad4:        Key4,
	gpucontext.KeyNumpad5:        Key5,
	gpucontext.KeyNumpad6:        Key6,
	gpucontext.KeyNumpad7:        Key7,
	gpucontext.KeyNumpad8:        Key8,
	gpucontext.KeyNumpad9:        Key9,
	gpucontext.KeyNumpadEnter:    KeyEnter,
	gpucontext.KeyNumpadAdd:      KeyEquals,
	gpucontext.KeyNumpadSubtract: KeyMinus,
	gpucontext.KeyNumpadDivide:   KeySlash,
	gpucontext.KeyNumpadDecimal:  KeyPeriod,
}

// shiftedKeys maps keys whose main-row equivalent is a shifted
// character onto shift + base key.
var shiftedKeys = map[gpucontext.Key][]Key{
	gpucontext.KeyNumpadMultiply: {KeyShift, Key8},
}

// MouseButton translates a window-layer mouse button into a key. The
// two extra buttons map onto M1 and M2.
func MouseButton(button gpucontext.MouseButton) Key {
	switch button {
	case gpucontext.MouseButtonLeft:
		return KeyLClick
	case gpucontext.MouseButtonRight:
		return KeyRClick
	case gpucontext.MouseButtonMiddle:
		return KeyMClick
	case gpucontext.MouseButton4:
		return KeyM1
	case gpucontext.MouseButton5:
		return KeyM2
	default:
		return KeyM1 + Key(uint8(button)%4)
	}
}
