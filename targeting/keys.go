package targeting

// Key is a keyboard key the targeting levels understand. Host backends map
// their own key codes onto this set.
type Key int

const (
	KeyNone Key = iota
	KeyA
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
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeySpace
	KeyEscape

	keyCount
)

// Keys lists every recognised key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyNone + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// IsLetter reports whether k is one of A..Z.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit reports whether k is one of 1..9.
func (k Key) IsDigit() bool {
	return k >= Key1 && k <= Key9
}

// String returns the key's label text: the letter or digit itself, or a
// short name for the other keys.
func (k Key) String() string {
	switch {
	case k.IsLetter():
		return string(rune('A' + int(k-KeyA)))
	case k.IsDigit():
		return string(rune('1' + int(k-Key1)))
	}
	switch k {
	case KeyArrowUp:
		return "Up"
	case KeyArrowDown:
		return "Down"
	case KeyArrowLeft:
		return "Left"
	case KeyArrowRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	default:
		return ""
	}
}

// KeySet is a set of keys.
type KeySet uint64

// NewKeySet builds a set holding keys.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns s with k added.
func (s KeySet) With(k Key) KeySet {
	if k <= KeyNone || k >= keyCount {
		return s
	}
	return s | 1<<uint(k)
}

func (s KeySet) Has(k Key) bool {
	if k <= KeyNone || k >= keyCount {
		return false
	}
	return s&(1<<uint(k)) != 0
}

// Any reports whether any of keys is in s.
func (s KeySet) Any(keys ...Key) bool {
	for _, k := range keys {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// First returns the first key in [from, to] that is in s, scanning in
// declaration order, or KeyNone.
func (s KeySet) First(from, to Key) Key {
	for k := from; k <= to; k++ {
		if s.Has(k) {
			return k
		}
	}
	return KeyNone
}

// Input is the per-frame snapshot the host hands to the machine.
type Input struct {
	// Area is the drawable rectangle for this frame.
	Area Rect
	// Pressed holds keys that went down this frame.
	Pressed KeySet
	// Held holds keys that are currently down, including those in Pressed.
	Held KeySet
	// Shift is true while a shift key is down.
	Shift bool
}
