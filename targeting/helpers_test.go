package targeting

// frame builds an Input where every key in pressed also counts as held.
func frame(area Size, pressed ...Key) Input {
	keys := NewKeySet(pressed...)
	return Input{Area: Rect{Size: area}, Pressed: keys, Held: keys}
}

// held builds an Input with keys held but no new presses.
func held(area Size, shift bool, keys ...Key) Input {
	return Input{Area: Rect{Size: area}, Held: NewKeySet(keys...), Shift: shift}
}

var square2x2 = Size{W: 160, H: 160}
