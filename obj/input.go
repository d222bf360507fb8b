package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/gridcursor/targeting"
)

// keyMap lists the ebiten keys that count as each targeting key. Digits
// accept the number row and the keypad.
var keyMap = map[targeting.Key][]ebiten.Key{
	targeting.KeyA: {ebiten.KeyA},
	targeting.KeyB: {ebiten.KeyB},
	targeting.KeyC: {ebiten.KeyC},
	targeting.KeyD: {ebiten.KeyD},
	targeting.KeyE: {ebiten.KeyE},
	targeting.KeyF: {ebiten.KeyF},
	targeting.KeyG: {ebiten.KeyG},
	targeting.KeyH: {ebiten.KeyH},
	targeting.KeyI: {ebiten.KeyI},
	targeting.KeyJ: {ebiten.KeyJ},
	targeting.KeyK: {ebiten.KeyK},
	targeting.KeyL: {ebiten.KeyL},
	targeting.KeyM: {ebiten.KeyM},
	targeting.KeyN: {ebiten.KeyN},
	targeting.KeyO: {ebiten.KeyO},
	targeting.KeyP: {ebiten.KeyP},
	targeting.KeyQ: {ebiten.KeyQ},
	targeting.KeyR: {ebiten.KeyR},
	targeting.KeyS: {ebiten.KeyS},
	targeting.KeyT: {ebiten.KeyT},
	targeting.KeyU: {ebiten.KeyU},
	targeting.KeyV: {ebiten.KeyV},
	targeting.KeyW: {ebiten.KeyW},
	targeting.KeyX: {ebiten.KeyX},
	targeting.KeyY: {ebiten.KeyY},
	targeting.KeyZ: {ebiten.KeyZ},

	targeting.Key1: {ebiten.KeyDigit1, ebiten.KeyNumpad1},
	targeting.Key2: {ebiten.KeyDigit2, ebiten.KeyNumpad2},
	targeting.Key3: {ebiten.KeyDigit3, ebiten.KeyNumpad3},
	targeting.Key4: {ebiten.KeyDigit4, ebiten.KeyNumpad4},
	targeting.Key5: {ebiten.KeyDigit5, ebiten.KeyNumpad5},
	targeting.Key6: {ebiten.KeyDigit6, ebiten.KeyNumpad6},
	targeting.Key7: {ebiten.KeyDigit7, ebiten.KeyNumpad7},
	targeting.Key8: {ebiten.KeyDigit8, ebiten.KeyNumpad8},
	targeting.Key9: {ebiten.KeyDigit9, ebiten.KeyNumpad9},

	targeting.KeyArrowUp:    {ebiten.KeyArrowUp},
	targeting.KeyArrowDown:  {ebiten.KeyArrowDown},
	targeting.KeyArrowLeft:  {ebiten.KeyArrowLeft},
	targeting.KeyArrowRight: {ebiten.KeyArrowRight},
	targeting.KeySpace:      {ebiten.KeySpace},
	targeting.KeyEscape:     {ebiten.KeyEscape},
}

// Input samples ebiten's keyboard state into targeting input snapshots.
type Input struct {
	keys []targeting.Key
}

func NewInput() *Input {
	return &Input{keys: targeting.Keys()}
}

// Sample polls the keyboard for this tick. Pressed holds the keys that went
// down this tick, Held the keys that are down now.
func (i *Input) Sample(area targeting.Rect) targeting.Input {
	in := targeting.Input{Area: area}
	for _, k := range i.keys {
		for _, ek := range keyMap[k] {
			if inpututil.IsKeyJustPressed(ek) {
				in.Pressed = in.Pressed.With(k)
			}
			if ebiten.IsKeyPressed(ek) {
				in.Held = in.Held.With(k)
			}
		}
	}
	in.Shift = ebiten.IsKeyPressed(ebiten.KeyShift)
	return in
}
