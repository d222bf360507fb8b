package pointer

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"
)

// primaryButton is X11 button 1.
const primaryButton = 1

// X11 drives the pointer through the core protocol (WarpPointer) and the
// XTEST extension (synthetic button events).
type X11 struct {
	conn *xgb.Conn
	root xproto.Window
}

func OpenX11() (*X11, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("pointer: connect to X server: %w", err)
	}
	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pointer: init XTEST: %w", err)
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return &X11{conn: conn, root: screen.Root}, nil
}

func (p *X11) WarpTo(x, y int) error {
	err := xproto.WarpPointerChecked(p.conn, xproto.WindowNone, p.root,
		0, 0, 0, 0, clamp16(x), clamp16(y)).Check()
	if err != nil {
		return fmt.Errorf("pointer: warp to %d,%d: %w", x, y, err)
	}
	return nil
}

// MoveBy warps with no destination window, which the server treats as a
// relative move.
func (p *X11) MoveBy(dx, dy int) error {
	err := xproto.WarpPointerChecked(p.conn, xproto.WindowNone, xproto.WindowNone,
		0, 0, 0, 0, clamp16(dx), clamp16(dy)).Check()
	if err != nil {
		return fmt.Errorf("pointer: move by %d,%d: %w", dx, dy, err)
	}
	return nil
}

func (p *X11) Click() error {
	for _, ev := range []byte{xproto.ButtonPress, xproto.ButtonRelease} {
		err := xtest.FakeInputChecked(p.conn, ev, primaryButton, 0, p.root, 0, 0, 0).Check()
		if err != nil {
			return fmt.Errorf("pointer: click: %w", err)
		}
	}
	return nil
}

func (p *X11) Close() error {
	p.conn.Close()
	return nil
}

func clamp16(v int) int16 {
	if v > 1<<15-1 {
		return 1<<15 - 1
	}
	if v < -1<<15 {
		return -1 << 15
	}
	return int16(v)
}
