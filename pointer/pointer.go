// Package pointer moves and clicks the system pointer.
package pointer

import (
	"fmt"
	"log"
	"os"
)

// Pointer injects pointer motion and clicks in screen pixels.
type Pointer interface {
	// WarpTo moves the pointer to an absolute screen position.
	WarpTo(x, y int) error
	// MoveBy moves the pointer relative to where it is.
	MoveBy(dx, dy int) error
	// Click presses and releases the primary button where the pointer is.
	Click() error
	Close() error
}

// Open returns the pointer for backend ("auto", "x11" or "log"). In auto mode
// an X11 connection is tried first and the log backend is used when no X
// server is reachable.
func Open(backend string) (Pointer, error) {
	switch backend {
	case "x11":
		p, err := OpenX11()
		if err != nil {
			return nil, err
		}
		return p, nil
	case "log":
		return NewLog(log.Default()), nil
	case "auto", "":
		if os.Getenv("DISPLAY") != "" {
			p, err := OpenX11()
			if err == nil {
				return p, nil
			}
			log.Printf("[pointer] x11 unavailable, falling back to log backend: %v", err)
		}
		return NewLog(log.Default()), nil
	}
	return nil, fmt.Errorf("pointer: unknown backend %q", backend)
}

// Log only records what it would have done. It backs dry runs and hosts
// without an X server.
type Log struct {
	logger *log.Logger

	// X and Y track where the pointer would be.
	X, Y   int
	Clicks int
}

func NewLog(logger *log.Logger) *Log {
	return &Log{logger: logger}
}

func (p *Log) WarpTo(x, y int) error {
	p.X, p.Y = x, y
	p.logger.Printf("[pointer] warp to %d,%d", x, y)
	return nil
}

func (p *Log) MoveBy(dx, dy int) error {
	p.X += dx
	p.Y += dy
	p.logger.Printf("[pointer] move by %d,%d", dx, dy)
	return nil
}

func (p *Log) Click() error {
	p.Clicks++
	p.logger.Printf("[pointer] click at %d,%d", p.X, p.Y)
	return nil
}

func (p *Log) Close() error {
	return nil
}
