package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gridcursor/common"
	"github.com/milk9111/gridcursor/pointer"
	"github.com/milk9111/gridcursor/settings"
)

func main() {
	configPath := flag.String("config", settings.DefaultPath(), "settings file (YAML); missing fields use built-in defaults")
	backend := flag.String("pointer", "", "pointer backend: auto, x11 or log (overrides the settings file)")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	s, err := settings.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *backend != "" {
		s.Pointer.Backend = *backend
		if err := s.Validate(); err != nil {
			log.Fatal(err)
		}
	}

	p, err := pointer.Open(s.Pointer.Backend)
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowTitle(s.Window.Title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)

	switch {
	case common.IsHyprland(os.LookupEnv):
		// Fullscreen under Hyprland hides every other window.
		ebiten.SetWindowSize(s.Window.HyprlandSize, s.Window.HyprlandSize)
	case s.Window.Fullscreen:
		ebiten.SetFullscreen(true)
	default:
		w, h := ebiten.Monitor().Size()
		ebiten.SetWindowSize(w, h)
	}

	game, err := NewGame(*configPath, s, p, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	err = ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{ScreenTransparent: true})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Print(err)
	}
}
