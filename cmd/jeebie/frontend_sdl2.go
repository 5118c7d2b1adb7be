//go:build sdl2

package main

import (
	"github.com/valerio/go-jeebie/jeebie"
	"github.com/valerio/go-jeebie/jeebie/backend"
)

// runFrontend drives the emulator through the windowed SDL2 front-end.
func runFrontend(emu *jeebie.Emulator) error {
	return backend.NewSDL2Frontend(backend.Config{Title: "jeebie", Scale: 3}).Run(emu)
}
