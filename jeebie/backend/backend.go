// Package backend provides alternate front-ends for running an Emulator.
// The terminal front-end (cmd/jeebie) is the default; this package holds
// the optional SDL2 front-end, built only when the sdl2 tag is set.
package backend

import "github.com/valerio/go-jeebie/jeebie"

// Config configures a Frontend before it starts running.
type Config struct {
	Title string
	Scale int // integer upscale factor for the 160x144 framebuffer
}

// Frontend drives an Emulator until the user quits or an error occurs.
type Frontend interface {
	Run(emu *jeebie.Emulator) error
}
