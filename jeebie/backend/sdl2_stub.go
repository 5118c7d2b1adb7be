//go:build !sdl2

package backend

import (
	"fmt"

	"github.com/valerio/go-jeebie/jeebie"
)

// SDL2Frontend stub used when the binary is built without the sdl2 tag.
type SDL2Frontend struct{}

func NewSDL2Frontend(config Config) *SDL2Frontend {
	return &SDL2Frontend{}
}

func (f *SDL2Frontend) Run(emu *jeebie.Emulator) error {
	return fmt.Errorf("SDL2 frontend not available: rebuild with -tags sdl2 and SDL2 development libraries installed")
}
