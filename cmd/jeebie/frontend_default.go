//go:build !sdl2

package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-jeebie/jeebie"
	"github.com/valerio/go-jeebie/jeebie/memory"
)

const (
	screenWidth  = 160
	screenHeight = 144

	// terminal cells are taller than wide, widen the horizontal scale
	// to keep something close to the original aspect ratio.
	scaleX = 2

	frameTime = time.Second / 60
)

var shadeChars = []rune{'█', '▓', '▒', '░'}

// runFrontend drives the emulator through a terminal session, rendering
// each pixel as a shade glyph picked by palette index and repeated scaleX
// cells wide, and forwarding key presses to the joypad.
func runFrontend(emu *jeebie.Emulator) error {
	r, err := newTerminalRenderer(emu)
	if err != nil {
		return err
	}
	return r.run()
}

type terminalRenderer struct {
	screen  tcell.Screen
	emu     *jeebie.Emulator
	running bool
}

func newTerminalRenderer(emu *jeebie.Emulator) (*terminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}

	return &terminalRenderer{screen: screen, emu: emu, running: true}, nil
}

func (t *terminalRenderer) run() error {
	defer t.screen.Fini()

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	events := make(chan tcell.Event, 16)
	go t.screen.ChannelEvents(events, nil)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for t.running {
		select {
		case ev := <-events:
			t.handleEvent(ev)
		case <-ticker.C:
			t.emu.RunUntilFrame()
			t.render()
			t.screen.Show()
		}
	}

	return nil
}

func (t *terminalRenderer) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			t.running = false
			return
		}
		if button, ok := keyToButton(ev); ok {
			t.emu.PressButton(button)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func keyToButton(ev *tcell.EventKey) (memory.Button, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return memory.ButtonStart, true
	case tcell.KeyRight:
		return memory.ButtonRight, true
	case tcell.KeyLeft:
		return memory.ButtonLeft, true
	case tcell.KeyUp:
		return memory.ButtonUp, true
	case tcell.KeyDown:
		return memory.ButtonDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a':
			return memory.ButtonA, true
		case 's':
			return memory.ButtonB, true
		case 'q':
			return memory.ButtonSelect, true
		}
	}
	return 0, false
}

func (t *terminalRenderer) render() {
	frame := t.emu.GetCurrentFrame().ToSlice()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x++ {
			char := shadeChars[frame[y*screenWidth+x]]
			for sx := 0; sx < scaleX; sx++ {
				t.screen.SetContent(x*scaleX+sx, y, char, nil, style)
			}
		}
	}
}
