//go:build sdl2

package backend

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/valerio/go-jeebie/jeebie"
	"github.com/valerio/go-jeebie/jeebie/memory"
	"github.com/valerio/go-jeebie/jeebie/video"
	"github.com/veandco/go-sdl2/sdl"
)

const bytesPerPixel = 4

// sampleRate is the audio output rate requested from the host device;
// the APU always produces 44100 Hz, and the device is opened without an
// obtained spec, so SDL converts to the device's own rate.
const sampleRate = 44100

// SDL2Frontend renders through an SDL2 window and plays audio through an
// SDL2 queued audio device. Building it requires the SDL2 development
// libraries and the "sdl2" build tag.
type SDL2Frontend struct {
	config Config

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	audioDev sdl.AudioDeviceID

	pixels []byte
}

func NewSDL2Frontend(config Config) *SDL2Frontend {
	if config.Scale <= 0 {
		config.Scale = 3
	}
	return &SDL2Frontend{config: config}
}

func (f *SDL2Frontend) Run(emu *jeebie.Emulator) error {
	if err := f.init(); err != nil {
		return err
	}
	defer f.cleanup()

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if !f.handleEvent(event, emu) {
				running = false
			}
		}
		if !running {
			break
		}

		emu.RunUntilFrame()
		f.renderFrame(emu.GetCurrentFrame())
		f.queueAudio(emu)
	}

	return nil
}

func (f *SDL2Frontend) init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl2 init: %w", err)
	}

	title := f.config.Title
	if title == "" {
		title = "jeebie"
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*f.config.Scale), int32(video.FramebufferHeight*f.config.Scale), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("create window: %w", err)
	}
	f.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("create renderer: %w", err)
	}
	f.renderer = renderer

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth, video.FramebufferHeight)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("create texture: %w", err)
	}
	f.texture = texture
	f.pixels = make([]byte, video.FramebufferWidth*video.FramebufferHeight*bytesPerPixel)

	devID, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 2,
		Samples:  1024,
	}, nil, 0)
	if err != nil {
		slog.Warn("sdl2: could not open audio device, running without sound", "error", err)
	} else {
		f.audioDev = devID
		sdl.PauseAudioDevice(devID, false)
	}

	slog.Info("sdl2 frontend initialized", "scale", f.config.Scale)
	return nil
}

func (f *SDL2Frontend) cleanup() {
	if f.audioDev != 0 {
		sdl.CloseAudioDevice(f.audioDev)
	}
	f.texture.Destroy()
	f.renderer.Destroy()
	f.window.Destroy()
	sdl.Quit()
}

// handleEvent applies the event to the emulator and returns false if it
// should cause the run loop to exit.
func (f *SDL2Frontend) handleEvent(event sdl.Event, emu *jeebie.Emulator) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return false
	case *sdl.KeyboardEvent:
		button, ok := keyToButton(e.Keysym.Sym)
		if !ok {
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
			return true
		}
		if e.Type == sdl.KEYDOWN {
			emu.PressButton(button)
		} else if e.Type == sdl.KEYUP {
			emu.ReleaseButton(button)
		}
	}
	return true
}

func keyToButton(key sdl.Keycode) (memory.Button, bool) {
	switch key {
	case sdl.K_RIGHT:
		return memory.ButtonRight, true
	case sdl.K_LEFT:
		return memory.ButtonLeft, true
	case sdl.K_UP:
		return memory.ButtonUp, true
	case sdl.K_DOWN:
		return memory.ButtonDown, true
	case sdl.K_a:
		return memory.ButtonA, true
	case sdl.K_s:
		return memory.ButtonB, true
	case sdl.K_RETURN:
		return memory.ButtonStart, true
	case sdl.K_q:
		return memory.ButtonSelect, true
	default:
		return 0, false
	}
}

func (f *SDL2Frontend) renderFrame(frame *video.FrameBuffer) {
	data := frame.ToSlice()

	for i, index := range data {
		r, g, b, a := indexToRGBA(index)
		dst := i * bytesPerPixel
		f.pixels[dst] = a
		f.pixels[dst+1] = b
		f.pixels[dst+2] = g
		f.pixels[dst+3] = r
	}

	f.texture.Update(nil, unsafe.Pointer(&f.pixels[0]), video.FramebufferWidth*bytesPerPixel)
	f.renderer.Clear()
	f.renderer.Copy(f.texture, nil, nil)
	f.renderer.Present()
}

// indexToRGBA is this front-end's choice of RGB triple for each of the
// four palette indices the core emits; a different sink is free to pick
// a different palette entirely.
func indexToRGBA(index video.PaletteIndex) (r, g, b, a uint8) {
	switch index {
	case video.White:
		return 0xFF, 0xFF, 0xFF, 0xFF
	case video.LightGrey:
		return 0x98, 0x98, 0x98, 0xFF
	case video.DarkGrey:
		return 0x4C, 0x4C, 0x4C, 0xFF
	default:
		return 0x00, 0x00, 0x00, 0xFF
	}
}

func (f *SDL2Frontend) queueAudio(emu *jeebie.Emulator) {
	if f.audioDev == 0 {
		return
	}
	samples := emu.GetMMU().APU.GetSamples(1024)
	if len(samples) == 0 {
		return
	}
	sdl.QueueAudio(f.audioDev, int16SliceToBytes(samples))
}

func int16SliceToBytes(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}
	return buf
}
