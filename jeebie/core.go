package jeebie

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/valerio/go-jeebie/jeebie/cpu"
	"github.com/valerio/go-jeebie/jeebie/memory"
	"github.com/valerio/go-jeebie/jeebie/video"
)

// cyclesPerFrame is the number of CPU cycles in one 59.7Hz video frame
// (154 scanlines * 456 cycles/scanline).
const cyclesPerFrame = 70224

// Emulator is the root struct tying the CPU, PPU and memory bus together
// and driving them through the interleaved-tick execution model: every
// CPU step ticks the bus (and therefore the timer, serial and APU) for
// the cycles it consumed, and the GPU is advanced by that same count.
type Emulator struct {
	cpu *cpu.CPU
	gpu *video.GPU
	mem *memory.MMU

	instructionCount uint64
	frameCount       uint64
}

func newEmulator(mem *memory.MMU) *Emulator {
	return &Emulator{
		cpu: cpu.New(mem),
		gpu: video.NewGpu(mem),
		mem: mem,
	}
}

// New creates a new emulator instance with no cartridge loaded.
func New() *Emulator {
	return newEmulator(memory.NewWithCartridge(memory.NewCartridge()))
}

// NewWithFile creates a new emulator instance and loads the ROM at path into it.
func NewWithFile(path string) (*Emulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file: %w", err)
	}

	cart, err := memory.NewCartridgeWithData(data)
	if err != nil {
		return nil, fmt.Errorf("parsing cartridge: %w", err)
	}

	slog.Debug("loaded ROM", "path", path, "size", len(data), "title", cart.Title())

	return newEmulator(memory.NewWithCartridge(cart)), nil
}

// RunUntilFrame executes instructions until a full video frame's worth of
// cycles has elapsed, ticking the GPU alongside the CPU.
func (e *Emulator) RunUntilFrame() {
	total := 0
	for total < cyclesPerFrame {
		cycles := e.cpu.Step()
		e.gpu.Tick(cycles)
		e.instructionCount++
		total += cycles
	}

	e.frameCount++
	if e.frameCount%60 == 0 {
		slog.Debug("frame completed", "frame", e.frameCount, "pc", fmt.Sprintf("0x%04X", e.cpu.PC()))
	}
}

// GetCurrentFrame returns the most recently completed video frame.
func (e *Emulator) GetCurrentFrame() *video.FrameBuffer {
	return e.gpu.GetFrameBuffer()
}

// PressButton forwards a button press to the joypad matrix.
func (e *Emulator) PressButton(b memory.Button) {
	e.mem.Joypad.Press(b)
}

// ReleaseButton forwards a button release to the joypad matrix.
func (e *Emulator) ReleaseButton(b memory.Button) {
	e.mem.Joypad.Release(b)
}

// GetCPU exposes the underlying CPU, mainly for tests and debug tooling.
func (e *Emulator) GetCPU() *cpu.CPU {
	return e.cpu
}

// GetMMU exposes the underlying memory bus, mainly for tests and debug tooling.
func (e *Emulator) GetMMU() *memory.MMU {
	return e.mem
}

func (e *Emulator) GetInstructionCount() uint64 {
	return e.instructionCount
}

func (e *Emulator) GetFrameCount() uint64 {
	return e.frameCount
}
