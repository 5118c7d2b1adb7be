package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-jeebie/jeebie/addr"
)

func TestCPU_ServiceInterruptJumpsToVector(t *testing.T) {
	c, bus := newTestCPU([]uint8{0x00}) // NOP, never reached
	c.sp.set(0xFFFE)
	c.ime = true
	bus.mem[addr.IE] = uint8(addr.VBlankInterrupt)
	bus.mem[addr.IF] = uint8(addr.VBlankInterrupt)

	c.Step()

	assert.Equal(t, uint16(0x0040), c.pc.get())
	assert.False(t, c.ime, "servicing an interrupt clears IME")
	assert.Equal(t, uint8(0), bus.mem[addr.IF]&uint8(addr.VBlankInterrupt), "serviced interrupt's IF bit is cleared")
}

func TestCPU_InterruptPriorityOrder(t *testing.T) {
	c, bus := newTestCPU(nil)
	c.sp.set(0xFFFE)
	c.ime = true
	bus.mem[addr.IE] = 0x1F
	bus.mem[addr.IF] = uint8(addr.TimerInterrupt) | uint8(addr.JoypadInterrupt)

	c.Step()

	assert.Equal(t, uint16(0x0050), c.pc.get(), "Timer outranks Joypad")
}

func TestCPU_DisabledIMEDoesNotService(t *testing.T) {
	c, bus := newTestCPU([]uint8{0x00})
	c.ime = false
	bus.mem[addr.IE] = uint8(addr.VBlankInterrupt)
	bus.mem[addr.IF] = uint8(addr.VBlankInterrupt)

	c.Step()

	assert.Equal(t, uint16(0x0101), c.pc.get(), "no interrupt serviced, plain fetch advances PC past the NOP")
}

func TestCPU_HaltWakesOnPendingRegardlessOfIME(t *testing.T) {
	c, bus := newTestCPU(nil)
	c.ime = false
	c.halted = true
	bus.mem[addr.IE] = uint8(addr.JoypadInterrupt)
	bus.mem[addr.IF] = uint8(addr.JoypadInterrupt)

	c.Step()

	assert.False(t, c.halted, "pending interrupt wakes CPU even with IME disabled")
}

func TestCPU_HaltStaysAsleepWithNoPending(t *testing.T) {
	c, _ := newTestCPU(nil)
	c.halted = true

	cycles := c.Step()

	assert.True(t, c.halted)
	assert.Equal(t, 4, cycles)
}

func TestCPU_EITakesEffectAfterNextInstruction(t *testing.T) {
	c, bus := newTestCPU([]uint8{0xFB, 0x00, 0x00}) // EI; NOP; NOP
	bus.mem[addr.IE] = uint8(addr.VBlankInterrupt)
	bus.mem[addr.IF] = uint8(addr.VBlankInterrupt)

	c.Step() // EI: IME not yet active
	assert.False(t, c.ime)

	c.Step() // the instruction right after EI: IME becomes active here, but
	// servicing only happens from the *next* Step onward.
	assert.True(t, c.ime)
}
