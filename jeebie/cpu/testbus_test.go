package cpu

import "github.com/valerio/go-jeebie/jeebie/addr"

// testBus is a minimal flat-memory Bus used only by this package's tests.
// It lives in a _test.go file of its own so every test file of the package
// can construct it without duplicating it per file.
type testBus struct {
	mem    [0x10000]uint8
	ticked int
}

func newTestBus() *testBus {
	return &testBus{}
}

func (b *testBus) Read(address uint16) uint8  { return b.mem[address] }
func (b *testBus) Write(address uint16, v uint8) { b.mem[address] = v }
func (b *testBus) Tick(cycles int)            { b.ticked += cycles }

func (b *testBus) RequestInterrupt(interrupt addr.Interrupt) {
	var bitPos uint8
	switch interrupt {
	case addr.VBlankInterrupt:
		bitPos = 0
	case addr.LCDSTATInterrupt:
		bitPos = 1
	case addr.TimerInterrupt:
		bitPos = 2
	case addr.SerialInterrupt:
		bitPos = 3
	case addr.JoypadInterrupt:
		bitPos = 4
	}
	b.mem[addr.IF] |= 1 << bitPos
}

// newTestCPU builds a CPU on a fresh testBus, copies program to 0x0100 and positions PC there.
func newTestCPU(program []uint8) (*CPU, *testBus) {
	bus := newTestBus()
	copy(bus.mem[0x0100:], program)
	c := New(bus)
	c.SetPC(0x0100)
	return c, bus
}
