package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPU_LD8Immediate(t *testing.T) {
	c, _ := newTestCPU([]uint8{0x3E, 0x42}) // LD A,0x42
	c.Step()
	assert.Equal(t, uint8(0x42), c.af.getHigh())
}

func TestCPU_LD8RegisterToRegister(t *testing.T) {
	c, _ := newTestCPU([]uint8{0x47}) // LD B,A
	c.af.setHigh(0x99)
	c.Step()
	assert.Equal(t, uint8(0x99), c.bc.getHigh())
}

func TestCPU_LD16Immediate(t *testing.T) {
	c, _ := newTestCPU([]uint8{0x21, 0xCD, 0xAB}) // LD HL,0xABCD
	c.Step()
	assert.Equal(t, uint16(0xABCD), c.hl.get())
}

func TestCPU_LDIndirectHLIncDec(t *testing.T) {
	c, bus := newTestCPU([]uint8{0x22, 0x32}) // LD (HL+),A ; LD (HL-),A
	c.hl.set(0xC000)
	c.af.setHigh(0x7)
	c.Step()
	assert.Equal(t, uint8(0x7), bus.mem[0xC000])
	assert.Equal(t, uint16(0xC001), c.hl.get())

	c.af.setHigh(0x8)
	c.Step()
	assert.Equal(t, uint8(0x8), bus.mem[0xC001])
	assert.Equal(t, uint16(0xC000), c.hl.get())
}

func TestCPU_ADDSetsFlags(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xC6, 0x01}) // ADD A,1
	c.af.setHigh(0xFF)
	c.Step()
	assert.Equal(t, uint8(0x00), c.af.getHigh())
	assert.True(t, c.flag(FlagZ))
	assert.True(t, c.flag(FlagH))
	assert.True(t, c.flag(FlagC))
	assert.False(t, c.flag(FlagN))
}

func TestCPU_SUBSetsFlags(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xD6, 0x01}) // SUB 1
	c.af.setHigh(0x00)
	c.Step()
	assert.Equal(t, uint8(0xFF), c.af.getHigh())
	assert.True(t, c.flag(FlagN))
	assert.True(t, c.flag(FlagH))
	assert.True(t, c.flag(FlagC))
}

func TestCPU_CPDoesNotModifyA(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xFE, 0x10}) // CP 0x10
	c.af.setHigh(0x10)
	c.Step()
	assert.Equal(t, uint8(0x10), c.af.getHigh())
	assert.True(t, c.flag(FlagZ))
}

func TestCPU_INCDEC8(t *testing.T) {
	c, _ := newTestCPU([]uint8{0x3C, 0x3D}) // INC A; DEC A
	c.af.setHigh(0x0F)
	c.Step()
	assert.Equal(t, uint8(0x10), c.af.getHigh())
	assert.True(t, c.flag(FlagH))

	c.Step()
	assert.Equal(t, uint8(0x0F), c.af.getHigh())
	assert.True(t, c.flag(FlagN))
}

func TestCPU_DECDoesNotTouchCarry(t *testing.T) {
	c, _ := newTestCPU([]uint8{0x3D}) // DEC A
	c.af.setHigh(0x01)
	c.setFlag(FlagC, true)
	c.Step()
	assert.True(t, c.flag(FlagC), "DEC must not affect the carry flag")
}

func TestCPU_PushPop(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xC5, 0xD1}) // PUSH BC; POP DE
	c.sp.set(0xFFFE)
	c.bc.set(0x1234)
	c.Step()
	c.Step()
	assert.Equal(t, uint16(0x1234), c.de.get())
	assert.Equal(t, uint16(0xFFFE), c.sp.get())
}

func TestCPU_JRTaken(t *testing.T) {
	c, _ := newTestCPU([]uint8{0x18, 0x02, 0x00, 0x00, 0x3E, 0x07}) // JR +2; ..; LD A,7
	c.Step()
	assert.Equal(t, uint16(0x0104), c.pc.get())
}

func TestCPU_JRNegativeOffset(t *testing.T) {
	c, bus := newTestCPU(nil)
	bus.mem[0x0150] = 0x18
	bus.mem[0x0151] = 0xFE // JR -2, infinite loop back to itself
	c.SetPC(0x0150)
	c.Step()
	assert.Equal(t, uint16(0x0150), c.pc.get())
}

func TestCPU_JPAbsolute(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xC3, 0x00, 0x02}) // JP 0x0200
	c.Step()
	assert.Equal(t, uint16(0x0200), c.pc.get())
}

func TestCPU_CallAndRet(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xCD, 0x00, 0x02}) // CALL 0x0200
	c.sp.set(0xFFFE)
	c.Step()
	assert.Equal(t, uint16(0x0200), c.pc.get())
	assert.Equal(t, uint16(0xFFFC), c.sp.get())

	c.bus.(*testBus).mem[0x0200] = 0xC9 // RET
	c.Step()
	assert.Equal(t, uint16(0x0103), c.pc.get())
	assert.Equal(t, uint16(0xFFFE), c.sp.get())
}

func TestCPU_RotateA(t *testing.T) {
	c, _ := newTestCPU([]uint8{0x07}) // RLCA
	c.af.setHigh(0x85)
	c.Step()
	assert.Equal(t, uint8(0x0B), c.af.getHigh())
	assert.True(t, c.flag(FlagC))
	assert.False(t, c.flag(FlagZ), "A-only rotates never set Z")
}

func TestCPU_CB_BitSetRes(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xCB, 0x7F}) // BIT 7,A
	c.af.setHigh(0x00)
	c.Step()
	assert.True(t, c.flag(FlagZ))

	c2, _ := newTestCPU([]uint8{0xCB, 0xFF, 0xCB, 0xBF}) // SET 7,A; RES 7,A
	c2.af.setHigh(0x00)
	c2.Step()
	assert.Equal(t, uint8(0x80), c2.af.getHigh())
	c2.Step()
	assert.Equal(t, uint8(0x00), c2.af.getHigh())
}

func TestCPU_CB_SwapClearsCarry(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xCB, 0x37}) // SWAP A
	c.af.setHigh(0x12)
	c.setFlag(FlagC, true)
	c.Step()
	assert.Equal(t, uint8(0x21), c.af.getHigh())
	assert.False(t, c.flag(FlagC))
}

func TestCPU_DAAAfterDecimalAdd(t *testing.T) {
	c, _ := newTestCPU([]uint8{0x27}) // DAA
	c.af.setHigh(0x0A) // result of 0x05+0x05 in BCD terms
	c.setFlag(FlagH, true)
	c.Step()
	assert.Equal(t, uint8(0x10), c.af.getHigh())
}

func TestCPU_LDHLSPSetsFlagsFromUnsignedByte(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xF8, 0xFF}) // LD HL,SP-1
	c.sp.set(0x0001)
	c.Step()
	assert.Equal(t, uint16(0x0000), c.hl.get())
	assert.True(t, c.flag(FlagH))
	assert.True(t, c.flag(FlagC))
	assert.False(t, c.flag(FlagZ))
}
