package cpu

import "github.com/valerio/go-jeebie/jeebie/bit"

// execute runs one decoded instruction by dispatching on its mnemonic to a
// shared executor. Executors are grouped by family (ALU, load, jump, bit
// manipulation, rotate/shift, misc) so the ~50 distinct mnemonics cover the
// full 512-entry opcode space via the operand tags in the table, rather
// than one function per opcode.
func (c *CPU) execute(in instruction) {
	switch in.mnemonic {
	case "NOP":
	case "STOP":
		c.fetch8() // padding byte
		c.stopped = true
	case "HALT":
		c.halted = true
	case "DI":
		c.ime = false
		c.eiDelay = 0
	case "EI":
		c.eiDelay = 2

	case "LD8":
		c.write8(in.dst, c.read8(in.src))
	case "LD16":
		c.write16(in.dst, c.read16(in.src))
		if in.dst == opSP && in.src == opHL {
			c.consume(4)
		}
	case "LD16MEM":
		addr := c.fetch16()
		v := c.sp.get()
		c.writeByte(addr, uint8(v))
		c.writeByte(addr+1, uint8(v>>8))
	case "LDHLSP":
		raw := c.fetch8()
		c.hl.set(c.addSPSigned(raw))
		c.consume(4)
	case "ADDSP":
		raw := c.fetch8()
		c.sp.set(c.addSPSigned(raw))
		c.consume(8)

	case "PUSH":
		c.consume(4)
		c.push16(c.read16(in.src))
	case "POP":
		c.write16(in.dst, c.pop16())

	case "ADD":
		c.af.setHigh(c.add8(c.af.getHigh(), c.read8(in.src)))
	case "ADC":
		c.af.setHigh(c.adc8(c.af.getHigh(), c.read8(in.src)))
	case "SUB":
		c.af.setHigh(c.sub8(c.af.getHigh(), c.read8(in.src)))
	case "SBC":
		c.af.setHigh(c.sbc8(c.af.getHigh(), c.read8(in.src)))
	case "AND":
		v := c.af.getHigh() & c.read8(in.src)
		c.af.setHigh(v)
		c.setFlag(FlagZ, v == 0)
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, true)
		c.setFlag(FlagC, false)
	case "OR":
		v := c.af.getHigh() | c.read8(in.src)
		c.af.setHigh(v)
		c.setFlag(FlagZ, v == 0)
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)
		c.setFlag(FlagC, false)
	case "XOR":
		v := c.af.getHigh() ^ c.read8(in.src)
		c.af.setHigh(v)
		c.setFlag(FlagZ, v == 0)
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)
		c.setFlag(FlagC, false)
	case "CP":
		c.sub8(c.af.getHigh(), c.read8(in.src))

	case "INC8":
		v := c.read8(in.dst)
		res := v + 1
		c.setFlag(FlagZ, res == 0)
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, (v&0xF) == 0xF)
		c.write8(in.dst, res)
	case "DEC8":
		v := c.read8(in.dst)
		res := v - 1
		c.setFlag(FlagZ, res == 0)
		c.setFlag(FlagN, true)
		c.setFlag(FlagH, (v&0xF) == 0)
		c.write8(in.dst, res)
	case "INC16":
		c.write16(in.dst, c.read16(in.dst)+1)
		c.consume(4)
	case "DEC16":
		c.write16(in.dst, c.read16(in.dst)-1)
		c.consume(4)
	case "ADDHL":
		hl := c.hl.get()
		v := c.read16(in.src)
		res := hl + v
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, (hl&0xFFF)+(v&0xFFF) > 0xFFF)
		c.setFlag(FlagC, uint32(hl)+uint32(v) > 0xFFFF)
		c.hl.set(res)
		c.consume(4)

	case "RLCA":
		c.af.setHigh(c.rlc(c.af.getHigh()))
		c.setFlag(FlagZ, false)
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)
	case "RRCA":
		c.af.setHigh(c.rrc(c.af.getHigh()))
		c.setFlag(FlagZ, false)
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)
	case "RLA":
		c.af.setHigh(c.rl(c.af.getHigh()))
		c.setFlag(FlagZ, false)
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)
	case "RRA":
		c.af.setHigh(c.rr(c.af.getHigh()))
		c.setFlag(FlagZ, false)
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)

	case "DAA":
		c.execDAA()
	case "CPL":
		c.af.setHigh(^c.af.getHigh())
		c.setFlag(FlagN, true)
		c.setFlag(FlagH, true)
	case "CCF":
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)
		c.setFlag(FlagC, !c.flag(FlagC))
	case "SCF":
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)
		c.setFlag(FlagC, true)

	case "JP":
		target := c.fetch16()
		if c.checkCond(in.cond) {
			c.pc.set(target)
			c.consume(4)
		}
	case "JPHL":
		c.pc.set(c.hl.get())
	case "JR":
		offset := bit.SignExtend(c.fetch8())
		if c.checkCond(in.cond) {
			c.pc.set(uint16(int32(c.pc.get()) + int32(offset)))
			c.consume(4)
		}
	case "CALL":
		target := c.fetch16()
		if c.checkCond(in.cond) {
			c.consume(4)
			c.push16(c.pc.get())
			c.pc.set(target)
		}
	case "RET":
		if in.cond != condNone {
			c.consume(4)
			if !c.checkCond(in.cond) {
				return
			}
		}
		c.pc.set(c.pop16())
		c.consume(4)
	case "RETI":
		c.pc.set(c.pop16())
		c.consume(4)
		c.ime = true
	case "RST":
		c.consume(4)
		c.push16(c.pc.get())
		c.pc.set(uint16(in.param))

	case "RLC", "RRC", "RL", "RR", "SLA", "SRA", "SRL", "SWAP":
		v := c.read8(in.dst)
		var res uint8
		switch in.mnemonic {
		case "RLC":
			res = c.rlc(v)
		case "RRC":
			res = c.rrc(v)
		case "RL":
			res = c.rl(v)
		case "RR":
			res = c.rr(v)
		case "SLA":
			res = c.sla(v)
		case "SRA":
			res = c.sra(v)
		case "SRL":
			res = c.srl(v)
		case "SWAP":
			res = c.swap(v)
		}
		c.setFlag(FlagZ, res == 0)
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)
		c.write8(in.dst, res)
	case "BIT":
		v := c.read8(in.dst)
		c.setFlag(FlagZ, !bit.IsSet(in.param, v))
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, true)
	case "SET":
		c.write8(in.dst, bit.Set(in.param, c.read8(in.dst)))
	case "RES":
		c.write8(in.dst, bit.Reset(in.param, c.read8(in.dst)))

	default:
		panic("unimplemented mnemonic: " + in.mnemonic)
	}
}

func (c *CPU) add8(a, b uint8) uint8 {
	res := a + b
	c.setFlag(FlagZ, res == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, (a&0xF)+(b&0xF) > 0xF)
	c.setFlag(FlagC, uint16(a)+uint16(b) > 0xFF)
	return res
}

func (c *CPU) adc8(a, b uint8) uint8 {
	carry := uint8(0)
	if c.flag(FlagC) {
		carry = 1
	}
	res := a + b + carry
	c.setFlag(FlagZ, res == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, (a&0xF)+(b&0xF)+carry > 0xF)
	c.setFlag(FlagC, uint16(a)+uint16(b)+uint16(carry) > 0xFF)
	return res
}

func (c *CPU) sub8(a, b uint8) uint8 {
	res := a - b
	c.setFlag(FlagZ, res == 0)
	c.setFlag(FlagN, true)
	c.setFlag(FlagH, (a&0xF) < (b&0xF))
	c.setFlag(FlagC, a < b)
	return res
}

func (c *CPU) sbc8(a, b uint8) uint8 {
	carry := uint8(0)
	if c.flag(FlagC) {
		carry = 1
	}
	res := a - b - carry
	c.setFlag(FlagZ, res == 0)
	c.setFlag(FlagN, true)
	c.setFlag(FlagH, int(a&0xF)-int(b&0xF)-int(carry) < 0)
	c.setFlag(FlagC, int(a)-int(b)-int(carry) < 0)
	return res
}

// addSPSigned implements the shared SP+r8 arithmetic used by both
// "LD HL,SP+r8" and "ADD SP,r8": the sum is computed as signed, but the
// half-carry/carry flags are defined over the raw unsigned byte per the
// documented hardware behavior.
func (c *CPU) addSPSigned(raw uint8) uint16 {
	sp := c.sp.get()
	offset := bit.SignExtend(raw)
	result := uint16(int32(sp) + int32(offset))
	c.setFlag(FlagZ, false)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, (sp&0xF)+(uint16(raw)&0xF) > 0xF)
	c.setFlag(FlagC, (sp&0xFF)+uint16(raw) > 0xFF)
	return result
}

func (c *CPU) execDAA() {
	a := c.af.getHigh()
	var adjust uint8
	carry := false

	if !c.flag(FlagN) {
		if c.flag(FlagC) || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		if c.flag(FlagH) || (a&0xF) > 0x9 {
			adjust |= 0x06
		}
		a += adjust
	} else {
		if c.flag(FlagC) {
			adjust |= 0x60
			carry = true
		}
		if c.flag(FlagH) {
			adjust |= 0x06
		}
		a -= adjust
	}

	c.af.setHigh(a)
	c.setFlag(FlagZ, a == 0)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, carry)
}

// rlc/rrc/rl/rr/sla/sra/srl/swap are the eight CB-prefixed rotate/shift
// primitives, shared between the CB table (which also sets Z/N/H from the
// result) and the four unprefixed A-only rotate opcodes (which never set
// Z and run in half the cycles).
func (c *CPU) rlc(v uint8) uint8 {
	carry := v >> 7
	res := (v << 1) | carry
	c.setFlag(FlagC, carry == 1)
	return res
}

func (c *CPU) rrc(v uint8) uint8 {
	carry := v & 1
	res := (v >> 1) | (carry << 7)
	c.setFlag(FlagC, carry == 1)
	return res
}

func (c *CPU) rl(v uint8) uint8 {
	oldCarry := uint8(0)
	if c.flag(FlagC) {
		oldCarry = 1
	}
	newCarry := v >> 7
	res := (v << 1) | oldCarry
	c.setFlag(FlagC, newCarry == 1)
	return res
}

func (c *CPU) rr(v uint8) uint8 {
	oldCarry := uint8(0)
	if c.flag(FlagC) {
		oldCarry = 1
	}
	newCarry := v & 1
	res := (v >> 1) | (oldCarry << 7)
	c.setFlag(FlagC, newCarry == 1)
	return res
}

func (c *CPU) sla(v uint8) uint8 {
	carry := v >> 7
	c.setFlag(FlagC, carry == 1)
	return v << 1
}

func (c *CPU) sra(v uint8) uint8 {
	carry := v & 1
	c.setFlag(FlagC, carry == 1)
	return (v >> 1) | (v & 0x80)
}

func (c *CPU) srl(v uint8) uint8 {
	carry := v & 1
	c.setFlag(FlagC, carry == 1)
	return v >> 1
}

func (c *CPU) swap(v uint8) uint8 {
	c.setFlag(FlagC, false)
	return (v << 4) | (v >> 4)
}
