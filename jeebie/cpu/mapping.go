package cpu

var primaryTable = buildPrimaryTable()

// buildPrimaryTable assembles the 256-entry unprefixed opcode table. The
// two big regular blocks (8x8 register-to-register loads and 8x8 ALU-with-A
// operations) are generated from regOrder; everything else — loads with
// immediates, the control-flow family, and the illegal/unused opcodes — is
// listed explicitly since each has its own operand shape.
func buildPrimaryTable() [256]instruction {
	var t [256]instruction

	// 0x40-0x7F: LD r,r' (dst = (opcode-0x40)/8, src = (opcode-0x40)%8),
	// except 0x76 which is HALT rather than LD (HL),(HL).
	for i := 0; i < 64; i++ {
		op := 0x40 + i
		if op == 0x76 {
			t[op] = instruction{mnemonic: "HALT"}
			continue
		}
		t[op] = instruction{mnemonic: "LD8", dst: regOrder[i/8], src: regOrder[i%8]}
	}

	// 0x80-0xBF: ALU A,r — ADD,ADC,SUB,SBC,AND,XOR,OR,CP across regOrder.
	aluOps := [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}
	for i := 0; i < 64; i++ {
		t[0x80+i] = instruction{mnemonic: aluOps[i/8], src: regOrder[i%8]}
	}

	illegal := instruction{mnemonic: "NOP"}
	for _, op := range []int{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		t[op] = illegal
	}

	explicit := map[uint8]instruction{
		0x00: {mnemonic: "NOP"},
		0x01: {mnemonic: "LD16", dst: opBC, src: opImm16},
		0x02: {mnemonic: "LD8", dst: opIndBC, src: opA},
		0x03: {mnemonic: "INC16", dst: opBC},
		0x04: {mnemonic: "INC8", dst: opB},
		0x05: {mnemonic: "DEC8", dst: opB},
		0x06: {mnemonic: "LD8", dst: opB, src: opImm8},
		0x07: {mnemonic: "RLCA"},
		0x08: {mnemonic: "LD16MEM"},
		0x09: {mnemonic: "ADDHL", src: opBC},
		0x0A: {mnemonic: "LD8", dst: opA, src: opIndBC},
		0x0B: {mnemonic: "DEC16", dst: opBC},
		0x0C: {mnemonic: "INC8", dst: opC},
		0x0D: {mnemonic: "DEC8", dst: opC},
		0x0E: {mnemonic: "LD8", dst: opC, src: opImm8},
		0x0F: {mnemonic: "RRCA"},

		0x10: {mnemonic: "STOP"},
		0x11: {mnemonic: "LD16", dst: opDE, src: opImm16},
		0x12: {mnemonic: "LD8", dst: opIndDE, src: opA},
		0x13: {mnemonic: "INC16", dst: opDE},
		0x14: {mnemonic: "INC8", dst: opD},
		0x15: {mnemonic: "DEC8", dst: opD},
		0x16: {mnemonic: "LD8", dst: opD, src: opImm8},
		0x17: {mnemonic: "RLA"},
		0x18: {mnemonic: "JR", cond: condNone},
		0x19: {mnemonic: "ADDHL", src: opDE},
		0x1A: {mnemonic: "LD8", dst: opA, src: opIndDE},
		0x1B: {mnemonic: "DEC16", dst: opDE},
		0x1C: {mnemonic: "INC8", dst: opE},
		0x1D: {mnemonic: "DEC8", dst: opE},
		0x1E: {mnemonic: "LD8", dst: opE, src: opImm8},
		0x1F: {mnemonic: "RRA"},

		0x20: {mnemonic: "JR", cond: condNZ},
		0x21: {mnemonic: "LD16", dst: opHL, src: opImm16},
		0x22: {mnemonic: "LD8", dst: opIndHLInc, src: opA},
		0x23: {mnemonic: "INC16", dst: opHL},
		0x24: {mnemonic: "INC8", dst: opH},
		0x25: {mnemonic: "DEC8", dst: opH},
		0x26: {mnemonic: "LD8", dst: opH, src: opImm8},
		0x27: {mnemonic: "DAA"},
		0x28: {mnemonic: "JR", cond: condZ},
		0x29: {mnemonic: "ADDHL", src: opHL},
		0x2A: {mnemonic: "LD8", dst: opA, src: opIndHLInc},
		0x2B: {mnemonic: "DEC16", dst: opHL},
		0x2C: {mnemonic: "INC8", dst: opL},
		0x2D: {mnemonic: "DEC8", dst: opL},
		0x2E: {mnemonic: "LD8", dst: opL, src: opImm8},
		0x2F: {mnemonic: "CPL"},

		0x30: {mnemonic: "JR", cond: condNC},
		0x31: {mnemonic: "LD16", dst: opSP, src: opImm16},
		0x32: {mnemonic: "LD8", dst: opIndHLDec, src: opA},
		0x33: {mnemonic: "INC16", dst: opSP},
		0x34: {mnemonic: "INC8", dst: opIndHL},
		0x35: {mnemonic: "DEC8", dst: opIndHL},
		0x36: {mnemonic: "LD8", dst: opIndHL, src: opImm8},
		0x37: {mnemonic: "SCF"},
		0x38: {mnemonic: "JR", cond: condC},
		0x39: {mnemonic: "ADDHL", src: opSP},
		0x3A: {mnemonic: "LD8", dst: opA, src: opIndHLDec},
		0x3B: {mnemonic: "DEC16", dst: opSP},
		0x3C: {mnemonic: "INC8", dst: opA},
		0x3D: {mnemonic: "DEC8", dst: opA},
		0x3E: {mnemonic: "LD8", dst: opA, src: opImm8},
		0x3F: {mnemonic: "CCF"},

		0xC0: {mnemonic: "RET", cond: condNZ},
		0xC1: {mnemonic: "POP", dst: opBC},
		0xC2: {mnemonic: "JP", cond: condNZ},
		0xC3: {mnemonic: "JP", cond: condNone},
		0xC4: {mnemonic: "CALL", cond: condNZ},
		0xC5: {mnemonic: "PUSH", src: opBC},
		0xC6: {mnemonic: "ADD", src: opImm8},
		0xC7: {mnemonic: "RST", param: 0x00},
		0xC8: {mnemonic: "RET", cond: condZ},
		0xC9: {mnemonic: "RET", cond: condNone},
		0xCA: {mnemonic: "JP", cond: condZ},
		// 0xCB is the CB-prefix escape, handled directly in Step.
		0xCC: {mnemonic: "CALL", cond: condZ},
		0xCD: {mnemonic: "CALL", cond: condNone},
		0xCE: {mnemonic: "ADC", src: opImm8},
		0xCF: {mnemonic: "RST", param: 0x08},

		0xD0: {mnemonic: "RET", cond: condNC},
		0xD1: {mnemonic: "POP", dst: opDE},
		0xD2: {mnemonic: "JP", cond: condNC},
		0xD4: {mnemonic: "CALL", cond: condNC},
		0xD5: {mnemonic: "PUSH", src: opDE},
		0xD6: {mnemonic: "SUB", src: opImm8},
		0xD7: {mnemonic: "RST", param: 0x10},
		0xD8: {mnemonic: "RET", cond: condC},
		0xD9: {mnemonic: "RETI"},
		0xDA: {mnemonic: "JP", cond: condC},
		0xDC: {mnemonic: "CALL", cond: condC},
		0xDE: {mnemonic: "SBC", src: opImm8},
		0xDF: {mnemonic: "RST", param: 0x18},

		0xE0: {mnemonic: "LD8", dst: opIndImm8, src: opA},
		0xE1: {mnemonic: "POP", dst: opHL},
		0xE2: {mnemonic: "LD8", dst: opIndC, src: opA},
		0xE5: {mnemonic: "PUSH", src: opHL},
		0xE6: {mnemonic: "AND", src: opImm8},
		0xE7: {mnemonic: "RST", param: 0x20},
		0xE8: {mnemonic: "ADDSP"},
		0xE9: {mnemonic: "JPHL"},
		0xEA: {mnemonic: "LD8", dst: opIndImm16, src: opA},
		0xEE: {mnemonic: "XOR", src: opImm8},
		0xEF: {mnemonic: "RST", param: 0x28},

		0xF0: {mnemonic: "LD8", dst: opA, src: opIndImm8},
		0xF1: {mnemonic: "POP", dst: opAF},
		0xF2: {mnemonic: "LD8", dst: opA, src: opIndC},
		0xF3: {mnemonic: "DI"},
		0xF5: {mnemonic: "PUSH", src: opAF},
		0xF6: {mnemonic: "OR", src: opImm8},
		0xF7: {mnemonic: "RST", param: 0x30},
		0xF8: {mnemonic: "LDHLSP"},
		0xF9: {mnemonic: "LD16", dst: opSP, src: opHL},
		0xFA: {mnemonic: "LD8", dst: opA, src: opIndImm16},
		0xFB: {mnemonic: "EI"},
		0xFE: {mnemonic: "CP", src: opImm8},
		0xFF: {mnemonic: "RST", param: 0x38},
	}

	for op, in := range explicit {
		t[op] = in
	}

	return t
}
