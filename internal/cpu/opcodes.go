package cpu

// InstructionEntry is one row of the opcode table: an operation, its
// addressing mode, the documented base cycle cost, and whether crossing a
// page boundary during address resolution adds one more cycle.
type InstructionEntry struct {
	Op               Operation
	Mode             AddressMode
	Cycles           uint8
	PageCrossAddsOne bool
}

// opcodeTable transcribes the full 256-entry oxyron.de matrix: every
// official 6502 operation plus the commonly emulated unofficial ones,
// including the duplicate NOPs and KIL (jam) slots. Indexed by opcode byte.
var opcodeTable = [256]InstructionEntry{
	0x00: {OpBRK, Implicit, 7, false},
	0x01: {OpORA, IndirectX, 6, false},
	0x02: {OpKIL, Implicit, 2, false},
	0x03: {OpSLO, IndirectX, 8, false},
	0x04: {OpNOP, ZeroPage, 3, false},
	0x05: {OpORA, ZeroPage, 3, false},
	0x06: {OpASL, ZeroPage, 5, false},
	0x07: {OpSLO, ZeroPage, 5, false},
	0x08: {OpPHP, Implicit, 3, false},
	0x09: {OpORA, Immediate, 2, false},
	0x0A: {OpASL, Accumulator, 2, false},
	0x0B: {OpANC, Immediate, 2, false},
	0x0C: {OpNOP, Absolute, 4, false},
	0x0D: {OpORA, Absolute, 4, false},
	0x0E: {OpASL, Absolute, 6, false},
	0x0F: {OpSLO, Absolute, 6, false},

	0x10: {OpBPL, Relative, 2, false},
	0x11: {OpORA, IndirectY, 5, true},
	0x12: {OpKIL, Implicit, 2, false},
	0x13: {OpSLO, IndirectY, 8, false},
	0x14: {OpNOP, ZeroPageX, 4, false},
	0x15: {OpORA, ZeroPageX, 4, false},
	0x16: {OpASL, ZeroPageX, 6, false},
	0x17: {OpSLO, ZeroPageX, 6, false},
	0x18: {OpCLC, Implicit, 2, false},
	0x19: {OpORA, AbsoluteY, 4, true},
	0x1A: {OpNOP, Implicit, 2, false},
	0x1B: {OpSLO, AbsoluteY, 7, false},
	0x1C: {OpNOP, AbsoluteX, 4, true},
	0x1D: {OpORA, AbsoluteX, 4, true},
	0x1E: {OpASL, AbsoluteX, 7, false},
	0x1F: {OpSLO, AbsoluteX, 7, false},

	0x20: {OpJSR, Absolute, 6, false},
	0x21: {OpAND, IndirectX, 6, false},
	0x22: {OpKIL, Implicit, 2, false},
	0x23: {OpRLA, IndirectX, 8, false},
	0x24: {OpBIT, ZeroPage, 3, false},
	0x25: {OpAND, ZeroPage, 3, false},
	0x26: {OpROL, ZeroPage, 5, false},
	0x27: {OpRLA, ZeroPage, 5, false},
	0x28: {OpPLP, Implicit, 4, false},
	0x29: {OpAND, Immediate, 2, false},
	0x2A: {OpROL, Accumulator, 2, false},
	0x2B: {OpANC, Immediate, 2, false},
	0x2C: {OpBIT, Absolute, 4, false},
	0x2D: {OpAND, Absolute, 4, false},
	0x2E: {OpROL, Absolute, 6, false},
	0x2F: {OpRLA, Absolute, 6, false},

	0x30: {OpBMI, Relative, 2, false},
	0x31: {OpAND, IndirectY, 5, true},
	0x32: {OpKIL, Implicit, 2, false},
	0x33: {OpRLA, IndirectY, 8, false},
	0x34: {OpNOP, ZeroPageX, 4, false},
	0x35: {OpAND, ZeroPageX, 4, false},
	0x36: {OpROL, ZeroPageX, 6, false},
	0x37: {OpRLA, ZeroPageX, 6, false},
	0x38: {OpSEC, Implicit, 2, false},
	0x39: {OpAND, AbsoluteY, 4, true},
	0x3A: {OpNOP, Implicit, 2, false},
	0x3B: {OpRLA, AbsoluteY, 7, false},
	0x3C: {OpNOP, AbsoluteX, 4, true},
	0x3D: {OpAND, AbsoluteX, 4, true},
	0x3E: {OpROL, AbsoluteX, 7, false},
	0x3F: {OpRLA, AbsoluteX, 7, false},

	0x40: {OpRTI, Implicit, 6, false},
	0x41: {OpEOR, IndirectX, 6, false},
	0x42: {OpKIL, Implicit, 2, false},
	0x43: {OpSRE, IndirectX, 8, false},
	0x44: {OpNOP, ZeroPage, 3, false},
	0x45: {OpEOR, ZeroPage, 3, false},
	0x46: {OpLSR, ZeroPage, 5, false},
	0x47: {OpSRE, ZeroPage, 5, false},
	0x48: {OpPHA, Implicit, 3, false},
	0x49: {OpEOR, Immediate, 2, false},
	0x4A: {OpLSR, Accumulator, 2, false},
	0x4B: {OpALR, Immediate, 2, false},
	0x4C: {OpJMP, Absolute, 3, false},
	0x4D: {OpEOR, Absolute, 4, false},
	0x4E: {OpLSR, Absolute, 6, false},
	0x4F: {OpSRE, Absolute, 6, false},

	0x50: {OpBVC, Relative, 2, false},
	0x51: {OpEOR, IndirectY, 5, true},
	0x52: {OpKIL, Implicit, 2, false},
	0x53: {OpSRE, IndirectY, 8, false},
	0x54: {OpNOP, ZeroPageX, 4, false},
	0x55: {OpEOR, ZeroPageX, 4, false},
	0x56: {OpLSR, ZeroPageX, 6, false},
	0x57: {OpSRE, ZeroPageX, 6, false},
	0x58: {OpCLI, Implicit, 2, false},
	0x59: {OpEOR, AbsoluteY, 4, true},
	0x5A: {OpNOP, Implicit, 2, false},
	0x5B: {OpSRE, AbsoluteY, 7, false},
	0x5C: {OpNOP, AbsoluteX, 4, true},
	0x5D: {OpEOR, AbsoluteX, 4, true},
	0x5E: {OpLSR, AbsoluteX, 7, false},
	0x5F: {OpSRE, AbsoluteX, 7, false},

	0x60: {OpRTS, Implicit, 6, false},
	0x61: {OpADC, IndirectX, 6, false},
	0x62: {OpKIL, Implicit, 2, false},
	0x63: {OpRRA, IndirectX, 8, false},
	0x64: {OpNOP, ZeroPage, 3, false},
	0x65: {OpADC, ZeroPage, 3, false},
	0x66: {OpROR, ZeroPage, 5, false},
	0x67: {OpRRA, ZeroPage, 5, false},
	0x68: {OpPLA, Implicit, 4, false},
	0x69: {OpADC, Immediate, 2, false},
	0x6A: {OpROR, Accumulator, 2, false},
	0x6B: {OpARR, Immediate, 2, false},
	0x6C: {OpJMP, Indirect, 5, false},
	0x6D: {OpADC, Absolute, 4, false},
	0x6E: {OpROR, Absolute, 6, false},
	0x6F: {OpRRA, Absolute, 6, false},

	0x70: {OpBVS, Relative, 2, false},
	0x71: {OpADC, IndirectY, 5, true},
	0x72: {OpKIL, Implicit, 2, false},
	0x73: {OpRRA, IndirectY, 8, false},
	0x74: {OpNOP, ZeroPageX, 4, false},
	0x75: {OpADC, ZeroPageX, 4, false},
	0x76: {OpROR, ZeroPageX, 6, false},
	0x77: {OpRRA, ZeroPageX, 6, false},
	0x78: {OpSEI, Implicit, 2, false},
	0x79: {OpADC, AbsoluteY, 4, true},
	0x7A: {OpNOP, Implicit, 2, false},
	0x7B: {OpRRA, AbsoluteY, 7, false},
	0x7C: {OpNOP, AbsoluteX, 4, true},
	0x7D: {OpADC, AbsoluteX, 4, true},
	0x7E: {OpROR, AbsoluteX, 7, false},
	0x7F: {OpRRA, AbsoluteX, 7, false},

	0x80: {OpNOP, Immediate, 2, false},
	0x81: {OpSTA, IndirectX, 6, false},
	0x82: {OpNOP, Immediate, 2, false},
	0x83: {OpSAX, IndirectX, 6, false},
	0x84: {OpSTY, ZeroPage, 3, false},
	0x85: {OpSTA, ZeroPage, 3, false},
	0x86: {OpSTX, ZeroPage, 3, false},
	0x87: {OpSAX, ZeroPage, 3, false},
	0x88: {OpDEY, Implicit, 2, false},
	0x89: {OpNOP, Immediate, 2, false},
	0x8A: {OpTXA, Implicit, 2, false},
	0x8B: {OpXAA, Immediate, 2, false},
	0x8C: {OpSTY, Absolute, 4, false},
	0x8D: {OpSTA, Absolute, 4, false},
	0x8E: {OpSTX, Absolute, 4, false},
	0x8F: {OpSAX, Absolute, 4, false},

	0x90: {OpBCC, Relative, 2, false},
	0x91: {OpSTA, IndirectY, 6, false},
	0x92: {OpKIL, Implicit, 2, false},
	0x93: {OpAHX, IndirectY, 6, false},
	0x94: {OpSTY, ZeroPageX, 4, false},
	0x95: {OpSTA, ZeroPageX, 4, false},
	0x96: {OpSTX, ZeroPageY, 4, false},
	0x97: {OpSAX, ZeroPageY, 4, false},
	0x98: {OpTYA, Implicit, 2, false},
	0x99: {OpSTA, AbsoluteY, 5, false},
	0x9A: {OpTXS, Implicit, 2, false},
	0x9B: {OpTAS, AbsoluteY, 5, false},
	0x9C: {OpSHY, AbsoluteX, 5, false},
	0x9D: {OpSTA, AbsoluteX, 5, false},
	0x9E: {OpSHX, AbsoluteY, 5, false},
	0x9F: {OpAHX, AbsoluteY, 5, false},

	0xA0: {OpLDY, Immediate, 2, false},
	0xA1: {OpLDA, IndirectX, 6, false},
	0xA2: {OpLDX, Immediate, 2, false},
	0xA3: {OpLAX, IndirectX, 6, false},
	0xA4: {OpLDY, ZeroPage, 3, false},
	0xA5: {OpLDA, ZeroPage, 3, false},
	0xA6: {OpLDX, ZeroPage, 3, false},
	0xA7: {OpLAX, ZeroPage, 3, false},
	0xA8: {OpTAY, Implicit, 2, false},
	0xA9: {OpLDA, Immediate, 2, false},
	0xAA: {OpTAX, Implicit, 2, false},
	0xAB: {OpLAX, Immediate, 2, false},
	0xAC: {OpLDY, Absolute, 4, false},
	0xAD: {OpLDA, Absolute, 4, false},
	0xAE: {OpLDX, Absolute, 4, false},
	0xAF: {OpLAX, Absolute, 4, false},

	0xB0: {OpBCS, Relative, 2, false},
	0xB1: {OpLDA, IndirectY, 5, true},
	0xB2: {OpKIL, Implicit, 2, false},
	0xB3: {OpLAX, IndirectY, 5, true},
	0xB4: {OpLDY, ZeroPageX, 4, false},
	0xB5: {OpLDA, ZeroPageX, 4, false},
	0xB6: {OpLDX, ZeroPageY, 4, false},
	0xB7: {OpLAX, ZeroPageY, 4, false},
	0xB8: {OpCLV, Implicit, 2, false},
	0xB9: {OpLDA, AbsoluteY, 4, true},
	0xBA: {OpTSX, Implicit, 2, false},
	0xBB: {OpLAS, AbsoluteY, 4, true},
	0xBC: {OpLDY, AbsoluteX, 4, true},
	0xBD: {OpLDA, AbsoluteX, 4, true},
	0xBE: {OpLDX, AbsoluteY, 4, true},
	0xBF: {OpLAX, AbsoluteY, 4, true},

	0xC0: {OpCPY, Immediate, 2, false},
	0xC1: {OpCMP, IndirectX, 6, false},
	0xC2: {OpNOP, Immediate, 2, false},
	0xC3: {OpDCP, IndirectX, 8, false},
	0xC4: {OpCPY, ZeroPage, 3, false},
	0xC5: {OpCMP, ZeroPage, 3, false},
	0xC6: {OpDEC, ZeroPage, 5, false},
	0xC7: {OpDCP, ZeroPage, 5, false},
	0xC8: {OpINY, Implicit, 2, false},
	0xC9: {OpCMP, Immediate, 2, false},
	0xCA: {OpDEX, Implicit, 2, false},
	0xCB: {OpAXS, Immediate, 2, false},
	0xCC: {OpCPY, Absolute, 4, false},
	0xCD: {OpCMP, Absolute, 4, false},
	0xCE: {OpDEC, Absolute, 6, false},
	0xCF: {OpDCP, Absolute, 6, false},

	0xD0: {OpBNE, Relative, 2, false},
	0xD1: {OpCMP, IndirectY, 5, true},
	0xD2: {OpKIL, Implicit, 2, false},
	0xD3: {OpDCP, IndirectY, 8, false},
	0xD4: {OpNOP, ZeroPageX, 4, false},
	0xD5: {OpCMP, ZeroPageX, 4, false},
	0xD6: {OpDEC, ZeroPageX, 6, false},
	0xD7: {OpDCP, ZeroPageX, 6, false},
	0xD8: {OpCLD, Implicit, 2, false},
	0xD9: {OpCMP, AbsoluteY, 4, true},
	0xDA: {OpNOP, Implicit, 2, false},
	0xDB: {OpDCP, AbsoluteY, 7, false},
	0xDC: {OpNOP, AbsoluteX, 4, true},
	0xDD: {OpCMP, AbsoluteX, 4, true},
	0xDE: {OpDEC, AbsoluteX, 7, false},
	0xDF: {OpDCP, AbsoluteX, 7, false},

	0xE0: {OpCPX, Immediate, 2, false},
	0xE1: {OpSBC, IndirectX, 6, false},
	0xE2: {OpNOP, Immediate, 2, false},
	0xE3: {OpISC, IndirectX, 8, false},
	0xE4: {OpCPX, ZeroPage, 3, false},
	0xE5: {OpSBC, ZeroPage, 3, false},
	0xE6: {OpINC, ZeroPage, 5, false},
	0xE7: {OpISC, ZeroPage, 5, false},
	0xE8: {OpINX, Implicit, 2, false},
	0xE9: {OpSBC, Immediate, 2, false},
	0xEA: {OpNOP, Implicit, 2, false},
	0xEB: {OpSBC, Immediate, 2, false},
	0xEC: {OpCPX, Absolute, 4, false},
	0xED: {OpSBC, Absolute, 4, false},
	0xEE: {OpINC, Absolute, 6, false},
	0xEF: {OpISC, Absolute, 6, false},

	0xF0: {OpBEQ, Relative, 2, false},
	0xF1: {OpSBC, IndirectY, 5, true},
	0xF2: {OpKIL, Implicit, 2, false},
	0xF3: {OpISC, IndirectY, 8, false},
	0xF4: {OpNOP, ZeroPageX, 4, false},
	0xF5: {OpSBC, ZeroPageX, 4, false},
	0xF6: {OpINC, ZeroPageX, 6, false},
	0xF7: {OpISC, ZeroPageX, 6, false},
	0xF8: {OpSED, Implicit, 2, false},
	0xF9: {OpSBC, AbsoluteY, 4, true},
	0xFA: {OpNOP, Implicit, 2, false},
	0xFB: {OpISC, AbsoluteY, 7, false},
	0xFC: {OpNOP, AbsoluteX, 4, true},
	0xFD: {OpSBC, AbsoluteX, 4, true},
	0xFE: {OpINC, AbsoluteX, 7, false},
	0xFF: {OpISC, AbsoluteX, 7, false},
}
