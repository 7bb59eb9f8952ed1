/*
 * px86 - ModR/M decoding and effective-address calculation.
 *
 * Copyright 2026, px86 contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package cpu

// ModRM is the decoded form of a ModR/M byte plus its optional SIB and
// displacement. Mid is a discriminated view of the same three bits:
// callers read it with AsRegIndex or AsOpcodeExt depending on which
// the parent opcode expects — there is no overlay, just two readers
// over one field.
type ModRM struct {
	Mod    uint8
	Mid    uint8
	Rm     uint8
	Sib    uint8
	hasSib bool
	Disp   int32
}

// AsRegIndex interprets Mid as a register index (MOV, ADD, CMP r32/r8
// opcodes).
func (m *ModRM) AsRegIndex() uint8 {
	return m.Mid
}

// AsOpcodeExt interprets Mid as an opcode extension (the /digit in
// "0x83 /5").
func (m *ModRM) AsOpcodeExt() uint8 {
	return m.Mid
}

// ParseModRM reads the ModR/M byte at EIP, plus any SIB and
// displacement bytes it implies, advancing EIP past all of them.
func (e *Emulator) ParseModRM() *ModRM {
	code := e.GetCode8(0)
	m := &ModRM{
		Mod: (code & 0xc0) >> 6,
		Mid: (code & 0x38) >> 3,
		Rm:  code & 0x07,
	}
	e.eip++

	if m.Mod != 3 && m.Rm == 4 {
		m.Sib = e.GetCode8(0)
		m.hasSib = true
		e.eip++
	}

	switch {
	case (m.Mod == 0 && m.Rm == 5) || m.Mod == 2:
		m.Disp = e.GetSignedCode32(0)
		e.eip += 4
	case m.Mod == 1:
		m.Disp = e.GetSignedCode8(0)
		e.eip++
	}
	return m
}

// CalcEA computes the effective address of a memory operand. It must
// not be called when Mod == 3 (no memory operand in that case).
func (e *Emulator) CalcEA(m *ModRM) uint32 {
	switch m.Mod {
	case 0:
		if m.Rm == 5 {
			return uint32(m.Disp)
		}
		return e.GetRegister32(m.Rm)
	case 1:
		return AddSigned(e.GetRegister32(m.Rm), m.Disp)
	case 2:
		return e.GetRegister32(m.Rm) + uint32(m.Disp)
	default:
		// Unreachable when callers respect Mod == 3 meaning "register
		// operand" and never route it through CalcEA.
		return 0
	}
}

// GetRM32 reads a 32-bit r/m operand: a register when Mod == 3,
// otherwise the memory word at CalcEA(m).
func (e *Emulator) GetRM32(m *ModRM) uint32 {
	if m.Mod == 3 {
		return e.GetRegister32(m.Rm)
	}
	return e.GetMemory32(e.CalcEA(m))
}

// SetRM32 writes a 32-bit r/m operand.
func (e *Emulator) SetRM32(m *ModRM, val uint32) {
	if m.Mod == 3 {
		e.SetRegister32(m.Rm, val)
	} else {
		e.SetMemory32(e.CalcEA(m), val)
	}
}

// GetRM8 reads an 8-bit r/m operand.
func (e *Emulator) GetRM8(m *ModRM) uint8 {
	if m.Mod == 3 {
		return e.GetRegister8(m.Rm)
	}
	return e.GetMemory8(e.CalcEA(m))
}

// SetRM8 writes an 8-bit r/m operand.
func (e *Emulator) SetRM8(m *ModRM, val uint8) {
	if m.Mod == 3 {
		e.SetRegister8(m.Rm, val)
	} else {
		e.SetMemory8(e.CalcEA(m), val)
	}
}

// GetR32 reads the register operand named by Mid.
func (e *Emulator) GetR32(m *ModRM) uint32 {
	return e.GetRegister32(m.AsRegIndex())
}

// SetR32 writes the register operand named by Mid.
func (e *Emulator) SetR32(m *ModRM, val uint32) {
	e.SetRegister32(m.AsRegIndex(), val)
}

// GetR8 reads the byte-register operand named by Mid.
func (e *Emulator) GetR8(m *ModRM) uint8 {
	return e.GetRegister8(m.AsRegIndex())
}

// SetR8 writes the byte-register operand named by Mid.
func (e *Emulator) SetR8(m *ModRM, val uint8) {
	e.SetRegister8(m.AsRegIndex(), val)
}
