/*
 * px86 - Register file and EFLAGS.
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

// GetRegister32 returns the 32-bit value of register i (0..7).
func (e *Emulator) GetRegister32(i uint8) uint32 {
	return e.regs[i]
}

// SetRegister32 sets register i (0..7) to val.
func (e *Emulator) SetRegister32(i uint8, val uint32) {
	e.regs[i] = val
}

// GetRegister8 returns a byte-aliased view of the register file. i in
// 0..4 selects the low byte of register i (AL/CL/DL/BL); i in 4..8
// selects bits 8-15 of register i-4 (AH/CH/DH/BH).
func (e *Emulator) GetRegister8(i uint8) uint8 {
	if i < 4 {
		return uint8(e.regs[i])
	}
	return uint8(e.regs[i-4] >> 8)
}

// SetRegister8 writes a byte-aliased view of the register file,
// preserving the other 24 bits of the parent register. See
// GetRegister8 for the index convention.
func (e *Emulator) SetRegister8(i uint8, val uint8) {
	if i < 4 {
		e.regs[i] = (e.regs[i] &^ 0xff) | uint32(val)
	} else {
		e.regs[i-4] = (e.regs[i-4] &^ 0xff00) | (uint32(val) << 8)
	}
}

// CheckEFlag reports whether flag (one of FlagCarry/Zero/Sign/Overflow)
// is set.
func (e *Emulator) CheckEFlag(flag uint32) bool {
	return e.eflags&flag != 0
}

func (e *Emulator) setEFlag(flag uint32, set bool) {
	if set {
		e.eflags |= flag
	} else {
		e.eflags &^= flag
	}
}

// UpdateEFlagsSub sets CF/ZF/SF/OF from a 64-bit holding register that
// already contains the result of a subtract (or, per the reference's
// known add/sub conflation, an add). v1 and v2 are the 32-bit operands
// the result was computed from.
//
//	CF <- bit 32 of res
//	ZF <- low 32 bits of res are zero
//	SF <- bit 31 of res
//	OF <- sign(v1) != sign(v2) && sign(v1) != SF
func (e *Emulator) UpdateEFlagsSub(v1, v2 uint32, res uint64) {
	sign1 := v1 >> 31
	sign2 := v2 >> 31
	signRes := uint32(res>>31) & 1

	e.setEFlag(FlagCarry, (res>>32) != 0)
	e.setEFlag(FlagZero, (res&0xFFFFFFFF) == 0)
	e.setEFlag(FlagSign, signRes != 0)
	e.setEFlag(FlagOverflow, sign1 != sign2 && sign1 != signRes)
}
