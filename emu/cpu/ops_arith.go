/*
 * px86 - ADD/SUB/CMP/INC instruction handlers.
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

// opAddRm32R32 implements 0x01 ADD r/m32, r32. Flags are set through
// UpdateEFlagsSub, per the reference's bug-compatible add/sub flag
// conflation (spec.md §4.5, §9 open question 1).
func (e *Emulator) opAddRm32R32() *StopError {
	e.eip++
	m := e.ParseModRM()
	r32 := e.GetR32(m)
	rm32 := e.GetRM32(m)
	res := uint64(rm32) + uint64(r32)
	e.SetRM32(m, uint32(res))
	e.UpdateEFlagsSub(rm32, r32, res)
	return nil
}

// opCmpR32Rm32 implements 0x3B CMP r32, r/m32: flags from r32 - r/m32.
func (e *Emulator) opCmpR32Rm32() *StopError {
	e.eip++
	m := e.ParseModRM()
	r32 := e.GetR32(m)
	rm32 := e.GetRM32(m)
	e.UpdateEFlagsSub(r32, rm32, uint64(r32)-uint64(rm32))
	return nil
}

// opCmpALImm8 implements 0x3C CMP AL, imm8.
func (e *Emulator) opCmpALImm8() *StopError {
	al := uint32(e.GetRegister8(EAX))
	imm := uint32(e.GetCode8(1))
	e.eip += 2
	e.UpdateEFlagsSub(al, imm, uint64(al)-uint64(imm))
	return nil
}

// opCmpEAXImm32 implements 0x3D CMP EAX, imm32.
func (e *Emulator) opCmpEAXImm32() *StopError {
	eax := e.GetRegister32(EAX)
	imm := e.GetCode32(1)
	e.eip += 5
	e.UpdateEFlagsSub(eax, imm, uint64(eax)-uint64(imm))
	return nil
}

// opIncR32 implements 0x40-0x47 INC r32. The reference does not
// update flags here (spec.md §9 open question 4); reproduced as-is.
func (e *Emulator) opIncR32() *StopError {
	reg := e.GetCode8(0) - 0x40
	e.SetRegister32(reg, e.GetRegister32(reg)+1)
	e.eip++
	return nil
}

// opGroup83 implements 0x83 /0, /5, /7: ADD/SUB/CMP r/m32, imm8, with
// imm8 sign-extended to 32 bits. Any other /digit is fatal (spec.md §7
// item 3).
func (e *Emulator) opGroup83() *StopError {
	e.eip++
	m := e.ParseModRM()
	imm := uint32(e.GetSignedCode8(0))
	e.eip++

	rm32 := e.GetRM32(m)
	switch m.AsOpcodeExt() {
	case 0:
		res := uint64(rm32) + uint64(imm)
		e.SetRM32(m, uint32(res))
		e.UpdateEFlagsSub(rm32, imm, res)
	case 5:
		res := uint64(rm32) - uint64(imm)
		e.SetRM32(m, uint32(res))
		e.UpdateEFlagsSub(rm32, imm, res)
	case 7:
		e.UpdateEFlagsSub(rm32, imm, uint64(rm32)-uint64(imm))
	default:
		return groupFatal(0x83, m.AsOpcodeExt())
	}
	return nil
}

// opGroupFF implements 0xFF /0 INC r/m32. No flag update, matching
// opIncR32. Any other /digit is fatal.
func (e *Emulator) opGroupFF() *StopError {
	e.eip++
	m := e.ParseModRM()
	if m.AsOpcodeExt() != 0 {
		return groupFatal(0xFF, m.AsOpcodeExt())
	}
	e.SetRM32(m, e.GetRM32(m)+1)
	return nil
}
