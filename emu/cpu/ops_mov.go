/*
 * px86 - MOV instruction handlers.
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

// opMovRm8R8 implements 0x88 MOV r/m8, r8.
func (e *Emulator) opMovRm8R8() *StopError {
	e.eip++
	m := e.ParseModRM()
	e.SetRM8(m, e.GetR8(m))
	return nil
}

// opMovRm32R32 implements 0x89 MOV r/m32, r32.
func (e *Emulator) opMovRm32R32() *StopError {
	e.eip++
	m := e.ParseModRM()
	e.SetRM32(m, e.GetR32(m))
	return nil
}

// opMovR8Rm8 implements 0x8A MOV r8, r/m8.
func (e *Emulator) opMovR8Rm8() *StopError {
	e.eip++
	m := e.ParseModRM()
	e.SetR8(m, e.GetRM8(m))
	return nil
}

// opMovR32Rm32 implements 0x8B MOV r32, r/m32.
func (e *Emulator) opMovR32Rm32() *StopError {
	e.eip++
	m := e.ParseModRM()
	e.SetR32(m, e.GetRM32(m))
	return nil
}

// opMovR8Imm8 implements 0xB0-0xB7 MOV r8, imm8. The byte-aliasing
// rule applies directly: register index is op-0xB0.
func (e *Emulator) opMovR8Imm8() *StopError {
	reg := e.GetCode8(0) - 0xB0
	imm := e.GetCode8(1)
	e.SetRegister8(reg, imm)
	e.eip += 2
	return nil
}

// opMovR32Imm32 implements 0xB8-0xBF MOV r32, imm32.
func (e *Emulator) opMovR32Imm32() *StopError {
	reg := e.GetCode8(0) - 0xB8
	imm := e.GetCode32(1)
	e.SetRegister32(reg, imm)
	e.eip += 5
	return nil
}

// opGroupC7 implements 0xC7 /0 MOV r/m32, imm32. Any other /digit is
// an unimplemented opcode extension: fatal per spec.md §7 item 3.
func (e *Emulator) opGroupC7() *StopError {
	e.eip++
	m := e.ParseModRM()
	if m.AsOpcodeExt() != 0 {
		return groupFatal(0xC7, m.AsOpcodeExt())
	}
	imm := e.GetCode32(0)
	e.eip += 4
	e.SetRM32(m, imm)
	return nil
}
