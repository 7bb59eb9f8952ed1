/*
 * px86 - Stack and call/return instruction handlers.
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

// opPushR32 implements 0x50-0x57 PUSH r32.
func (e *Emulator) opPushR32() *StopError {
	reg := e.GetCode8(0) - 0x50
	e.Push32(e.GetRegister32(reg))
	e.eip++
	return nil
}

// opPopR32 implements 0x58-0x5F POP r32.
func (e *Emulator) opPopR32() *StopError {
	reg := e.GetCode8(0) - 0x58
	e.eip++
	e.SetRegister32(reg, e.Pop32())
	return nil
}

// opPushImm32 implements 0x68 PUSH imm32.
func (e *Emulator) opPushImm32() *StopError {
	imm := e.GetCode32(1)
	e.eip += 5
	e.Push32(imm)
	return nil
}

// opPushImm8 implements 0x6A PUSH imm8 (zero-extended).
func (e *Emulator) opPushImm8() *StopError {
	imm := uint32(e.GetCode8(1))
	e.eip += 2
	e.Push32(imm)
	return nil
}

// opCallRel32 implements 0xE8 CALL rel32: the return address pushed is
// the address right after this 5-byte instruction.
func (e *Emulator) opCallRel32() *StopError {
	rel := e.GetSignedCode32(1)
	retAddr := e.eip + 5
	e.Push32(retAddr)
	e.eip = AddSigned(retAddr, rel)
	return nil
}

// opRet implements 0xC3 RET: EIP is replaced wholesale by the popped
// address, with no further advance.
func (e *Emulator) opRet() *StopError {
	e.eip = e.Pop32()
	return nil
}

// opLeave implements 0xC9 LEAVE.
func (e *Emulator) opLeave() *StopError {
	e.regs[ESP] = e.regs[EBP]
	e.regs[EBP] = e.Pop32()
	e.eip++
	return nil
}
