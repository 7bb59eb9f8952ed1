/*
 * px86 - Opcode dispatch table.
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

// buildDispatchTable fills the 256-entry opcode table. An unfilled
// slot is the termination signal handled by Step.
func (e *Emulator) buildDispatchTable() {
	t := &e.table

	t[0x01] = (*Emulator).opAddRm32R32
	t[0x3B] = (*Emulator).opCmpR32Rm32
	t[0x3C] = (*Emulator).opCmpALImm8
	t[0x3D] = (*Emulator).opCmpEAXImm32

	for op := uint8(0x40); op <= 0x47; op++ {
		t[op] = (*Emulator).opIncR32
	}
	for op := uint8(0x50); op <= 0x57; op++ {
		t[op] = (*Emulator).opPushR32
	}
	for op := uint8(0x58); op <= 0x5F; op++ {
		t[op] = (*Emulator).opPopR32
	}

	t[0x68] = (*Emulator).opPushImm32
	t[0x6A] = (*Emulator).opPushImm8

	t[0x70] = jccHandler(condOverflow, true)
	t[0x71] = jccHandler(condOverflow, false)
	t[0x72] = jccHandler(condCarry, true)
	t[0x73] = jccHandler(condCarry, false)
	t[0x74] = jccHandler(condZero, true)
	t[0x75] = jccHandler(condZero, false)
	t[0x78] = jccHandler(condSign, true)
	t[0x79] = jccHandler(condSign, false)
	t[0x7C] = jccHandler(condLess, true)
	t[0x7E] = jccHandler(condLessOrEqual, true)

	t[0x83] = (*Emulator).opGroup83
	t[0x88] = (*Emulator).opMovRm8R8
	t[0x89] = (*Emulator).opMovRm32R32
	t[0x8A] = (*Emulator).opMovR8Rm8
	t[0x8B] = (*Emulator).opMovR32Rm32

	for op := uint8(0xB0); op <= 0xB7; op++ {
		t[op] = (*Emulator).opMovR8Imm8
	}
	for op := uint8(0xB8); op <= 0xBF; op++ {
		t[op] = (*Emulator).opMovR32Imm32
	}

	t[0xC3] = (*Emulator).opRet
	t[0xC7] = (*Emulator).opGroupC7
	t[0xC9] = (*Emulator).opLeave
	t[0xCD] = (*Emulator).opInt
	t[0xE8] = (*Emulator).opCallRel32
	t[0xE9] = (*Emulator).opJmpRel32
	t[0xEB] = (*Emulator).opJmpRel8
	t[0xEC] = (*Emulator).opInALDx
	t[0xEE] = (*Emulator).opOutDxAL
	t[0xFF] = (*Emulator).opGroupFF
}
