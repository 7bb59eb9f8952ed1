/*
 * px86 - I/O port and software-interrupt instruction handlers.
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

// opInALDx implements 0xEC IN AL, DX.
func (e *Emulator) opInALDx() *StopError {
	e.eip++
	dx := uint16(e.GetRegister32(EDX) & 0xFFFF)
	var val uint8
	if e.ports != nil {
		val = e.ports.In8(dx)
	}
	e.SetRegister8(EAX, val)
	return nil
}

// opOutDxAL implements 0xEE OUT DX, AL.
func (e *Emulator) opOutDxAL() *StopError {
	e.eip++
	dx := uint16(e.GetRegister32(EDX) & 0xFFFF)
	if e.ports != nil {
		e.ports.Out8(dx, e.GetRegister8(EAX))
	}
	return nil
}

// opInt implements 0xCD INT imm8: dispatch to the host's software
// interrupt service. Unknown vectors are handled by InterruptBus
// itself (logged, non-fatal, per spec.md §7 item 5).
func (e *Emulator) opInt() *StopError {
	vector := e.GetCode8(1)
	e.eip += 2
	if e.intr != nil {
		e.intr.Int(e, vector)
	}
	return nil
}
