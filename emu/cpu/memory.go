/*
 * px86 - Flat memory and code-relative accessors.
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

// GetMemory8 reads one byte at addr with no bounds check beyond the
// slice itself (an out-of-range addr is a host-level panic, per
// spec.md §7: "out-of-bounds memory accesses are host crashes").
func (e *Emulator) GetMemory8(addr uint32) uint8 {
	return e.mem[addr]
}

// SetMemory8 writes one byte at addr.
func (e *Emulator) SetMemory8(addr uint32, val uint8) {
	e.mem[addr] = val
}

// GetMemory32 reads a little-endian 32-bit word at addr.
func (e *Emulator) GetMemory32(addr uint32) uint32 {
	return uint32(e.mem[addr]) |
		uint32(e.mem[addr+1])<<8 |
		uint32(e.mem[addr+2])<<16 |
		uint32(e.mem[addr+3])<<24
}

// SetMemory32 writes a little-endian 32-bit word at addr.
func (e *Emulator) SetMemory32(addr uint32, val uint32) {
	e.mem[addr] = uint8(val)
	e.mem[addr+1] = uint8(val >> 8)
	e.mem[addr+2] = uint8(val >> 16)
	e.mem[addr+3] = uint8(val >> 24)
}

// GetCode8 reads one byte at offset bytes past EIP, without moving EIP.
func (e *Emulator) GetCode8(offset uint32) uint8 {
	return e.mem[e.eip+offset]
}

// GetCode32 reads a little-endian 32-bit word at offset bytes past
// EIP, without moving EIP.
func (e *Emulator) GetCode32(offset uint32) uint32 {
	return e.GetMemory32(e.eip + offset)
}

// GetSignedCode8 reads a signed byte at offset bytes past EIP.
func (e *Emulator) GetSignedCode8(offset uint32) int32 {
	return int32(int8(e.GetCode8(offset)))
}

// GetSignedCode32 reads a signed 32-bit word at offset bytes past EIP.
func (e *Emulator) GetSignedCode32(offset uint32) int32 {
	return int32(e.GetCode32(offset))
}

// Push32 decrements ESP by 4, then writes val at the new ESP.
func (e *Emulator) Push32(val uint32) {
	e.regs[ESP] -= 4
	e.SetMemory32(e.regs[ESP], val)
}

// Pop32 reads the word at ESP, then increments ESP by 4.
func (e *Emulator) Pop32() uint32 {
	val := e.GetMemory32(e.regs[ESP])
	e.regs[ESP] += 4
	return val
}

// AddSigned applies a signed displacement to an unsigned base the way
// every EIP-relative jump/call in this emulator does: subtract |s| when
// s is negative, add s otherwise. Both wrap modulo 2^32, so
// AddSigned(0, -1) is 0xFFFFFFFF.
func AddSigned(u uint32, s int32) uint32 {
	if s < 0 {
		return u - uint32(-s)
	}
	return u + uint32(s)
}
