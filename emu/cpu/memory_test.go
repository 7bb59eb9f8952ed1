/*
 * px86 - Flat memory accessor tests.
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

import "testing"

func TestMemory32LittleEndian(t *testing.T) {
	e := newTestEmulator()
	e.SetMemory32(0x10, 0x01020304)
	if got := e.GetMemory8(0x10); got != 0x04 {
		t.Fatalf("byte 0 = %#x, want 0x04", got)
	}
	if got := e.GetMemory8(0x13); got != 0x01 {
		t.Fatalf("byte 3 = %#x, want 0x01", got)
	}
	if got := e.GetMemory32(0x10); got != 0x01020304 {
		t.Fatalf("GetMemory32 = %#x, want 0x01020304", got)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	e := newTestEmulator()
	esp := e.GetRegister32(ESP)

	e.Push32(0xcafef00d)
	if e.GetRegister32(ESP) != esp-4 {
		t.Fatalf("ESP after push = %#x, want %#x", e.GetRegister32(ESP), esp-4)
	}

	got := e.Pop32()
	if got != 0xcafef00d {
		t.Fatalf("Pop32 = %#x, want 0xcafef00d", got)
	}
	if e.GetRegister32(ESP) != esp {
		t.Fatalf("ESP after pop = %#x, want %#x", e.GetRegister32(ESP), esp)
	}
}

func TestGetSignedCode(t *testing.T) {
	e := newTestEmulator()
	e.SetMemory8(e.eip, 0xfe) // -2 as int8
	if got := e.GetSignedCode8(0); got != -2 {
		t.Fatalf("GetSignedCode8 = %d, want -2", got)
	}

	e.SetMemory32(e.eip+1, 0xFFFFFFFB) // -5 as int32
	if got := e.GetSignedCode32(1); got != -5 {
		t.Fatalf("GetSignedCode32 = %d, want -5", got)
	}
}
