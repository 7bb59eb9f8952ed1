/*
 * px86 - Register and EFLAGS tests.
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

func newTestEmulator() *Emulator {
	return New(4096, 0x100, 0xf00, nil, nil)
}

func TestRegister32RoundTrip(t *testing.T) {
	e := newTestEmulator()
	e.SetRegister32(EBX, 0xdeadbeef)
	if got := e.GetRegister32(EBX); got != 0xdeadbeef {
		t.Fatalf("GetRegister32(EBX) = %#x, want 0xdeadbeef", got)
	}
}

func TestRegister8Aliasing(t *testing.T) {
	e := newTestEmulator()
	e.SetRegister32(EAX, 0x11223344)

	if got := e.GetRegister8(EAX); got != 0x44 {
		t.Fatalf("AL = %#x, want 0x44", got)
	}
	if got := e.GetRegister8(EAX + 4); got != 0x33 {
		t.Fatalf("AH = %#x, want 0x33", got)
	}

	e.SetRegister8(EAX, 0xff)
	if got := e.GetRegister32(EAX); got != 0x112233ff {
		t.Fatalf("EAX after SetRegister8(AL) = %#x, want 0x112233ff", got)
	}

	e.SetRegister8(EAX+4, 0xaa)
	if got := e.GetRegister32(EAX); got != 0x1122aaff {
		t.Fatalf("EAX after SetRegister8(AH) = %#x, want 0x1122aaff", got)
	}
}

func TestUpdateEFlagsSubZeroIgnoresCarry(t *testing.T) {
	e := newTestEmulator()
	// res has bit 32 set (a carry out) but the low 32 bits are zero:
	// ZF must still be set.
	e.UpdateEFlagsSub(1, 1, 1<<32)
	if !e.CheckEFlag(FlagZero) {
		t.Fatal("ZF should be set when low 32 bits of res are zero, even with a carry")
	}
	if !e.CheckEFlag(FlagCarry) {
		t.Fatal("CF should be set when bit 32 of res is set")
	}
}

func TestUpdateEFlagsSubOverflow(t *testing.T) {
	e := newTestEmulator()
	// 0x80000000 - 1 signed-overflows into a positive result.
	v1 := uint32(0x80000000)
	v2 := uint32(1)
	res := uint64(v1) - uint64(v2)
	e.UpdateEFlagsSub(v1, v2, res)
	if !e.CheckEFlag(FlagOverflow) {
		t.Fatal("OF should be set on signed overflow")
	}
	if e.CheckEFlag(FlagSign) {
		t.Fatal("SF should be clear: result is 0x7fffffff")
	}
	if e.CheckEFlag(FlagCarry) {
		t.Fatal("CF should be clear: no borrow out of bit 31")
	}
}

func TestAddSigned(t *testing.T) {
	cases := []struct {
		u    uint32
		s    int32
		want uint32
	}{
		{0x1000, 5, 0x1005},
		{0x1000, -5, 0xFFB},
		{0, -1, 0xFFFFFFFF},
	}
	for _, c := range cases {
		if got := AddSigned(c.u, c.s); got != c.want {
			t.Errorf("AddSigned(%#x, %d) = %#x, want %#x", c.u, c.s, got, c.want)
		}
	}
}
