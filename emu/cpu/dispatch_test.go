/*
 * px86 - End-to-end dispatch scenarios.
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

const bootAddr = 0x7C00

func bootEmulator(t *testing.T, code []byte) *Emulator {
	t.Helper()
	e := New(1024*1024, bootAddr, bootAddr, nil, nil)
	if err := e.LoadImage(bootAddr, code); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	return e
}

// TestImmediateLoadAndHalt is scenario 1: MOV EAX,0x2A; RET runs into
// an unimplemented opcode, but EAX is set before that happens.
func TestImmediateLoadAndHalt(t *testing.T) {
	e := bootEmulator(t, []byte{0xB8, 0x2A, 0x00, 0x00, 0x00, 0xC3})

	if err := e.Step(); err != nil {
		t.Fatalf("MOV step: %v", err)
	}
	if got := e.GetRegister32(EAX); got != 0x2A {
		t.Fatalf("EAX = %#x, want 0x2A", got)
	}

	if err := e.Step(); err != nil {
		t.Fatalf("RET step: %v", err)
	}
	stop := e.Step()
	if stop == nil || stop.Reason != HaltUnimplementedOpcode {
		t.Fatalf("expected unimplemented-opcode halt, got %#v", stop)
	}
}

// TestAddSetsZeroFlag is scenario 2.
func TestAddSetsZeroFlag(t *testing.T) {
	e := bootEmulator(t, []byte{
		0xB8, 0x05, 0x00, 0x00, 0x00, // MOV EAX, 5
		0xBB, 0xFB, 0xFF, 0xFF, 0xFF, // MOV EBX, -5
		0x01, 0xD8, // ADD EAX, EBX
	})
	for i := 0; i < 3; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if got := e.GetRegister32(EAX); got != 0 {
		t.Fatalf("EAX = %#x, want 0", got)
	}
	if !e.CheckEFlag(FlagZero) {
		t.Fatal("ZF should be set")
	}
}

// TestConditionalJumpSkipsMov is scenario 3.
func TestConditionalJumpSkipsMov(t *testing.T) {
	e := bootEmulator(t, []byte{
		0xB8, 0x00, 0x00, 0x00, 0x00, // MOV EAX, 0
		0x3D, 0x00, 0x00, 0x00, 0x00, // CMP EAX, 0
		0x74, 0x02, // JZ +2
		0xB8, 0x01, 0x00, 0x00, 0x00, // MOV EAX, 1
	})
	for i := 0; i < 3; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if got := e.GetRegister32(EAX); got != 0 {
		t.Fatalf("EAX = %#x, want 0 (final MOV should be skipped)", got)
	}
}

// TestCallRetSettlesOnShortJump is scenario 4: CALL +2 is followed by a
// two-byte region that RET returns into, which turns out to be a
// short jump onto itself. The loop never halts on its own, so the
// test runs a bounded step budget and checks where EIP settles.
func TestCallRetSettlesOnShortJump(t *testing.T) {
	e := bootEmulator(t, []byte{
		0xE8, 0x02, 0x00, 0x00, 0x00, // CALL +2
		0xEB, 0xFE, // JMP $ (short jump onto itself)
		0xC3, // RET
	})
	for i := 0; i < 1000; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if want := uint32(bootAddr + 5); e.EIP() != want {
		t.Fatalf("EIP settled at %#x, want %#x", e.EIP(), want)
	}
}

// TestPushPopRoundTripProgram is scenario 5.
func TestPushPopRoundTripProgram(t *testing.T) {
	e := bootEmulator(t, []byte{
		0xB8, 0xCD, 0xAB, 0x00, 0x00, // MOV EAX, 0xABCD
		0x50, // PUSH EAX
		0x58, // POP EAX
	})
	initialESP := e.GetRegister32(ESP)
	for i := 0; i < 3; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if got := e.GetRegister32(EAX); got != 0xABCD {
		t.Fatalf("EAX = %#x, want 0xABCD", got)
	}
	if got := e.GetRegister32(ESP); got != initialESP {
		t.Fatalf("ESP = %#x, want %#x", got, initialESP)
	}
}

// TestIncDoesNotTouchFlags covers open question 4: INC leaves EFLAGS
// alone, unlike ADD/SUB/CMP.
func TestIncDoesNotTouchFlags(t *testing.T) {
	e := bootEmulator(t, []byte{
		0xB8, 0xFF, 0xFF, 0xFF, 0xFF, // MOV EAX, -1
		0x3D, 0x00, 0x00, 0x00, 0x00, // CMP EAX, 0 (sets flags)
		0x40, // INC EAX -> EAX becomes 0, but flags must not change
	})
	for i := 0; i < 3; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if got := e.GetRegister32(EAX); got != 0 {
		t.Fatalf("EAX = %#x, want 0", got)
	}
	if e.CheckEFlag(FlagZero) {
		t.Fatal("INC must not set ZF even though the result is zero")
	}
}

// TestGroupExtensionFatal covers error case 3: a decoded-but-unhandled
// opcode extension is fatal, distinct from an unknown opcode byte.
func TestGroupExtensionFatal(t *testing.T) {
	// 0x83 /1 (OR r/m32, imm8) is not implemented: mod=3 (11), reg=1, rm=0 (EAX) = 0xC8.
	e := bootEmulator(t, []byte{0x83, 0xC8, 0x01})
	stop := e.Step()
	if stop == nil || !stop.Fatal() {
		t.Fatalf("expected a fatal halt, got %#v", stop)
	}
	if stop.Reason != HaltFatal {
		t.Fatalf("Reason = %v, want HaltFatal", stop.Reason)
	}
}
