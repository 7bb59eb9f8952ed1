/*
 * px86 - Unconditional and conditional jump instruction handlers.
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

// opJmpRel32 implements 0xE9 JMP rel32.
func (e *Emulator) opJmpRel32() *StopError {
	rel := e.GetSignedCode32(1)
	e.eip = AddSigned(e.eip+5, rel)
	return nil
}

// opJmpRel8 implements 0xEB JMP rel8.
func (e *Emulator) opJmpRel8() *StopError {
	rel := e.GetSignedCode8(1)
	e.eip = AddSigned(e.eip+2, rel)
	return nil
}

// cond identifies one of the Jcc predicates in spec.md §4.3.
type cond int

const (
	condOverflow cond = iota
	condCarry
	condZero
	condSign
	condLess
	condLessOrEqual
)

func (e *Emulator) condTaken(c cond) bool {
	switch c {
	case condOverflow:
		return e.CheckEFlag(FlagOverflow)
	case condCarry:
		return e.CheckEFlag(FlagCarry)
	case condZero:
		return e.CheckEFlag(FlagZero)
	case condSign:
		return e.CheckEFlag(FlagSign)
	case condLess:
		return e.CheckEFlag(FlagSign) != e.CheckEFlag(FlagOverflow)
	case condLessOrEqual:
		return e.CheckEFlag(FlagZero) || (e.CheckEFlag(FlagSign) != e.CheckEFlag(FlagOverflow))
	default:
		return false
	}
}

// jccHandler builds a Jcc rel8 handler. want is the flag-test outcome
// that makes the branch taken: true for JO/JC/JZ/JS/JL/JLE, false for
// the negated forms JNO/JNC/JNZ/JNS.
func jccHandler(c cond, want bool) func(*Emulator) *StopError {
	return func(e *Emulator) *StopError {
		rel := e.GetSignedCode8(1)
		taken := e.condTaken(c) == want
		if taken {
			e.eip = AddSigned(e.eip+2, rel)
		} else {
			e.eip += 2
		}
		return nil
	}
}
