/*
 * px86 - CPU state and top level emulator loop.
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

// Package cpu implements the decode-dispatch-execute loop for a minimal
// 32-bit x86 subset: flat memory, eight general registers, four EFLAGS
// bits, ModR/M addressing, and the opcode handlers listed in the
// instruction set table.
package cpu

import "fmt"

// Register indices, in the canonical x86 order.
const (
	EAX = iota
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	numRegisters
)

// EFLAGS bit positions. Only these four are modeled.
const (
	FlagCarry    uint32 = 1 << 0
	FlagZero     uint32 = 1 << 6
	FlagSign     uint32 = 1 << 7
	FlagOverflow uint32 = 1 << 11
)

// DefaultLoadAddr is the conventional boot-sector load address and the
// default entry EIP / initial ESP.
const DefaultLoadAddr = 0x7C00

// DefaultMemSize is the reference emulator's default flat address space.
const DefaultMemSize = 1024 * 1024

// PortBus is the host service an IN/OUT instruction talks to.
// Implementations are swapped out in tests.
type PortBus interface {
	In8(port uint16) uint8
	Out8(port uint16, value uint8)
}

// InterruptBus is the host service an INT instruction talks to.
type InterruptBus interface {
	Int(e *Emulator, vector uint8)
}

// HaltReason explains why the dispatch loop stopped.
type HaltReason int

const (
	// HaltReturnToZero is the normal termination predicate: EIP became 0.
	HaltReturnToZero HaltReason = iota
	// HaltOutOfBounds means EIP ran off the end of memory.
	HaltOutOfBounds
	// HaltUnimplementedOpcode means the dispatch table had no handler
	// for the fetched byte. Not fatal: the loop stops with exit 0.
	HaltUnimplementedOpcode
	// HaltFatal means a decoded-but-unhandled opcode extension or
	// ModR/M case was hit. Fatal: the caller should exit 1.
	HaltFatal
)

// StopError is returned by Run/Step when the dispatch loop halts.
type StopError struct {
	Reason HaltReason
	Opcode uint8
	Msg    string
}

func (e *StopError) Error() string {
	return e.Msg
}

// Fatal reports whether this halt should exit the host process with a
// non-zero status, per the error handling design in spec.md §7.
func (e *StopError) Fatal() bool {
	return e.Reason == HaltFatal
}

// Emulator is the whole machine: registers, flags, flat memory, and the
// opcode dispatch table. It is constructed once and run to completion.
type Emulator struct {
	regs   [numRegisters]uint32
	eflags uint32
	mem    []uint8
	eip    uint32

	ports PortBus
	intr  InterruptBus

	table [256]func(*Emulator) *StopError
}

// New builds an emulator with a memSize-byte flat address space, entry
// point eip, and initial stack pointer esp. ports and intr may be nil;
// IN/OUT and INT then behave as no-ops (ports: out discarded, in 0;
// INT: ignored without logging) rather than panicking.
func New(memSize int, eip, esp uint32, ports PortBus, intr InterruptBus) *Emulator {
	e := &Emulator{
		mem:   make([]uint8, memSize),
		eip:   eip,
		ports: ports,
		intr:  intr,
	}
	e.regs[ESP] = esp
	e.buildDispatchTable()
	return e
}

// LoadImage copies a raw byte stream verbatim into memory starting at
// addr, with no header and no relocation.
func (e *Emulator) LoadImage(addr uint32, image []byte) error {
	if int(addr)+len(image) > len(e.mem) {
		return fmt.Errorf("image of %d bytes at 0x%x does not fit in %d bytes of memory", len(image), addr, len(e.mem))
	}
	copy(e.mem[addr:], image)
	return nil
}

// EIP returns the current instruction pointer.
func (e *Emulator) EIP() uint32 {
	return e.eip
}

// MemSize returns the size of the flat address space in bytes.
func (e *Emulator) MemSize() int {
	return len(e.mem)
}

// Step fetches and executes exactly one instruction, returning a
// *StopError when the loop should halt.
func (e *Emulator) Step() *StopError {
	if e.eip >= uint32(len(e.mem)) {
		return &StopError{Reason: HaltOutOfBounds, Msg: fmt.Sprintf("EIP 0x%x out of bounds", e.eip)}
	}

	op := e.mem[e.eip]
	handler := e.table[op]
	if handler == nil {
		return &StopError{
			Reason: HaltUnimplementedOpcode,
			Opcode: op,
			Msg:    fmt.Sprintf("Not Implemented Instruction: 0x%x", op),
		}
	}

	if err := handler(e); err != nil {
		return err
	}

	if e.eip == 0 {
		return &StopError{Reason: HaltReturnToZero, Msg: "program returned to address zero"}
	}
	if e.eip >= uint32(len(e.mem)) {
		return &StopError{Reason: HaltOutOfBounds, Msg: fmt.Sprintf("EIP 0x%x out of bounds", e.eip)}
	}
	return nil
}

// Trace is invoked before every step when the caller wants the
// "EIP: 0x..., ESP: 0x..., Code: 0x.." progress line from spec.md §6.
type Trace func(eip, esp uint32, code uint8)

// Run executes instructions until Step returns a *StopError. trace may
// be nil.
func (e *Emulator) Run(trace Trace) *StopError {
	for {
		if e.eip < uint32(len(e.mem)) && trace != nil {
			trace(e.eip, e.regs[ESP], e.mem[e.eip])
		}
		if err := e.Step(); err != nil {
			return err
		}
	}
}
