/*
 * px86 - Interactive command monitor.
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

// Package command implements the -i/--interactive line-edited monitor:
// a liner.NewLiner-backed px86> prompt with history and command
// completion over regs, mem, step, run, break and quit.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"px86/emu/cpu"
	"px86/util/hex"
)

var commandNames = []string{"regs", "mem", "step", "run", "break", "quit", "help"}

// registerNames is the canonical x86 register order, matching
// cpu.EAX..cpu.EDI.
var registerNames = []string{"EAX", "ECX", "EDX", "EBX", "ESP", "EBP", "ESI", "EDI"}

// Run starts the REPL over e, tracing each step through trace when not
// nil (the same hook cpu.Emulator.Run uses for free-running mode).
func Run(e *cpu.Emulator, trace cpu.Trace) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completeCmd)

	m := &monitor{e: e, trace: trace, breakpoint: -1}

	for {
		text, err := line.Prompt("px86> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}
			return err
		}
		line.AppendHistory(text)

		quit, err := m.dispatch(text)
		if err != nil {
			fmt.Println("error: " + err.Error())
		}
		if quit {
			return nil
		}
	}
}

func completeCmd(line string) []string {
	var out []string
	for _, c := range commandNames {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}

type monitor struct {
	e          *cpu.Emulator
	trace      cpu.Trace
	breakpoint int64
}

func (m *monitor) dispatch(text string) (bool, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "regs":
		m.printRegs()
	case "mem":
		return false, m.dumpMem(fields[1:])
	case "step":
		return false, m.step(fields[1:])
	case "run":
		return false, m.run()
	case "break":
		return false, m.setBreak(fields[1:])
	case "help":
		m.printHelp()
	case "quit", "q":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q", fields[0])
	}
	return false, nil
}

func (m *monitor) printHelp() {
	fmt.Println("commands: regs | mem <addr> [len] | step [n] | run | break <addr> | quit")
}

func (m *monitor) printRegs() {
	var b strings.Builder
	for i, name := range registerNames {
		fmt.Fprintf(&b, "%s=", name)
		hex.FormatWord(&b, []uint32{m.e.GetRegister32(uint8(i))})
	}
	fmt.Printf("%sEIP=%08X\n", b.String(), m.e.EIP())
}

func (m *monitor) dumpMem(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: mem <addr> [len]")
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 32)
	if err != nil {
		return fmt.Errorf("bad address %q: %w", args[0], err)
	}
	length := uint64(16)
	if len(args) > 1 {
		length, err = strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("bad length %q: %w", args[1], err)
		}
	}
	if int(addr+length) > m.e.MemSize() {
		return fmt.Errorf("range 0x%x+%d exceeds memory size %d", addr, length, m.e.MemSize())
	}
	data := make([]byte, length)
	for i := range data {
		data[i] = m.e.GetMemory8(uint32(addr) + uint32(i))
	}
	fmt.Print(hex.DumpMemory(data, 16))
	return nil
}

func (m *monitor) step(args []string) error {
	n := uint64(1)
	if len(args) > 0 {
		var err error
		n, err = strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("bad step count %q: %w", args[0], err)
		}
	}
	for i := uint64(0); i < n; i++ {
		if m.trace != nil && int(m.e.EIP()) < m.e.MemSize() {
			m.trace(m.e.EIP(), m.e.GetRegister32(cpu.ESP), m.e.GetMemory8(m.e.EIP()))
		}
		if err := m.e.Step(); err != nil {
			fmt.Println("halted: " + err.Error())
			return nil
		}
	}
	return nil
}

func (m *monitor) run() error {
	for {
		if m.breakpoint >= 0 && int64(m.e.EIP()) == m.breakpoint {
			fmt.Printf("breakpoint hit at 0x%x\n", m.e.EIP())
			return nil
		}
		if m.trace != nil && int(m.e.EIP()) < m.e.MemSize() {
			m.trace(m.e.EIP(), m.e.GetRegister32(cpu.ESP), m.e.GetMemory8(m.e.EIP()))
		}
		if err := m.e.Step(); err != nil {
			fmt.Println("halted: " + err.Error())
			return nil
		}
	}
}

func (m *monitor) setBreak(args []string) error {
	if len(args) == 0 {
		m.breakpoint = -1
		return nil
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 32)
	if err != nil {
		return fmt.Errorf("bad address %q: %w", args[0], err)
	}
	m.breakpoint = int64(addr)
	return nil
}
