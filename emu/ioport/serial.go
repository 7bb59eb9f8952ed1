/*
 * px86 - Serial port host service (I/O port 0x3F8).
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

// Package ioport implements the emulator's single I/O port host
// service: a byte-level serial line on port 0x3F8. Every other port is
// a no-op on write and reads as zero, per spec.md §6.
package ioport

import (
	"bufio"
	"io"
)

const serialPort = 0x3F8

// Serial wires IN/OUT on port 0x3F8 to host stdin/stdout. It implements
// cpu.PortBus. In and Out are swappable in tests by constructing a
// Serial over in-memory readers/writers instead of the real console.
type Serial struct {
	in  *bufio.Reader
	out io.Writer
}

// New builds a Serial device reading from in and writing (with a flush
// after every byte) to out.
func New(in io.Reader, out io.Writer) *Serial {
	return &Serial{in: bufio.NewReader(in), out: out}
}

// In8 implements cpu.PortBus. Port 0x3F8 blocks for one byte from the
// host's input stream; every other port reads as zero.
func (s *Serial) In8(port uint16) uint8 {
	if port != serialPort {
		return 0
	}
	b, err := s.in.ReadByte()
	if err != nil {
		return 0
	}
	return b
}

// Out8 implements cpu.PortBus. Port 0x3F8 writes one byte to the host's
// output stream and flushes synchronously; every other port is a
// no-op.
func (s *Serial) Out8(port uint16, value uint8) {
	if port != serialPort {
		return
	}
	_, _ = s.out.Write([]byte{value})
	if f, ok := s.out.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
