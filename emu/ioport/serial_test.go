/*
 * px86 - Serial port host service tests.
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

package ioport

import (
	"bytes"
	"strings"
	"testing"
)

func TestOut8WritesToSerialPortOnly(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader(""), &out)

	s.Out8(0x3F8, 'A')
	s.Out8(0x378, 'Z') // a different port: no-op

	if got := out.String(); got != "A" {
		t.Fatalf("serial output = %q, want %q", got, "A")
	}
}

func TestIn8ReadsFromSerialPortOnly(t *testing.T) {
	s := New(strings.NewReader("hi"), &bytes.Buffer{})

	if got := s.In8(0x378); got != 0 {
		t.Fatalf("In8 on a non-serial port = %#x, want 0", got)
	}
	if got := s.In8(0x3F8); got != 'h' {
		t.Fatalf("In8(0x3F8) = %q, want 'h'", got)
	}
	if got := s.In8(0x3F8); got != 'i' {
		t.Fatalf("In8(0x3F8) = %q, want 'i'", got)
	}
}

func TestIn8AtEOFReturnsZero(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{})
	if got := s.In8(0x3F8); got != 0 {
		t.Fatalf("In8 at EOF = %#x, want 0", got)
	}
}
