/*
 * px86 - BIOS software-interrupt services.
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

// Package bios implements the handful of BIOS software interrupts this
// emulator understands: int 0x10 video teletype output. Everything
// else is logged and ignored, matching spec.md §6/§7.
package bios

import (
	"fmt"
	"log/slog"

	"px86/emu/cpu"
)

// terminalColor maps the low 3 bits of the BIOS BL attribute to an
// ANSI SGR color code (bit 3 selects brightness separately), ported
// from the reference's BIOS_TO_TERMINAL table.
var terminalColor = [8]int{30, 43, 32, 36, 31, 35, 33, 37}

// Byte-aliased register indices used by the video interrupt, using
// the same 0..8 index space as cpu.Emulator.GetRegister8/SetRegister8:
// AL/BL are low bytes of EAX/EBX, AH is the high byte of EAX.
const (
	regAL uint8 = cpu.EAX
	regAH uint8 = cpu.EAX + 4
	regBL uint8 = cpu.EBX
)

// Services implements cpu.InterruptBus against the BIOS video vector.
// Writer is the serial port device (emu/ioport.Serial in the default
// wiring) so BIOS output flows through the same byte stream as normal
// IN/OUT traffic; Logger defaults to slog.Default() when nil.
type Services struct {
	Writer interface{ Out8(port uint16, value uint8) }
	Logger *slog.Logger
}

func (s *Services) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Int implements cpu.InterruptBus.
func (s *Services) Int(e *cpu.Emulator, vector uint8) {
	switch vector {
	case 0x10:
		s.videoInt(e)
	default:
		s.logger().Warn("unknown interrupt", "vector", fmt.Sprintf("0x%02x", vector))
	}
}

func (s *Services) videoInt(e *cpu.Emulator) {
	switch f := e.GetRegister8(regAH); f {
	case 0x0E:
		s.teletype(e)
	default:
		s.logger().Warn("not implemented BIOS video function", "function", fmt.Sprintf("0x%02x", f))
	}
}

// teletype implements AH=0x0E: emit AL as a character wrapped in an
// ANSI color escape derived from BL's low 4 bits, to the serial port.
func (s *Services) teletype(e *cpu.Emulator) {
	ch := e.GetRegister8(regAL)
	attr := e.GetRegister8(regBL) & 0x0F

	bright := 0
	if attr&0x8 != 0 {
		bright = 1
	}
	color := terminalColor[attr&0x7]

	seq := fmt.Sprintf("\x1b[%d;%dm%c\x1b[0m", bright, color, ch)
	if s.Writer == nil {
		return
	}
	for i := 0; i < len(seq); i++ {
		s.Writer.Out8(0x3F8, seq[i])
	}
}
