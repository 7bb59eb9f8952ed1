/*
 * px86 - Main process.
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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"px86/command"
	"px86/emu/bios"
	"px86/emu/cpu"
	"px86/emu/ioport"
	"px86/util/hex"
	"px86/util/logger"
)

func main() {
	optQuiet := getopt.BoolLong("quiet", 'q', "Suppress the per-step trace")
	optMemory := getopt.StringLong("memory", 'm', "1024", "Memory size in KiB")
	optLoad := getopt.StringLong("load", 'l', "0x7C00", "Load address")
	optEntry := getopt.StringLong("entry", 'e', "", "Entry EIP (defaults to load address)")
	optInteractive := getopt.BoolLong("interactive", 'i', "Drop into the command monitor")
	optLog := getopt.StringLong("log", 0, "", "Trace log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: px86 [flags] <image>")
		os.Exit(1)
	}

	var logFile *os.File
	if *optLog != "" {
		var err error
		logFile, err = os.Create(*optLog)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	log := slog.New(logger.NewHandler(logFile, &slog.HandlerOptions{Level: level}, optQuiet))
	slog.SetDefault(log)

	loadAddr, err := parseAddr(*optLoad)
	if err != nil {
		log.Error("bad load address", "value", *optLoad, "err", err)
		os.Exit(1)
	}
	entry := loadAddr
	if *optEntry != "" {
		entry, err = parseAddr(*optEntry)
		if err != nil {
			log.Error("bad entry address", "value", *optEntry, "err", err)
			os.Exit(1)
		}
	}

	image, err := os.ReadFile(args[0])
	if err != nil {
		log.Error("cannot read image", "path", args[0], "err", err)
		os.Exit(1)
	}

	memoryKiB, err2 := strconv.Atoi(*optMemory)
	if err2 != nil || memoryKiB <= 0 {
		log.Error("bad memory size", "value", *optMemory)
		os.Exit(1)
	}
	memSize := memoryKiB * 1024
	serial := ioport.New(os.Stdin, os.Stdout)
	interrupts := &bios.Services{Writer: serial, Logger: log}

	e := cpu.New(memSize, entry, loadAddr, serial, interrupts)
	if err := e.LoadImage(loadAddr, image); err != nil {
		log.Error("cannot load image", "err", err)
		os.Exit(1)
	}

	var trace cpu.Trace
	if !*optQuiet {
		trace = func(eip, esp uint32, code uint8) {
			log.Info(fmt.Sprintf("EIP: 0x%x, ESP: 0x%x, Code: 0x%x", eip, esp, code))
		}
	}

	if *optInteractive {
		if err := command.Run(e, trace); err != nil {
			log.Error("monitor error", "err", err)
			os.Exit(1)
		}
	} else if stop := e.Run(trace); stop != nil {
		if stop.Fatal() {
			log.Error("halted", "reason", stop.Error(), "opcode", fmt.Sprintf("0x%02x", stop.Opcode))
			dumpRegisters(e)
			os.Exit(1)
		}
		log.Info("halted", "reason", stop.Error())
	}

	dumpRegisters(e)
}

func dumpRegisters(e *cpu.Emulator) {
	names := []string{"EAX", "ECX", "EDX", "EBX", "ESP", "EBP", "ESI", "EDI"}
	var b strings.Builder
	for i, name := range names {
		fmt.Fprintf(&b, "%s=", name)
		hex.FormatWord(&b, []uint32{e.GetRegister32(uint8(i))})
	}
	fmt.Printf("%sEIP=%08X\n", b.String(), e.EIP())
}

func parseAddr(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	var v uint32
	_, err := fmt.Sscanf(s, "%x", &v)
	return v, err
}
