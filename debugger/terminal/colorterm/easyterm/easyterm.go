// This file is part of GopherPico.
//
// GopherPico is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPico is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPico.  If not, see <https://www.gnu.org/licenses/>.

//go:build !windows

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides some features not present in the third-party package, such as
// terminal geometry, and wraps termios methods in functions with friendlier
// names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"unsafe"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal).
type TermGeometry struct {
	// characters
	rows uint16
	cols uint16

	// pixels
	x uint16
	y uint16
}

// EasyTerm is the main container for posix terminals. usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control the geometry signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// public functions that are called from the signal handler are prefaced
	// with (to prevent race conditions, or worse):
	// 		et.mu.Lock()
	// 		defer et.mu.Unlock()
	mu sync.Mutex
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: an input file is required")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: an output file is required")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	termios.Tcgetattr(et.input.Fd(), &et.canAttr)
	termios.Cfmakecbreak(&et.cbreakAttr)
	termios.Cfmakeraw(&et.rawAttr)

	// set up sig/ack channels for the signal handler
	et.terminateHandlerSig = make(chan bool)
	et.terminateHandlerAck = make(chan bool)

	// kickstart the handler that refreshes geometry information whenever the
	// terminal window changes size
	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			et.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function.
func (et *EasyTerm) CleanUp() {
	et.terminateHandlerSig <- true
	<-et.terminateHandlerAck
}

// TermPrint writes the formatted string to the output file.
func (et *EasyTerm) TermPrint(s string, a ...interface{}) {
	et.output.WriteString(fmt.Sprintf(s, a...))
	et.output.Sync()
}

// UpdateGeometry gets the current dimensions (in characters and pixels) of
// the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	et.mu.Lock()
	defer et.mu.Unlock()

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, et.output.Fd(), uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(&et.Geometry)))
	if errno != 0 {
		return fmt.Errorf("easyterm: error updating terminal geometry information (%d)", errno)
	}
	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() {
	termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *EasyTerm) CBreakMode() {
	termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
