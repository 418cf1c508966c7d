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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gopherpico/gopherpico/debugger"
	"github.com/gopherpico/gopherpico/debugger/terminal"
	"github.com/gopherpico/gopherpico/debugger/terminal/colorterm"
	"github.com/gopherpico/gopherpico/debugger/terminal/plainterm"
	"github.com/gopherpico/gopherpico/disassembly"
	"github.com/gopherpico/gopherpico/hardware"
	"github.com/gopherpico/gopherpico/logger"
	"github.com/gopherpico/gopherpico/modalflag"
	"github.com/gopherpico/gopherpico/paths"
	"github.com/gopherpico/gopherpico/performance"
	"github.com/gopherpico/gopherpico/programloader"
	"github.com/gopherpico/gopherpico/statsview"
	"github.com/gopherpico/gopherpico/version"
	"golang.org/x/term"
)

const defaultInitScript = "debuggerInit"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// echo the central log to stdout as entries arrive. output is colourised
// if stdout is a terminal.
func setLoggingEcho(echo bool) {
	if !echo {
		logger.SetEcho(nil, false)
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	} else {
		logger.SetEcho(os.Stdout, true)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLoggingEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		prog := programloader.NewLoader(md.GetArg(0))
		err := prog.Load()
		if err != nil {
			return err
		}

		pico := hardware.NewPicoRV()
		pico.AttachProgram(prog)

		// a program that loops back on itself never ends. ctrl-c is the
		// way out in that case, through the default signal handler
		err = pico.Run(nil)
		if err != nil {
			return err
		}

		fmt.Fprintln(md.Output, pico.String())
		fmt.Fprintf(md.Output, "%d instructions in %d ticks\n", pico.CPU.Executed, pico.Ticks)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	defInitScript, err := paths.ResourcePath("", defaultInitScript)
	if err != nil {
		return err
	}

	// colour terminal by default when stdin is a real terminal
	dfltTerm := "PLAIN"
	if term.IsTerminal(int(os.Stdin.Fd())) {
		dfltTerm = "COLOR"
	}

	termType := md.AddString("term", dfltTerm, "terminal type to use in debug mode: COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "script to run on debugger start")
	profile := md.AddBool("profile", false, "run debugger through cpu profiler")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLoggingEcho(*log)

	var trm terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		trm = &plainterm.PlainTerminal{}
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(trm)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0, 1:
		// the debugger can start without a program. one can be attached
		// later with the LOAD command
		prog := programloader.Loader{}
		if len(md.RemainingArgs()) == 1 {
			prog = programloader.NewLoader(md.GetArg(0))
		}

		// set up a running function
		dbgRun := func() error {
			return dbg.Start(*initScript, prog)
		}

		// if profile generation has been requested then pass the dbgRun()
		// function prepared above, through the ProfileCPU() command
		if *profile {
			err := performance.ProfileCPU("debug.cpu.profile", dbgRun)
			if err != nil {
				return err
			}
			err = performance.ProfileMem("debug.mem.profile")
			if err != nil {
				return err
			}
		} else {
			// no profile required so run dbgRun() function as normal
			err := dbgRun()
			if err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		prog := programloader.NewLoader(md.GetArg(0))
		err := prog.Load()
		if err != nil {
			return err
		}

		err = disassembly.Write(md.Output, disassembly.FromProgram(prog.Words()))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLoggingEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		if *stats {
			if !statsview.Available() {
				return fmt.Errorf("statsview not available (build with the statsview tag)")
			}
			statsview.Launch(md.Output)
		}

		prog := programloader.NewLoader(md.GetArg(0))

		err = performance.Check(md.Output, *profile, prog, *duration)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display vcs revision")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s (%s)\n", version.ApplicationName, ver)
	if *revision {
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}
