package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/halfmoor/armlet/console"
	"github.com/halfmoor/armlet/emulator"
	"github.com/tebeka/atexit"
)

// PROMPT shown by the interactive console before every IN.
const PROMPT = "? "

// makeConsole selects the console: an interactive terminal when both
// streams are left on stdio and stdin is a terminal, a tape otherwise.
func makeConsole(input string, output string) console.Console {
	if input == "-" && output == "-" {
		tc, err := console.NewTerm(PROMPT)
		if err == nil {
			return tc
		}
		if !errors.Is(err, console.ErrNotTerminal) {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	tape := &console.Tape{}

	if input == "-" {
		tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		tape.Input = inf
	}

	if output == "-" {
		tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		tape.Output = ouf
	}

	return tape
}

func main() {
	var input string
	var output string
	var listing bool
	var verbose bool

	flag.StringVar(&input, "i", "-", "Console input")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.BoolVar(&listing, "l", false, "Print the program listing, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected a single program file, got: %v", os.Args[0], flag.Args())
	}

	path := flag.Arg(0)

	emu := emulator.NewEmulator(makeConsole(input, output))
	emu.Verbose = verbose

	// The console may hold the terminal in raw mode. Restore it on
	// every exit path before reporting anything.
	atexit.Register(func() { emu.Close() })

	inf, err := os.Open(path)
	if err != nil {
		atexit.Fatalf("%v: %v", path, err)
	}

	err = emu.Load(inf)
	inf.Close()
	if err != nil {
		atexit.Fatalf("%v: %v", path, err)
	}

	if listing {
		for line := range emu.Program.Listing() {
			err = emu.Console.WriteLine(line)
			if err != nil {
				atexit.Fatalf("%v: %v", path, err)
			}
		}
		emu.Close()
		atexit.Exit(0)
	}

	err = emu.Run()
	emu.Close()
	if err != nil {
		atexit.Fatalf("%v: %v", path, err)
	}

	if verbose {
		log.Printf("%v", emu.Machine)
	}

	atexit.Exit(0)
}
