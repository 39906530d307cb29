// Package main implements an SDL2 desktop front-end for the CHIP-8
// virtual processor.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/c8vm/c8vm/chip8"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

var (
	// VM is the CHIP-8 virtual processor being hosted.
	VM *chip8.Processor

	// Window and Renderer are the SDL video surface.
	Window   *sdl.Window
	Renderer *sdl.Renderer

	// Logger is the host log; the core itself never logs.
	Logger *log.Logger

	// Paused stops instruction and timer stepping (single-step mode).
	Paused bool
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := readArguments()

	Logger = createLogger(opts)

	if !opts.quiet {
		Logger.Info("c8vm",
			log.String("version", buildinfo.Version(version, commit, date)))
	}

	if err := run(opts); err != nil {
		Logger.Fatal(err.Error())
	}
}

func createLogger(opts options) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.debug || opts.trace {
		cfg.Level = log.DebugLevel
	} else if opts.quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func run(opts options) error {
	var err error

	VM = chip8.New()

	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	defer sdl.Quit()

	w := int32(chip8.DisplayWidth * opts.scale)
	h := int32(chip8.DisplayHeight * opts.scale)

	if Window, Renderer, err = sdl.CreateWindowAndRenderer(w, h, sdl.WINDOW_SHOWN); err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer Window.Destroy()
	defer Renderer.Destroy()

	Window.SetTitle("CHIP-8")

	if err = InitAudio(); err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	defer CloseAudio()

	if opts.rom != "" {
		if err = LoadROM(opts.rom); err != nil {
			return err
		}
	} else if err = LoadDialog(); err != nil {
		return err
	}

	// the host owns all cadence: instruction steps and the timer tick
	// are batched per 60 Hz frame
	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	for ProcessEvents(opts) {
		<-frame.C

		stepFrame(opts)
		RefreshScreen(opts.scale)
	}

	return nil
}

// stepFrame runs one frame's worth of emulation: a batch of instruction
// steps, one timer tick, and a beep on the sound edge.
func stepFrame(opts options) {
	if Paused {
		return
	}

	for i := 0; i < opts.cycles; i++ {
		if !stepOne(opts) {
			break
		}
	}

	VM.TickTimers()

	if VM.Sound() {
		Beep()
	}
}

// stepOne executes a single instruction. A fault pauses emulation and is
// logged with the offending instruction; it never kills the host.
func stepOne(opts options) bool {
	at := VM.PC()

	if opts.trace {
		Logger.Debug("exec", log.String("inst", VM.Disassemble(at)))
	}

	if err := VM.Step(); err != nil {
		logFault(Logger, err, VM.Disassemble(at))
		Paused = true
		return false
	}

	return true
}

// logFault reports a processor fault with the instruction that raised it.
// The logger's Error takes the error itself as the second argument.
func logFault(logger *log.Logger, err error, inst string) {
	logger.Error("Emulation fault", err, log.String("inst", inst))
}

type options struct {
	rom    string
	scale  int
	cycles int
	trace  bool
	debug  bool
	quiet  bool
}

func readArguments() options {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options{}

	flags.IntVar(&opts.scale, "scale", 10, "window scale factor for the 64x32 display")
	flags.IntVar(&opts.cycles, "cycles", 10, "instruction steps per 60Hz frame")
	flags.BoolVar(&opts.trace, "trace", false, "log every executed instruction")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.quiet, "q", false, "perform operations quietly")

	_ = flags.Parse(os.Args[1:])

	if args := flags.Args(); len(args) > 0 {
		opts.rom = args[0]
	}

	if opts.scale < 1 {
		opts.scale = 1
	}
	if opts.cycles < 1 {
		opts.cycles = 1
	}

	return opts
}
