// Package main is an interactive terminal demo for the keychord input
// engine. It wires a tcell-backed keyboard and mouse provider into the
// input manager and prints fired actions as you press their chords.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/device"
	"github.com/dshills/keychord/internal/input"
	"github.com/dshills/keychord/internal/input/binding"
	"github.com/dshills/keychord/internal/input/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

const historySize = 16

func main() {
	os.Exit(run())
}

type options struct {
	configPath   string
	bindingsPath string
	scriptPath   string
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.bindingsPath != "" {
		cfg.BindingsPath = opts.bindingsPath
	}
	if opts.scriptPath != "" {
		cfg.ScriptPath = opts.scriptPath
	}

	bindings, err := loadBindings(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	for _, c := range bindings.ValidateConflicts() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", c)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	term := device.NewTerminal(cfg.HoldWindow())
	mgr := input.NewManager(buildProvider(term, cfg.Devices))
	mgr.SetBindings(bindings)

	var history []string
	mgr.Subscribe(func(ev input.Event) {
		line := fmt.Sprintf("%s  %s (%s)", ev.Time.Format("15:04:05.000"), ev.Action.Name, ev.Chord)
		history = append(history, line)
		if len(history) > historySize {
			history = history[1:]
		}
	})

	// Reloads arrive on the watcher goroutine; hand them to the tick
	// loop so the manager is only touched from one goroutine.
	reloads := make(chan *binding.Collection, 1)
	if cfg.WatchBindings {
		if watcher := watchBindings(cfg.BindingsPath, reloads, os.Stderr); watcher != nil {
			defer watcher.Close()
		}
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-signals:
			close(quit)
			return 0

		case c := <-reloads:
			mgr.Bindings().ReplaceAll(c)

		case ev, ok := <-events:
			if !ok {
				return 0
			}
			if k, isKey := ev.(*tcell.EventKey); isKey && k.Key() == tcell.KeyCtrlC {
				close(quit)
				return 0
			}
			term.HandleEvent(ev)

		case <-ticker.C:
			mgr.Update()
			draw(screen, mgr, history)
		}
	}
}

// watchBindings starts watching the bindings file, delivering reloads on
// the channel. A watcher that cannot start is a warning, not a fatal
// error; the demo keeps running with the bindings it already loaded.
func watchBindings(path string, reloads chan<- *binding.Collection, warnings io.Writer) io.Closer {
	watcher, err := binding.NewWatcher(path,
		func(c *binding.Collection) { reloads <- c },
		binding.WithErrorHandler(func(error) {}))
	if err != nil {
		fmt.Fprintf(warnings, "Warning: not watching %s: %v\n", path, err)
		return nil
	}
	return watcher
}

// loadBindings loads the persisted bindings file, falling back to the
// Lua script and then the built-in demo set.
func loadBindings(cfg config.Config) (*binding.Collection, error) {
	loader := binding.NewLoader()

	c, err := loader.LoadFile(cfg.BindingsPath)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading bindings %s: %w", cfg.BindingsPath, err)
	}

	if cfg.ScriptPath != "" {
		c, err = script.NewEngine().LoadFile(cfg.ScriptPath)
		if err != nil {
			return nil, fmt.Errorf("loading script %s: %w", cfg.ScriptPath, err)
		}
		return c, nil
	}

	return defaultBindings()
}

func defaultBindings() (*binding.Collection, error) {
	c := binding.NewCollection()

	specs := []struct {
		chord  string
		action string
		desc   string
	}{
		{"Space", "jump", "Jump"},
		{"LeftShift+W", "sprint", "Sprint forward"},
		{"LeftCtrl+S", "save", "Save the session"},
		{"MouseLeft", "fire", "Primary fire"},
		{"MouseRight", "aim", "Aim down sights"},
		{"MouseWheelUp", "next_weapon", "Cycle weapon forward"},
		{"F1", "help", "Show help"},
	}

	for _, s := range specs {
		b, err := binding.NewBuilder().
			WithChord(s.chord).
			WithAction(s.action, s.desc).
			Build()
		if err != nil {
			return nil, err
		}
		c.Add(b)
	}
	return c, nil
}

// buildProvider wires only the device classes the config enables. The
// terminal backend covers keyboard and mouse; the other classes stay
// nil and contribute nothing.
func buildProvider(term *device.Terminal, devices config.DeviceConfig) input.Provider {
	var p input.Provider
	if devices.Keyboard {
		p.Keyboard = term
	}
	if devices.Mouse {
		p.Mouse = term
	}
	return p
}

func draw(screen tcell.Screen, mgr *input.Manager, history []string) {
	screen.Clear()

	style := tcell.StyleDefault
	dim := style.Foreground(tcell.ColorGray)

	puts(screen, 0, 0, style.Bold(true), "keychord demo - press bound chords, Ctrl+C to quit")

	pressed := make([]string, 0, mgr.Pressed().Len())
	for _, in := range mgr.Pressed().Inputs() {
		pressed = append(pressed, in.Name())
	}
	puts(screen, 0, 2, dim, fmt.Sprintf("held: %s", join(pressed)))

	if best := mgr.FindBestMatch(); best != nil {
		puts(screen, 0, 3, dim, fmt.Sprintf("best match: %s", best))
	}

	puts(screen, 0, 5, style, "fired actions:")
	for i, line := range history {
		puts(screen, 2, 6+i, style, line)
	}

	stats := mgr.Metrics().Snapshot()
	_, h := screen.Size()
	puts(screen, 0, h-1, dim, fmt.Sprintf("ticks %d  events %d  avg %s  peak %s",
		stats.TicksTotal, stats.EventsTotal, stats.AvgTickLatency, stats.PeakTickLatency))

	screen.Show()
}

func puts(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func join(parts []string) string {
	if len(parts) == 0 {
		return "(none)"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "keychord.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "keychord.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.bindingsPath, "bindings", "", "Path to bindings JSON file (overrides config)")
	flag.StringVar(&opts.bindingsPath, "b", "", "Path to bindings JSON file (shorthand)")
	flag.StringVar(&opts.scriptPath, "script", "", "Path to Lua bindings script (overrides config)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Keychord - chord-based input binding demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keychord [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keychord                      Run with built-in demo bindings\n")
		fmt.Fprintf(os.Stderr, "  keychord -b bindings.json     Load bindings from a file\n")
		fmt.Fprintf(os.Stderr, "  keychord -script binds.lua    Build bindings from a Lua script\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Keychord %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}
