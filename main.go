package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/mo-shahab/pong-sim/config"
	"github.com/mo-shahab/pong-sim/game"
	"github.com/mo-shahab/pong-sim/session"
	"github.com/mo-shahab/pong-sim/wire"
	"github.com/pkg/errors"
)

type options struct {
	config      string
	ticks       int
	record      string
	replay      string
	interactive bool
	logEvery    int
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("pong-sim", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "", "path to a TOML config; defaults are used when empty")
	fs.IntVar(&o.ticks, "ticks", 640, "number of ticks to run headless")
	fs.StringVar(&o.record, "record", "", "write every snapshot to this replay file")
	fs.StringVar(&o.replay, "replay", "", "print the snapshots of a replay file and exit")
	fs.BoolVar(&o.interactive, "interactive", false, "play in the terminal")
	fs.IntVar(&o.logEvery, "log-every", 64, "log a snapshot every n ticks in headless mode, 0 disables")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.ticks < 0 {
		return o, errors.Errorf("ticks must not be negative, got %d", o.ticks)
	}
	if o.logEvery < 0 {
		return o, errors.Errorf("log-every must not be negative, got %d", o.logEvery)
	}
	return o, nil
}

func loadSetup(path string) (game.Setup, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return game.Setup{}, err
		}
	}
	return cfg.Setup()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Error parsing flags: %v", err)
	}

	if opts.replay != "" {
		if err := printReplay(opts.replay); err != nil {
			log.Fatalf("Error reading replay: %v", err)
		}
		return
	}

	setup, err := loadSetup(opts.config)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var sink game.Sink
	if opts.record != "" {
		f, err := os.Create(opts.record)
		if err != nil {
			log.Fatalf("Error creating replay file: %v", err)
		}
		sink = wire.NewRecorder(f)
	}

	manager := session.NewManager()
	s, err := manager.Create(setup, sink)
	if err != nil {
		log.Fatalf("Error creating session: %v", err)
	}

	if opts.interactive {
		// the terminal owns stdout while playing
		s.Engine.SetLogger(nil)
		err = runTerminal(s.Engine, setup)
	} else {
		runHeadless(s.Engine, opts.ticks, opts.logEvery)
	}

	if cerr := manager.CloseAll(); cerr != nil {
		log.Printf("Error closing sessions: %v", cerr)
	}
	if err != nil {
		log.Fatalf("Error running session: %v", err)
	}
	if rec, ok := sink.(*wire.Recorder); ok {
		log.Printf("Recorded %d frames to %s", rec.Frames(), opts.record)
	}
}

func runHeadless(e *game.Engine, ticks, logEvery int) {
	for i := 1; i <= ticks; i++ {
		snap := e.Tick()
		if logEvery > 0 && i%logEvery == 0 {
			logSnapshot(snap)
		}
	}
	log.Printf("Session %s finished after %d ticks", e.ID(), ticks)
}

func printReplay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open replay")
	}
	defer f.Close()

	r := wire.NewReader(f)
	n := 0
	for {
		snap, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return errors.Wrapf(err, "frame %d", n)
		}
		logSnapshot(snap)
		n++
	}
	log.Printf("Replayed %d frames from %s", n, path)
	return nil
}

func logSnapshot(s game.Snapshot) {
	b := s.Ball
	log.Printf("[%s] tick %d ball (%.1f, %.1f) vel (%.1f, %.1f)",
		s.Session, s.Tick, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y)
	for _, p := range s.Paddles {
		log.Printf("[%s]   %s paddle y %.1f", s.Session, p.Side, p.Position.Y)
	}
}
