// game/engine.go
package game

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/mo-shahab/pong-sim/paddle"
)

// Engine owns one session's state and drives it at a fixed rate.
// Input may be set from any goroutine; ticks are applied one at a time.
type Engine struct {
	id       string
	sim      Simulator
	state    State
	input    Input
	dt       float64
	interval time.Duration
	sink     Sink
	logger   *log.Logger
	ticker   *time.Ticker
	stopChan chan struct{}
	done     chan struct{}
	mu       sync.RWMutex

	// held for a whole Tick so snapshots reach the sink in tick order
	publishMu sync.Mutex
}

// NewEngine creates a new game engine instance. sink may be nil.
func NewEngine(id string, setup Setup, sink Sink) (*Engine, error) {
	state, err := NewState(setup)
	if err != nil {
		return nil, err
	}

	return &Engine{
		id:       id,
		sim:      NewSimulator(setup),
		state:    state,
		dt:       setup.Dt(),
		interval: setup.Interval(),
		sink:     sink,
		logger:   log.Default(),
	}, nil
}

// ID returns the session id the engine was created with.
func (e *Engine) ID() string { return e.id }

// Dt returns the fixed step length in seconds.
func (e *Engine) Dt() float64 { return e.dt }

// SetLogger replaces the logger used for engine events. nil silences it.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger = l
}

// Start begins the game loop
func (e *Engine) Start() {
	e.mu.Lock()
	if e.ticker != nil {
		e.mu.Unlock()
		return // Already running
	}

	e.ticker = time.NewTicker(e.interval)
	e.stopChan = make(chan struct{})
	e.done = make(chan struct{})
	ticker, stop, done := e.ticker, e.stopChan, e.done
	logger := e.logger
	e.mu.Unlock()

	logger.Printf("Starting game engine %s at %v per tick", e.id, e.interval)
	go e.gameLoop(ticker, stop, done)
}

// Stop halts the game loop and waits for the current tick to finish.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.ticker == nil {
		e.mu.Unlock()
		return
	}

	e.ticker.Stop()
	e.ticker = nil
	close(e.stopChan)
	done := e.done
	logger := e.logger
	e.mu.Unlock()

	<-done
	logger.Printf("Game engine %s stopped at tick %d", e.id, e.Snapshot().Tick)
}

// Running reports whether the ticker loop is active.
func (e *Engine) Running() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ticker != nil
}

// gameLoop runs the main game update cycle
func (e *Engine) gameLoop(ticker *time.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.Tick()
		}
	}
}

// SetInput replaces the intents applied on every following tick.
func (e *Engine) SetInput(in Input) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input = in
}

// SetIntent updates the intent for one side only.
func (e *Engine) SetIntent(side paddle.Side, intent paddle.Intent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input = e.input.With(side, intent)
}

// Tick advances the session by one fixed step and publishes the result.
func (e *Engine) Tick() Snapshot {
	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	e.mu.Lock()
	res := e.sim.Advance(&e.state, e.dt, e.input)
	snapshot := e.snapshotLocked()
	logger := e.logger
	e.mu.Unlock()

	for _, side := range res.Paddles {
		logger.Printf("[%s] tick %d: collision with the %s paddle", e.id, snapshot.Tick, side)
	}

	// publish outside of the state lock
	if e.sink != nil {
		if err := e.sink.Publish(snapshot); err != nil {
			logger.Printf("[%s] failed to publish tick %d: %v", e.id, snapshot.Tick, err)
		}
	}
	return snapshot
}

// Run advances n ticks synchronously and returns the last snapshot.
func (e *Engine) Run(n int) Snapshot {
	snapshot := e.Snapshot()
	for i := 0; i < n; i++ {
		snapshot = e.Tick()
	}
	return snapshot
}

// Snapshot returns the current geometry safely
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotLocked()
}

// State returns a copy of the full simulation state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Clone()
}

func (e *Engine) snapshotLocked() Snapshot {
	st := e.state.Clone()
	return Snapshot{
		Session: e.id,
		Tick:    st.Tick,
		Ball:    st.Ball,
		Paddles: st.Paddles,
		Walls:   st.Walls,
	}
}
