package tracker

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/devskill-org/sunpos/reference"
	"github.com/devskill-org/sunpos/solar"
	"github.com/devskill-org/sunpos/utils"
)

// PeriodicTask represents a task that runs periodically with an optional initial delay
type PeriodicTask struct {
	name         string
	initialDelay time.Duration
	interval     time.Duration
	runFunc      func()
}

// run executes the periodic task in a loop, respecting the initial delay and context cancellation
func (pt *PeriodicTask) run(ctx context.Context, stopChan <-chan struct{}, logger *log.Logger) {
	if pt.initialDelay > 0 {
		select {
		case <-time.After(pt.initialDelay):
			pt.runFunc()
		case <-ctx.Done():
			logger.Printf("[%s] Stopped during initial delay due to context cancellation", pt.name)
			return
		case <-stopChan:
			logger.Printf("[%s] Stopped during initial delay due to stop signal", pt.name)
			return
		}
	} else {
		pt.runFunc()
	}

	ticker := time.NewTicker(pt.interval)
	defer ticker.Stop()

	logger.Printf("[%s] Started with interval: %v", pt.name, pt.interval)

	for {
		select {
		case <-ticker.C:
			pt.runFunc()
		case <-ctx.Done():
			logger.Printf("[%s] Stopped due to context cancellation", pt.name)
			return
		case <-stopChan:
			logger.Printf("[%s] Stopped due to stop signal", pt.name)
			return
		}
	}
}

// Tracker recomputes the solar position and sun times for the current
// instant and hands each Snapshot to a Renderer
type Tracker struct {
	// Configuration
	config *Config

	// Inputs
	clock    Clock
	location LocationProvider

	// Output
	renderer Renderer

	// State
	last      *Snapshot
	renders   int
	isRunning bool
	stopChan  chan struct{}
	mu        sync.RWMutex

	// Logging
	logger *log.Logger
}

// NewTracker creates a tracker reading the system clock and the configured location
func NewTracker(config *Config, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.Default()
	}

	return &Tracker{
		config:   config,
		clock:    SystemClock{},
		stopChan: make(chan struct{}),
		logger:   logger,
	}
}

// SetClock replaces the time source
func (t *Tracker) SetClock(clock Clock) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clock = clock
}

// SetLocationProvider replaces the location source; nil falls back to the config
func (t *Tracker) SetLocationProvider(p LocationProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.location = p
}

// SetRenderer sets where Start sends each snapshot
func (t *Tracker) SetRenderer(r Renderer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderer = r
}

// SetConfig updates the configuration
func (t *Tracker) SetConfig(config *Config) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.config = config
}

// GetConfig returns the current configuration
func (t *Tracker) GetConfig() *Config {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.config
}

// ToggleRefraction flips refraction correction and returns the new setting
func (t *Tracker) ToggleRefraction() bool {
	var on bool
	t.update(func(c *Config) {
		c.Refraction = !c.Refraction
		on = c.Refraction
	})
	return on
}

// ToggleHorizon switches between the official and the civil horizon and returns the new one
func (t *Tracker) ToggleHorizon() string {
	var horizon string
	t.update(func(c *Config) {
		if c.Horizon == HorizonCivil {
			c.Horizon = HorizonOfficial
		} else {
			c.Horizon = HorizonCivil
		}
		horizon = c.Horizon
	})
	return horizon
}

// ToggleReference flips the reference cross-check and returns the new setting
func (t *Tracker) ToggleReference() bool {
	var on bool
	t.update(func(c *Config) {
		c.ShowReference = !c.ShowReference
		on = c.ShowReference
	})
	return on
}

func (t *Tracker) update(fn func(*Config)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := *t.config
	fn(&c)
	t.config = &c
}

// Compute builds a snapshot for the current instant
func (t *Tracker) Compute() Snapshot {
	t.mu.RLock()
	config, clock, location := t.config, t.clock, t.location
	t.mu.RUnlock()

	if location == nil {
		location = config
	}

	now := clock.Now()
	if config.TimezoneOffset != nil {
		now = now.In(utils.FixedZone(*config.TimezoneOffset))
	}

	when := solar.DateTimeFromTime(now)
	loc := location.Location()

	snap := Snapshot{
		When:       when,
		Location:   loc,
		Refraction: config.Refraction,
		Horizon:    config.Horizon,
		Position:   solar.ComputePosition(when, loc, config.Refraction),
		SunTimes:   solar.ComputeSunTimesAt(when.Date(), when.Timezone, loc, config.Zenith()),
	}

	if config.ShowReference {
		report := reference.Build(when, loc)
		snap.Reference = &report
	}

	t.mu.Lock()
	t.last = &snap
	t.mu.Unlock()

	if config.LogLevel == "debug" {
		t.logger.Printf("Computed azimuth=%.4f elevation=%.4f sunrise=%.4f sunset=%.4f",
			snap.Position.Azimuth, snap.Position.Elevation, snap.SunTimes.Sunrise, snap.SunTimes.Sunset)
	}

	return snap
}

// Last returns the most recent snapshot, if any
func (t *Tracker) Last() (Snapshot, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.last == nil {
		return Snapshot{}, false
	}
	return *t.last, true
}

func (t *Tracker) runRender() {
	snap := t.Compute()

	t.mu.Lock()
	renderer := t.renderer
	t.renders++
	t.mu.Unlock()

	if renderer == nil {
		return
	}
	if err := renderer.Render(snap); err != nil {
		t.logger.Printf("Render failed: %v", err)
	}
}

// Start renders a snapshot every refresh interval until ctx is cancelled or Stop is called
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.isRunning {
		t.mu.Unlock()
		return fmt.Errorf("tracker is already running")
	}
	t.isRunning = true
	t.stopChan = make(chan struct{})
	stopChan := t.stopChan
	t.mu.Unlock()

	config := t.GetConfig()

	tasks := []PeriodicTask{
		{
			name:         "render",
			initialDelay: 0,
			interval:     config.RefreshInterval,
			runFunc:      t.runRender,
		},
	}

	var wg sync.WaitGroup
	for _, task := range tasks {
		task := task
		wg.Add(1)
		go func() {
			defer wg.Done()
			task.run(ctx, stopChan, t.logger)
		}()
	}

	wg.Wait()

	t.logger.Printf("All periodic tasks stopped")
	t.stop()
	return ctx.Err()
}

// Stop gracefully stops the tracker
func (t *Tracker) Stop() {
	t.stop()
}

func (t *Tracker) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.isRunning {
		return
	}

	t.isRunning = false

	select {
	case <-t.stopChan:
	default:
		close(t.stopChan)
	}
}

// IsRunning returns whether the tracker is currently running
func (t *Tracker) IsRunning() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isRunning
}

// GetStatus returns the current status of the tracker
func (t *Tracker) GetStatus() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Status{
		IsRunning: t.isRunning,
		Renders:   t.renders,
	}
}

// Status represents the current status of the tracker
type Status struct {
	IsRunning bool `json:"is_running"`
	Renders   int  `json:"renders"`
}
