package tracker

import (
	"bytes"
	"context"
	"log"
	"math"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/devskill-org/sunpos/solar"
)

var rigaSolstice = time.Date(2024, 6, 21, 14, 0, 0, 0, time.FixedZone("EEST", 3*3600))

func fixedClock(ts time.Time) Clock {
	return ClockFunc(func() time.Time { return ts })
}

func TestNewTracker(t *testing.T) {
	tests := []struct {
		name   string
		logger *log.Logger
	}{
		{name: "with logger", logger: log.New(os.Stdout, "TEST", log.LstdFlags)},
		{name: "nil logger", logger: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewTracker(DefaultConfig(), tt.logger)
			if tracker == nil {
				t.Fatal("NewTracker returned nil")
			}
			if tracker.logger == nil {
				t.Error("Expected default logger when nil provided")
			}
			if tracker.IsRunning() {
				t.Error("New tracker should not be running")
			}
			if _, ok := tracker.Last(); ok {
				t.Error("New tracker should have no snapshot")
			}
		})
	}
}

func TestTracker_Compute(t *testing.T) {
	config := DefaultConfig()
	config.Refraction = false

	tracker := NewTracker(config, nil)
	tracker.SetClock(fixedClock(rigaSolstice))

	snap := tracker.Compute()

	expected := solar.DateTime{Year: 2024, Month: 6, Day: 21, Hour: 14, Timezone: 3}
	if snap.When != expected {
		t.Errorf("Expected %+v, got %+v", expected, snap.When)
	}
	if math.Abs(snap.Position.Azimuth-194.20747118880388) > 1e-6 {
		t.Errorf("Unexpected azimuth %v", snap.Position.Azimuth)
	}
	if math.Abs(snap.Position.Elevation-55.90190920913392) > 1e-6 {
		t.Errorf("Unexpected elevation %v", snap.Position.Elevation)
	}
	if math.Abs(snap.SunTimes.Sunrise-4.485781972810835) > 1e-6 {
		t.Errorf("Unexpected sunrise %v", snap.SunTimes.Sunrise)
	}
	if !snap.IsDaylight() {
		t.Error("Expected daylight")
	}
	if snap.Reference != nil {
		t.Error("Expected no reference report by default")
	}

	last, ok := tracker.Last()
	if !ok || last.Position != snap.Position {
		t.Error("Expected Last to return the computed snapshot")
	}
}

func TestTracker_ComputeTimezoneOverride(t *testing.T) {
	tz := 0
	config := DefaultConfig()
	config.TimezoneOffset = &tz

	tracker := NewTracker(config, nil)
	tracker.SetClock(fixedClock(rigaSolstice))

	snap := tracker.Compute()
	if snap.When.Hour != 11 || snap.When.Timezone != 0 {
		t.Errorf("Expected 11:00 UTC, got %+v", snap.When)
	}

	local := NewTracker(DefaultConfig(), nil)
	local.SetClock(fixedClock(rigaSolstice))
	if got := local.Compute().Position; got != snap.Position {
		t.Errorf("Expected the same position for the same instant, got %+v and %+v", got, snap.Position)
	}
}

func TestTracker_LocationProvider(t *testing.T) {
	tracker := NewTracker(DefaultConfig(), nil)
	tracker.SetClock(fixedClock(rigaSolstice))
	tracker.SetLocationProvider(StaticLocation{Latitude: -33.86, Longitude: 151.21})

	snap := tracker.Compute()
	if snap.Location.Latitude != -33.86 {
		t.Errorf("Expected provider location, got %+v", snap.Location)
	}
}

func TestTracker_Toggles(t *testing.T) {
	tracker := NewTracker(DefaultConfig(), nil)
	tracker.SetClock(fixedClock(rigaSolstice))

	refracted := tracker.Compute()

	if tracker.ToggleRefraction() {
		t.Fatal("Expected refraction to be turned off")
	}
	plain := tracker.Compute()
	if plain.Refraction || plain.Position.Elevation >= refracted.Position.Elevation {
		t.Errorf("Expected lower elevation without refraction: %v vs %v", plain.Position.Elevation, refracted.Position.Elevation)
	}

	if got := tracker.ToggleHorizon(); got != HorizonCivil {
		t.Fatalf("Expected civil horizon, got %s", got)
	}
	civil := tracker.Compute()
	if civil.SunTimes.Sunrise >= refracted.SunTimes.Sunrise {
		t.Errorf("Expected civil dawn before sunrise")
	}
	if got := tracker.ToggleHorizon(); got != HorizonOfficial {
		t.Errorf("Expected official horizon, got %s", got)
	}

	if !tracker.ToggleReference() {
		t.Fatal("Expected reference to be turned on")
	}
	if tracker.Compute().Reference == nil {
		t.Error("Expected a reference report")
	}

	if DefaultConfig().ShowReference {
		t.Error("Toggles must not modify the default config")
	}
}

type recordingRenderer struct {
	mu        sync.Mutex
	snapshots []Snapshot
	notify    chan struct{}
}

func (r *recordingRenderer) Render(s Snapshot) error {
	r.mu.Lock()
	r.snapshots = append(r.snapshots, s)
	r.mu.Unlock()
	select {
	case r.notify <- struct{}{}:
	default:
	}
	return nil
}

func TestTracker_StartStop(t *testing.T) {
	config := DefaultConfig()
	config.RefreshInterval = 10 * time.Millisecond

	var logs bytes.Buffer
	tracker := NewTracker(config, log.New(&logs, "", 0))
	tracker.SetClock(fixedClock(rigaSolstice))

	renderer := &recordingRenderer{notify: make(chan struct{}, 1)}
	tracker.SetRenderer(renderer)

	done := make(chan error, 1)
	go func() {
		done <- tracker.Start(context.Background())
	}()

	for i := 0; i < 3; i++ {
		select {
		case <-renderer.notify:
		case <-time.After(2 * time.Second):
			t.Fatal("Timed out waiting for render")
		}
	}

	if !tracker.IsRunning() {
		t.Error("Expected tracker to be running")
	}
	if err := tracker.Start(context.Background()); err == nil {
		t.Error("Expected error when starting twice")
	}

	tracker.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil error after Stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for tracker to stop")
	}

	if tracker.IsRunning() {
		t.Error("Expected tracker to be stopped")
	}
	if status := tracker.GetStatus(); status.Renders < 3 {
		t.Errorf("Expected at least 3 renders, got %d", status.Renders)
	}
}

func TestTracker_StartContextCancel(t *testing.T) {
	config := DefaultConfig()
	config.RefreshInterval = 10 * time.Millisecond

	tracker := NewTracker(config, log.New(&bytes.Buffer{}, "", 0))
	tracker.SetClock(fixedClock(rigaSolstice))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tracker.Start(ctx)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for tracker to stop")
	}

	if tracker.GetStatus().Renders == 0 {
		t.Error("Expected at least one render without a renderer")
	}
}
