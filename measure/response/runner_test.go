package response

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/cwbudde/algo-quake/dsp/unit"
)

func TestRunner_MatchesSynchronousPath(t *testing.T) {
	accel := generateSine(1, 2, 100, 2)
	cfg := DefaultConfig()

	want, err := Calculate(accel, 100, cfg)
	if err != nil {
		t.Fatal(err)
	}

	r := NewRunner()
	f := r.Submit(Request{
		Samples:    accel,
		SampleRate: 100,
		Unit:       unit.MetersPerSecondSquared,
		Config:     cfg,
	})

	got, err := f.Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Error("offloaded sweep must equal the synchronous result")
	}
}

func TestRunner_NormalizesUnits(t *testing.T) {
	// 100 gal = 1 m/s²: a gal-denominated request must match the same
	// record submitted in SI.
	gal := generateSine(100, 2, 100, 1)
	si := generateSine(1, 2, 100, 1)
	cfg := Config{PeriodMin: 0.2, PeriodMax: 2, PeriodDivisions: 10, Dampings: []float64{0.05}}

	r := NewRunner()

	fromGal, err := r.Submit(Request{Samples: gal, SampleRate: 100, Unit: unit.Gal, Config: cfg}).
		Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	fromSI, err := r.Submit(Request{Samples: si, SampleRate: 100, Unit: unit.MetersPerSecondSquared, Config: cfg}).
		Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for pi := range fromGal.Periods {
		if math.Abs(fromGal.Displacement[0][pi]-fromSI.Displacement[0][pi]) > 1e-12 {
			t.Fatalf("gal and SI requests disagree at period %d", pi)
		}
	}
}

func TestRunner_SecondSubmitCancelsFirst(t *testing.T) {
	// A long record keeps the first sweep busy until the second request
	// supersedes it.
	long := generateSine(1, 2, 1000, 60)
	short := generateSine(1, 2, 100, 1)
	cfg := DefaultConfig()

	r := NewRunner()
	first := r.Submit(Request{Samples: long, SampleRate: 1000, Unit: unit.MetersPerSecondSquared, Config: cfg})
	second := r.Submit(Request{Samples: short, SampleRate: 100, Unit: unit.MetersPerSecondSquared, Config: cfg})

	if _, err := first.Wait(context.Background()); !errors.Is(err, context.Canceled) {
		t.Errorf("superseded sweep: got %v, want context.Canceled", err)
	}
	if _, err := second.Wait(context.Background()); err != nil {
		t.Errorf("superseding sweep failed: %v", err)
	}
}

func TestRunner_Cancel(t *testing.T) {
	long := generateSine(1, 2, 1000, 60)

	r := NewRunner()
	f := r.Submit(Request{Samples: long, SampleRate: 1000, Unit: unit.MetersPerSecondSquared, Config: DefaultConfig()})
	r.Cancel()

	if _, err := f.Wait(context.Background()); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled sweep: got %v, want context.Canceled", err)
	}

	// Cancel with nothing in flight is a no-op.
	r.Cancel()
}

func TestRunner_InvalidInputFailsBothPaths(t *testing.T) {
	r := NewRunner()
	f := r.Submit(Request{Samples: []float64{1}, SampleRate: 100, Unit: unit.MetersPerSecondSquared, Config: DefaultConfig()})

	if _, err := f.Wait(context.Background()); err == nil {
		t.Error("invalid input should fail after the synchronous retry")
	}
}

func TestFutureWait_CallerTimeout(t *testing.T) {
	long := generateSine(1, 2, 1000, 60)

	r := NewRunner()
	defer r.Cancel()
	f := r.Submit(Request{Samples: long, SampleRate: 1000, Unit: unit.MetersPerSecondSquared, Config: DefaultConfig()})

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	if _, err := f.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("caller timeout: got %v, want context.DeadlineExceeded", err)
	}
}

func TestFutureDone(t *testing.T) {
	r := NewRunner()
	f := r.Submit(Request{
		Samples:    generateSine(1, 2, 100, 1),
		SampleRate: 100,
		Unit:       unit.MetersPerSecondSquared,
		Config:     Config{PeriodMin: 0.2, PeriodMax: 2, PeriodDivisions: 4, Dampings: []float64{0.05}},
	})

	select {
	case <-f.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("sweep did not finish in time")
	}
}
