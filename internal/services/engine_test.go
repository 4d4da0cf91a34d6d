package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestEngine_StartRunSeedsFreshState(t *testing.T) {
	var e Engine
	e.StartRun(1000, 1500)

	assert.Equal(t, 1500, e.Remaining())
	assert.Equal(t, 1500, e.Duration())
	assert.Zero(t, e.CompletedAt())
}

func TestEngine_StartRunDiscardsStaleCompletion(t *testing.T) {
	var e Engine
	e.StartRun(1000, 10)
	e.Tick(11_000)
	assert.NotZero(t, e.CompletedAt())

	e.StartRun(20_000, 10)
	assert.Zero(t, e.CompletedAt())
	assert.Equal(t, 10, e.Remaining())
}

func TestEngine_TickCountsDown(t *testing.T) {
	var e Engine
	e.StartRun(1000, 60)

	tests := []struct {
		name      string
		now       int64
		remaining int
		changed   bool
	}{
		{"same instant", 1000, 60, false},
		{"sub-second", 1900, 60, false},
		{"one second", 2000, 59, true},
		{"repeat same second", 2500, 59, false},
		{"ten seconds", 11_000, 50, true},
		{"last second", 60_999, 1, true},
		{"exactly zero", 61_000, 0, true},
		{"past zero holds", 90_000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := e.Tick(tt.now)
			assert.Equal(t, tt.remaining, e.Remaining())
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestEngine_RunStartedAtInstantZero(t *testing.T) {
	// The clock's epoch is arbitrary, so 0 is a legitimate start instant:
	// the adapter reads 0 during its first millisecond.
	var e Engine
	e.StartRun(0, 60)

	assert.True(t, e.Tick(1000))
	assert.Equal(t, 59, e.Remaining())

	e.Tick(60_000)
	assert.Equal(t, 0, e.Remaining())
	assert.Equal(t, int64(60_000), e.CompletedAt())
}

func TestEngine_TickBeforeStartIsNoop(t *testing.T) {
	var e Engine
	e.Reset(1500)

	assert.False(t, e.Tick(5000))
	assert.Equal(t, 1500, e.Remaining())
	assert.Zero(t, e.CompletedAt())
}

func TestEngine_CompletionRecordedExactlyOnce(t *testing.T) {
	var e Engine
	e.StartRun(1000, 10)

	e.Tick(11_000)
	completedAt := e.CompletedAt()
	assert.Equal(t, int64(11_000), completedAt)

	// Later ticks at zero must not move the completion instant.
	e.Tick(12_000)
	e.Tick(50_000)
	assert.Equal(t, completedAt, e.CompletedAt())
}

func TestEngine_ResumePreservesElapsedTime(t *testing.T) {
	var e Engine
	e.StartRun(0, 1500)
	e.Tick(600_000) // 600s elapsed
	assert.Equal(t, 900, e.Remaining())

	// Arbitrary pause length: the run is simply not ticked meanwhile.
	resumeAt := int64(9_000_000)
	e.Resume(resumeAt)

	// No sudden jump on the next tick.
	e.Tick(resumeAt)
	assert.Equal(t, 900, e.Remaining())

	// The rest of the run takes exactly the frozen remaining time.
	e.Tick(resumeAt + 900_000)
	assert.Equal(t, 0, e.Remaining())
	assert.Equal(t, resumeAt+900_000, e.CompletedAt())
}

func TestEngine_ResetSeedsWorkDuration(t *testing.T) {
	var e Engine
	e.StartRun(1000, 300)
	e.Tick(100_000)

	e.Reset(1500)
	assert.Equal(t, 1500, e.Remaining())
	assert.Equal(t, 1500, e.Duration())
	assert.Zero(t, e.CompletedAt())
	assert.False(t, e.Tick(200_000), "a reset engine must not count")
}

func TestEngine_Progress(t *testing.T) {
	var e Engine
	e.StartRun(0, 100)

	assert.InDelta(t, 0.0, e.Progress(), 1e-9)
	e.Tick(25_000)
	assert.InDelta(t, 0.25, e.Progress(), 1e-9)
	e.Tick(100_000)
	assert.InDelta(t, 1.0, e.Progress(), 1e-9)
}

func TestEngine_RemainingMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		duration := rapid.IntRange(1, 3600).Draw(rt, "duration")
		start := rapid.Int64Range(0, 1_000_000).Draw(rt, "start")

		var e Engine
		e.StartRun(start, duration)

		now := start
		prev := e.Remaining()
		steps := rapid.IntRange(1, 50).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			now += rapid.Int64Range(0, 120_000).Draw(rt, "advance")
			e.Tick(now)

			remaining := e.Remaining()
			if remaining > prev {
				rt.Fatalf("remaining increased: %d -> %d", prev, remaining)
			}
			if remaining < 0 {
				rt.Fatalf("remaining went negative: %d", remaining)
			}
			prev = remaining
		}
	})
}

func TestEngine_PauseResumeRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		duration := rapid.IntRange(2, 3600).Draw(rt, "duration")
		elapsed := rapid.IntRange(1, duration-1).Draw(rt, "elapsed")
		pauseMs := rapid.Int64Range(0, 86_400_000).Draw(rt, "pause_ms")

		var e Engine
		e.StartRun(0, duration)
		e.Tick(int64(elapsed) * 1000)

		resumeAt := int64(elapsed)*1000 + pauseMs
		e.Resume(resumeAt)
		e.Tick(resumeAt + int64(duration-elapsed)*1000)

		if e.Remaining() != 0 {
			rt.Fatalf("expected completion, remaining=%d", e.Remaining())
		}
	})
}
