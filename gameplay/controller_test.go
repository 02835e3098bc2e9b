package gameplay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/automoto/tilerush/config"
	"github.com/yohamta/donburi"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const frame = time.Second / 60

func newController(t *testing.T, tiles int) *Controller {
	t.Helper()
	c := NewController(donburi.NewWorld(), Options{TileCount: tiles, Seed: 42})
	t.Cleanup(c.Close)
	return c
}

// run advances the controller in frame-sized steps.
func run(c *Controller, d time.Duration) {
	for d > 0 {
		step := frame
		if d < step {
			step = d
		}
		c.Update(step)
		d -= step
	}
}

func numbers(c *Controller) []int {
	var out []int
	for _, tile := range c.Tiles() {
		out = append(out, tile.Number)
	}
	return out
}

func TestStartSpawnsNumberedTilesInsideSpread(t *testing.T) {
	for _, n := range []int{1, 3, 10, 100} {
		c := newController(t, n)
		c.Start()

		tiles := c.Tiles()
		if len(tiles) != n {
			t.Fatalf("n=%d: got %d tiles", n, len(tiles))
		}
		for i, tile := range tiles {
			if tile.Number != i+1 {
				t.Fatalf("n=%d: tile %d has number %d", n, i, tile.Number)
			}
			if tile.X < 0 || tile.X >= config.Board.Spread || tile.Y < 0 || tile.Y >= config.Board.Spread {
				t.Fatalf("n=%d: tile %d at (%v,%v) outside [0,%v)", n, tile.Number, tile.X, tile.Y, config.Board.Spread)
			}
			if tile.Selected || tile.Alpha != 1 {
				t.Fatalf("n=%d: fresh tile %d is %+v", n, tile.Number, tile)
			}
		}

		s := c.Session()
		if !s.Running || s.Status != config.StatusReady || s.Elapsed() != 0 || len(s.Selected) != 0 {
			t.Fatalf("n=%d: fresh session %+v", n, *s)
		}
	}
}

func TestSelectInOrderClearsBoard(t *testing.T) {
	c := newController(t, 3)
	c.Start()
	run(c, 250*time.Millisecond)

	if got := c.Select(1); got != OutcomeMatch {
		t.Fatalf("Select(1) = %v", got)
	}
	tiles := c.Tiles()
	if !tiles[0].Selected {
		t.Fatalf("tile 1 not marked selected")
	}
	run(c, 350*time.Millisecond)
	if got := numbers(c); len(got) != 2 || got[0] != 2 {
		t.Fatalf("after removal delay tiles = %v, want [2 3]", got)
	}

	if got := c.Select(2); got != OutcomeMatch {
		t.Fatalf("Select(2) = %v", got)
	}
	if got := c.Select(3); got != OutcomeCleared {
		t.Fatalf("Select(3) = %v", got)
	}

	s := c.Session()
	if s.Running || s.Status != config.StatusAllCleared || s.Phase() != config.PhaseAllCleared {
		t.Fatalf("session after clearing: %+v", *s)
	}
	frozen := s.Elapsed()
	if frozen < 0.5 || frozen > 0.7 {
		t.Fatalf("elapsed = %v, want about 0.6", frozen)
	}
	// Tile 3 is cleared immediately but removed only after the delay
	if len(c.Tiles()) != 2 {
		t.Fatalf("tiles removed before the delay: %v", numbers(c))
	}

	run(c, time.Second)
	if len(c.Tiles()) != 0 {
		t.Fatalf("board not empty: %v", numbers(c))
	}
	if s.Elapsed() != frozen {
		t.Fatalf("elapsed moved after clearing: %v -> %v", frozen, s.Elapsed())
	}
	if c.Scheduler().Pending() != 0 {
		t.Fatalf("jobs left after clearing: %d", c.Scheduler().Pending())
	}
}

func TestOutOfOrderSelectionEndsGame(t *testing.T) {
	c := newController(t, 3)
	c.Start()
	run(c, 200*time.Millisecond)

	if got := c.Select(2); got != OutcomeMistake {
		t.Fatalf("Select(2) = %v, want mistake", got)
	}
	s := c.Session()
	if s.Running || s.Status != config.StatusGameOver || s.Phase() != config.PhaseGameOver {
		t.Fatalf("session after mistake: %+v", *s)
	}
	frozen := s.Elapsed()

	for _, n := range []int{1, 2, 3} {
		if got := c.Select(n); got != OutcomeIgnored {
			t.Fatalf("Select(%d) after game over = %v", n, got)
		}
	}
	run(c, time.Second)
	if got := numbers(c); len(got) != 3 {
		t.Fatalf("tiles = %v, want all three still visible", got)
	}
	if s.Elapsed() != frozen || len(s.Selected) != 0 {
		t.Fatalf("inert session changed: %+v", *s)
	}
}

func TestSelectingSelectedTileIsMistake(t *testing.T) {
	c := newController(t, 3)
	c.Start()
	c.Select(1)
	run(c, 100*time.Millisecond)
	if got := c.Select(1); got != OutcomeMistake {
		t.Fatalf("reselecting a fading tile = %v, want mistake", got)
	}
	// The removal is not cancelled by the game ending
	run(c, 300*time.Millisecond)
	if got := numbers(c); len(got) != 2 || got[0] != 2 {
		t.Fatalf("tiles = %v, want [2 3]", got)
	}
}

func TestElapsedTicksWhileRunning(t *testing.T) {
	c := newController(t, 5)
	c.Start()
	s := c.Session()

	c.Update(99 * time.Millisecond)
	if s.Elapsed() != 0 {
		t.Fatalf("ticked before 100ms: %v", s.Elapsed())
	}
	c.Update(time.Millisecond)
	if s.Ticks != 1 {
		t.Fatalf("ticks = %d at 100ms, want 1", s.Ticks)
	}
	run(c, 900*time.Millisecond)
	if s.Ticks != 10 || FormatElapsed(s.Elapsed()) != "1.0s" {
		t.Fatalf("after 1s ticks=%d elapsed=%s", s.Ticks, FormatElapsed(s.Elapsed()))
	}

	c.Select(4)
	run(c, time.Second)
	if s.Ticks != 10 {
		t.Fatalf("ticks moved after stop: %d", s.Ticks)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	c := newController(t, 4)
	if c.Session().Phase() != config.PhaseIdle {
		t.Fatalf("new controller phase = %v", c.Session().Phase())
	}

	c.Start()
	firstID := c.Session().ID
	c.Select(1)
	c.Select(3)
	run(c, 500*time.Millisecond)

	c.SetTileCount(6)
	c.Start()
	s := c.Session()
	if s.ID == firstID {
		t.Fatalf("session id not bumped")
	}
	if !s.Running || s.Status != config.StatusReady || s.Elapsed() != 0 || len(s.Selected) != 0 {
		t.Fatalf("restarted session: %+v", *s)
	}
	if got := numbers(c); len(got) != 6 {
		t.Fatalf("restart spawned %v, want 6 tiles", got)
	}
	if c.Session().Phase() != config.PhaseRunning {
		t.Fatalf("phase = %v, want running", c.Session().Phase())
	}

	// Restart while running
	c.Select(1)
	c.Start()
	if len(c.Session().Selected) != 0 || len(c.Tiles()) != 6 {
		t.Fatalf("restart while running kept state: %+v", *c.Session())
	}
}

func TestStaleRemovalIgnoredAfterRestart(t *testing.T) {
	c := newController(t, 3)
	c.Start()
	c.Select(1)
	run(c, 100*time.Millisecond)

	// Restart before the pending removal of tile 1 fires
	c.Start()
	run(c, time.Second)
	if got := numbers(c); len(got) != 3 || got[0] != 1 {
		t.Fatalf("stale removal touched the new board: %v", got)
	}
}

func TestTileCountOnlyAffectsNextStart(t *testing.T) {
	c := newController(t, 3)
	c.Start()
	if got := c.SetTileCount(0); got != config.TileCount.Min {
		t.Fatalf("SetTileCount(0) = %d", got)
	}
	c.Select(1)
	c.Select(2)
	if got := c.Select(3); got != OutcomeCleared {
		t.Fatalf("changing the count mid-game changed the goal: %v", got)
	}
	c.Start()
	if got := numbers(c); len(got) != 1 {
		t.Fatalf("next start spawned %v, want one tile", got)
	}
	if got := c.Select(1); got != OutcomeCleared {
		t.Fatalf("single tile game: %v", got)
	}
}

func TestFadeTweenRunsOverRemovalDelay(t *testing.T) {
	c := newController(t, 2)
	c.Start()
	c.Select(1)
	c.Update(175 * time.Millisecond)
	alpha := c.Tiles()[0].Alpha
	if alpha <= 0 || alpha >= 1 {
		t.Fatalf("alpha halfway = %v, want in (0,1)", alpha)
	}
	if c.Tiles()[1].Alpha != 1 {
		t.Fatalf("unselected tile faded")
	}
}

func TestSessionSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	c := NewController(donburi.NewWorld(), Options{TileCount: 2, Seed: 7, Tracer: tp.Tracer("test")})
	c.Start()
	c.Start()
	c.Select(2)
	c.Close()

	spans := rec.Ended()
	if len(spans) != 2 {
		t.Fatalf("ended spans = %d, want 2", len(spans))
	}
	want := []string{"abandoned", "game_over"}
	for i, span := range spans {
		if span.Name() != "session" {
			t.Fatalf("span name = %q", span.Name())
		}
		outcome := ""
		for _, kv := range span.Attributes() {
			if kv.Key == "outcome" {
				outcome = kv.Value.AsString()
			}
		}
		if outcome != want[i] {
			t.Fatalf("span %d outcome = %q, want %q", i, outcome, want[i])
		}
	}
}

func TestParseTileCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
		err  bool
	}{
		{in: "", err: true},
		{in: "abc", err: true},
		{in: "-3", err: true},
		{in: "1.5", err: true},
		{in: "0", want: 1},
		{in: " 12 ", want: 12},
		{in: "999", want: 999},
		{in: "5000", want: 999},
		{in: "99999999999999999999999", want: 999},
	}
	for _, tc := range cases {
		got, err := ParseTileCount(tc.in)
		if tc.err {
			if !errors.Is(err, ErrInvalidTileCount) {
				t.Errorf("ParseTileCount(%q) err = %v, want ErrInvalidTileCount", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseTileCount(%q) = %d, %v, want %d", tc.in, got, err, tc.want)
		}
	}
}

func TestPlayLabel(t *testing.T) {
	if PlayLabel(true) != "Restart" || PlayLabel(false) != "Play" {
		t.Fatalf("labels: %q %q", PlayLabel(true), PlayLabel(false))
	}
}
