// Package gameplay holds the rules of a session: starting, selecting tiles,
// the elapsed-time tick and delayed tile removal. It has no ebiten
// dependency so it can run headless.
package gameplay

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/automoto/tilerush/archetypes"
	"github.com/automoto/tilerush/components"
	"github.com/automoto/tilerush/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Outcome is the result of a tile selection.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // Session not running
	OutcomeMatch                  // Correct, more tiles remain
	OutcomeCleared                // Correct final tile
	OutcomeMistake                // Wrong tile, session over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeMatch:
		return "match"
	case OutcomeCleared:
		return "cleared"
	case OutcomeMistake:
		return "mistake"
	}
	return "unknown"
}

// Options configures a Controller.
type Options struct {
	TileCount int          // Initial tile count, clamped
	Seed      int64        // Tile placement seed; 0 picks one from the clock
	Tracer    trace.Tracer // nil disables session spans
	Debug     bool         // Log session transitions
}

// Controller owns the session singleton and the tile entities of a world.
type Controller struct {
	world   donburi.World
	sched   *Scheduler
	rng     *rand.Rand
	tracer  trace.Tracer
	debug   bool
	session *donburi.Entry
	board   *donburi.Entry
	tiles   map[int]*donburi.Entry
	tick    *Job
	span    trace.Span
}

// NewController creates the session and board entities in w.
func NewController(w donburi.World, opts Options) *Controller {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("tilerush/noop")
	}

	c := &Controller{
		world:  w,
		sched:  NewScheduler(),
		rng:    rand.New(rand.NewPCG(uint64(seed), 0)),
		tracer: tracer,
		debug:  opts.Debug,
		tiles:  make(map[int]*donburi.Entry),
	}

	c.session = archetypes.Session.Spawn(w)
	components.Session.SetValue(c.session, components.SessionData{
		TileCount: ClampTileCount(opts.TileCount),
		Status:    config.StatusReady,
	})
	c.board = createBoard(w)
	return c
}

// Session returns the session singleton.
func (c *Controller) Session() *components.SessionData {
	return components.Session.Get(c.session)
}

// Scheduler exposes the controller's scheduler.
func (c *Controller) Scheduler() *Scheduler {
	return c.sched
}

// SetTileCount sets the tile count for the next start. It never changes a
// session that is already on the board.
func (c *Controller) SetTileCount(n int) int {
	s := c.Session()
	s.TileCount = ClampTileCount(n)
	return s.TileCount
}

// Start discards the current board and begins a new session.
func (c *Controller) Start() {
	s := c.Session()
	if c.span != nil {
		c.endSpan("abandoned")
	}
	c.stopTick()
	c.clearTiles()

	s.ID++
	s.Total = s.TileCount
	s.Selected = nil
	s.Ticks = 0
	s.Running = true
	s.Started = true
	s.Status = config.StatusReady

	c.spawnTiles(s.Total)
	c.tick = c.sched.Every(config.Timing.TickInterval, c.onTick)

	_, c.span = c.tracer.Start(context.Background(), "session",
		trace.WithAttributes(
			attribute.Int64("session.id", int64(s.ID)),
			attribute.Int("tile_count", s.Total),
		),
	)
	c.logf("session %d started with %d tiles", s.ID, s.Total)
}

func (c *Controller) onTick() {
	s := c.Session()
	if !s.Running {
		c.stopTick()
		return
	}
	s.Ticks++
}

// Select handles a click on the tile with the given number.
func (c *Controller) Select(number int) Outcome {
	s := c.Session()
	if !s.Running {
		return OutcomeIgnored
	}
	if number != s.NextNumber() {
		c.finish(config.StatusGameOver)
		return OutcomeMistake
	}

	s.Selected = append(s.Selected, number)
	if entry, ok := c.tiles[number]; ok {
		tile := components.Tile.Get(entry)
		tile.Selected = true
		fade := gween.New(1, 0, float32(config.Timing.RemovalDelay.Seconds()), ease.InQuad)
		donburi.Add(entry, components.Tween, &components.TweenData{Tween: fade})
	}

	id := s.ID
	c.sched.After(config.Timing.RemovalDelay, func() {
		c.removeTile(id, number)
	})

	if number == s.Total {
		c.finish(config.StatusAllCleared)
		return OutcomeCleared
	}
	return OutcomeMatch
}

// Update advances the session clock and tile animations by dt.
func (c *Controller) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	step := float32(dt.Seconds())
	components.Tween.Each(c.world, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		value, _ := tw.Update(step)
		if e.HasComponent(components.Tile) {
			components.Tile.Get(e).Alpha = float64(value)
		}
	})
	c.sched.Advance(dt)
}

// Close cancels everything the controller scheduled.
func (c *Controller) Close() {
	c.sched.Clear()
	c.tick = nil
	if c.span != nil {
		c.endSpan("closed")
	}
}

func (c *Controller) finish(status config.StatusID) {
	s := c.Session()
	s.Running = false
	s.Status = status
	c.stopTick()
	c.endSpan(status.String())
	c.logf("session %d ended: %s after %s", s.ID, status, FormatElapsed(s.Elapsed()))
}

func (c *Controller) stopTick() {
	c.tick.Cancel()
	c.tick = nil
}

// removeTile destroys a selected tile unless a newer session has started.
func (c *Controller) removeTile(sessionID uint64, number int) {
	if c.Session().ID != sessionID {
		return
	}
	entry, ok := c.tiles[number]
	if !ok {
		return
	}
	delete(c.tiles, number)
	c.destroyTile(entry)
}

func (c *Controller) endSpan(outcome string) {
	if c.span == nil {
		return
	}
	s := c.Session()
	c.span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Float64("elapsed", s.Elapsed()),
		attribute.Int("selected", len(s.Selected)),
	)
	c.span.End()
	c.span = nil
}

func (c *Controller) logf(format string, args ...any) {
	if c.debug {
		log.Printf(format, args...)
	}
}

// FormatElapsed renders elapsed seconds the way the panel shows them.
func FormatElapsed(seconds float64) string {
	return fmt.Sprintf("%.1fs", seconds)
}

// PlayLabel returns the Play/Restart button label.
func PlayLabel(running bool) string {
	if running {
		return "Restart"
	}
	return "Play"
}
