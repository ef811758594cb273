// Package engine runs the per-frame loop: poll input, fan events out to a
// bounded worker pool, handle the keystroke, then present the frame.
package engine

import (
	"context"
	"log/slog"

	"github.com/milk9111/thegame/common"
	"github.com/milk9111/thegame/game"
	"github.com/milk9111/thegame/input"
	"github.com/milk9111/thegame/object"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Renderer presents one frame of positioned visuals.
type Renderer interface {
	Present(placements []object.Placement, fpsCap int) error
}

type Options struct {
	// Workers bounds concurrent event handlers per frame.
	Workers int
	// FPS is the frame-rate cap passed to the renderer.
	FPS    int
	Logger *slog.Logger
}

type Engine struct {
	session  *game.Session
	source   input.Source
	renderer Renderer
	tracker  input.Tracker
	workers  int
	fps      int
	frames   uint64
	logger   *slog.Logger
}

func New(session *game.Session, source input.Source, renderer Renderer, opts Options) *Engine {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = session.Logger()
	}
	return &Engine{
		session:  session,
		source:   source,
		renderer: renderer,
		workers:  opts.Workers,
		fps:      opts.FPS,
		logger:   opts.Logger,
	}
}

func (e *Engine) Frames() uint64 {
	return e.frames
}

// Begin marks the session running and loads the active map.
func (e *Engine) Begin() error {
	e.session.Start()
	e.tracker.Reset()
	if err := e.session.LoadActiveMap(); err != nil {
		e.session.Stop()
		return err
	}
	return nil
}

// Run steps frames until the session stops or ctx is done. A frame error
// stops the session, unloads the map and is returned.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.Begin(); err != nil {
		return err
	}
	defer e.session.UnloadActiveMap()

	for e.session.Running() {
		select {
		case <-ctx.Done():
			e.session.Stop()
			return ctx.Err()
		default:
		}
		if err := e.Step(ctx); err != nil {
			return err
		}
	}
	e.logger.Info("frame loop stopped", "frames", e.frames)
	return nil
}

// Step runs one frame. Event handlers may run concurrently and in any order;
// all of them finish before the keystroke is handled.
func (e *Engine) Step(ctx context.Context) error {
	err := e.step(ctx)
	if err != nil {
		e.session.Stop()
		e.logger.Error("frame failed", "frame", e.frames, "err", err)
	}
	return err
}

func (e *Engine) step(ctx context.Context) error {
	e.frames++
	frame, err := e.source.Poll()
	if err != nil {
		return errors.Wrap(err, "engine: poll input")
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, ev := range frame.Events {
		g.Go(func() error {
			return e.handleEvent(ev)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if !e.session.Running() {
		return nil
	}

	if err := e.handleClicks(); err != nil {
		return err
	}
	if keys, ok := e.tracker.Observe(frame.Keys); ok {
		if err := e.handleKeystroke(keys); err != nil {
			return err
		}
	}
	if !e.session.Running() {
		return nil
	}

	placements, err := e.session.Compose()
	if err != nil {
		return err
	}
	return e.renderer.Present(placements, e.fps)
}

// handleEvent only touches session flags and mouse state.
func (e *Engine) handleEvent(ev input.Event) error {
	switch ev.Kind {
	case input.EventQuit:
		e.session.Shutdown()
	case input.EventMouseDown:
		e.session.PressMouse(common.Pt(ev.X, ev.Y))
	case input.EventMouseUp:
		e.session.ReleaseMouse(common.Pt(ev.X, ev.Y))
	default:
		e.logger.Debug("unrecognized event", "kind", ev.Kind.String())
	}
	return nil
}

func (e *Engine) handleClicks() error {
	clicks := e.session.TakeClicks()
	for _, c := range clicks {
		mn, ok := e.session.ActiveMenu()
		if !ok {
			return nil
		}
		if _, err := mn.CallByClick(c.From.X, c.From.Y, c.To.X, c.To.Y, e.session); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) handleKeystroke(keys input.KeySet) error {
	if mn, ok := e.session.ActiveMenu(); ok {
		switch {
		case keys.Has(input.KeyUp):
			mn.FocusPrevious()
		case keys.Has(input.KeyDown):
			mn.FocusNext()
		}
		if keys.Has(input.KeyEnter) {
			return mn.ActivateFocused(e.session)
		}
		return nil
	}

	for _, h := range e.session.PlayerControlled() {
		obj, ok := e.session.Controllable(h)
		if !ok {
			continue
		}
		if err := obj.PlayerInteraction(keys, e.session); err != nil {
			return errors.Wrapf(err, "engine: keystroke for %s", obj.Base())
		}
	}
	return nil
}
