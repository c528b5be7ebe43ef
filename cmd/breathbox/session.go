package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/osa030/breathbox/internal/app/notification"
	"github.com/osa030/breathbox/internal/app/sequencer"
	"github.com/osa030/breathbox/internal/app/settings"
	"github.com/osa030/breathbox/internal/infra/clock"
	"github.com/osa030/breathbox/internal/infra/config"
	"github.com/osa030/breathbox/internal/ui"
)

const loopBuffer = 64

// session wires the clock loop, the sequencer and its surfaces.
type session struct {
	store   *settings.Store
	loop    *clock.Loop
	manager *notification.Manager
	seq     *sequencer.Sequencer
}

func newSession(cfg *config.Config, store *settings.Store) *session {
	loop := clock.NewLoop(loopBuffer)
	manager := notification.NewManager()
	manager.Subscribe(ui.LogSurface{})

	seq := sequencer.New(sequencer.Config{
		TickInterval: cfg.TickInterval(),
		CycleGap:     cfg.CycleGap(),
	}, store, manager, loop)

	return &session{
		store:   store,
		loop:    loop,
		manager: manager,
		seq:     seq,
	}
}

func (s *session) close() {
	zlog.Debug().Msgf("session closed: subscribers=%d signals=%d",
		s.manager.SubscriberCount(), s.manager.SequenceNo())
	s.manager.Close()
}

// runLoop runs the clock loop until ctx is cancelled.
func (s *session) runLoop(ctx context.Context) error {
	if err := s.loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "clock loop failed")
	}
	return nil
}

// sync runs f on the loop and waits for it to finish.
func (s *session) sync(f func()) error {
	done := make(chan struct{})
	if err := s.loop.Post(func() {
		f()
		close(done)
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-s.loop.Done():
		return clock.ErrLoopStopped
	}
}

// runTerminal runs the full-screen UI until the user quits.
func (s *session) runTerminal() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := ui.NewModel(ui.NewDispatcher(s.loop.Post, s.seq), s.store)
	program := tea.NewProgram(model, tea.WithAltScreen())
	surfaceID := s.manager.Subscribe(ui.NewSurface(program))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.runLoop(gctx)
	})
	g.Go(func() error {
		defer cancel()
		// Signals after exit must not reach the stopped program.
		defer s.manager.Unsubscribe(surfaceID)
		if _, err := program.Run(); err != nil {
			return errors.Wrap(err, "terminal UI failed")
		}
		zlog.Info().Msg("Terminal UI closed")
		return nil
	})
	return g.Wait()
}

// finishWatcher closes done when the session finishes.
type finishWatcher struct {
	sequencer.NopSurface
	once sync.Once
	done chan struct{}
}

func (w *finishWatcher) Finished() {
	w.once.Do(func() { close(w.done) })
}

// runHeadless starts a session immediately and logs it until it finishes
// or a signal resets it.
func (s *session) runHeadless() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := &finishWatcher{done: make(chan struct{})}
	watcherID := s.manager.Subscribe(watcher)
	defer s.manager.Unsubscribe(watcherID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.runLoop(gctx)
	})
	g.Go(func() error {
		defer cancel()

		started := time.Now()
		if err := s.sync(s.seq.Start); err != nil {
			return errors.Wrap(err, "failed to start session")
		}

		select {
		case <-watcher.done:
			var status sequencer.Status
			if err := s.sync(func() { status = s.seq.Status() }); err != nil {
				return err
			}
			zlog.Info().Msgf("Session finished: cycles=%d elapsed=%v",
				status.CyclesCompleted, time.Since(started).Round(100*time.Millisecond))
		case <-sigCh:
			zlog.Info().Msg("Received shutdown signal, resetting session...")
			if err := s.sync(s.seq.Reset); err != nil {
				return err
			}
		case <-gctx.Done():
		}
		return nil
	})
	return g.Wait()
}
