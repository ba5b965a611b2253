package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/dragboard/audio"
	"github.com/lixenwraith/dragboard/autoscroll"
	"github.com/lixenwraith/dragboard/board"
	"github.com/lixenwraith/dragboard/config"
	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/engine"
	"github.com/lixenwraith/dragboard/impact"
	"github.com/lixenwraith/dragboard/input"
	"github.com/lixenwraith/dragboard/parameter"
	"github.com/lixenwraith/dragboard/status"
)

func runCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd.Context(), opts)
		},
	}
}

func runBoard(ctx context.Context, opts *rootOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use simulate for scripted drags")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	level, _ := cfg.Log.SlogLevel()
	if f := setupLogging(opts.debug, cfg.Log.Dir, level); f != nil {
		defer f.Close()
	}
	logger := slog.Default()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()
	screen.EnableMouse(tcell.MouseMotionEvents)

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			crash(fini, "DRAGBOARD CRASHED", r)
		}
	}()

	player := audio.NewPlayer(cfg.Audio.Enabled, cfg.Audio.Volume, logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer player.Close()

	b := board.New(board.ListsFromConfig(cfg.Lists), logger)
	b.Layout(viewportSize(screen, cfg.Viewport))
	registry := dimension.NewRegistry(logger)
	b.Register(registry)

	metrics := status.NewRegistry()
	eng := engine.New(engine.Options{
		Registry: registry,
		Hooks: engine.Hooks{
			OnDragStart: func(engine.DragStart) {
				player.Play(audio.CueLift)
			},
			OnDragEnd: func(result engine.DropResult) {
				if result.Reason == engine.TriggerCancel {
					player.Play(audio.CueCancel)
				} else {
					player.Play(audio.CueDrop)
				}
				if err := b.Apply(result); err != nil {
					logger.Error("apply drop", "error", err)
				}
			},
		},
		Scroller:     b,
		AutoScroll:   cfg.AutoScrollConfig(),
		Window:       windowFor(b, cfg.Viewport),
		DropDuration: cfg.Drag.DropDuration,
		Status:       metrics,
		Logger:       logger,
	})
	defer eng.Close()
	b.OnScroll(eng.OnWindowScroll, eng.OnDroppableScroll)
	unsubscribe := eng.Subscribe(moveCues(player))
	defer unsubscribe()

	adapter := input.NewAdapter(eng, b, b, cfg.Drag.SloppyThreshold, logger)
	ended, stopEnded := sessionEnds(eng)
	defer stopEnded()
	view := newRenderer(screen, b, eng, metrics)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	// Input polling interacts directly with the screen; PollEvent returns nil after Fini
	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				crash(fini, "EVENT POLLER CRASHED", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				crash(fini, "ENGINE CRASHED", r)
			}
		}()
		if err := eng.Run(gctx, cfg.Drag.FrameInterval); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		defer fini()
		defer cancel()

		ticker := time.NewTicker(frameInterval(cfg.Drag.FrameInterval))
		defer ticker.Stop()
		view.draw()

		for {
			select {
			case <-gctx.Done():
				return nil
			case ev := <-events:
				if _, ok := ev.(*tcell.EventResize); ok {
					b.Layout(viewportSize(screen, cfg.Viewport))
					screen.Sync()
				} else if !adapter.HandleEvent(ev) && isQuit(ev) {
					if adapter.IsDragging() {
						eng.OnCancel()
					}
					return nil
				}
				view.draw()
			case <-ended:
				// Adapter state lives on this goroutine only
				if syncAdapter(adapter, eng) {
					view.draw()
				}
			case <-ticker.C:
				view.draw()
			}
		}
	})

	return g.Wait()
}

// crash restores the terminal and exits with the stack trace on stderr
func crash(fini func(), title string, r any) {
	fini()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", title, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func isQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return key.Key() == tcell.KeyCtrlC || (key.Key() == tcell.KeyRune && key.Rune() == 'q')
}

// viewportSize prefers configured dimensions over the terminal's
func viewportSize(screen tcell.Screen, vp config.ViewportConfig) (int, int) {
	w, h := screen.Size()
	if vp.Width > 0 {
		w = vp.Width
	}
	if vp.Height > 0 {
		h = vp.Height
	}
	return w, h
}

// windowFor describes the board's window; configured max scroll overrides the layout's
func windowFor(b *board.Board, vp config.ViewportConfig) autoscroll.Window {
	limit := b.WindowMaxScroll()
	if vp.MaxScrollX > 0 {
		limit.X = vp.MaxScrollX
	}
	if vp.MaxScrollY > 0 {
		limit.Y = vp.MaxScrollY
	}
	return autoscroll.Window{
		Size:      b.ViewportSize(),
		Scroll:    b.WindowScroll(),
		MaxScroll: limit,
	}
}

func frameInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return parameter.FrameUpdateInterval
	}
	return d
}

// sessionEnds signals whenever the engine returns to idle; pending signals coalesce
func sessionEnds(eng *engine.Engine) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	unsubscribe := eng.Subscribe(func(s engine.State) {
		if s.Phase() != engine.PhaseIdle {
			return
		}
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	return ch, unsubscribe
}

// syncAdapter forgets the adapter's drag once the engine ended it on its own,
// as with a rejected lift or a collection failure
func syncAdapter(adapter *input.Adapter, eng *engine.Engine) bool {
	if !adapter.IsDragging() || !eng.Settled() {
		return false
	}
	adapter.Reset()
	return true
}

// moveCues plays a tick whenever the destination slot changes mid-drag
func moveCues(player *audio.Player) func(engine.State) {
	var last *impact.Location
	dragging := false
	return func(s engine.State) {
		d, ok := s.(engine.Dragging)
		if !ok {
			dragging, last = false, nil
			return
		}
		dest := d.Drag.Impact.Destination
		if dragging && !sameLocation(last, dest) {
			player.Play(audio.CueMove)
		}
		dragging, last = true, dest
	}
}

func sameLocation(a, b *impact.Location) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
