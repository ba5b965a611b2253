package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/dragboard/board"
	"github.com/lixenwraith/dragboard/config"
	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/engine"
	"github.com/lixenwraith/dragboard/event"
	"github.com/lixenwraith/dragboard/status"
	"github.com/lixenwraith/dragboard/vmath"
)

const (
	simulateWidth  = 80
	simulateHeight = 24
)

// Script is a scripted sequence of drag events
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step names an event and, for events that carry one, its payload fields
type Step struct {
	Event string    `yaml:"event"`
	Args  yaml.Node `yaml:"args"`
}

func simulateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <script.yaml>",
		Short: "Replay a scripted drag against the configured board and print the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			level, _ := cfg.Log.SlogLevel()
			if f := setupLogging(opts.debug, cfg.Log.Dir, level); f != nil {
				defer f.Close()
			}

			script, err := loadScript(args[0])
			if err != nil {
				return err
			}
			return simulate(cmd.OutOrStdout(), cfg, script)
		},
	}
}

func loadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading script %s: %w", path, err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parsing script %s: %w", path, err)
	}
	return s, nil
}

// simulate runs every step to quiescence with drop animations disabled
func simulate(w io.Writer, cfg config.Config, script Script) error {
	logger := slog.Default()

	width, height := cfg.Viewport.Width, cfg.Viewport.Height
	if width <= 0 {
		width = simulateWidth
	}
	if height <= 0 {
		height = simulateHeight
	}

	b := board.New(board.ListsFromConfig(cfg.Lists), logger)
	b.Layout(width, height)
	registry := dimension.NewRegistry(logger)
	b.Register(registry)

	metrics := status.NewRegistry()
	var applyErr error
	eng := engine.New(engine.Options{
		Registry: registry,
		Hooks: engine.Hooks{
			OnDragStart: func(start engine.DragStart) {
				fmt.Fprintf(w, "LIFT %s %s[%d]\n", start.DraggableID, start.Source.DroppableID, start.Source.Index)
			},
			OnDragEnd: func(result engine.DropResult) {
				fmt.Fprintln(w, formatResult(result))
				if err := b.Apply(result); err != nil && applyErr == nil {
					applyErr = err
				}
			},
		},
		Scroller:     b,
		AutoScroll:   cfg.AutoScrollConfig(),
		Window:       windowFor(b, cfg.Viewport),
		DropDuration: 0,
		Status:       metrics,
		Logger:       logger,
	})
	defer eng.Close()
	b.OnScroll(eng.OnWindowScroll, eng.OnDroppableScroll)

	for i, step := range script.Steps {
		t, ok := event.ParseEventType(step.Event)
		if !ok {
			return fmt.Errorf("step %d: unknown event %q", i+1, step.Event)
		}
		payload := event.NewPayloadStruct(t)
		if payload != nil && !step.Args.IsZero() {
			if err := step.Args.Decode(payload); err != nil {
				return fmt.Errorf("step %d: decoding %s args: %w", i+1, t, err)
			}
		}
		if lift, ok := payload.(*event.LiftPayload); ok && vmath.IsEqual(lift.Client, vmath.Origin) {
			if center, found := b.Center(lift.DraggableID); found {
				lift.Client = center
			}
		}
		eng.Dispatch(t, payload)
		eng.Pump()
		if applyErr != nil {
			return fmt.Errorf("step %d: %w", i+1, applyErr)
		}
	}

	for _, l := range b.Snapshot() {
		labels := make([]string, 0, len(l.Items))
		for _, it := range l.Items {
			labels = append(labels, it.Label)
		}
		fmt.Fprintf(w, "%s: %s\n", l.ID, strings.Join(labels, ", "))
	}
	fmt.Fprintln(w, strings.Join(metrics.Snapshot(), " "))
	return nil
}

func formatResult(r engine.DropResult) string {
	dest := "none"
	if r.Destination != nil {
		dest = fmt.Sprintf("%s[%d]", r.Destination.DroppableID, r.Destination.Index)
	}
	return fmt.Sprintf("%s %s %s[%d] -> %s", r.Reason, r.DraggableID, r.Source.DroppableID, r.Source.Index, dest)
}
