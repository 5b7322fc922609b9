package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/phanxgames/holddrag"
)

// outcomePrinter writes every gesture outcome as it happens.
type outcomePrinter struct {
	w     io.Writer
	diary *Diary
}

func (p outcomePrinter) EmitOutcome(ev holddrag.OutcomeEvent) {
	switch ev.Kind {
	case holddrag.OutcomeTap:
		fmt.Fprintf(p.w, "tap   %s\n", p.diary.Describe(ev.Payload))
	case holddrag.OutcomeDrop:
		fmt.Fprintf(p.w, "drop  %s -> %s\n", p.diary.Describe(ev.Payload), ev.Target)
	}
}

// replay runs a gesture script headless against the sample diary and
// prints the outcomes followed by the resulting diary.
func replay(w io.Writer, cfg *holddrag.Config, logger *log.Logger, script *holddrag.Script) (*Diary, error) {
	board := holddrag.NewBoard(cfg)
	board.SetLogger(logger)
	board.SetHaptics(holddrag.HapticsFunc(func() { fmt.Fprintln(w, "pulse") }))
	diary := NewDiary()
	a := newApp(board, diary, 1, 1, logger)
	board.SetOutcomeStore(outcomePrinter{w: w, diary: diary})

	if err := script.Run(board); err != nil {
		return nil, err
	}
	if a.pending {
		a.rebuild()
	}
	printDiary(w, diary)
	return diary, nil
}

func replayFile(w io.Writer, cfg *holddrag.Config, logger *log.Logger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := holddrag.LoadScript(data)
	if err != nil {
		return err
	}
	_, err = replay(w, cfg, logger, script)
	return err
}

func printDiary(w io.Writer, d *Diary) {
	for _, meal := range meals {
		fmt.Fprintf(w, "%s:\n", titleCase(string(meal)))
		for _, e := range d.Entries(meal) {
			fmt.Fprintf(w, "  %s\n", e.Name)
		}
	}
}
