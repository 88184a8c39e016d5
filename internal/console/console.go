// Package console is a plain line-mode front end. It reads commands from an
// io.Reader and prints the game to an io.Writer, for terminals where the
// full-screen UI is unavailable.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/tinytelemetry/memory/internal/game"
	"github.com/tinytelemetry/memory/internal/loop"
	"github.com/tinytelemetry/memory/internal/model"
	"golang.org/x/sync/errgroup"
)

// Config holds console runtime options.
type Config struct {
	MismatchDelay time.Duration
	TickInterval  time.Duration
	Seed          uint64
	// Observers receive the same instructions as the console renderer.
	Observers []model.Renderer
}

var errQuit = errors.New("console: quit")

// Run plays games until the input is exhausted, a quit command is read, or
// ctx is cancelled. All engine calls happen on a single loop goroutine.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = model.DefaultTickInterval
	}

	lp := loop.New(0)
	r := NewRenderer(out)
	var renderer model.Renderer = r
	if len(cfg.Observers) > 0 {
		renderer = append(game.MultiRenderer{r}, cfg.Observers...)
	}
	eng := game.New(renderer, model.SystemClock{}, lp, game.Config{
		MismatchDelay: cfg.MismatchDelay,
		Seed:          cfg.Seed,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return lp.Run(gctx)
	})

	g.Go(func() error {
		lp.Every(gctx, cfg.TickInterval, eng.Tick)
		return nil
	})

	g.Go(func() error {
		err := readLines(gctx, in, func(line string) bool {
			cmd, err := ParseCommand(line)
			if err != nil {
				lp.Do(func() { fmt.Fprintln(out, err) })
				return true
			}
			if cmd.Kind == CommandQuit {
				return false
			}
			lp.Do(func() { apply(eng, r, out, cmd) })
			return true
		})
		if err != nil {
			return err
		}

		closed := make(chan struct{})
		if lp.Do(func() {
			eng.Close()
			close(closed)
		}) {
			select {
			case <-closed:
			case <-lp.Done():
			}
		}
		return errQuit
	})

	err := g.Wait()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func apply(eng *game.Engine, r *Renderer, out io.Writer, cmd Command) {
	switch cmd.Kind {
	case CommandSelect:
		if !eng.Select(cmd.Position) {
			log.Printf("console: ignored selection of card %d", cmd.Position)
		}
	case CommandReset:
		eng.NewGame()
	case CommandBoard:
		r.PrintBoard()
	case CommandHelp:
		fmt.Fprintln(out, helpText)
	}
}

// readLines calls handle for every input line until handle returns false,
// the input ends, or ctx is done. Input ending is not an error.
func readLines(ctx context.Context, in io.Reader, handle func(string) bool) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("reading input: %w", err)
					}
				default:
				}
				return nil
			}
			if !handle(line) {
				return nil
			}
		}
	}
}
