package console

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type SessionProcessor struct {
	src    LineSource
	sink   io.Writer
	fleet  []*mb.Ship
	logger *log.Logger
	board  *mb.Board
}

type Option func(*SessionProcessor) error

func NewSessionProcessor(src LineSource, sink io.Writer, optFuncs ...Option) (*SessionProcessor, error) {
	sp := SessionProcessor{
		src:   src,
		sink:  sink,
		board: mb.NewBoard(),
	}
	for _, opt := range optFuncs {
		if err := opt(&sp); err != nil {
			return nil, err
		}
	}

	if sp.fleet == nil {
		sp.fleet = mb.NewFleet()
	}
	// the sink is usually the player's terminal; stay quiet unless asked
	if sp.logger == nil {
		sp.logger = log.New(io.Discard, "", 0)
	}

	return &sp, nil
}

func WithFleet(fleet []*mb.Ship) Option {
	return func(sp *SessionProcessor) error {
		sp.fleet = fleet
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(sp *SessionProcessor) error {
		sp.logger = logger
		return nil
	}
}

func (sp *SessionProcessor) Board() *mb.Board {
	return sp.board
}

// Run asks for every ship of the fleet in turn and re-prompts until each
// one is placed. It returns the board once the fleet is complete, or the
// error that stopped the session (a wrapped io.EOF when input runs out).
func (sp *SessionProcessor) Run(ctx context.Context) (*mb.Board, error) {
	if err := sp.write(sp.board.Render()); err != nil {
		return sp.board, err
	}

	for _, ship := range sp.fleet {
		if err := sp.write(promptForShip(ship) + "\n"); err != nil {
			return sp.board, err
		}
		if err := sp.placeShip(ctx, ship); err != nil {
			return sp.board, err
		}
		if err := sp.write(sp.board.Render()); err != nil {
			return sp.board, err
		}
	}

	return sp.board, nil
}

func (sp *SessionProcessor) placeShip(ctx context.Context, ship *mb.Ship) error {
placementLoop:
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := sp.readLine(ctx)
		if err != nil {
			return fmt.Errorf("reading coordinates of %s: %w", ship.Name(), err)
		}
		if strings.TrimSpace(line) == "" {
			continue placementLoop
		}

		a, z, err := mb.ParsePlacementLine(line)
		if err != nil {
			sp.logger.Printf("rejected input\tship: %s\tline: %q\terr: %s", ship.Name(), line, err)
			if err := sp.write(rejectionMessage(err, ship) + "\n"); err != nil {
				return err
			}
			continue placementLoop
		}

		placement, err := sp.board.PlaceShip(a, z, ship)
		if err != nil {
			sp.logger.Printf("rejected placement\tship: %s\tfrom: %s\tto: %s\terr: %s", ship.Name(), a.Label(), z.Label(), err)
			if err := sp.write(rejectionMessage(err, ship) + "\n"); err != nil {
				return err
			}
			continue placementLoop
		}

		sp.logger.Printf("ship placed\tship: %s\tmarker: %s\torientation: %s", ship.Name(), ship.Uuid(), placement.Orientation)
		return nil
	}
}

type readResult struct {
	line string
	err  error
}

// readLine gives up as soon as ctx is done. The pending read is left
// behind and its line, if any, is dropped.
func (sp *SessionProcessor) readLine(ctx context.Context) (string, error) {
	resultChan := make(chan readResult, 1)
	go func() {
		line, err := sp.src.ReadLine()
		resultChan <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resultChan:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return res.line, res.err
	}
}

func (sp *SessionProcessor) write(s string) error {
	_, err := io.WriteString(sp.sink, s)
	return err
}
