package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/saeidalz13/battleship-console/console"
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

func main() {
	if os.Getenv("STAGE") != console.StageProd {
		// a console run without a .env file is fine
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = console.StageDev
	}
	if stage != console.StageDev && stage != console.StageProd {
		panic(cerr.ErrInvalidStage(stage))
	}

	opts := []console.Option{}
	if stage == console.StageDev {
		opts = append(opts, console.WithLogger(log.New(os.Stderr, "[placement] ", log.LstdFlags)))
	}

	sp, err := console.NewSessionProcessor(console.NewScannerLineSource(os.Stdin), os.Stdout, opts...)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("placing fleet\tstage: %s\n", stage)
	if _, err := sp.Run(ctx); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			log.Println("session ended before the fleet was placed:", err)
			return
		}
		log.Fatalln(err)
	}
}
