// Command diagram writes an SVG picture of a position, optionally after
// playing a list of UCI moves from it.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"chess-rules/chessmg"
	"chess-rules/diagram"
	"chess-rules/game"
	"chess-rules/notation"
)

func main() {
	fen := flag.String("fen", notation.StartFEN, "FEN string (defaults to initial position)")
	moves := flag.String("moves", "", "Space-separated UCI moves to play before drawing")
	out := flag.String("o", "", "Output file (defaults to stdout)")
	size := flag.Int("size", 48, "Square size in pixels")
	flip := flag.Bool("flip", false, "Draw the board from Black's side")
	coords := flag.Bool("coords", true, "Draw file and rank labels")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	g, err := game.NewFromFEN(*fen)
	if err != nil {
		log.WithError(err).Fatal("parse fen")
	}
	var last chessmg.Bitboard
	for _, text := range strings.Fields(*moves) {
		if err := g.PushText(text); err != nil {
			log.WithError(err).WithField("move", text).Fatal("play move")
		}
		hist := g.Moves()
		last = diagram.MoveHighlight(hist[len(hist)-1])
	}
	log.WithFields(log.Fields{"fen": notation.FormatFEN(g.Position()), "status": g.Status()}).Debug("drawing")

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.WithError(err).Fatal("create output")
		}
		defer f.Close()
		w = f
	}
	opts := diagram.Options{SquareSize: *size, Flip: *flip, Highlight: last, Coordinates: *coords}
	if err := diagram.Write(w, g.Position(), opts); err != nil {
		log.WithError(err).Fatal("write diagram")
	}
}
