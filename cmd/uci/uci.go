package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"

	"chess-rules/chessmg"
	"chess-rules/game"
	"chess-rules/internal/oracle"
	"chess-rules/notation"
)

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	g := game.New(chessmg.StartingPosition())
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chess-rules")
			fmt.Fprintln(out, "id author chess-rules authors")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			g = game.New(chessmg.StartingPosition())
		case "quit":
			return
		case "position":
			if next, err := setPosition(tokens[1:]); err != nil {
				fmt.Fprintln(out, "info string", err)
			} else {
				g = next
			}
		case "go":
			goCommand(out, g.Position(), tokens[1:])
		case "d":
			p := g.Position()
			fmt.Fprint(out, notation.Pretty(p))
			fmt.Fprintf(out, "Fen: %s\n", notation.FormatFEN(p))
			fmt.Fprintf(out, "Key: %016X\n", p.Hash())
			fmt.Fprintf(out, "Status: %s\n", g.Status())
		case "moves":
			fmt.Fprintln(out, notation.FormatMoves(g.Moves()))
		case "undo":
			if _, ok := g.Pop(); !ok {
				fmt.Fprintln(out, "info string Nothing to undo")
			}
		default:
			fmt.Fprintln(out, "info string Unknown command", tokens[0])
		}
	}
}

// setPosition handles "startpos [moves ...]" and "fen <fields> [moves ...]".
func setPosition(args []string) (*game.Game, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("malformed position command")
	}
	rest := args[1:]
	var g *game.Game
	switch strings.ToLower(args[0]) {
	case "startpos":
		g = game.New(chessmg.StartingPosition())
	case "fen":
		end := len(rest)
		for i, tok := range rest {
			if strings.ToLower(tok) == "moves" {
				end = i
				break
			}
		}
		if end == 0 {
			return nil, fmt.Errorf("invalid fen position")
		}
		var err error
		g, err = game.NewFromFEN(strings.Join(rest[:end], " "))
		if err != nil {
			return nil, err
		}
		rest = rest[end:]
	default:
		return nil, fmt.Errorf("invalid position subcommand %q", args[0])
	}
	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return g, nil
	}
	for _, text := range rest[1:] {
		if err := g.PushText(strings.ToLower(text)); err != nil {
			return nil, fmt.Errorf("move %s not found for position %s", text, notation.FormatFEN(g.Position()))
		}
	}
	return g, nil
}

// goCommand supports "go perft <depth>"; searches are not available.
func goCommand(out io.Writer, p chessmg.Position, args []string) {
	if len(args) < 2 || strings.ToLower(args[0]) != "perft" {
		fmt.Fprintln(out, "info string Only go perft <depth> is supported")
		return
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth <= 0 {
		fmt.Fprintln(out, "info string Malformed go command option; could not convert depth")
		return
	}
	start := time.Now()
	div := chessmg.PerftDivide(p, depth)
	counts := make(map[string]uint64, len(div))
	for m, n := range div {
		counts[m.String()] = n
	}
	for _, m := range oracle.SortedKeys(counts) {
		fmt.Fprintf(out, "%s: %d\n", m, counts[m])
	}
	total := oracle.Total(counts)
	fmt.Fprintf(out, "\nNodes searched: %d\n", total)
	log.WithFields(log.Fields{"depth": depth, "nodes": total, "elapsed": time.Since(start)}).Debug("perft")
}
