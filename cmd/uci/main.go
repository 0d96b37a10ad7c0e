// Command uci speaks the subset of the UCI protocol that needs no search:
// setting up positions, listing moves and running perft.
package main

import (
	"flag"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	uciLoop(os.Stdin, os.Stdout)
}
