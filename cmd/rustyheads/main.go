// Command rustyheads plays a configurable number of Doppelkopf
// matches among Computer seats (four by default) and prints a box score, following
// the teacher's cmd/euchre/main.go cli.App structure.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/markushart/rustyheads/internal/catalog"
	"github.com/markushart/rustyheads/internal/display"
	"github.com/markushart/rustyheads/internal/engine"
	"github.com/markushart/rustyheads/internal/players"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	app := &cli.App{
		Name:    "rustyheads",
		Usage:   "Play Doppelkopf matches with search-driven Computer seats",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "deck-type", Value: "tournament", Usage: "tournament or with-nines"},
			&cli.IntFlag{Name: "n-matches", Value: 1, Usage: "number of matches to play"},
			&cli.IntFlag{Name: "n-players", Value: 4, Usage: "number of seats"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "RNG seed"},
			&cli.IntFlag{Name: "max-search-depth", Value: 8, Usage: "plies the search engine explores per decision"},
			&cli.IntFlag{Name: "redistribution-retries", Value: 100, Usage: "retry cap for hidden-hand redistribution"},
			&cli.StringFlag{Name: "match-type-init", Value: "", Usage: "force a match type instead of electing one by call (normal, jack-solo, queen-solo, best-solo, hearts-solo, spades-solo, cross-solo, fleshless)"},
			&cli.StringFlag{Name: "db", Value: ":memory:", Usage: "sqlite DSN backing the rule catalog"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	deckType, err := parseDeckType(c.String("deck-type"))
	if err != nil {
		return err
	}
	forcedMatchType, err := parseMatchType(c.String("match-type-init"))
	if err != nil {
		return err
	}

	adapter, err := catalog.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("opening rule catalog: %w", err)
	}
	defer adapter.Close()

	maxDepth := c.Int("max-search-depth")
	retries := c.Int("redistribution-retries")
	nPlayers := c.Int("n-players")

	roster := make([]*engine.Player, nPlayers)
	adapters := make([]engine.PlayerAdapter, nPlayers)
	for i := range roster {
		name := fmt.Sprintf("seat-%d", i)
		if i < len(players.Names) {
			name = players.Names[i]
		}
		p := engine.NewPlayer(name)
		roster[i] = p
		adapters[i] = &players.Computer{Self: p, MaxDepth: maxDepth, RetryLimit: retries}
	}

	game := &engine.Game{
		Catalog:         adapter,
		DeckType:        deckType,
		Players:         roster,
		Adapters:        adapters,
		NMatches:        c.Int("n-matches"),
		ForcedMatchType: forcedMatchType,
	}

	rng := rand.New(rand.NewSource(c.Int64("seed")))
	if err := game.Play(rng); err != nil {
		return fmt.Errorf("playing game: %w", err)
	}

	fmt.Print(display.Current.GameSummary(game))
	return nil
}

func parseDeckType(s string) (catalog.DeckType, error) {
	switch s {
	case "tournament":
		return catalog.Tournament, nil
	case "with-nines":
		return catalog.WithNines, nil
	default:
		return 0, fmt.Errorf("unknown deck-type %q (want tournament or with-nines)", s)
	}
}

func parseMatchType(s string) (catalog.MatchType, error) {
	switch s {
	case "":
		return 0, nil
	case "normal":
		return catalog.Normal, nil
	case "jack-solo":
		return catalog.JackSolo, nil
	case "queen-solo":
		return catalog.QueenSolo, nil
	case "best-solo":
		return catalog.BestSolo, nil
	case "hearts-solo":
		return catalog.HeartsSolo, nil
	case "spades-solo":
		return catalog.SpadesSolo, nil
	case "cross-solo":
		return catalog.CrossSolo, nil
	case "fleshless":
		return catalog.Fleshless, nil
	default:
		return 0, fmt.Errorf("unknown match-type-init %q", s)
	}
}
