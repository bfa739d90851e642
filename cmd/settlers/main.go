package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"hex-settlers/internal/board"
	"hex-settlers/internal/config"
	"hex-settlers/internal/database"
	"hex-settlers/internal/engine"
	"hex-settlers/internal/game"
	"hex-settlers/internal/logging"
	"hex-settlers/internal/protocol"
	"hex-settlers/pkg/maps"
)

const usage = `usage: settlers [-config dir] <command> [args]

commands:
  simulate            play a bot game and save it
  list                list saved games
  show <game-id>      print a saved game
  history <game-id>   print a saved game's event log
  delete <game-id>    delete a saved game
  maps                list available maps
`

func main() {
	configDir := flag.String("config", ".", "Directory holding "+config.FileName)
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	if err := maps.LoadAll(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load maps")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(ctx, cfg, log, args[0], args[1:]); err != nil {
		log.Error().Err(err).Str("command", args[0]).Msg("Command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, cmd string, args []string) error {
	if cmd == "maps" {
		return listMaps()
	}

	db, err := database.New(cfg.DB.Path, log)
	if err != nil {
		return err
	}
	defer db.Close()

	switch cmd {
	case "simulate":
		return simulate(ctx, cfg, db, log, args)
	case "list":
		return listGames(ctx, db)
	}

	if len(args) != 1 {
		return fmt.Errorf("%s needs a game id", cmd)
	}
	switch cmd {
	case "show":
		return showGame(ctx, db, args[0])
	case "history":
		return showHistory(ctx, db, args[0])
	case "delete":
		return db.DeleteGame(ctx, args[0])
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func simulate(ctx context.Context, cfg *config.Config, db *database.DB, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	seed := fs.Int64("seed", cfg.Game.Seed, "Random seed, 0 picks one")
	mapID := fs.String("map", cfg.Game.Map, "Map ID, or \"random\"")
	players := fs.Int("players", cfg.Game.Players, "Number of players")
	maxActions := fs.Int("max-actions", 20000, "Stop after this many actions")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	b, err := buildBoard(*mapID, *seed)
	if err != nil {
		return err
	}

	mode, err := game.ParseRoadMode(cfg.Game.LongestRoad)
	if err != nil {
		return err
	}
	settings := game.Settings{
		MapID:         *mapID,
		VictoryPoints: cfg.Game.VictoryPoints,
		RoadMode:      mode,
	}

	rng := rand.New(rand.NewSource(*seed))
	colors := game.AllColors()
	var seats []*game.Player
	for i := 0; i < *players && i < len(colors); i++ {
		p := game.NewPlayer(fmt.Sprintf("p%d", i+1), fmt.Sprintf("Player %d", i+1), colors[i])
		p.DiceRoll = rng.Intn(6) + rng.Intn(6) + 2
		seats = append(seats, p)
	}

	g, err := game.NewGame(settings, b, seats)
	if err != nil {
		return err
	}

	e := engine.New(g, db, log)
	if err := e.Start(ctx); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go e.Run(runCtx)

	log.Info().Str("game", g.ID).Str("map", *mapID).Int64("seed", *seed).Int("players", len(seats)).Msg("Simulating game")

	bot := engine.NewBot(*seed)
	for i := 0; i < *maxActions; i++ {
		var msg *protocol.Message
		var err error
		e.View(func(g *game.GameState) { msg, err = bot.Next(g) })
		if err != nil {
			return err
		}
		if msg == nil {
			break
		}

		res, err := e.Submit(runCtx, msg)
		if err != nil {
			return err
		}
		if res.Ended != nil {
			fmt.Printf("%s wins in round %d\n", res.Ended.WinnerName, res.State.Round)
			break
		}
	}

	fmt.Println(g.ID)
	return nil
}

func buildBoard(mapID string, seed int64) (*board.Board, error) {
	var m *maps.Map
	if mapID == "random" {
		opts := maps.DefaultOptions()
		opts.Seed = seed
		generated, err := maps.NewGenerator(opts).Generate()
		if err != nil {
			return nil, err
		}
		m = generated
	} else if m = maps.Get(mapID); m == nil {
		return nil, fmt.Errorf("unknown map %q", mapID)
	}
	return maps.Build(m)
}

func listMaps() error {
	for _, info := range maps.List() {
		fmt.Printf("%-12s %-16s radius %d, %d tiles, %d ports\n", info.ID, info.Name, info.Radius, info.TileCount, info.PortCount)
	}
	return nil
}

func listGames(ctx context.Context, db *database.DB) error {
	games, err := db.ListGames(ctx)
	if err != nil {
		return err
	}
	for _, g := range games {
		winner := "-"
		if g.WinnerID.Valid {
			winner = g.WinnerID.String
		}
		fmt.Printf("%s  %-10s %-8s round %-3d %d players  winner %s  %s\n",
			g.ID, g.MapID, g.Status, g.Round, g.PlayerCount, winner, g.UpdatedAt.Format(time.RFC3339))
	}
	return nil
}

func showGame(ctx context.Context, db *database.DB, id string) error {
	data, err := db.LoadGame(ctx, id)
	if err != nil {
		return err
	}
	b, err := game.BoardFor(data)
	if err != nil {
		return err
	}
	g, err := game.Restore(b, data)
	if err != nil {
		return err
	}

	fmt.Printf("Game %s on %s, round %d, %s\n", g.ID, g.Settings.MapID, g.Round, g.Phase)
	for _, p := range g.Players {
		marker := " "
		if p.ID == g.ActivePlayerID() {
			marker = "*"
		}
		fmt.Printf("%s %-10s %-6s %2d VP  road %2d  knights %d  %v\n",
			marker, p.Name, p.Color, p.VictoryPoints(), p.RoadLength, p.KnightsPlayed, p.Resources)
	}
	return nil
}

func showHistory(ctx context.Context, db *database.DB, id string) error {
	events, err := db.GetGameHistory(ctx, id)
	if err != nil {
		return err
	}
	for _, ev := range events {
		fmt.Printf("[%3d %-8s] %-14s %s\n", ev.Round, ev.Phase, ev.EventType, ev.Message)
	}
	return nil
}
