package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardgames/agent"
	"boardgames/config"
	"boardgames/engine"
	"boardgames/experiments"
	"boardgames/game"
	"boardgames/game/checkers"
	"boardgames/game/tictactoe"
	"boardgames/render"
	"boardgames/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: boardgames <command> [flags]

commands:
  serve       answer best-move requests over HTTP and websocket
  selfplay    play one logged game between two difficulties
  experiment  play difficulty and pruning match-ups and write CSV records
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	cfg, err := config.Load(command, os.Args[2:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch command {
	case "serve":
		err = worker.NewServer(cfg.SearchTimeout).ListenAndServe(ctx, cfg.Addr)
	case "selfplay":
		err = runSelfPlay(ctx, cfg)
	case "experiment":
		err = runExperiments(ctx, cfg)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", command)
	}
}

// runSelfPlay seats the first difficulty as HUMAN, moving first, against the
// second as MACHINE
func runSelfPlay(ctx context.Context, cfg config.Config) error {
	first, err := config.Depth(cfg.Game, cfg.First)
	if err != nil {
		return err
	}
	second, err := config.Depth(cfg.Game, cfg.Second)
	if err != nil {
		return err
	}
	r := render.New(os.Stdout)

	switch cfg.Game {
	case config.TicTacToe:
		e := engine.LocalEngine(
			tictactoe.NewGame(game.Human, tictactoe.X),
			agent.NewMinimaxAgent(tictactoe.BestMove, first),
			agent.NewMinimaxAgent(tictactoe.BestMove, second),
			cfg.MaxTurns,
		)
		fmt.Println(r.TicTacToe(e.State))
		return selfPlay(ctx, e, r.TicTacToe)
	case config.Checkers:
		e := engine.LocalEngine(
			checkers.NewGame(game.Human, checkers.Blue),
			agent.NewMinimaxAgent(checkers.BestMove, first),
			agent.NewMinimaxAgent(checkers.BestMove, second),
			cfg.MaxTurns,
		)
		fmt.Println(r.Checkers(e.State))
		return selfPlay(ctx, e, r.Checkers)
	}
	return fmt.Errorf("%w: %q", config.ErrUnknownGame, cfg.Game)
}

func selfPlay[S engine.State[S, M], M any](ctx context.Context, e *engine.Engine[S, M], draw func(S) string) error {
	e.Observe = func(turn int, player game.Player, move M, state S) {
		fmt.Printf("\nturn %d: %v plays %v\n%s\n", turn, player, move, draw(state))
	}
	outcome, gameMetric, _, err := e.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\n%v after %d moves in %v\n", outcome, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond))
	return nil
}

func runExperiments(ctx context.Context, cfg config.Config) error {
	settings := experiments.Settings{
		Game:     cfg.Game,
		Games:    cfg.Games,
		MaxTurns: cfg.MaxTurns,
		Seed:     cfg.Seed,
		OutDir:   cfg.OutDir,
	}
	if _, err := experiments.RunDifficultyExperiment(ctx, settings); err != nil {
		return err
	}
	_, err := experiments.RunPruningExperiment(ctx, settings)
	return err
}
