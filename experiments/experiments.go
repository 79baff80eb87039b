package experiments

import (
	"context"
	"fmt"

	"boardgames/agent"
	"boardgames/config"
	"boardgames/engine"
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/game/checkers"
	"boardgames/game/tictactoe"
	"boardgames/searcher"

	"github.com/rs/zerolog/log"
)

const (
	KindMinimax = "minimax"
	KindRandom  = "random"
)

type Settings struct {
	Game     config.Game
	Games    int // Per match up
	MaxTurns int
	Seed     uint64
	OutDir   string
}

// RunDifficultyExperiment pits a random player and both difficulties against
// each other. It returns the directory holding the records.
func RunDifficultyExperiment(ctx context.Context, settings Settings) (string, error) {
	easy, err := minimaxConfig(2, settings.Game, config.Easy, true)
	if err != nil {
		return "", err
	}
	hard, err := minimaxConfig(3, settings.Game, config.Hard, true)
	if err != nil {
		return "", err
	}
	random := metrics.AgentConfig{ID: 1, Kind: KindRandom}

	matchUps := [][]metrics.AgentConfig{
		{random, easy},
		{random, hard},
		{easy, hard},
	}
	return runExperiment(ctx, "difficulty", settings, []metrics.AgentConfig{random, easy, hard}, matchUps)
}

// RunPruningExperiment plays easy searches with and without alpha-beta pruning
// against each other. Both choose the same moves; the move records show the
// nodes pruning saves.
func RunPruningExperiment(ctx context.Context, settings Settings) (string, error) {
	pruned, err := minimaxConfig(1, settings.Game, config.Easy, true)
	if err != nil {
		return "", err
	}
	exhaustive, err := minimaxConfig(2, settings.Game, config.Easy, false)
	if err != nil {
		return "", err
	}

	matchUps := [][]metrics.AgentConfig{{pruned, exhaustive}}
	return runExperiment(ctx, "pruning", settings, []metrics.AgentConfig{pruned, exhaustive}, matchUps)
}

func minimaxConfig(id int, g config.Game, d config.Difficulty, pruning bool) (metrics.AgentConfig, error) {
	depth, err := config.Depth(g, d)
	if err != nil {
		return metrics.AgentConfig{}, err
	}
	return metrics.AgentConfig{ID: id, Kind: KindMinimax, Difficulty: string(d), Depth: depth, Pruning: pruning}, nil
}

func runExperiment(ctx context.Context, name string, settings Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment on %s...", name, settings.Game)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < settings.Games; i++ {
			// Alternate the starting agent
			starter := game.Human
			if i%2 == 1 {
				starter = game.Machine
			}
			count++
			outcome, gameMetric, moveMetrics, err := runGame(ctx, settings, config1, config2, starter, settings.Seed+uint64(count))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with outcome: %v", mi+1, len(matchUps), i+1, outcome)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(settings.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame seats config1 as HUMAN and config2 as MACHINE
func runGame(ctx context.Context, settings Settings, config1, config2 metrics.AgentConfig, starter game.Player, seed uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	switch settings.Game {
	case config.TicTacToe:
		e := engine.LocalEngine(
			tictactoe.NewGame(starter, tictactoe.X),
			createAgent(config1, tictactoe.BestMove, tictactoe.State.LegalMoves, seed),
			createAgent(config2, tictactoe.BestMove, tictactoe.State.LegalMoves, seed),
			settings.MaxTurns,
		)
		return e.Run(ctx)
	case config.Checkers:
		e := engine.LocalEngine(
			checkers.NewGame(starter, checkers.Blue),
			createAgent(config1, checkers.BestMove, checkers.State.LegalMoves, seed),
			createAgent(config2, checkers.BestMove, checkers.State.LegalMoves, seed),
			settings.MaxTurns,
		)
		return e.Run(ctx)
	}
	return game.Ongoing, metrics.GameMetric{}, nil, fmt.Errorf("%w: %q", config.ErrUnknownGame, settings.Game)
}

func createAgent[S, M any](c metrics.AgentConfig, driver agent.Driver[S, M], moves agent.Moves[S, M], seed uint64) agent.Agent[S, M] {
	if c.Kind == KindRandom {
		return agent.NewRandomAgent(moves, seed)
	}
	options := []searcher.Option{}
	if !c.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return agent.NewMinimaxAgent(driver, c.Depth, options...)
}
