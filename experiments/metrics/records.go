package metrics

import (
	"time"

	"boardgames/game"
	"boardgames/searcher"
)

// AgentConfig identifies one side of a match-up
type AgentConfig struct {
	ID         int
	Kind       string // minimax or random
	Difficulty string
	Depth      int
	Pruning    bool
}

type MoveMetric struct {
	Step   int
	Player game.Player
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Outcome        game.Outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, playing HUMAN
	Agent2 int // AgentConfig.ID, playing MACHINE
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
