package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"boardgames/config"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunDifficultyExperiment(t *testing.T) {
	dir, err := RunDifficultyExperiment(context.Background(), Settings{
		Game:     config.TicTacToe,
		Games:    2,
		MaxTurns: 9,
		Seed:     1,
		OutDir:   t.TempDir(),
	})
	require.NoError(t, err)

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, 4)
	require.Equal(t, []string{"3", KindMinimax, "HARD", "9", "true"}, configs[3])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 1+3*2)
	require.Equal(t, "HUMAN", games[1][3])
	require.Equal(t, "MACHINE", games[2][3])
	for _, row := range games[1:] {
		require.NotEqual(t, "ONGOING", row[4], "Tic-tac-toe always finishes within nine moves")
	}
	// Perfect play never loses: easy (HUMAN) against hard (MACHINE)
	for _, row := range games[5:] {
		require.NotEqual(t, "HUMAN", row[4])
	}

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 1)
}

func TestRunPruningExperiment(t *testing.T) {
	dir, err := RunPruningExperiment(context.Background(), Settings{
		Game:     config.Checkers,
		Games:    1,
		MaxTurns: 6,
		Seed:     1,
		OutDir:   t.TempDir(),
	})
	require.NoError(t, err)

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "ONGOING", games[1][4])
	require.Equal(t, "6", games[1][8])

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Len(t, moves, 1+6)
}

func TestUnknownGame(t *testing.T) {
	_, err := RunDifficultyExperiment(context.Background(), Settings{Game: "chess", Games: 1, OutDir: t.TempDir()})

	require.ErrorIs(t, err, config.ErrUnknownGame)
}
