package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScenarioSession(t *testing.T) *Session {
	t.Helper()
	b, err := NewBoardFromLayout(NewPool(), scenarioLayout, zeroSource{})
	require.NoError(t, err)
	return NewSession(b)
}

func TestSessionWinPaysMultiplierTimesWager(t *testing.T) {
	s := newScenarioSession(t)
	require.NoError(t, s.SetWager(10))
	assert.Equal(t, StatePlaying, s.State())

	for i := 0; i < 3; i++ {
		assert.Equal(t, StatusPending, s.Outcome().Status)
		rev, err := s.PlayTurn()
		require.NoError(t, err)
		assert.Equal(t, 15, rev.Multiplier)
	}

	assert.Equal(t, StateWon, s.State())
	assert.Equal(t, Outcome{Status: StatusWon, Multiplier: 15, Payout: 150}, s.Outcome())
	assert.Equal(t, 3, s.Turns())
	assert.Equal(t, 10, s.Wager())
}

func TestSessionSetWager(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		err    error
	}{
		{name: "zero", amount: 0, err: ErrInvalidWager},
		{name: "negative", amount: -5, err: ErrInvalidWager},
		{name: "overflowing payout", amount: math.MaxInt, err: ErrInvalidWager},
		{name: "positive", amount: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScenarioSession(t)
			err := s.SetWager(tt.amount)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Equal(t, StateAwaitingWager, s.State())
				assert.Zero(t, s.Wager())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.amount, s.Wager())
		})
	}
}

func TestSessionInvalidWagerThenValid(t *testing.T) {
	s := newScenarioSession(t)
	require.ErrorIs(t, s.SetWager(0), ErrInvalidWager)
	require.ErrorIs(t, s.SetWager(-5), ErrInvalidWager)
	require.NoError(t, s.SetWager(25))
	assert.Equal(t, 25, s.Wager())
}

func TestSessionWagerLocked(t *testing.T) {
	s := newScenarioSession(t)
	require.NoError(t, s.SetWager(10))
	require.ErrorIs(t, s.SetWager(20), ErrWagerLocked)
	assert.Equal(t, 10, s.Wager())
}

func TestSessionPlayTurnRequiresWager(t *testing.T) {
	s := newScenarioSession(t)
	_, err := s.PlayTurn()
	require.ErrorIs(t, err, ErrWagerRequired)
	assert.Len(t, s.Board().Hidden(), 9)
}

func TestSessionPlayAfterWin(t *testing.T) {
	s := newScenarioSession(t)
	require.NoError(t, s.SetWager(10))
	for s.State() != StateWon {
		_, err := s.PlayTurn()
		require.NoError(t, err)
	}

	hidden := s.Board().Hidden()
	before := s.Board().Render()

	_, err := s.PlayTurn()
	require.ErrorIs(t, err, ErrGameAlreadyWon)
	assert.Equal(t, hidden, s.Board().Hidden())
	assert.Equal(t, before, s.Board().Render())
	assert.Equal(t, 3, s.Turns())
	assert.Equal(t, 150, s.Outcome().Payout)

	require.ErrorIs(t, s.SetWager(5), ErrWagerLocked)
}

func TestSessionsAlwaysTerminate(t *testing.T) {
	pool := NewPool()
	rng := NewSource(2024)

	for i := 0; i < 10000; i++ {
		s := New(pool, rng)
		require.NoError(t, s.SetWager(1))

		for s.State() != StateWon {
			_, err := s.PlayTurn()
			require.NoError(t, err, "session %d", i)
			require.LessOrEqual(t, s.Turns(), 9, "session %d exceeded 9 reveals", i)
		}

		out := s.Outcome()
		require.GreaterOrEqual(t, s.Turns(), 3)
		chosen := s.Board().Chosen()
		require.Contains(t, chosen[:], out.Multiplier)
		require.Equal(t, out.Multiplier, out.Payout)
		require.Equal(t, 3, s.Board().RevealedCount(out.Multiplier))
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "won", StatusWon.String())
}
