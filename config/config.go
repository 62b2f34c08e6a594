// Package config holds the simulator configuration, its defaults and the
// eager validation every run goes through.
package config

import (
	"errors"
	"fmt"

	"github.com/signalnine/haikyu-sim/gosim/engine"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the runtime configuration of a simulation run.
type Config struct {
	NumGames               int    `json:"num_games" yaml:"num_games" env:"NUM_GAMES"`
	PointsToWin            int    `json:"points_to_win" yaml:"points_to_win" env:"POINTS_TO_WIN"`
	HandSizePerPlayer      int    `json:"hand_size_per_player" yaml:"hand_size_per_player" env:"HAND_SIZE_PER_PLAYER"`
	PlayersPerTeam         int    `json:"players_per_team" yaml:"players_per_team" env:"PLAYERS_PER_TEAM"`
	IncludeSpecials        bool   `json:"include_specials" yaml:"include_specials" env:"INCLUDE_SPECIALS"`
	BlockWindow            int    `json:"block_window" yaml:"block_window" env:"BLOCK_WINDOW"`
	TwoTouchPenalty        int    `json:"two_touch_penalty" yaml:"two_touch_penalty" env:"TWO_TOUCH_PENALTY"`
	TwoTouchPenaltyEnabled bool   `json:"two_touch_penalty_enabled" yaml:"two_touch_penalty_enabled" env:"TWO_TOUCH_PENALTY_ENABLED"`
	RallyCap               int    `json:"rally_cap" yaml:"rally_cap" env:"RALLY_CAP"`
	Seed                   *int64 `json:"seed,omitempty" yaml:"seed,omitempty" env:"SEED"`
	LogRallies             bool   `json:"log_rallies" yaml:"log_rallies" env:"LOG_RALLIES"`

	StartingServer int    `json:"starting_server" yaml:"starting_server" env:"STARTING_SERVER"`
	Workers        int    `json:"workers" yaml:"workers" env:"WORKERS"`
	PolicyA        string `json:"policy_a" yaml:"policy_a" env:"POLICY_A"`
	PolicyB        string `json:"policy_b" yaml:"policy_b" env:"POLICY_B"`
}

// Default returns the standard game setup: three players of five cards a
// side, first to 25.
func Default() Config {
	return Config{
		NumGames:               10,
		PointsToWin:            25,
		HandSizePerPlayer:      5,
		PlayersPerTeam:         3,
		IncludeSpecials:        false,
		BlockWindow:            0,
		TwoTouchPenalty:        2,
		TwoTouchPenaltyEnabled: true,
		RallyCap:               40,
		LogRallies:             true,
		PolicyA:                engine.PolicyBasic.String(),
		PolicyB:                engine.PolicyBasic.String(),
	}
}

// TeamHandSize is the number of cards a team holds after replenishment.
func (c Config) TeamHandSize() int {
	return c.HandSizePerPlayer * c.PlayersPerTeam
}

// RallyRules extracts the settings the rally engine needs.
func (c Config) RallyRules() engine.RallyRules {
	return engine.RallyRules{
		BlockWindow:     c.BlockWindow,
		TwoTouchPenalty: c.TwoTouchPenalty,
		PenaltyEnabled:  c.TwoTouchPenaltyEnabled,
		RallyCap:        c.RallyCap,
	}
}

// Policies resolves the policy kinds for teams A and B.
func (c Config) Policies() ([2]engine.PolicyKind, error) {
	var kinds [2]engine.PolicyKind
	for i, name := range [2]string{c.PolicyA, c.PolicyB} {
		k, err := engine.ParsePolicyKind(name)
		if err != nil {
			return kinds, fmt.Errorf("%w: team %d: %w", ErrInvalid, i, err)
		}
		kinds[i] = k
	}
	return kinds, nil
}

// WithSeed returns a copy of c with the seed set.
func (c Config) WithSeed(seed int64) Config {
	c.Seed = &seed
	return c
}

// Validate checks every bound and reports all violations at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.NumGames > 0, "num_games must be positive, got %d", c.NumGames)
	check(c.PointsToWin > 0, "points_to_win must be positive, got %d", c.PointsToWin)
	check(c.HandSizePerPlayer > 0, "hand_size_per_player must be positive, got %d", c.HandSizePerPlayer)
	check(c.PlayersPerTeam > 0, "players_per_team must be positive, got %d", c.PlayersPerTeam)
	check(c.BlockWindow >= 0, "block_window cannot be negative, got %d", c.BlockWindow)
	check(c.TwoTouchPenalty >= 0, "two_touch_penalty cannot be negative, got %d", c.TwoTouchPenalty)
	check(c.RallyCap > 0, "rally_cap must be positive, got %d", c.RallyCap)
	check(c.StartingServer == engine.SideA || c.StartingServer == engine.SideB,
		"starting_server must be 0 or 1, got %d", c.StartingServer)
	check(c.Workers >= 0, "workers cannot be negative, got %d", c.Workers)
	if _, err := c.Policies(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
