// Package session owns the run: the current maze, the live coins, the hero
// and the score. Overlap reports are queued and applied once per tick by
// Update, which is also where a level transition happens.
package session

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/grubmaze/maze"
)

// Phase is the coarse state of the run.
type Phase int

const (
	Playing Phase = iota
	LevelTransition
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case LevelTransition:
		return "level-transition"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrInvalidConfig is returned by New for settings that cannot produce a level.
var ErrInvalidConfig = errors.New("invalid session config")

type Config struct {
	Width      int
	Height     int
	TileSize   float64
	BaseCoins  int
	CoinReward int
	// Seed for the maze and placement rng. Zero picks one from the clock.
	Seed int64
}

func (c Config) validate() error {
	if c.Width < maze.MinSize || c.Height < maze.MinSize {
		return fmt.Errorf("%w: maze %dx%d: %w", ErrInvalidConfig, c.Width, c.Height, maze.ErrGridTooSmall)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %v must be positive", ErrInvalidConfig, c.TileSize)
	}
	if c.BaseCoins < 1 {
		return fmt.Errorf("%w: base coins %d must be at least 1", ErrInvalidConfig, c.BaseCoins)
	}
	if c.CoinReward < 0 {
		return fmt.Errorf("%w: coin reward %d is negative", ErrInvalidConfig, c.CoinReward)
	}
	return nil
}

type Stats struct {
	Score     int
	Collected int
	Total     int
	Level     int
}

type Coin struct {
	ID        int
	Cell      maze.Point
	Pos       maze.Position
	Collected bool
}

type Velocity struct {
	X, Y float64
}

type Hero struct {
	Pos maze.Position
	Vel Velocity
}

// Result describes what one Update drain changed.
type Result struct {
	Collected []int
	// EnteredLevel is the level started during this drain, or 0.
	EnteredLevel int
	Generation   uint64
}

func (r Result) Advanced() bool {
	return r.EnteredLevel != 0
}

type Session struct {
	cfg  Config
	seed int64
	rng  *rand.Rand

	stats      Stats
	phase      Phase
	generation uint64

	grid  *maze.Grid
	start maze.Position
	coins []Coin

	nextCoinID int
	hero       Hero
	pending    []int
}

// New validates cfg and builds level 1. When rng is nil one is seeded from
// cfg.Seed.
func New(cfg Config, rng *rand.Rand) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if rng == nil {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	s := &Session{cfg: cfg, seed: seed, rng: rng, nextCoinID: 1}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart drops the run back to level 1 with a fresh maze.
func (s *Session) Restart() {
	if err := s.reset(); err != nil {
		// cfg was validated in New
		panic(fmt.Sprintf("session: restart: %v", err))
	}
	log.Printf("Restarted run at level %d", s.stats.Level)
}

func (s *Session) reset() error {
	s.stats = Stats{Level: 1, Total: s.cfg.BaseCoins}
	s.pending = s.pending[:0]
	s.hero.Vel = Velocity{}
	if err := s.buildLevel(); err != nil {
		return err
	}
	s.phase = Playing
	s.generation++
	return nil
}

func (s *Session) buildLevel() error {
	g, err := maze.Generate(s.cfg.Width, s.cfg.Height, s.rng)
	if err != nil {
		return fmt.Errorf("build level %d: %w", s.stats.Level, err)
	}

	s.grid = g
	s.start = maze.FindStart(g, s.cfg.TileSize)
	s.hero.Pos = s.start

	cells := maze.FindCollectibleCells(g, s.stats.Total, s.rng)
	if len(cells) < s.stats.Total {
		log.Printf("Warning: level %d has room for %d of %d coins", s.stats.Level, len(cells), s.stats.Total)
	}

	s.coins = make([]Coin, len(cells))
	for i, c := range cells {
		s.coins[i] = Coin{
			ID:   s.nextCoinID,
			Cell: c,
			Pos:  maze.CellCenter(c, s.cfg.TileSize),
		}
		s.nextCoinID++
	}
	return nil
}

// ReportOverlap queues a hero/coin overlap for the next Update. It never
// changes the stats itself.
func (s *Session) ReportOverlap(coinID int) {
	s.pending = append(s.pending, coinID)
}

// Update applies every queued overlap in order. Reports for coins that are
// unknown or already collected are ignored. Collecting the last live coin of
// a level starts the next one before the remaining reports are looked at, so
// those can only refer to coins that no longer exist.
func (s *Session) Update() Result {
	res := Result{Generation: s.generation}
	if len(s.pending) == 0 {
		return res
	}

	events := s.pending
	s.pending = nil

	for _, id := range events {
		idx := s.liveIndex(id)
		if idx < 0 {
			continue
		}

		s.coins[idx].Collected = true
		s.stats.Collected++
		s.stats.Score += s.cfg.CoinReward
		res.Collected = append(res.Collected, id)

		if s.stats.Collected == s.stats.Total || s.liveCount() == 0 {
			s.advance()
			res.EnteredLevel = s.stats.Level
		}
	}

	res.Generation = s.generation
	return res
}

func (s *Session) advance() {
	s.stats.Level++
	s.stats.Total++
	s.stats.Collected = 0

	if err := s.buildLevel(); err != nil {
		panic(fmt.Sprintf("session: advance: %v", err))
	}

	s.phase = LevelTransition
	s.generation++
	log.Printf("Entered level %d with %d coins", s.stats.Level, len(s.coins))
}

// FinishTransition returns to Playing if gen is still the current
// generation. Calls carrying an older generation do nothing.
func (s *Session) FinishTransition(gen uint64) bool {
	if gen != s.generation || s.phase != LevelTransition {
		return false
	}
	s.phase = Playing
	return true
}

func (s *Session) liveIndex(id int) int {
	for i := range s.coins {
		if s.coins[i].ID == id && !s.coins[i].Collected {
			return i
		}
	}
	return -1
}

func (s *Session) liveCount() int {
	n := 0
	for i := range s.coins {
		if !s.coins[i].Collected {
			n++
		}
	}
	return n
}

func (s *Session) Stats() Stats           { return s.stats }
func (s *Session) Phase() Phase           { return s.phase }
func (s *Session) Generation() uint64     { return s.generation }
func (s *Session) Seed() int64            { return s.seed }
func (s *Session) Config() Config         { return s.cfg }
func (s *Session) Grid() *maze.Grid       { return s.grid }
func (s *Session) Start() maze.Position   { return s.start }
func (s *Session) Hero() Hero             { return s.hero }
func (s *Session) SetHero(h Hero)         { s.hero = h }
func (s *Session) PendingOverlaps() int   { return len(s.pending) }
func (s *Session) SetVelocity(v Velocity) { s.hero.Vel = v }

// Coins returns a copy of the coins still waiting to be collected.
func (s *Session) Coins() []Coin {
	out := make([]Coin, 0, len(s.coins))
	for _, c := range s.coins {
		if !c.Collected {
			out = append(out, c)
		}
	}
	return out
}

// Coin looks up a coin of the current level by ID.
func (s *Session) Coin(id int) (Coin, bool) {
	for _, c := range s.coins {
		if c.ID == id {
			return c, true
		}
	}
	return Coin{}, false
}
