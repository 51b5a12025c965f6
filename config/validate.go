package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the tunables can produce a playable level.
func Validate() error {
	if Maze.Width < 3 || Maze.Height < 3 {
		return fmt.Errorf("%w: maze %dx%d is too small to carve", ErrInvalid, Maze.Width, Maze.Height)
	}
	if Maze.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %v must be positive", ErrInvalid, Maze.TileSize)
	}
	if Hero.Speed <= 0 {
		return fmt.Errorf("%w: hero speed %v must be positive", ErrInvalid, Hero.Speed)
	}
	if Hero.CollisionWidth <= 0 || Hero.CollisionWidth > Maze.TileSize ||
		Hero.CollisionHeight <= 0 || Hero.CollisionHeight > Maze.TileSize {
		return fmt.Errorf("%w: hero body %vx%v must fit in a %v tile",
			ErrInvalid, Hero.CollisionWidth, Hero.CollisionHeight, Maze.TileSize)
	}
	if Coin.CollisionSize <= 0 || Coin.CollisionSize > Maze.TileSize {
		return fmt.Errorf("%w: coin body %v must fit in a %v tile", ErrInvalid, Coin.CollisionSize, Maze.TileSize)
	}
	if Session.BaseCoins < 1 {
		return fmt.Errorf("%w: base coins %d must be at least 1", ErrInvalid, Session.BaseCoins)
	}
	if Session.CoinReward < 0 {
		return fmt.Errorf("%w: coin reward %d is negative", ErrInvalid, Session.CoinReward)
	}
	if Maze.SpaceCellSize <= 0 {
		return fmt.Errorf("%w: collision cell size %d must be positive", ErrInvalid, Maze.SpaceCellSize)
	}
	return nil
}

// WorldSize returns the maze extent in world units.
func WorldSize() (w, h float64) {
	return float64(Maze.Width) * Maze.TileSize, float64(Maze.Height) * Maze.TileSize
}
