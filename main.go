package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/fonts"
	"github.com/automoto/grubmaze/scenes"
	"github.com/automoto/grubmaze/session"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(sess *session.Session) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMazeScene(sess)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", config.Session.Seed, "maze seed (0 picks one from the clock)")
	debug := flag.Bool("debug", config.Debug.Enabled, "start with collision outlines shown (toggle with F1)")
	flag.Parse()

	config.Session.Seed = *seed
	config.Debug.Enabled = *debug

	if err := config.Validate(); err != nil {
		log.Fatalf("Bad configuration: %v", err)
	}
	if w, h := config.WorldSize(); int(w) > config.C.Width || int(h) > config.C.Height {
		log.Printf("Warning: maze %vx%v is larger than the %dx%d window", w, h, config.C.Width, config.C.Height)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	sess, err := session.New(session.Config{
		Width:      config.Maze.Width,
		Height:     config.Maze.Height,
		TileSize:   config.Maze.TileSize,
		BaseCoins:  config.Session.BaseCoins,
		CoinReward: config.Session.CoinReward,
		Seed:       config.Session.Seed,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	log.Printf("Starting run with seed %d", sess.Seed())

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(sess)); err != nil {
		log.Fatal(err)
	}
}
