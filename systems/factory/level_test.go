package factory

import (
	"testing"

	"github.com/automoto/grubmaze/components"
	"github.com/automoto/grubmaze/maze"
	"github.com/automoto/grubmaze/session"
	"github.com/automoto/grubmaze/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.New(session.Config{
		Width:      20,
		Height:     15,
		TileSize:   40,
		BaseCoins:  4,
		CoinReward: 100,
		Seed:       2024,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func countTag(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestBuildLevelEntities(t *testing.T) {
	sess := newTestSession(t)
	e := ecs.NewECS(donburi.NewWorld())
	CreateLevel(e, sess)

	g := sess.Grid()
	if got, want := countTag(e.World, tags.Wall), g.Count(maze.Wall); got != want {
		t.Fatalf("expected %d walls, got %d", want, got)
	}
	if got, want := countTag(e.World, tags.Floor), g.Count(maze.Path); got != want {
		t.Fatalf("expected %d floors, got %d", want, got)
	}
	if got := countTag(e.World, tags.Coin); got != 4 {
		t.Fatalf("expected 4 coins, got %d", got)
	}
	if got := countTag(e.World, tags.Hero); got != 1 {
		t.Fatalf("expected 1 hero, got %d", got)
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		t.Fatal("no collision space")
	}
	space := components.Space.Get(spaceEntry)
	// Every wall, every coin and the hero have a body; floors do not.
	if got, want := len(space.Objects()), g.Count(maze.Wall)+4+1; got != want {
		t.Fatalf("expected %d bodies, got %d", want, got)
	}

	levelEntry, _ := components.Level.First(e.World)
	if got := components.Level.Get(levelEntry).BuiltGeneration; got != sess.Generation() {
		t.Fatalf("built generation %d, session %d", got, sess.Generation())
	}
}

func TestBuildLevelReusesHero(t *testing.T) {
	sess := newTestSession(t)
	e := ecs.NewECS(donburi.NewWorld())
	CreateLevel(e, sess)
	first, _ := tags.Hero.First(e.World)

	for _, c := range sess.Coins() {
		sess.ReportOverlap(c.ID)
	}
	sess.Update()
	hero := BuildLevel(e, sess)

	if hero.Entity() != first.Entity() {
		t.Fatal("rebuild replaced the hero entity")
	}
	if got := countTag(e.World, tags.Hero); got != 1 {
		t.Fatalf("expected 1 hero, got %d", got)
	}
	if got := countTag(e.World, tags.Coin); got != 5 {
		t.Fatalf("expected 5 coins, got %d", got)
	}
	spaces := 0
	components.Space.Each(e.World, func(*donburi.Entry) { spaces++ })
	if spaces != 1 {
		t.Fatalf("expected 1 space after rebuild, got %d", spaces)
	}

	spaceEntry, _ := components.Space.First(e.World)
	obj := components.Object.Get(hero)
	if obj.Space != components.Space.Get(spaceEntry).Space {
		t.Fatal("hero body is not in the new space")
	}
	if got := HeroCenter(hero); got != sess.Start() {
		t.Fatalf("hero at %v, start at %v", got, sess.Start())
	}
}

func TestCreateCoinBody(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 800, 600, 20, 20)

	coin := session.Coin{ID: 7, Cell: maze.Point{X: 3, Y: 2}, Pos: maze.Position{X: 140, Y: 100}}
	entry := CreateCoin(e, coin)

	obj := components.Object.Get(entry)
	if obj.X != 125 || obj.Y != 85 || obj.W != 30 || obj.H != 30 {
		t.Fatalf("unexpected coin body %v,%v %vx%v", obj.X, obj.Y, obj.W, obj.H)
	}
	if obj.Space == nil {
		t.Fatal("coin body not added to the space")
	}
	if got := components.Coin.Get(entry).ID; got != 7 {
		t.Fatalf("expected id 7, got %d", got)
	}
	if obj.Data.(*donburi.Entry) != entry {
		t.Fatal("body does not link back to its entry")
	}
}

func TestTileVariant(t *testing.T) {
	cases := []struct {
		cell  maze.Point
		level int
		want  int
	}{
		{maze.Point{X: 0, Y: 0}, 1, 1},
		{maze.Point{X: 0, Y: 0}, 2, 0},
		{maze.Point{X: 1, Y: 0}, 1, 0},
		{maze.Point{X: 0, Y: 1}, 1, 0},
		{maze.Point{X: 3, Y: 5}, 4, 0},
	}
	for _, c := range cases {
		if got := TileVariant(c.cell, c.level); got != c.want {
			t.Errorf("TileVariant(%v, %d) = %d, want %d", c.cell, c.level, got, c.want)
		}
	}
}
