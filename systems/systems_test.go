package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/maze"
	"github.com/automoto/grubmaze/session"
	"github.com/automoto/grubmaze/shared/gamemath"
	"github.com/automoto/grubmaze/systems/factory"
	"github.com/automoto/grubmaze/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestLevel(t *testing.T, seed int64) (*ecs.ECS, *session.Session) {
	t.Helper()
	sess, err := session.New(session.Config{
		Width:      cfg.Maze.Width,
		Height:     cfg.Maze.Height,
		TileSize:   cfg.Maze.TileSize,
		BaseCoins:  cfg.Session.BaseCoins,
		CoinReward: cfg.Session.CoinReward,
		Seed:       seed,
	}, nil)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, sess)
	return e, sess
}

func heroEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	hero, ok := tags.Hero.First(e.World)
	if !ok {
		t.Fatal("no hero entity")
	}
	return hero
}

func count[T any](e *ecs.ECS, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// collectAll walks the hero onto every live coin in turn.
func collectAll(t *testing.T, e *ecs.ECS, sess *session.Session) {
	t.Helper()
	hero := heroEntry(t, e)
	for _, c := range sess.Coins() {
		factory.PlaceHero(hero, c.Pos)
		UpdateCollisions(e)
		UpdateSession(e)
	}
}

func TestCoinOverlapReportedOnce(t *testing.T) {
	e, sess := newTestLevel(t, 42)
	hero := heroEntry(t, e)
	coin := sess.Coins()[0]

	factory.PlaceHero(hero, coin.Pos)
	UpdateCollisions(e)
	UpdateCollisions(e)

	if n := sess.PendingOverlaps(); n != 1 {
		t.Fatalf("expected 1 queued overlap, got %d", n)
	}
	if n := count(e, components.Glow); n != 1 {
		t.Fatalf("expected 1 glow, got %d", n)
	}

	UpdateSession(e)
	if got := sess.Stats(); got.Collected != 1 || got.Score != 100 {
		t.Fatalf("unexpected stats %+v", got)
	}

	UpdateCollisions(e)
	if n := sess.PendingOverlaps(); n != 0 {
		t.Fatalf("collected coin reported again: %d queued", n)
	}
	if n := liveCoinCount(e); n != len(sess.Coins()) {
		t.Fatalf("entity coins %d, session coins %d", n, len(sess.Coins()))
	}
}

func TestWallStopsHeroFlush(t *testing.T) {
	const tile = 40.0
	step := cfg.Hero.Speed / float64(ebiten.DefaultTPS)

	cases := []struct {
		name   string
		wall   maze.Point
		dx, dy float64
		// edge returns the hero's leading edge and the wall face it must rest on.
		edge func(hero, wall *resolv.Object) (float64, float64)
	}{
		{"right", maze.Point{X: 2, Y: 1}, step, 0, func(h, w *resolv.Object) (float64, float64) { return h.X + h.W, w.X }},
		{"down", maze.Point{X: 1, Y: 2}, 0, step, func(h, w *resolv.Object) (float64, float64) { return h.Y + h.H, w.Y }},
		{"left", maze.Point{X: 0, Y: 1}, -step, 0, func(h, w *resolv.Object) (float64, float64) { return h.X, w.X + w.W }},
		{"up", maze.Point{X: 1, Y: 0}, 0, -step, func(h, w *resolv.Object) (float64, float64) { return h.Y, w.Y + w.H }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			factory.CreateSpace(e, 200, 200, cfg.Maze.SpaceCellSize, cfg.Maze.SpaceCellSize)
			wall := components.Object.Get(factory.CreateWall(e, c.wall, tile, 0)).Object
			hero := components.Object.Get(factory.CreateHero(e, maze.CellCenter(maze.Point{X: 1, Y: 1}, tile))).Object

			for i := 0; i < 30; i++ {
				moveHorizontal(hero, c.dx)
				moveVertical(hero, c.dy)
			}

			got, want := c.edge(hero, wall)
			if math.Abs(got-want) > 1e-6 {
				t.Fatalf("hero edge at %v, wall face at %v", got, want)
			}
			if overlapsAt(hero.X, hero.Y, hero.W, hero.H, wall) {
				t.Fatalf("hero (%v,%v) overlaps wall (%v,%v)", hero.X, hero.Y, wall.X, wall.Y)
			}
		})
	}
}

func TestMazeWallsBlockEveryDirection(t *testing.T) {
	dirs := []struct {
		name string
		d    maze.Point
	}{
		{"right", maze.Point{X: 1}},
		{"down", maze.Point{Y: 1}},
		{"left", maze.Point{X: -1}},
		{"up", maze.Point{Y: -1}},
	}

	for _, dir := range dirs {
		t.Run(dir.name, func(t *testing.T) {
			e, sess := newTestLevel(t, 7)
			hero := heroEntry(t, e)
			g := sess.Grid()
			tile := sess.Config().TileSize

			tested := 0
			for y := 1; y < g.Height()-1; y++ {
				for x := 1; x < g.Width()-1; x++ {
					if !g.IsPath(x, y) || g.IsPath(x+dir.d.X, y+dir.d.Y) {
						continue
					}
					factory.PlaceHero(hero, maze.CellCenter(maze.Point{X: x, Y: y}, tile))
					sess.SetVelocity(session.Velocity{
						X: float64(dir.d.X) * cfg.Hero.Speed,
						Y: float64(dir.d.Y) * cfg.Hero.Speed,
					})
					for i := 0; i < 30; i++ {
						UpdateCollisions(e)
					}

					obj := components.Object.Get(hero)
					var got, want float64
					switch dir.name {
					case "right":
						got, want = obj.X+obj.W, float64(x+1)*tile
					case "down":
						got, want = obj.Y+obj.H, float64(y+1)*tile
					case "left":
						got, want = obj.X, float64(x)*tile
					case "up":
						got, want = obj.Y, float64(y)*tile
					}
					if math.Abs(got-want) > 1e-6 {
						t.Fatalf("cell (%d,%d): hero edge at %v, wall face at %v", x, y, got, want)
					}
					if components.Hero.Get(hero).InWall {
						t.Fatalf("cell (%d,%d): hero reported inside a wall", x, y)
					}
					tested++
				}
			}
			if tested == 0 {
				t.Fatal("no path cell with a wall in this direction")
			}
		})
	}
}

func TestRandomWalkNeverEntersWalls(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		e, sess := newTestLevel(t, seed)
		hero := heroEntry(t, e)
		rng := rand.New(rand.NewSource(seed))

		var walls []*resolv.Object
		tags.Wall.Each(e.World, func(w *donburi.Entry) {
			walls = append(walls, components.Object.Get(w).Object)
		})

		for tick := 0; tick < 1500; tick++ {
			if tick%15 == 0 {
				vx, vy := gamemath.DirectionalVelocity(
					rng.Intn(3) == 0, rng.Intn(3) == 0, rng.Intn(3) == 0, rng.Intn(3) == 0,
					cfg.Hero.Speed,
				)
				sess.SetVelocity(session.Velocity{X: vx, Y: vy})
			}
			UpdateCollisions(e)

			obj := components.Object.Get(hero)
			for _, w := range walls {
				if overlapsAt(obj.X, obj.Y, obj.W, obj.H, w) {
					t.Fatalf("seed %d tick %d: hero at (%v,%v) overlaps wall at (%v,%v)",
						seed, tick, obj.X, obj.Y, w.X, w.Y)
				}
			}
		}
	}
}

func TestCoinOverlapOnFarEdges(t *testing.T) {
	sess, err := session.New(session.Config{Width: 20, Height: 15, TileSize: 40, BaseCoins: 4, CoinReward: 100, Seed: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	halfW, halfH := cfg.Hero.CollisionWidth/2, cfg.Hero.CollisionHeight/2
	s := cfg.Coin.CollisionSize

	// Each coin body starts on a space cell boundary (x=200 or y=280) and
	// the hero pokes half a unit into it.
	cases := []struct {
		name string
		coin maze.Position
		hero maze.Position
	}{
		{"from_left", maze.Position{X: 200 + s/2, Y: 300}, maze.Position{X: 200 + 0.5 - halfW, Y: 300}},
		{"from_above", maze.Position{X: 215, Y: 280 + s/2}, maze.Position{X: 215, Y: 280 + 0.5 - halfH}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			factory.CreateSpace(e, 800, 600, cfg.Maze.SpaceCellSize, cfg.Maze.SpaceCellSize)
			factory.CreateCoin(e, session.Coin{ID: 1, Pos: c.coin})
			heroObj := components.Object.Get(factory.CreateHero(e, c.hero)).Object

			before := sess.PendingOverlaps()
			collectCoins(e, sess, heroObj)
			if got := sess.PendingOverlaps() - before; got != 1 {
				t.Fatalf("expected 1 overlap reported, got %d", got)
			}
		})
	}
}

func TestHeroMovesFreelyAlongPath(t *testing.T) {
	e, sess := newTestLevel(t, 7)
	hero := heroEntry(t, e)
	g := sess.Grid()
	tile := sess.Config().TileSize

	var cell maze.Point
	found := false
	for y := 1; y < g.Height()-1 && !found; y++ {
		for x := 1; x < g.Width()-2; x++ {
			if g.IsPath(x, y) && g.IsPath(x+1, y) {
				cell, found = maze.Point{X: x, Y: y}, true
				break
			}
		}
	}
	if !found {
		t.Fatal("no horizontal corridor")
	}

	start := maze.CellCenter(cell, tile)
	factory.PlaceHero(hero, start)
	sess.SetVelocity(session.Velocity{X: cfg.Hero.Speed})
	UpdateCollisions(e)

	want := start.X + cfg.Hero.Speed/float64(ebiten.DefaultTPS)
	if got := factory.HeroCenter(hero).X; math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected x %v after one tick, got %v", want, got)
	}
}

func TestLevelCompleteRebuildsWorld(t *testing.T) {
	e, sess := newTestLevel(t, 99)
	oldGen := sess.Generation()

	collectAll(t, e, sess)

	if got := sess.Stats(); got.Level != 2 || got.Score != 400 || got.Total != 5 || got.Collected != 0 {
		t.Fatalf("unexpected stats %+v", got)
	}
	if sess.Generation() == oldGen {
		t.Fatal("generation did not change")
	}
	level, _ := currentLevel(e)
	if level.BuiltGeneration != sess.Generation() {
		t.Fatalf("world built for generation %d, session on %d", level.BuiltGeneration, sess.Generation())
	}
	if n := count(e, components.Coin); n != 5 {
		t.Fatalf("expected 5 coin entities, got %d", n)
	}
	if n := count(e, components.Tile); n != cfg.Maze.Width*cfg.Maze.Height {
		t.Fatalf("expected %d tiles, got %d", cfg.Maze.Width*cfg.Maze.Height, n)
	}
	if n := count(e, components.Hero); n != 1 {
		t.Fatalf("expected a single hero, got %d", n)
	}

	hero := heroEntry(t, e)
	if got := factory.HeroCenter(hero); got != sess.Start() {
		t.Fatalf("hero at %v, start at %v", got, sess.Start())
	}
	if !hero.HasComponent(components.Hop) {
		t.Fatal("hero should be hopping")
	}

	banner := getOrCreateBanner(e)
	if !banner.Visible || banner.Text != "Level 2!" {
		t.Fatalf("unexpected banner %+v", *banner)
	}
	if sess.Phase() != session.LevelTransition {
		t.Fatalf("expected level transition, got %v", sess.Phase())
	}

	for i := 0; i < cfg.Transition.BannerFrames; i++ {
		UpdateDeferred(e)
	}
	if getOrCreateBanner(e).Visible {
		t.Fatal("banner still up after its time ran out")
	}
	if sess.Phase() != session.Playing {
		t.Fatalf("expected playing, got %v", sess.Phase())
	}
}

func TestDeferredTasks(t *testing.T) {
	e, sess := newTestLevel(t, 3)
	gen := sess.Generation()

	ran := map[string]int{}
	Schedule(e, 2, gen, func(*ecs.ECS) { ran["current"]++ })
	Schedule(e, 1, gen-1, func(*ecs.ECS) { ran["stale"]++ })
	cancelled := Schedule(e, 1, gen, func(*ecs.ECS) { ran["cancelled"]++ })

	if !Cancel(e, cancelled) {
		t.Fatal("Cancel should find the queued task")
	}
	if Cancel(e, cancelled) {
		t.Fatal("Cancel twice should report false")
	}

	UpdateDeferred(e)
	if ran["current"] != 0 {
		t.Fatal("task ran a frame early")
	}
	if n := PendingTasks(e); n != 1 {
		t.Fatalf("expected the stale task dropped, %d pending", n)
	}

	UpdateDeferred(e)
	UpdateDeferred(e)
	want := map[string]int{"current": 1}
	for k, v := range want {
		if ran[k] != v {
			t.Fatalf("%s ran %d times, want %d", k, ran[k], v)
		}
	}
	if ran["stale"] != 0 || ran["cancelled"] != 0 {
		t.Fatalf("unexpected runs %v", ran)
	}
}

func TestBannerFromOldLevelNeverFires(t *testing.T) {
	e, sess := newTestLevel(t, 5)
	collectAll(t, e, sess)
	gen := sess.Generation()

	// Restarting moves the session on before the banner task is due.
	RestartLevel(e)
	if getOrCreateBanner(e).Visible {
		t.Fatal("restart left the banner up")
	}
	if n := PendingTasks(e); n != 0 {
		t.Fatalf("expected no pending tasks, got %d", n)
	}
	if sess.FinishTransition(gen) {
		t.Fatal("old transition finished after restart")
	}

	if got := sess.Stats(); got.Level != 1 || got.Score != 0 || got.Total != 4 {
		t.Fatalf("unexpected stats after restart %+v", got)
	}
	hero := heroEntry(t, e)
	if hero.HasComponent(components.Hop) {
		t.Fatal("restart left the hop running")
	}
	if n := count(e, components.Coin); n != 4 {
		t.Fatalf("expected 4 coins after restart, got %d", n)
	}
}

func TestApplyInput(t *testing.T) {
	cases := []struct {
		name          string
		startFocused  bool
		clicked       bool
		windowFocused bool
		wantFocused   bool
	}{
		{"stays_focused", true, false, true, true},
		{"click_grants_focus", false, true, true, true},
		{"no_click_no_focus", false, false, true, false},
		{"window_blur_drops_focus", true, false, false, false},
		{"click_in_blurred_window", false, true, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := &components.InputData{Focused: c.startFocused}
			keys := map[ebiten.Key]bool{ebiten.KeyA: true}

			applyInput(input, keys, c.clicked, c.windowFocused)

			if input.Focused != c.wantFocused {
				t.Fatalf("focused = %v, want %v", input.Focused, c.wantFocused)
			}
			if !GetAction(input, cfg.ActionMoveLeft).JustPressed {
				t.Fatal("A should press move-left")
			}
		})
	}
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	keys := map[ebiten.Key]bool{ebiten.KeyP: true}

	applyInput(input, keys, false, true)
	if a := GetAction(input, cfg.ActionPause); !a.Pressed || !a.JustPressed {
		t.Fatalf("expected a fresh press, got %+v", a)
	}

	applyInput(input, keys, false, true)
	if a := GetAction(input, cfg.ActionPause); !a.Pressed || a.JustPressed {
		t.Fatalf("expected a held key, got %+v", a)
	}

	applyInput(input, map[ebiten.Key]bool{}, false, true)
	if a := GetAction(input, cfg.ActionPause); a.Pressed || !a.JustReleased {
		t.Fatalf("expected a release, got %+v", a)
	}
}

func TestUpdateHeroNeedsFocus(t *testing.T) {
	e, sess := newTestLevel(t, 11)
	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveRight] = true
	input.Current[cfg.ActionMoveDown] = true

	input.Focused = false
	UpdateHero(e)
	if v := sess.Hero().Vel; v != (session.Velocity{}) {
		t.Fatalf("unfocused hero got velocity %+v", v)
	}
	if components.Hero.Get(heroEntry(t, e)).Moving {
		t.Fatal("unfocused hero marked moving")
	}

	input.Focused = true
	UpdateHero(e)
	v := sess.Hero().Vel
	want := cfg.Hero.Speed * math.Sqrt2 / 2
	if math.Abs(v.X-want) > 1e-9 || math.Abs(v.Y-want) > 1e-9 {
		t.Fatalf("expected diagonal velocity %v, got %+v", want, v)
	}
}

func TestPauseFreezesGameplay(t *testing.T) {
	e, sess := newTestLevel(t, 13)
	hero := heroEntry(t, e)
	before := factory.HeroCenter(hero)

	sess.SetVelocity(session.Velocity{X: cfg.Hero.Speed})
	SetPaused(e, true)
	WithPauseCheck(UpdateCollisions)(e)
	if got := factory.HeroCenter(hero); got != before {
		t.Fatalf("hero moved while paused: %v -> %v", before, got)
	}

	input := getOrCreateInput(e)
	input.Current[cfg.ActionPause] = true
	UpdatePause(e)
	if IsPaused(e) {
		t.Fatal("pause key should resume")
	}
}

func TestEffectsExpire(t *testing.T) {
	e, _ := newTestLevel(t, 17)
	hero := heroEntry(t, e)
	factory.StartHop(hero)
	factory.SpawnGlow(e, 100, 100)

	lowest := 0.0
	frames := int(float32(cfg.Transition.HopLegs)*cfg.Transition.HopDuration*float32(ebiten.DefaultTPS)) + 10
	for i := 0; i < frames; i++ {
		UpdateEffects(e)
		lowest = math.Min(lowest, components.Hero.Get(hero).Offset.Y)
	}

	if hero.HasComponent(components.Hop) {
		t.Fatal("hop never finished")
	}
	if off := components.Hero.Get(hero).Offset.Y; off != 0 {
		t.Fatalf("hero left hovering at %v", off)
	}
	if lowest > -float64(cfg.Transition.HopHeight)/2 {
		t.Fatalf("hop only rose to %v", lowest)
	}
	if n := count(e, components.Glow); n != 0 {
		t.Fatalf("expected glows gone, %d left", n)
	}
}

func TestHUDText(t *testing.T) {
	if got, want := ScoreText(session.Stats{Score: 400, Collected: 0, Total: 5, Level: 2}), "Level 2 | Score: 400 (0/5)"; got != want {
		t.Fatalf("ScoreText = %q, want %q", got, want)
	}
	if got, want := TitleText(4), "Grub Game - Navigate the Maze & Collect All 4 Coins!"; got != want {
		t.Fatalf("TitleText = %q, want %q", got, want)
	}
}

func TestDebugReadout(t *testing.T) {
	cases := []struct {
		name   string
		moving bool
		dir    string
		pos    maze.Position
		inWall bool
		want   string
	}{
		{
			"idle", false, "none", maze.Position{X: 60.4, Y: 59.6}, false,
			"Debug: Idle - Hero at (60, 60) - Grid: (1, 1) - In Wall: false - No keys pressed",
		},
		{
			"moving", true, "up-left", maze.Position{X: 100, Y: 140}, true,
			"Debug: Moving up-left - Hero at (100, 140) - Grid: (2, 3) - In Wall: true",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cell := maze.CellAt(c.pos, 40)
			if got := DebugReadout(c.moving, c.dir, c.pos, cell, c.inWall); got != c.want {
				t.Fatalf("got %q\nwant %q", got, c.want)
			}
		})
	}
}
