package systems

import (
	"math"
	"slices"

	"github.com/automoto/grubmaze/components"
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

// contactEpsilon absorbs float error when the hero rests flush against a wall.
const contactEpsilon = 1e-6

// UpdateCollisions moves the hero by one tick of its velocity, stopping at
// walls, then reports every coin the hero now overlaps.
func UpdateCollisions(ecs *ecs.ECS) {
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	sess := level.Session

	hero, ok := tags.Hero.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(hero).Object
	if obj.Space == nil {
		return
	}

	vel := sess.Hero().Vel
	dt := 1.0 / float64(ebiten.DefaultTPS)

	moveHorizontal(obj, vel.X*dt)
	moveVertical(obj, vel.Y*dt)
	clampToWorld(obj, sess)

	center := factory.HeroCenter(hero)
	sess.SetHero(session.Hero{Pos: center, Vel: vel})

	cell := maze.CellAt(center, sess.Config().TileSize)
	components.Hero.Get(hero).InWall = !sess.Grid().IsPath(cell.X, cell.Y)

	collectCoins(ecs, sess, obj)
}

// moveHorizontal shifts object by dx, stopping flush against the first
// solid ahead of it. Solids it already overlaps do not block, so a body
// that starts inside a wall can walk out.
func moveHorizontal(object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	for _, solid := range nearby(object, dx, 0, tags.ResolvSolid) {
		if overlapsAt(object.X, object.Y, object.W, object.H, solid) ||
			!overlapsAt(object.X+dx, object.Y, object.W, object.H, solid) {
			continue
		}
		if dx > 0 {
			dx = math.Min(dx, math.Max(solid.X-(object.X+object.W), 0))
		} else {
			dx = math.Max(dx, math.Min(solid.X+solid.W-object.X, 0))
		}
	}

	object.X += dx
	object.Update()
}

// moveVertical is moveHorizontal for the y axis.
func moveVertical(object *resolv.Object, dy float64) {
	if dy == 0 {
		return
	}

	for _, solid := range nearby(object, 0, dy, tags.ResolvSolid) {
		if overlapsAt(object.X, object.Y, object.W, object.H, solid) ||
			!overlapsAt(object.X, object.Y+dy, object.W, object.H, solid) {
			continue
		}
		if dy > 0 {
			dy = math.Min(dy, math.Max(solid.Y-(object.Y+object.H), 0))
		} else {
			dy = math.Max(dy, math.Min(solid.Y+solid.H-object.Y, 0))
		}
	}

	object.Y += dy
	object.Update()
}

// nearbyOffsets widen a Check by one unit to the right and below, since
// Check's cell range stops a unit short of the far edges.
var nearbyOffsets = [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// nearby returns every object tagged tag in the space cells that object
// would touch after moving by (dx, dy).
func nearby(object *resolv.Object, dx, dy float64, tag string) []*resolv.Object {
	var found []*resolv.Object
	for _, off := range nearbyOffsets {
		check := object.Check(dx+off[0], dy+off[1], tag)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tag) {
			if !slices.Contains(found, o) {
				found = append(found, o)
			}
		}
	}
	return found
}

func clampToWorld(object *resolv.Object, sess *session.Session) {
	tile := sess.Config().TileSize
	maxX := float64(sess.Grid().Width())*tile - object.W
	maxY := float64(sess.Grid().Height())*tile - object.H

	x := gamemath.Clamp(object.X, 0, maxX)
	y := gamemath.Clamp(object.Y, 0, maxY)
	if x != object.X || y != object.Y {
		object.X, object.Y = x, y
		object.Update()
	}
}

// collectCoins reports each coin the hero overlaps. The coin's body leaves
// the space straight away so one coin can only ever be reported once.
func collectCoins(ecs *ecs.ECS, sess *session.Session, heroObj *resolv.Object) {
	for _, coinObj := range nearby(heroObj, 0, 0, tags.ResolvCoin) {
		if !overlapsAt(heroObj.X, heroObj.Y, heroObj.W, heroObj.H, coinObj) {
			continue
		}
		entry, ok := coinObj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		coin := components.Coin.Get(entry)
		if coin.Collected {
			continue
		}

		coin.Collected = true
		if coinObj.Space != nil {
			coinObj.Space.Remove(coinObj)
		}
		factory.SpawnGlow(ecs, coinObj.X+coinObj.W/2, coinObj.Y+coinObj.H/2)
		sess.ReportOverlap(coin.ID)
	}
}

// overlapsAt reports whether the rectangle (x, y, w, h) strictly overlaps
// other. Touching edges do not count.
func overlapsAt(x, y, w, h float64, other *resolv.Object) bool {
	return x < other.X+other.W-contactEpsilon &&
		x+w > other.X+contactEpsilon &&
		y < other.Y+other.H-contactEpsilon &&
		y+h > other.Y+contactEpsilon
}
