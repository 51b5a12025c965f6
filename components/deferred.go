package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DeferredTask runs once after FramesLeft ticks, but only if the session is
// still on Generation by then.
type DeferredTask struct {
	ID         int
	FramesLeft int
	Generation uint64
	Run        func(*ecs.ECS)
}

// DeferredData is the singleton task queue.
type DeferredData struct {
	Tasks  []DeferredTask
	NextID int
}

var Deferred = donburi.NewComponentType[DeferredData]()
