package systems

import (
	"github.com/automoto/grubmaze/components"
	"github.com/yohamta/donburi/ecs"
)

// Schedule queues run to fire after frames ticks, provided the session is
// still on generation gen by then. It returns an id for Cancel.
func Schedule(ecs *ecs.ECS, frames int, gen uint64, run func(*ecs.ECS)) int {
	d := getOrCreateDeferred(ecs)
	d.NextID++
	d.Tasks = append(d.Tasks, components.DeferredTask{
		ID:         d.NextID,
		FramesLeft: frames,
		Generation: gen,
		Run:        run,
	})
	return d.NextID
}

// Cancel drops a pending task. It reports whether the task was still queued.
func Cancel(ecs *ecs.ECS, id int) bool {
	d := getOrCreateDeferred(ecs)
	for i, t := range d.Tasks {
		if t.ID == id {
			d.Tasks = append(d.Tasks[:i], d.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateDeferred counts every task down by one tick and runs the ones that
// are due. Tasks from an older generation are dropped without running.
func UpdateDeferred(ecs *ecs.ECS) {
	d := getOrCreateDeferred(ecs)
	if len(d.Tasks) == 0 {
		return
	}
	gen := currentGeneration(ecs)

	var due []components.DeferredTask
	kept := d.Tasks[:0]
	for _, t := range d.Tasks {
		if t.Generation != gen {
			continue
		}
		t.FramesLeft--
		if t.FramesLeft > 0 {
			kept = append(kept, t)
			continue
		}
		due = append(due, t)
	}
	d.Tasks = kept

	for _, t := range due {
		if t.Run != nil {
			t.Run(ecs)
		}
	}
}

// PendingTasks returns how many tasks are queued.
func PendingTasks(ecs *ecs.ECS) int {
	return len(getOrCreateDeferred(ecs).Tasks)
}

func getOrCreateDeferred(ecs *ecs.ECS) *components.DeferredData {
	entry, ok := components.Deferred.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Deferred))
	}
	return components.Deferred.Get(entry)
}
