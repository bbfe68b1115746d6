package ecs

// World is the top-level ECS container. It owns the entity pool, the
// component registry, and the deferred destruction queue. Entities are
// never destroyed synchronously while systems run; they are marked and
// flushed at the designated end-of-tick point so that every system sees a
// consistent entity set for the whole tick.
type World struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
	queued       map[EntityID]struct{}
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, 64),
		queued:       make(map[EntityID]struct{}, 64),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID { return w.pool.Create() }

func (w *World) Alive(id EntityID) bool { return w.pool.Alive(id) }

// MarkForDestruction queues an entity for end-of-tick cleanup. Duplicate
// marks within a tick are coalesced; marking a dead entity is a no-op.
func (w *World) MarkForDestruction(id EntityID) {
	if !w.pool.Alive(id) {
		return
	}
	if _, dup := w.queued[id]; dup {
		return
	}
	w.queued[id] = struct{}{}
	w.destroyQueue = append(w.destroyQueue, id)
}

// DrainDestroyQueue returns the queued entities in mark order and clears
// the queue. The caller (the cleanup system) releases external resources
// and then calls Destroy for each.
func (w *World) DrainDestroyQueue() []EntityID {
	if len(w.destroyQueue) == 0 {
		return nil
	}
	out := make([]EntityID, len(w.destroyQueue))
	copy(out, w.destroyQueue)
	w.destroyQueue = w.destroyQueue[:0]
	clear(w.queued)
	return out
}

// Destroy removes the entity's components from every store and
// invalidates the handle. External resource release must already have
// happened; use MarkForDestruction from systems.
func (w *World) Destroy(id EntityID) {
	w.registry.RemoveAll(id)
	w.pool.Destroy(id)
}

// Maintain runs store housekeeping (change-log compaction). Must run only
// after the removal flush, never before.
func (w *World) Maintain() {
	w.registry.MaintainAll()
}
