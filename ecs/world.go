package ecs

import (
	"sort"

	"github.com/emilyahsu/dad-birthday-card/ecs/component"
)

// World owns entities, their components, and the hit-test space.
type World struct {
	gens  []generation
	alive []bool
	free  []entityID

	stores map[component.ComponentID]store

	hitWorld *HitWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity, reusing a freed slot when one exists.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	if n := len(w.free); n > 0 {
		id := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[id-1] = true
		return makeEntity(id, w.gens[id-1])
	}
	w.gens = append(w.gens, 0)
	w.alive = append(w.alive, true)
	return makeEntity(entityID(len(w.gens)), 0)
}

// DestroyEntity drops the entity, its components and its hit shape. It reports false
// when the handle was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	w.hitWorld.Remove(e)
	id := e.id()
	for _, s := range w.stores {
		s.remove(id)
	}
	w.alive[id-1] = false
	w.gens[id-1]++
	w.free = append(w.free, id)
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() || int(e.id()) > len(w.gens) {
		return false
	}
	idx := e.id() - 1
	return w.alive[idx] && w.gens[idx] == e.generation()
}

// Entities returns every live entity in creation-slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.gens))
	for i, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), w.gens[i]))
		}
	}
	return out
}

func (w *World) entityFor(id entityID) Entity {
	return makeEntity(id, w.gens[id-1])
}

// SetHitWorld attaches a hit-test space to this world.
func (w *World) SetHitWorld(hw *HitWorld) {
	if w == nil {
		return
	}
	w.hitWorld = hw
}

// HitWorld returns the attached hit-test space, if any.
func (w *World) HitWorld() *HitWorld {
	if w == nil {
		return nil
	}
	return w.hitWorld
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	s := &sparseSet[T]{}
	w.stores[kind.ID()] = s
	return s
}

// Add attaches (or replaces) a component value on an entity.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	storeFor(w, kind, true).set(e.id(), value)
	return nil
}

// Get returns the component pointer for an entity. Mutations through the
// pointer are visible to every later reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	return storeFor(w, kind, false).get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return storeFor(w, kind, false).has(e.id())
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := storeFor(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// ForEach visits every entity holding kind. The callback must not add or
// remove components of the same kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	for i, id := range s.dense {
		fn(w.entityFor(id), s.values[i])
	}
}

// ForEach2 visits entities holding both kinds, iterating the smaller store.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	if sa.len() <= sb.len() {
		for i, id := range sa.dense {
			if b, ok := sb.get(id); ok {
				fn(w.entityFor(id), sa.values[i], b)
			}
		}
		return
	}
	for i, id := range sb.dense {
		if a, ok := sa.get(id); ok {
			fn(w.entityFor(id), a, sb.values[i])
		}
	}
}

// ForEach3 visits entities holding all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := storeFor(w, kc, false)
	if sc == nil || fn == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := sc.get(e.id()); ok {
			fn(e, a, b, c)
		}
	})
}

// First returns the lowest-id entity holding kind. Singletons (the board,
// the card) are looked up this way.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := storeFor(w, kind, false)
	if s == nil || len(s.dense) == 0 {
		return 0, false
	}
	best := s.dense[0]
	for _, id := range s.dense[1:] {
		if id < best {
			best = id
		}
	}
	return w.entityFor(best), true
}

// Query returns the entities holding kind, sorted by id.
func Query[T any](w *World, kind component.ComponentKind[T]) []Entity {
	s := storeFor(w, kind, false)
	if s == nil {
		return nil
	}
	ids := append([]entityID(nil), s.dense...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.entityFor(id))
	}
	return out
}
