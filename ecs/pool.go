package ecs

// Pool is an index-stable arena of T. Handles returned by Create stay valid
// until Destroy; afterwards Get and IsAlive reject them even when the slot
// has been reused.
type Pool[T any] struct {
	entities entityStore
	values   SparseSet[T]
}

func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Create stores v and returns its handle.
func (p *Pool[T]) Create(v T) Entity {
	e := p.entities.create()
	p.values.Set(e, v)
	return e
}

// Get returns the value stored for e. The pointer must not be retained
// across Create or Destroy calls.
func (p *Pool[T]) Get(e Entity) (*T, bool) {
	if !p.entities.isAlive(e) {
		return nil, false
	}
	v := p.values.Get(e)
	return v, v != nil
}

// Destroy removes e. It returns false when e was already dead.
func (p *Pool[T]) Destroy(e Entity) bool {
	if !p.entities.destroy(e) {
		return false
	}
	p.values.Remove(e)
	return true
}

func (p *Pool[T]) IsAlive(e Entity) bool {
	return p.entities.isAlive(e)
}

func (p *Pool[T]) Len() int {
	return p.values.Len()
}

// Entities returns a snapshot of the live handles.
func (p *Pool[T]) Entities() []Entity {
	return append([]Entity(nil), p.values.Entities()...)
}

// ForEach calls fn for every live value. fn may destroy the entity it is
// handed, or any other; destroyed entities are skipped.
func (p *Pool[T]) ForEach(fn func(Entity, *T)) {
	for _, e := range p.Entities() {
		v, ok := p.Get(e)
		if !ok {
			continue
		}
		fn(e, v)
	}
}
