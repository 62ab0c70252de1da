// Package world is an in-memory scene graph that serves the functions a
// Resonite host exports to guest modules. It backs the wazero host module in
// package host and can be handed to the resonite package directly through
// (*World).Host.
//
// Objects are registered in a reference table under ids allocated from a
// counter; 0 is never allocated. Destroying an object removes it from the
// table, so references held by a guest dangle and report ErrInvalidRef.
package world

import (
	"sync"

	"go.uber.org/zap"
)

type World struct {
	mu     sync.RWMutex
	nextID uint64
	refs   map[uint64]any
	root   *Slot
	users  []*User
	heap   *Heap
	logger *zap.Logger
}

type Option func(*World)

func WithLogger(logger *zap.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// New creates a world containing only its root slot.
func New(opts ...Option) *World {
	w := &World{
		nextID: 1,
		refs:   map[uint64]any{},
		heap:   NewHeap(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.root = &Slot{w: w, name: "Root"}
	w.register(w.root, &w.root.id)
	return w
}

func (w *World) Root() *Slot {
	return w.root
}

// Heap is where host-returned strings are allocated when the world is used
// through Host.
func (w *World) Heap() *Heap {
	return w.heap
}

func (w *World) Logger() *zap.Logger {
	return w.logger
}

// Users returns the users in the order they were added.
func (w *World) Users() []*User {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]*User(nil), w.users...)
}

// AddUser creates a user together with its user root and the slot holding
// it, "User <name>" directly under the root slot.
func (w *World) AddUser(name string) *User {
	w.mu.Lock()
	defer w.mu.Unlock()

	u := &User{w: w, name: name}
	w.register(u, &u.id)

	slot := w.root.addChild("User " + name)
	ur := &UserRoot{w: w, user: u, slot: slot}
	w.register(ur, &ur.id)
	slot.userRoot = ur
	u.root = ur

	w.users = append(w.users, u)
	w.logger.Debug("user added",
		zap.String("name", name),
		zap.Uint64("user", u.id),
		zap.Uint64("slot", slot.id))
	return u
}

// register must be called with mu held.
func (w *World) register(obj any, id *uint64) {
	*id = w.nextID
	w.nextID++
	w.refs[*id] = obj
}

func lookup[T any](w *World, id uint64) (T, error) {
	var zero T
	obj, ok := w.refs[id]
	if !ok {
		return zero, ErrInvalidRef
	}
	t, ok := obj.(T)
	if !ok {
		return zero, ErrTypeMismatch
	}
	return t, nil
}

// Lookup returns the object registered under id: a *Slot, *Component,
// *Member, *User or *UserRoot.
func (w *World) Lookup(id uint64) (any, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	obj, ok := w.refs[id]
	return obj, ok
}
