package world

import (
	"slices"

	"github.com/dergwasm/go-resonite"
	"go.uber.org/zap"
)

// Slot is a node of the scene graph.
type Slot struct {
	w          *World
	id         uint64
	name       string
	tag        string
	parent     *Slot
	children   []*Slot
	components []*Component
	objectRoot bool
	userRoot   *UserRoot
	destroyed  bool
}

func (s *Slot) ID() resonite.SlotRef {
	return resonite.SlotRef(s.id)
}

func (s *Slot) Name() string {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()
	return s.name
}

func (s *Slot) SetName(name string) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	s.name = name
}

func (s *Slot) Tag() string {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()
	return s.tag
}

func (s *Slot) SetTag(tag string) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	s.tag = tag
}

// MarkObjectRoot flags the slot as the root of an object.
func (s *Slot) MarkObjectRoot(objectRoot bool) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	s.objectRoot = objectRoot
}

func (s *Slot) Parent() *Slot {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()
	return s.parent
}

func (s *Slot) Children() []*Slot {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()
	return append([]*Slot(nil), s.children...)
}

func (s *Slot) Components() []*Component {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()
	return append([]*Component(nil), s.components...)
}

// UserRoot returns the user root held by the slot, if any.
func (s *Slot) UserRoot() *UserRoot {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()
	return s.userRoot
}

func (s *Slot) Destroyed() bool {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()
	return s.destroyed
}

// AddChild appends a new child slot.
func (s *Slot) AddChild(name string) *Slot {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	return s.addChild(name)
}

func (s *Slot) addChild(name string) *Slot {
	child := &Slot{w: s.w, name: name, parent: s}
	if !s.destroyed {
		s.w.register(child, &child.id)
	}
	s.children = append(s.children, child)
	return child
}

// AttachComponent adds a component of the given type to the slot.
func (s *Slot) AttachComponent(typeName string) *Component {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	c := &Component{w: s.w, typeName: typeName, slot: s}
	if !s.destroyed {
		s.w.register(c, &c.id)
	}
	s.components = append(s.components, c)
	return c
}

// Destroy removes the slot and everything below it from the world. The root
// slot can't be destroyed.
func (s *Slot) Destroy() error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	if s == s.w.root {
		return ErrFailedPrecondition
	}
	if s.destroyed {
		return ErrInvalidRef
	}

	if p := s.parent; p != nil {
		for i, c := range p.children {
			if c == s {
				p.children = append(p.children[:i:i], p.children[i+1:]...)
				break
			}
		}
	}
	n := s.unregister()
	s.w.logger.Debug("slot destroyed", zap.Uint64("slot", s.id), zap.Int("objects", n))
	return nil
}

func (s *Slot) unregister() int {
	n := 1
	s.destroyed = true
	delete(s.w.refs, s.id)
	for _, c := range s.components {
		delete(s.w.refs, c.id)
		for _, m := range c.members {
			delete(s.w.refs, m.id)
			n++
		}
		n++
	}
	if ur := s.userRoot; ur != nil {
		// users do not outlive their root slot
		delete(s.w.refs, ur.id)
		delete(s.w.refs, ur.user.id)
		s.w.users = slices.DeleteFunc(s.w.users, func(u *User) bool { return u == ur.user })
		n += 2
	}
	for _, c := range s.children {
		n += c.unregister()
	}
	return n
}

func (s *Slot) activeUserRoot() *UserRoot {
	for c := s; c != nil; c = c.parent {
		if c.userRoot != nil {
			return c.userRoot
		}
	}
	return nil
}

// objectRootOf returns the nearest ancestor-or-self marked as an object root.
// Unless onlyExplicit is set, a slot directly under the world root or under a
// user's slot counts as an implicit object root.
func (s *Slot) objectRootOf(onlyExplicit bool) *Slot {
	for c := s; c != nil; c = c.parent {
		if c.objectRoot {
			return c
		}
	}
	if onlyExplicit {
		return nil
	}
	for c := s; c != nil && c.parent != nil; c = c.parent {
		if c.parent == s.w.root || c.parent.userRoot != nil {
			return c
		}
	}
	return nil
}

// find walks the subtree depth first, testing each child before descending
// into it. A maxDepth of 0 only looks at direct children; negative is
// unlimited.
func (s *Slot) find(match func(*Slot) bool, maxDepth int32) *Slot {
	for _, c := range s.children {
		if match(c) {
			return c
		}
		if maxDepth < 0 {
			if found := c.find(match, maxDepth); found != nil {
				return found
			}
		} else if maxDepth > 0 {
			if found := c.find(match, maxDepth-1); found != nil {
				return found
			}
		}
	}
	return nil
}
