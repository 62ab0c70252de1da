package world

import (
	"github.com/dergwasm/go-resonite"
)

// Component is attached to a slot and holds named members.
type Component struct {
	w        *World
	id       uint64
	typeName string
	slot     *Slot
	members  []*Member
}

func (c *Component) ID() resonite.ComponentRef {
	return resonite.ComponentRef(c.id)
}

func (c *Component) TypeName() string {
	return c.typeName
}

func (c *Component) Slot() *Slot {
	return c.slot
}

func (c *Component) Members() []*Member {
	c.w.mu.RLock()
	defer c.w.mu.RUnlock()
	return append([]*Member(nil), c.members...)
}

// Member returns the first member with the given name.
func (c *Component) Member(name string) *Member {
	c.w.mu.RLock()
	defer c.w.mu.RUnlock()
	return c.member(name)
}

func (c *Component) member(name string) *Member {
	for _, m := range c.members {
		if m.name == name {
			return m
		}
	}
	return nil
}

func (c *Component) AddInt(name string, v int32) *Member {
	return c.add(&Member{name: name, typeCode: resonite.MemberTypeValueInt, i: v})
}

func (c *Component) AddFloat(name string, v float32) *Member {
	return c.add(&Member{name: name, typeCode: resonite.MemberTypeValueFloat, f: v})
}

func (c *Component) AddDouble(name string, v float64) *Member {
	return c.add(&Member{name: name, typeCode: resonite.MemberTypeValueDouble, d: v})
}

// AddReference adds a member pointing at another object. Guests have no
// accessor for references, so the member reports type code 0.
func (c *Component) AddReference(name string, target uint64) *Member {
	return c.add(&Member{name: name, typeCode: resonite.MemberTypeUnknown, target: target})
}

func (c *Component) add(m *Member) *Member {
	c.w.mu.Lock()
	defer c.w.mu.Unlock()

	m.w = c.w
	m.component = c
	if _, live := c.w.refs[c.id]; live {
		c.w.register(m, &m.id)
	}
	c.members = append(c.members, m)
	return m
}

// Member is a named field of a component.
type Member struct {
	w         *World
	id        uint64
	name      string
	typeCode  int32
	component *Component

	i      int32
	f      float32
	d      float64
	target uint64
}

// ID is the reference a guest receives for the member. Its kind depends on
// TypeCode.
func (m *Member) ID() uint64 {
	return m.id
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) TypeCode() int32 {
	return m.typeCode
}

func (m *Member) Component() *Component {
	return m.component
}

func (m *Member) Int() int32 {
	m.w.mu.RLock()
	defer m.w.mu.RUnlock()
	return m.i
}

func (m *Member) Float() float32 {
	m.w.mu.RLock()
	defer m.w.mu.RUnlock()
	return m.f
}

func (m *Member) Double() float64 {
	m.w.mu.RLock()
	defer m.w.mu.RUnlock()
	return m.d
}

func (m *Member) Target() uint64 {
	return m.target
}
