package world

import (
	"github.com/dergwasm/go-resonite"
)

type User struct {
	w    *World
	id   uint64
	name string
	root *UserRoot
}

func (u *User) ID() resonite.UserRef {
	return resonite.UserRef(u.id)
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Root() *UserRoot {
	return u.root
}

// UserRoot links a user to the slot their hierarchy lives under.
type UserRoot struct {
	w    *World
	id   uint64
	user *User
	slot *Slot
}

func (r *UserRoot) ID() resonite.UserRootRef {
	return resonite.UserRootRef(r.id)
}

func (r *UserRoot) User() *User {
	return r.user
}

func (r *UserRoot) Slot() *Slot {
	return r.slot
}
