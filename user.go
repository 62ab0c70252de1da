package resonite

import "fmt"

// User is a user present in the world.
type User struct {
	host Host
	ref  UserRef
}

func UserFromRef(host Host, ref UserRef) (User, bool) {
	return filterInvalid(ref, userWrapper(host))
}

func userWrapper(host Host) func(UserRef) User {
	return func(ref UserRef) User {
		return User{host: host, ref: ref}
	}
}

func (u User) Ref() UserRef {
	return u.ref
}

func (u User) String() string {
	return fmt.Sprintf("User(0x%X)", u.ref.Raw())
}

// UserRoot is the component anchoring a user's hierarchy in the world.
type UserRoot struct {
	host Host
	ref  UserRootRef
}

func UserRootFromRef(host Host, ref UserRootRef) (UserRoot, bool) {
	return filterInvalid(ref, userRootWrapper(host))
}

func userRootWrapper(host Host) func(UserRootRef) UserRoot {
	return func(ref UserRootRef) UserRoot {
		return UserRoot{host: host, ref: ref}
	}
}

func (u UserRoot) Ref() UserRootRef {
	return u.ref
}

func (u UserRoot) String() string {
	return fmt.Sprintf("UserRoot(0x%X)", u.ref.Raw())
}
