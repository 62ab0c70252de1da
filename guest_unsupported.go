//go:build !wasip1

package resonite

// DefaultHost returns a host that behaves as if the module was never
// attached to a world: every lookup comes back empty and every call reports
// null-or-not-found. Use an explicit Host, e.g. from package world, to run
// outside WebAssembly.
func DefaultHost() Host {
	return detachedHost{}
}

type detachedHost struct{}

func (detachedHost) RootSlot() SlotRef                                  { return 0 }
func (detachedHost) SlotParent(SlotRef) SlotRef                         { return 0 }
func (detachedHost) SlotActiveUser(SlotRef) UserRef                     { return 0 }
func (detachedHost) SlotActiveUserRoot(SlotRef) UserRootRef             { return 0 }
func (detachedHost) SlotObjectRoot(SlotRef, bool) SlotRef               { return 0 }
func (detachedHost) SlotName(SlotRef) *Extern                           { return NewExtern(nil, 0) }
func (detachedHost) SlotSetName(SlotRef, string) int32                  { return StatusNullOrNotFound }
func (detachedHost) SlotNumChildren(SlotRef) int32                      { return 0 }
func (detachedHost) SlotChild(SlotRef, int32) SlotRef                   { return 0 }
func (detachedHost) SlotComponent(SlotRef, string) ComponentRef         { return 0 }
func (detachedHost) SlotFindChildByTag(SlotRef, string, int32) SlotRef  { return 0 }
func (detachedHost) ComponentTypeName(ComponentRef) *Extern             { return NewExtern(nil, 0) }
func (detachedHost) ValueSetInt(IntValueRef, int32) int32               { return StatusNullOrNotFound }
func (detachedHost) ValueSetFloat(FloatValueRef, float32) int32         { return StatusNullOrNotFound }
func (detachedHost) ValueSetDouble(DoubleValueRef, float64) int32       { return StatusNullOrNotFound }
func (detachedHost) ValueGetInt(IntValueRef) (int32, int32)             { return StatusNullOrNotFound, 0 }
func (detachedHost) ValueGetFloat(FloatValueRef) (int32, float32)       { return StatusNullOrNotFound, 0 }
func (detachedHost) ValueGetDouble(DoubleValueRef) (int32, float64)     { return StatusNullOrNotFound, 0 }

func (detachedHost) SlotFindChildByName(SlotRef, string, bool, bool, int32) SlotRef {
	return 0
}

func (detachedHost) ComponentMember(ComponentRef, string) (int32, int32, UnknownRef) {
	return StatusNullOrNotFound, MemberTypeUnknown, 0
}
