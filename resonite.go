// Package resonite lets Go code compiled to WebAssembly reach into a
// Resonite world: slots, components, users and the values components hold.
//
// Every accessor is a thin wrapper around one function imported from the
// host's "env" module. Objects are referred to by opaque 64-bit RefIDs; the
// host owns them and may destroy them at any time, in which case further
// calls report an error or absence rather than panicking.
//
// The imports are modelled by the Host interface so code can run against a
// host other than the real one, e.g. the in-memory world in package world:
//
//	root, err := resonite.RootSlot(w.Host())
//	if err != nil {
//		return err
//	}
//	for child := range root.Children().All() {
//		name, _ := child.Name()
//		fmt.Println(child.Ref(), name)
//	}
//
// Inside a wasip1 module, Root uses the imported functions directly.
package resonite

//go:generate go run ./generator -api resonite_api.yaml -out imports_wasip1.go

// Host is the set of functions the host exports to the guest. Each method
// corresponds to exactly one import; see resonite_api.yaml.
type Host interface {
	RootSlot() SlotRef
	SlotParent(slot SlotRef) SlotRef
	SlotActiveUser(slot SlotRef) UserRef
	SlotActiveUserRoot(slot SlotRef) UserRootRef
	SlotObjectRoot(slot SlotRef, onlyExplicit bool) SlotRef
	SlotName(slot SlotRef) *Extern
	SlotSetName(slot SlotRef, name string) int32
	SlotNumChildren(slot SlotRef) int32
	SlotChild(slot SlotRef, index int32) SlotRef
	SlotFindChildByName(slot SlotRef, name string, matchSubstring, ignoreCase bool, maxDepth int32) SlotRef
	SlotFindChildByTag(slot SlotRef, tag string, maxDepth int32) SlotRef
	SlotComponent(slot SlotRef, typeName string) ComponentRef

	ComponentTypeName(component ComponentRef) *Extern
	ComponentMember(component ComponentRef, name string) (status int32, typeCode int32, member UnknownRef)

	ValueGetInt(value IntValueRef) (status int32, v int32)
	ValueSetInt(value IntValueRef, v int32) int32
	ValueGetFloat(value FloatValueRef) (status int32, v float32)
	ValueSetFloat(value FloatValueRef, v float32) int32
	ValueGetDouble(value DoubleValueRef) (status int32, v float64)
	ValueSetDouble(value DoubleValueRef, v float64) int32
}

// Root returns the root slot of the world the module runs in.
func Root() (Slot, error) {
	return RootSlot(DefaultHost())
}
