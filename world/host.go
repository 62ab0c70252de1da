package world

import (
	"github.com/dergwasm/go-resonite"
	"go.uber.org/zap"
)

// Host returns the world as a resonite.Host, so guest code can be run
// in-process. Strings are allocated on the world's Heap.
func (w *World) Host() resonite.Host {
	return &localHost{w: w}
}

type localHost struct {
	w *World
}

func (h *localHost) ref(op string, id uint64, err error) uint64 {
	if err != nil {
		h.w.logger.Debug("host call failed", zap.String("op", op), zap.Error(err))
		return 0
	}
	return id
}

func (h *localHost) status(op string, err error) int32 {
	if err != nil {
		h.w.logger.Debug("host call failed", zap.String("op", op), zap.Error(err))
	}
	return StatusOf(err)
}

func (h *localHost) buffer(op string, s string, err error) *resonite.Extern {
	if err != nil {
		h.w.logger.Debug("host call failed", zap.String("op", op), zap.Error(err))
		return resonite.NewExtern(h.w.heap, 0)
	}
	return resonite.NewExtern(h.w.heap, h.w.heap.Alloc(s))
}

func (h *localHost) RootSlot() resonite.SlotRef {
	return resonite.SlotRef(h.w.RootSlot())
}

func (h *localHost) SlotParent(slot resonite.SlotRef) resonite.SlotRef {
	id, err := h.w.SlotParent(slot.Raw())
	return resonite.SlotRef(h.ref("slot parent", id, err))
}

func (h *localHost) SlotActiveUser(slot resonite.SlotRef) resonite.UserRef {
	id, err := h.w.SlotActiveUser(slot.Raw())
	return resonite.UserRef(h.ref("slot active user", id, err))
}

func (h *localHost) SlotActiveUserRoot(slot resonite.SlotRef) resonite.UserRootRef {
	id, err := h.w.SlotActiveUserRoot(slot.Raw())
	return resonite.UserRootRef(h.ref("slot active user root", id, err))
}

func (h *localHost) SlotObjectRoot(slot resonite.SlotRef, onlyExplicit bool) resonite.SlotRef {
	id, err := h.w.SlotObjectRoot(slot.Raw(), onlyExplicit)
	return resonite.SlotRef(h.ref("slot object root", id, err))
}

func (h *localHost) SlotName(slot resonite.SlotRef) *resonite.Extern {
	name, err := h.w.SlotName(slot.Raw())
	return h.buffer("slot name", name, err)
}

func (h *localHost) SlotSetName(slot resonite.SlotRef, name string) int32 {
	return h.status("slot set name", h.w.SetSlotName(slot.Raw(), name))
}

func (h *localHost) SlotNumChildren(slot resonite.SlotRef) int32 {
	n, err := h.w.SlotNumChildren(slot.Raw())
	if err != nil {
		h.status("slot num children", err)
		return 0
	}
	return n
}

func (h *localHost) SlotChild(slot resonite.SlotRef, index int32) resonite.SlotRef {
	id, err := h.w.SlotChild(slot.Raw(), index)
	return resonite.SlotRef(h.ref("slot child", id, err))
}

func (h *localHost) SlotFindChildByName(slot resonite.SlotRef, name string, matchSubstring, ignoreCase bool, maxDepth int32) resonite.SlotRef {
	id, err := h.w.SlotFindChildByName(slot.Raw(), name, matchSubstring, ignoreCase, maxDepth)
	return resonite.SlotRef(h.ref("slot find child by name", id, err))
}

func (h *localHost) SlotFindChildByTag(slot resonite.SlotRef, tag string, maxDepth int32) resonite.SlotRef {
	id, err := h.w.SlotFindChildByTag(slot.Raw(), tag, maxDepth)
	return resonite.SlotRef(h.ref("slot find child by tag", id, err))
}

func (h *localHost) SlotComponent(slot resonite.SlotRef, typeName string) resonite.ComponentRef {
	id, err := h.w.SlotComponent(slot.Raw(), typeName)
	return resonite.ComponentRef(h.ref("slot component", id, err))
}

func (h *localHost) ComponentTypeName(component resonite.ComponentRef) *resonite.Extern {
	name, err := h.w.ComponentTypeName(component.Raw())
	return h.buffer("component type name", name, err)
}

func (h *localHost) ComponentMember(component resonite.ComponentRef, name string) (int32, int32, resonite.UnknownRef) {
	typeCode, id, err := h.w.ComponentMember(component.Raw(), name)
	return h.status("component member", err), typeCode, resonite.UnknownRef(id)
}

func (h *localHost) ValueGetInt(value resonite.IntValueRef) (int32, int32) {
	v, err := h.w.GetInt(value.Raw())
	return h.status("value get int", err), v
}

func (h *localHost) ValueSetInt(value resonite.IntValueRef, v int32) int32 {
	return h.status("value set int", h.w.SetInt(value.Raw(), v))
}

func (h *localHost) ValueGetFloat(value resonite.FloatValueRef) (int32, float32) {
	v, err := h.w.GetFloat(value.Raw())
	return h.status("value get float", err), v
}

func (h *localHost) ValueSetFloat(value resonite.FloatValueRef, v float32) int32 {
	return h.status("value set float", h.w.SetFloat(value.Raw(), v))
}

func (h *localHost) ValueGetDouble(value resonite.DoubleValueRef) (int32, float64) {
	v, err := h.w.GetDouble(value.Raw())
	return h.status("value get double", err), v
}

func (h *localHost) ValueSetDouble(value resonite.DoubleValueRef, v float64) int32 {
	return h.status("value set double", h.w.SetDouble(value.Raw(), v))
}
