package env

import (
	"context"

	"github.com/dergwasm/go-resonite/world"

	"github.com/tetratelabs/wazero/api"
)

var SlotRootSlot = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	stack[0] = env.world.RootSlot()
})

var SlotGetParent = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	id, err := env.world.SlotParent(stack[0])
	stack[0] = env.ref("slot__get_parent", id, err)
})

var SlotGetActiveUser = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	id, err := env.world.SlotActiveUser(stack[0])
	stack[0] = env.ref("slot__get_active_user", id, err)
})

var SlotGetActiveUserRoot = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	id, err := env.world.SlotActiveUserRoot(stack[0])
	stack[0] = env.ref("slot__get_active_user_root", id, err)
})

var SlotGetObjectRoot = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	onlyExplicit := api.DecodeI32(stack[1]) != 0
	id, err := env.world.SlotObjectRoot(stack[0], onlyExplicit)
	stack[0] = env.ref("slot__get_object_root", id, err)
})

var SlotGetName = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	name, err := env.world.SlotName(stack[0])
	if err != nil {
		env.ref("slot__get_name", 0, err)
		stack[0] = api.EncodeU32(0)
		return
	}
	stack[0] = api.EncodeU32(env.allocCString(ctx, mod, name))
})

var SlotSetName = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	slot := stack[0]
	name, err := env.readCString(mod, api.DecodeU32(stack[1]))
	if err == nil {
		err = env.world.SetSlotName(slot, name)
	}
	stack[0] = api.EncodeI32(env.status("slot__set_name", err))
})

var SlotGetNumChildren = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	n, err := env.world.SlotNumChildren(stack[0])
	if err != nil {
		env.status("slot__get_num_children", err)
		n = 0
	}
	stack[0] = api.EncodeI32(n)
})

var SlotGetChild = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	id, err := env.world.SlotChild(stack[0], api.DecodeI32(stack[1]))
	stack[0] = env.ref("slot__get_child", id, err)
})

var SlotFindChildByName = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	slot := stack[0]
	matchSubstring := api.DecodeI32(stack[2]) != 0
	ignoreCase := api.DecodeI32(stack[3]) != 0
	maxDepth := api.DecodeI32(stack[4])

	name, err := env.readCString(mod, api.DecodeU32(stack[1]))
	if err != nil {
		stack[0] = env.ref("slot__find_child_by_name", 0, err)
		return
	}
	id, err := env.world.SlotFindChildByName(slot, name, matchSubstring, ignoreCase, maxDepth)
	stack[0] = env.ref("slot__find_child_by_name", id, err)
})

var SlotFindChildByTag = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	slot := stack[0]
	maxDepth := api.DecodeI32(stack[2])

	tag, err := env.readCString(mod, api.DecodeU32(stack[1]))
	if err != nil {
		stack[0] = env.ref("slot__find_child_by_tag", 0, err)
		return
	}
	id, err := env.world.SlotFindChildByTag(slot, tag, maxDepth)
	stack[0] = env.ref("slot__find_child_by_tag", id, err)
})

var SlotGetComponent = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	slot := stack[0]

	typeName, err := env.readCString(mod, api.DecodeU32(stack[1]))
	if err != nil {
		stack[0] = env.ref("slot__get_component", 0, err)
		return
	}
	id, err := env.world.SlotComponent(slot, typeName)
	stack[0] = env.ref("slot__get_component", id, err)
})

var ComponentGetTypeName = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	typeName, err := env.world.ComponentTypeName(stack[0])
	if err != nil {
		env.ref("component__get_type_name", 0, err)
		stack[0] = api.EncodeU32(0)
		return
	}
	stack[0] = api.EncodeU32(env.allocCString(ctx, mod, typeName))
})

var ComponentGetMember = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	component := stack[0]
	outType := api.DecodeU32(stack[2])
	outMember := api.DecodeU32(stack[3])

	if outType == 0 || outMember == 0 {
		stack[0] = api.EncodeI32(env.status("component__get_member", world.ErrNullArgument))
		return
	}

	name, err := env.readCString(mod, api.DecodeU32(stack[1]))
	if err != nil {
		stack[0] = api.EncodeI32(env.status("component__get_member", err))
		return
	}

	typeCode, id, err := env.world.ComponentMember(component, name)
	if err == nil {
		writeI32(mod, outType, typeCode)
		writeU64(mod, outMember, id)
	}
	stack[0] = api.EncodeI32(env.status("component__get_member", err))
})

var ValueGetInt = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	out := api.DecodeU32(stack[1])
	if out == 0 {
		stack[0] = api.EncodeI32(env.status("value__get_int", world.ErrNullArgument))
		return
	}
	v, err := env.world.GetInt(stack[0])
	if err == nil {
		writeI32(mod, out, v)
	}
	stack[0] = api.EncodeI32(env.status("value__get_int", err))
})

var ValueSetInt = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	err := env.world.SetInt(stack[0], api.DecodeI32(stack[1]))
	stack[0] = api.EncodeI32(env.status("value__set_int", err))
})

var ValueGetFloat = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	out := api.DecodeU32(stack[1])
	if out == 0 {
		stack[0] = api.EncodeI32(env.status("value__get_float", world.ErrNullArgument))
		return
	}
	v, err := env.world.GetFloat(stack[0])
	if err == nil {
		writeF32(mod, out, v)
	}
	stack[0] = api.EncodeI32(env.status("value__get_float", err))
})

var ValueSetFloat = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	err := env.world.SetFloat(stack[0], api.DecodeF32(stack[1]))
	stack[0] = api.EncodeI32(env.status("value__set_float", err))
})

var ValueGetDouble = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	out := api.DecodeU32(stack[1])
	if out == 0 {
		stack[0] = api.EncodeI32(env.status("value__get_double", world.ErrNullArgument))
		return
	}
	v, err := env.world.GetDouble(stack[0])
	if err == nil {
		writeF64(mod, out, v)
	}
	stack[0] = api.EncodeI32(env.status("value__get_double", err))
})

var ValueSetDouble = api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
	env := MustGetEnvironmentFromContext(ctx, mod)
	err := env.world.SetDouble(stack[0], api.DecodeF64(stack[1]))
	stack[0] = api.EncodeI32(env.status("value__set_double", err))
})
