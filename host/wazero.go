package host

import (
	"fmt"

	internal "github.com/dergwasm/go-resonite/internal/env"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

type wazeroEnvironment struct {
	internal.Environment
	config internal.IEnvironmentConfig
}

func (we *wazeroEnvironment) NewFunctionExporterForModule(guest wazero.CompiledModule) FunctionExporter {
	return &functionExporter{
		config: we.config,
		guest:  guest,
	}
}

// FunctionExporter configures the functions in the "env" module guests
// import from Resonite.
type FunctionExporter interface {
	// ExportFunctions builds functions to export with a wazero.HostModuleBuilder
	// named "env".
	ExportFunctions(wazero.HostModuleBuilder) error
}

type functionExporter struct {
	config internal.IEnvironmentConfig
	guest  wazero.CompiledModule
}

type unexportedFunctionError struct {
	name string
}

func (e unexportedFunctionError) Error() string {
	return fmt.Sprintf("you need to export the \"%s\" function so the host can hand strings to the module, Go guests get it by importing github.com/dergwasm/go-resonite", e.name)
}

type unexportedMemoryError struct {
	name string
}

func (e unexportedMemoryError) Error() string {
	return fmt.Sprintf("the module needs to export its linear memory as \"%s\"", e.name)
}

var (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
	f32 = api.ValueTypeF32
	f64 = api.ValueTypeF64
)

// ExportFunctions implements FunctionExporter.ExportFunctions
func (e functionExporter) ExportFunctions(b wazero.HostModuleBuilder) error {
	// First validate whether required functions are available.
	requiredFunctions := []string{"malloc", "free"}
	exportedFunctions := e.guest.ExportedFunctions()
	for i := range requiredFunctions {
		requiredFunction := requiredFunctions[i]
		if _, ok := exportedFunctions[requiredFunction]; !ok {
			return unexportedFunctionError{
				name: requiredFunction,
			}
		}
	}
	if _, ok := e.guest.ExportedMemories()["memory"]; !ok {
		return unexportedMemoryError{name: "memory"}
	}

	b.NewFunctionBuilder().
		WithName("slot__root_slot").
		WithResultNames("slot").
		WithGoModuleFunction(internal.SlotRootSlot, []api.ValueType{}, []api.ValueType{i64}).
		Export("slot__root_slot")

	b.NewFunctionBuilder().
		WithName("slot__get_parent").
		WithParameterNames("slot").
		WithGoModuleFunction(internal.SlotGetParent, []api.ValueType{i64}, []api.ValueType{i64}).
		Export("slot__get_parent")

	b.NewFunctionBuilder().
		WithName("slot__get_active_user").
		WithParameterNames("slot").
		WithGoModuleFunction(internal.SlotGetActiveUser, []api.ValueType{i64}, []api.ValueType{i64}).
		Export("slot__get_active_user")

	b.NewFunctionBuilder().
		WithName("slot__get_active_user_root").
		WithParameterNames("slot").
		WithGoModuleFunction(internal.SlotGetActiveUserRoot, []api.ValueType{i64}, []api.ValueType{i64}).
		Export("slot__get_active_user_root")

	b.NewFunctionBuilder().
		WithName("slot__get_object_root").
		WithParameterNames("slot", "onlyExplicit").
		WithGoModuleFunction(internal.SlotGetObjectRoot, []api.ValueType{i64, i32}, []api.ValueType{i64}).
		Export("slot__get_object_root")

	b.NewFunctionBuilder().
		WithName("slot__get_name").
		WithParameterNames("slot").
		WithGoModuleFunction(internal.SlotGetName, []api.ValueType{i64}, []api.ValueType{i32}).
		Export("slot__get_name")

	b.NewFunctionBuilder().
		WithName("slot__set_name").
		WithParameterNames("slot", "name").
		WithGoModuleFunction(internal.SlotSetName, []api.ValueType{i64, i32}, []api.ValueType{i32}).
		Export("slot__set_name")

	b.NewFunctionBuilder().
		WithName("slot__get_num_children").
		WithParameterNames("slot").
		WithGoModuleFunction(internal.SlotGetNumChildren, []api.ValueType{i64}, []api.ValueType{i32}).
		Export("slot__get_num_children")

	b.NewFunctionBuilder().
		WithName("slot__get_child").
		WithParameterNames("slot", "index").
		WithGoModuleFunction(internal.SlotGetChild, []api.ValueType{i64, i32}, []api.ValueType{i64}).
		Export("slot__get_child")

	b.NewFunctionBuilder().
		WithName("slot__find_child_by_name").
		WithParameterNames("slot", "name", "matchSubstring", "ignoreCase", "maxDepth").
		WithGoModuleFunction(internal.SlotFindChildByName, []api.ValueType{i64, i32, i32, i32, i32}, []api.ValueType{i64}).
		Export("slot__find_child_by_name")

	b.NewFunctionBuilder().
		WithName("slot__find_child_by_tag").
		WithParameterNames("slot", "tag", "maxDepth").
		WithGoModuleFunction(internal.SlotFindChildByTag, []api.ValueType{i64, i32, i32}, []api.ValueType{i64}).
		Export("slot__find_child_by_tag")

	b.NewFunctionBuilder().
		WithName("slot__get_component").
		WithParameterNames("slot", "typeName").
		WithGoModuleFunction(internal.SlotGetComponent, []api.ValueType{i64, i32}, []api.ValueType{i64}).
		Export("slot__get_component")

	b.NewFunctionBuilder().
		WithName("component__get_type_name").
		WithParameterNames("component").
		WithGoModuleFunction(internal.ComponentGetTypeName, []api.ValueType{i64}, []api.ValueType{i32}).
		Export("component__get_type_name")

	b.NewFunctionBuilder().
		WithName("component__get_member").
		WithParameterNames("component", "name", "outType", "outMember").
		WithGoModuleFunction(internal.ComponentGetMember, []api.ValueType{i64, i32, i32, i32}, []api.ValueType{i32}).
		Export("component__get_member")

	b.NewFunctionBuilder().
		WithName("value__get_int").
		WithParameterNames("value", "out").
		WithGoModuleFunction(internal.ValueGetInt, []api.ValueType{i64, i32}, []api.ValueType{i32}).
		Export("value__get_int")

	b.NewFunctionBuilder().
		WithName("value__set_int").
		WithParameterNames("value", "v").
		WithGoModuleFunction(internal.ValueSetInt, []api.ValueType{i64, i32}, []api.ValueType{i32}).
		Export("value__set_int")

	b.NewFunctionBuilder().
		WithName("value__get_float").
		WithParameterNames("value", "out").
		WithGoModuleFunction(internal.ValueGetFloat, []api.ValueType{i64, i32}, []api.ValueType{i32}).
		Export("value__get_float")

	b.NewFunctionBuilder().
		WithName("value__set_float").
		WithParameterNames("value", "v").
		WithGoModuleFunction(internal.ValueSetFloat, []api.ValueType{i64, f32}, []api.ValueType{i32}).
		Export("value__set_float")

	b.NewFunctionBuilder().
		WithName("value__get_double").
		WithParameterNames("value", "out").
		WithGoModuleFunction(internal.ValueGetDouble, []api.ValueType{i64, i32}, []api.ValueType{i32}).
		Export("value__get_double")

	b.NewFunctionBuilder().
		WithName("value__set_double").
		WithParameterNames("value", "v").
		WithGoModuleFunction(internal.ValueSetDouble, []api.ValueType{i64, f64}, []api.ValueType{i32}).
		Export("value__set_double")

	return nil
}
