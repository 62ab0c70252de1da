package generator

import (
	"fmt"
	"io"
	"os"

	"github.com/tetratelabs/wazero/api"
	"gopkg.in/yaml.v3"
)

// API is the table of functions a host exports to guest modules.
type API struct {
	Module    string     `yaml:"module"`
	Functions []Function `yaml:"functions"`
}

type Function struct {
	// Name is the import name, e.g. slot__get_parent.
	Name string `yaml:"name"`
	// GoName is the name of the generated Go declaration.
	GoName string  `yaml:"go"`
	Params []Param `yaml:"params"`
	// Result is empty for functions that return nothing.
	Result string `yaml:"result"`
}

type Param struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// WireType describes how a table type crosses the boundary.
type WireType struct {
	ValueType api.ValueType
	// GoType is the type used in the guest's import declaration.
	GoType string
}

var paramTypes = map[string]WireType{
	"ref":     {api.ValueTypeI64, "uint64"},
	"i32":     {api.ValueTypeI32, "int32"},
	"bool":    {api.ValueTypeI32, "int32"},
	"f32":     {api.ValueTypeF32, "float32"},
	"f64":     {api.ValueTypeF64, "float64"},
	"cstring": {api.ValueTypeI32, "*byte"},
	"out_i32": {api.ValueTypeI32, "*int32"},
	"out_ref": {api.ValueTypeI32, "*uint64"},
	"out_f32": {api.ValueTypeI32, "*float32"},
	"out_f64": {api.ValueTypeI32, "*float64"},
}

var resultTypes = map[string]WireType{
	"ref":    {api.ValueTypeI64, "uint64"},
	"i32":    {api.ValueTypeI32, "int32"},
	"status": {api.ValueTypeI32, "int32"},
	"buffer": {api.ValueTypeI32, "uint32"},
}

// LoadAPI reads and validates the table at path.
func LoadAPI(path string) (*API, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := ParseAPI(f)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", path, err)
	}
	return a, nil
}

func ParseAPI(r io.Reader) (*API, error) {
	a := &API{}
	if err := yaml.NewDecoder(r).Decode(a); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks that names are unique and every type is known.
func (a *API) Validate() error {
	if a.Module == "" {
		return fmt.Errorf("module name is empty")
	}

	names := map[string]bool{}
	goNames := map[string]bool{}
	for _, f := range a.Functions {
		if f.Name == "" || f.GoName == "" {
			return fmt.Errorf("function %q needs both a name and a go name", f.Name)
		}
		if names[f.Name] {
			return fmt.Errorf("function %s is declared twice", f.Name)
		}
		if goNames[f.GoName] {
			return fmt.Errorf("go name %s is used twice", f.GoName)
		}
		names[f.Name] = true
		goNames[f.GoName] = true

		for _, p := range f.Params {
			if _, ok := paramTypes[p.Type]; !ok {
				return fmt.Errorf("function %s: parameter %s has unknown type %q", f.Name, p.Name, p.Type)
			}
		}
		if f.Result != "" {
			if _, ok := resultTypes[f.Result]; !ok {
				return fmt.Errorf("function %s: unknown result type %q", f.Name, f.Result)
			}
		}
	}
	return nil
}

// Function returns the function with the given import name.
func (a *API) Function(name string) (Function, bool) {
	for _, f := range a.Functions {
		if f.Name == name {
			return f, true
		}
	}
	return Function{}, false
}

func (f Function) ParamNames() []string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return names
}

func (f Function) ParamTypes() []api.ValueType {
	types := make([]api.ValueType, len(f.Params))
	for i, p := range f.Params {
		types[i] = paramTypes[p.Type].ValueType
	}
	return types
}

func (f Function) ResultTypes() []api.ValueType {
	if f.Result == "" {
		return []api.ValueType{}
	}
	return []api.ValueType{resultTypes[f.Result].ValueType}
}

func paramGoType(t string) string {
	return paramTypes[t].GoType
}

func resultGoType(t string) string {
	return resultTypes[t].GoType
}
