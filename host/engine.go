// Package host runs Resonite guest modules with wazero. It exports the
// functions guests import from "env" and serves them from a world.World.
//
//	w, _ := world.LoadFixtureFile("world.yaml")
//	environment := host.CreateEnvironment(w, host.NewConfig())
//	ctx = environment.Attach(ctx)
//
//	builder := runtime.NewHostModuleBuilder("env")
//	err := environment.NewFunctionExporterForModule(compiled).ExportFunctions(builder)
//	...
//	_, err = builder.Instantiate(ctx)
package host

import (
	internal "github.com/dergwasm/go-resonite/internal/env"
	"github.com/dergwasm/go-resonite/world"

	"github.com/tetratelabs/wazero"
)

type Environment interface {
	internal.Environment
	NewFunctionExporterForModule(guest wazero.CompiledModule) FunctionExporter
}

type EnvironmentKey = internal.EnvironmentKey

// CreateEnvironment returns a new environment to attach to your context.
// Be sure to attach it before you run InstantiateModule on the runtime, since
// the guest's start function may already call into the host.
func CreateEnvironment(w *world.World, config internal.IEnvironmentConfig) Environment {
	return &wazeroEnvironment{
		config:      config,
		Environment: internal.CreateEnvironment(w, config),
	}
}
