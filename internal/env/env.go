// Package env implements the functions a Resonite host exports to guest
// modules on top of a world.World. The functions find their environment in
// the context passed to the guest call.
package env

import (
	"context"
	"fmt"
	"sync"

	"github.com/dergwasm/go-resonite/world"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
)

// IEnvironmentConfig is implemented by host.EnvironmentConfig.
type IEnvironmentConfig interface {
	GetLogger() *zap.Logger
	// GetMaxStringLength bounds the strings read from guest memory.
	GetMaxStringLength() uint32
}

type Environment interface {
	Attach(ctx context.Context) context.Context
	World() *world.World
	Config() IEnvironmentConfig
}

type environment struct {
	mu     sync.Mutex
	world  *world.World
	config IEnvironmentConfig
	logger *zap.Logger
	mod    api.Module
}

// EnvironmentKey Use this key to add the environment to your context:
// ctx = context.WithValue(ctx, env.EnvironmentKey{}, environment)
type EnvironmentKey struct{}

func CreateEnvironment(w *world.World, config IEnvironmentConfig) Environment {
	logger := config.GetLogger()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &environment{
		world:  w,
		config: config,
		logger: logger.Named("env"),
	}
}

func (e *environment) Attach(ctx context.Context) context.Context {
	return context.WithValue(ctx, EnvironmentKey{}, e)
}

func (e *environment) World() *world.World {
	return e.world
}

func (e *environment) Config() IEnvironmentConfig {
	return e.config
}

func GetEnvironmentFromContext(ctx context.Context) (Environment, error) {
	raw := ctx.Value(EnvironmentKey{})
	if raw == nil {
		return nil, fmt.Errorf("resonite environment not found in context")
	}

	value, ok := raw.(Environment)
	if !ok {
		return nil, fmt.Errorf("context value %v not of type %T", raw, new(Environment))
	}

	return value, nil
}

// MustGetEnvironmentFromContext returns the environment and binds it to mod
// on first use. An environment serves a single module.
func MustGetEnvironmentFromContext(ctx context.Context, mod api.Module) *environment {
	e, err := GetEnvironmentFromContext(ctx)
	if err != nil {
		panic(fmt.Errorf("could not get resonite environment from context: %w, make sure to create an environment with host.CreateEnvironment() and to attach it to the context with \"ctx = environment.Attach(ctx)\"", err))
	}

	env := e.(*environment)
	env.mu.Lock()
	defer env.mu.Unlock()

	if env.mod != nil && mod != nil && env.mod != mod {
		panic(fmt.Errorf("could not get resonite environment from context, this environment was created for another Wazero api.Module"))
	}
	if mod != nil {
		env.mod = mod
	}

	return env
}

// ref returns id, or 0 when err is set.
func (e *environment) ref(name string, id uint64, err error) uint64 {
	if err != nil {
		e.logger.Debug("host call failed", zap.String("function", name), zap.Error(err))
		return 0
	}
	return id
}

func (e *environment) status(name string, err error) int32 {
	if err != nil {
		e.logger.Debug("host call failed", zap.String("function", name), zap.Error(err))
	}
	return world.StatusOf(err)
}
