package env

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dergwasm/go-resonite/world"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
)

var errStringTooLong = errors.New("C string exceeds the maximum length")

// readCString reads a NUL-terminated string from guest memory. A null
// pointer is reported as world.ErrNullArgument.
func (e *environment) readCString(mod api.Module, addr uint32) (string, error) {
	if addr == 0 {
		return "", world.ErrNullArgument
	}

	maxLen := e.config.GetMaxStringLength()
	var sb strings.Builder
	for {
		b, success := mod.Memory().ReadByte(addr)
		if !success {
			return "", errors.New("could not read C string data")
		}

		// Stop when we encounter nil terminator of Cstring
		if b == 0 {
			break
		}

		if maxLen > 0 && uint32(sb.Len()) >= maxLen {
			return "", errStringTooLong
		}

		sb.WriteByte(b)
		addr++
	}

	return sb.String(), nil
}

// allocCString copies s into memory allocated with the guest's malloc. The
// guest owns the result and frees it. A failed allocation returns 0.
func (e *environment) allocCString(ctx context.Context, mod api.Module, s string) uint32 {
	ptr, err := e.malloc(ctx, mod, uint32(len(s)+1))
	if err != nil {
		e.logger.Warn("could not allocate string in guest", zap.Int("length", len(s)), zap.Error(err))
		return 0
	}

	buf := make([]byte, len(s)+1)
	copy(buf, s)
	if !mod.Memory().Write(ptr, buf) {
		e.logger.Warn("could not write string to guest memory", zap.Uint32("ptr", ptr), zap.Int("length", len(s)))
		e.free(ctx, mod, ptr)
		return 0
	}
	return ptr
}

func (e *environment) malloc(ctx context.Context, mod api.Module, size uint32) (uint32, error) {
	malloc := mod.ExportedFunction("malloc")
	if malloc == nil {
		return 0, errors.New("guest does not export malloc")
	}
	res, err := malloc.Call(ctx, api.EncodeU32(size))
	if err != nil {
		return 0, err
	}
	if len(res) == 0 {
		return 0, errors.New("malloc returned nothing")
	}
	ptr := api.DecodeU32(res[0])
	if ptr == 0 {
		return 0, fmt.Errorf("malloc could not allocate %d bytes", size)
	}
	return ptr, nil
}

func (e *environment) free(ctx context.Context, mod api.Module, ptr uint32) {
	free := mod.ExportedFunction("free")
	if free == nil {
		return
	}
	if _, err := free.Call(ctx, api.EncodeU32(ptr)); err != nil {
		e.logger.Warn("could not free guest memory", zap.Uint32("ptr", ptr), zap.Error(err))
	}
}

// The writers below panic when the guest handed out an address outside its
// memory; wazero turns the panic into a trap for the calling guest.

func writeI32(mod api.Module, addr uint32, v int32) {
	if !mod.Memory().WriteUint32Le(addr, uint32(v)) {
		panic(fmt.Errorf("could not write i32 to guest memory at %d", addr))
	}
}

func writeU64(mod api.Module, addr uint32, v uint64) {
	if !mod.Memory().WriteUint64Le(addr, v) {
		panic(fmt.Errorf("could not write i64 to guest memory at %d", addr))
	}
}

func writeF32(mod api.Module, addr uint32, v float32) {
	if !mod.Memory().WriteFloat32Le(addr, v) {
		panic(fmt.Errorf("could not write f32 to guest memory at %d", addr))
	}
}

func writeF64(mod api.Module, addr uint32, v float64) {
	if !mod.Memory().WriteFloat64Le(addr, v) {
		panic(fmt.Errorf("could not write f64 to guest memory at %d", addr))
	}
}
