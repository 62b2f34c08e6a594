package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"bytes"
	"context"
	"unsafe"

	"github.com/signalnine/haikyu-sim/gosim/config"
	"github.com/signalnine/haikyu-sim/gosim/report"
	"github.com/signalnine/haikyu-sim/gosim/simulation"
)

//export SimulateRun
func SimulateRun(configPtr unsafe.Pointer, configLen C.int, responseLen *C.int) unsafe.Pointer {
	*responseLen = 0

	var configJSON []byte
	if configLen > 0 {
		configJSON = C.GoBytes(configPtr, configLen)
	}
	responseBytes, err := simulate(configJSON)
	if err != nil || len(responseBytes) == 0 {
		return nil
	}

	// Allocate C memory for response (caller must free)
	cBytes := C.malloc(C.size_t(len(responseBytes)))
	if cBytes == nil {
		return nil
	}
	C.memcpy(cBytes, unsafe.Pointer(&responseBytes[0]), C.size_t(len(responseBytes)))
	*responseLen = C.int(len(responseBytes))
	return cBytes
}

//export FreeResponse
func FreeResponse(ptr unsafe.Pointer) {
	C.free(ptr)
}

// simulate runs the JSON-encoded configuration, defaults filling any
// missing keys, and returns the report as a FlatBuffer.
func simulate(configJSON []byte) ([]byte, error) {
	cfg := config.Default()
	if len(configJSON) > 0 {
		if err := cfg.DecodeJSON(bytes.NewReader(configJSON)); err != nil {
			return nil, err
		}
	}
	runner, err := simulation.NewRunner(cfg)
	if err != nil {
		return nil, err
	}
	rep, err := runner.Run(context.Background())
	if err != nil {
		return nil, err
	}
	return report.EncodeFlatBuffer(rep), nil
}

func main() {} // Required for CGo
