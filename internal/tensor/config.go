package tensor

import (
	"sync/atomic"

	"github.com/born-ml/datagrid/internal/parallel"
)

var parallelConfig atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.DefaultConfig()
	parallelConfig.Store(&cfg)
}

// SetParallelConfig replaces the kernel fan-out settings used by every
// subsequent operation. Results do not depend on the setting, only timing.
func SetParallelConfig(cfg parallel.Config) {
	parallelConfig.Store(&cfg)
}

// ParallelConfig returns the current kernel fan-out settings.
func ParallelConfig() parallel.Config {
	return *parallelConfig.Load()
}
