package packed

import "sync"

// SCRATCH_SIZE covers the records of most packed formats; larger records
// get a one-off allocation.
const SCRATCH_SIZE = 4096

// scratchPool reuses the record buffers of Reader.
var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, SCRATCH_SIZE)
		return &b
	},
}
