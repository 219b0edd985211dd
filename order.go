package packed

import "encoding/binary"

// Order is the byte order of every multi-byte value decoded by this package.
//
// The packed format is little-endian with no padding between or around
// members. Any format that relies on this package for interoperability
// inherits exactly these two rules. The variable has the concrete type of
// binary.LittleEndian, so it cannot be switched to another order.
var Order = binary.LittleEndian
