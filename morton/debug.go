//go:build !mortondebug

package morton

// Debug enables domain assertions on hot paths. Build with -tags mortondebug to turn it on.
const Debug = false
