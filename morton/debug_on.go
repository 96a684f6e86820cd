//go:build mortondebug

package morton

const Debug = true
