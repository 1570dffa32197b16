//go:build hybriddebug

package debug

// Enabled reports whether debug assertions are compiled in.
const Enabled = true
