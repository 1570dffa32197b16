// Package debug holds checks that only run in builds tagged hybriddebug.
//
// Release builds compile Enabled to false. Callers wrap every Assert in
// if debug.Enabled, so the check and the boxing of its arguments are
// removed by the compiler.
package debug
