// Package model defines the value types exchanged between the host render
// pipeline and the annotation components: widget settings maps, render
// contexts, container attribute sets, and the diagnostic records emitted as
// a side channel of every decision. All types are plain values; components
// return new values instead of mutating host-owned state, so a host may run
// annotations concurrently across independent renders without coordination.
package model
