// Package deform drives the visual stretching of a test body caught in
// a tidal field. An [Engine] is a small state machine: idle it emits the
// identity transform, and once triggered it ramps a stretch factor from
// 0 to 1, shrinking the body laterally while elongating it toward the
// mass. The ramp is purely time based; tidal readings passed to
// [Engine.Advance] are kept for display but never change the pace.
//
// The engine owns no timers. Demonstration windows belong to the
// caller, which ends one by calling [Engine.Stop].
package deform
