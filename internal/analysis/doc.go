// Package analysis derives plottable and tabular views from the tidal
// field model.
//
//   - [ForceCurve]: tidal stress sampled across a distance range
//   - [CompareRows]: per-object comparison rows for the reference table
//
// Everything here is closed form; no simulation run is needed.
package analysis
