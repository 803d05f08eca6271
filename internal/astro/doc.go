// Package astro computes the compact-object physics behind the
// spaghettification demonstration.
//
// Everything here is a pure function of its arguments: given an object
// kind and mass in solar masses, and a separation distance, the package
// produces the quantities the rest of the application displays and
// animates:
//
//   - [SchwarzschildRadiusKm]: event-horizon radius of a black hole
//   - [SurfaceGravity]: gravitational acceleration at a given radius
//   - [TidalForce]: differential pull across a reference body length
//   - [BreakupDistanceKm]: simplified Roche-style survivability distance
//
// Units are part of each function's contract and are spelled out in the
// names (Km, M, Kg); mixing kilometers and meters is the easiest way to
// be wrong by nine orders of magnitude in this domain.
//
// [SurfaceGravity] returns +Inf for a zero radius (the singularity case)
// rather than an error; display code is expected to render it as "∞".
package astro
