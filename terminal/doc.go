// Package terminal owns the tcell screen and turns its events into simulation input.
//
// Mouse coordinates are translated to normalized device coordinates over the 3D
// view, left button press/release drives charging, and the weapon buttons drawn by
// the renderer intercept clicks before they reach the simulation.
package terminal
