// Package tagline reports the module version.
//
// The entity widget lives in package editor; the surface it operates on is
// modelled by package dom.
package tagline
