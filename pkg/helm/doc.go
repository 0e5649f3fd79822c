// Package helm renders Helm charts into manifest streams.
//
// Rendering runs fully client-side against a local chart directory, either
// in-process through the Helm SDK (the default) or by shelling out to a helm
// binary when one is configured. Both modes produce the same multi-document
// YAML text; parsing and extraction happen downstream.
package helm
