// Package viewer runs a headless tour viewer session over one city set.
//
// A Session is acquired with Open and released with Close; there is no
// package-level state. Each frame produces the overlay a windowed viewer
// would draw: the distance between the first two cities, the open path
// total for the set order, and the quit hint. Run ticks at the configured
// frame rate and writes one overlay line per frame until the context is
// cancelled or the frame limit is reached.
//
// Drawing, windowing and input handling are deliberately absent.
package viewer
