// Package gauge maps a score and a set of colored threshold bands (slabs)
// onto the geometry of a semicircular meter. It exposes [Render], which
// returns a backend-neutral [Chart], along with the slab [Lookup], the
// linear scales, pointer snapping and the animation [Timeline] the chart
// is built from. Nothing in this package draws pixels.
package gauge
