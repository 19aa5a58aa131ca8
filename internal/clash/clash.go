// internal/clash/clash.go
package clash

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"bindprep/internal/design"
)

// Filter rejects designs whose structure comes closer to the marker point
// than the exclusion radius. Marker and radius are external configuration;
// the marker stands in for a steric obstruction such as a glycosylation
// site.
type Filter struct {
	Marker r3.Vec
	Radius float64
}

// Check computes the minimum Cα distance from the structure to the marker.
// A distance strictly below the radius is a clash; a structure with no atoms
// in scope is feasible — absence of proximity is not evidence of clash.
func (f Filter) Check(d *design.Design) design.ClashVerdict {
	min := math.Inf(1)
	for _, res := range d.Structure {
		if dist := r3.Norm(res.CA.Sub(f.Marker)); dist < min {
			min = dist
		}
	}
	return design.ClashVerdict{
		Clash:   min < f.Radius,
		MinDist: min,
		Radius:  f.Radius,
		Marker:  f.Marker,
	}
}
