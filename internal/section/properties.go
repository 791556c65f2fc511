package section

import "math"

// Properties holds calculated geometric properties of a section.
type Properties struct {
	// Overall dimensions
	Width  float64 // maximum width
	Height float64 // total height
	Area   float64 // gross area

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Second moments of area about the centroidal axes
	MomentOfInertiaX float64
	MomentOfInertiaY float64

	// Elastic section moduli about the horizontal centroidal axis
	SectionModulusTop    float64
	SectionModulusBottom float64

	// Radii of gyration
	RadiusOfGyrationX float64
	RadiusOfGyrationY float64
}

// CalculateProperties computes the geometric properties of the
// section. Vertex orientation does not matter; signed quantities are
// folded together before taking magnitudes.
func (s *Section) CalculateProperties() *Properties {
	props := &Properties{}

	if len(s.Vertices) < 3 {
		return props
	}

	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y
	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}
	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Shoelace sums over the closed boundary. Everything stays signed
	// until the parallel axis transfer so a clockwise polygon lands on
	// the same magnitudes.
	n := len(s.Vertices)
	var signedArea, sumX, sumY, sumIx, sumIy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := s.Vertices[i], s.Vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y

		signedArea += cross
		sumX += (vi.X + vj.X) * cross
		sumY += (vi.Y + vj.Y) * cross
		sumIx += (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y) * cross
		sumIy += (vi.X*vi.X + vi.X*vj.X + vj.X*vj.X) * cross
	}

	signedArea /= 2
	props.Area = math.Abs(signedArea)
	if props.Area == 0 {
		return props
	}

	props.CentroidX = sumX / (6 * signedArea)
	props.CentroidY = sumY / (6 * signedArea)

	// Second moments about the origin, then shifted to the centroid.
	ixOrigin := sumIx / 12
	iyOrigin := sumIy / 12
	props.MomentOfInertiaX = math.Abs(ixOrigin - signedArea*props.CentroidY*props.CentroidY)
	props.MomentOfInertiaY = math.Abs(iyOrigin - signedArea*props.CentroidX*props.CentroidX)

	if top := props.MaxY - props.CentroidY; top > 0 {
		props.SectionModulusTop = props.MomentOfInertiaX / top
	}
	if bottom := props.CentroidY - props.MinY; bottom > 0 {
		props.SectionModulusBottom = props.MomentOfInertiaX / bottom
	}

	props.RadiusOfGyrationX = math.Sqrt(props.MomentOfInertiaX / props.Area)
	props.RadiusOfGyrationY = math.Sqrt(props.MomentOfInertiaY / props.Area)

	return props
}
