package catch

// Kind classifies a falling entity.
type Kind int

const (
	Beneficial Kind = iota // clean water drop
	Harmful                // pollutant
)

func (k Kind) String() string {
	if k == Harmful {
		return "harmful"
	}
	return "beneficial"
}

// Entity is a falling object. X is fixed at spawn; Y is the center and
// grows every frame. The radius comes from the current Geometry.
type Entity struct {
	X, Y float64
	Kind Kind
}

// Bottom returns the leading edge of the entity.
func (e Entity) Bottom(g Geometry) float64 {
	return e.Y + g.Radius
}
