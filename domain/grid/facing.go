package grid

// Facing is one of the four cardinal directions the agent can face.
type Facing uint8

// Facings in clockwise order.
const (
	North Facing = iota
	East
	South
	West
)

// facingCount is the number of facings; it sizes per-state tables.
const facingCount = 4

var facingNames = [facingCount]string{"north", "east", "south", "west"}

var facingDeltas = [facingCount]Coordinate{
	North: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
}

// Pivot returns the facing after a 90 degree clockwise turn.
func (f Facing) Pivot() Facing {
	return (f + 1) % facingCount
}

// Delta returns the unit offset of one move in this facing.
func (f Facing) Delta() Coordinate {
	return facingDeltas[f%facingCount]
}

// IsValid returns true if f is one of the four cardinal facings.
func (f Facing) IsValid() bool {
	return f < facingCount
}

// String returns the lowercase name of the facing.
func (f Facing) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return facingNames[f]
}

// AllFacings returns the facings in clockwise order starting at North.
func AllFacings() []Facing {
	return []Facing{North, East, South, West}
}

// AgentState is the position and facing of the agent. It is comparable and
// can be used as a map key.
type AgentState struct {
	Position Coordinate `json:"position"`
	Facing   Facing     `json:"facing"`
}

// StateIndex maps an in-bounds state to a dense index in [0, Area()*4).
func (b Bounds) StateIndex(s AgentState) int {
	return b.Index(s.Position)*facingCount + int(s.Facing)
}

// StateSpace returns the number of distinct agent states on the map.
func (b Bounds) StateSpace() int {
	return b.Area() * facingCount
}

// MarshalText encodes the facing by name.
func (f Facing) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
