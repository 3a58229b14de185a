package maze

// Box is a pixel-space axis-aligned bounding box with float64 precision,
// sized to one cell. Actor positions are the lower-left corner of the box.
type Box struct {
	X, Y float64
	Size float64
}

// Overlaps returns true if the two boxes intersect.
func (b Box) Overlaps(other Box) bool {
	if b.X >= other.X+other.Size || other.X >= b.X+b.Size {
		return false
	}
	if b.Y >= other.Y+other.Size || other.Y >= b.Y+b.Size {
		return false
	}
	return true
}

// Actor holds the movement state shared by the player and the ghosts.
// GridPos is the last tile the actor was aligned with; Box is the smooth
// pixel position in between tiles.
type Actor struct {
	GridPos Coord
	Box     Box
	VelX    float64
	VelY    float64
	LastDir Dir
	Moving  bool

	// Walk-cycle animation, advanced by the orchestrator while moving.
	AnimTimer float64
	Frame     int
}

// Advance integrates the pixel position by the current velocity.
func (a *Actor) Advance(dt float64) {
	a.Box.X += a.VelX * dt
	a.Box.Y += a.VelY * dt
}

// SetDirection commits a movement direction at the given speed.
// DirNone stops the actor in place.
func (a *Actor) SetDirection(d Dir, speed float64) {
	if d == DirNone {
		a.Stop()
		return
	}
	dc, dr := d.Delta()
	a.VelX = float64(dc) * speed
	a.VelY = float64(dr) * speed
	a.LastDir = d
	a.Moving = true
}

// Stop zeroes the velocity but keeps LastDir for facing.
func (a *Actor) Stop() {
	a.VelX = 0
	a.VelY = 0
	a.Moving = false
}

// SetDisplayPos moves the pixel box without touching the grid coordinate.
func (a *Actor) SetDisplayPos(x, y float64) {
	a.Box.X = x
	a.Box.Y = y
}

// Player is the user-controlled actor.
type Player struct {
	Actor
	Dying      bool
	DeathFrame int
}

func (*Player) cellContent() {}

// GhostType identifies one of the four ghosts; each has its own activation
// delay, starting direction and chase discipline.
type GhostType int

const (
	GhostBlinky GhostType = iota
	GhostPinky
	GhostInky
	GhostClyde
)

// String returns the ghost's name.
func (t GhostType) String() string {
	switch t {
	case GhostBlinky:
		return "Blinky"
	case GhostPinky:
		return "Pinky"
	case GhostInky:
		return "Inky"
	case GhostClyde:
		return "Clyde"
	default:
		return "Unknown"
	}
}

// ActivationDelay returns how long the ghost waits in the pen before its
// first move, in seconds.
func (t GhostType) ActivationDelay() float64 {
	switch t {
	case GhostBlinky:
		return 0
	case GhostPinky:
		return 3
	case GhostInky:
		return 6
	case GhostClyde:
		return 9
	default:
		return 0
	}
}

// InitialDir returns the direction the ghost commits to when activated.
func (t GhostType) InitialDir() Dir {
	switch t {
	case GhostBlinky:
		return DirLeft
	case GhostPinky:
		return DirRight
	case GhostInky:
		return DirUp
	case GhostClyde:
		return DirDown
	default:
		return DirNone
	}
}

// ErrorChance returns the probability that the ghost picks a random
// direction instead of chasing its target at an intersection.
func (t GhostType) ErrorChance() float64 {
	switch t {
	case GhostBlinky:
		return 0.3
	case GhostPinky:
		return 0.5
	case GhostInky:
		return 0.6
	case GhostClyde:
		return 0.7
	default:
		return 1
	}
}

// Ghost is one of the four chasing actors.
type Ghost struct {
	Actor
	Type GhostType

	// Activation countdown; the ghost stands still until it reaches zero.
	ActivationTimer float64
	Activated       bool

	Frightened      bool
	FrightenedTimer float64
	BlinkTimer      float64
	BlinkFrame      bool

	// Eaten marks a ghost sent home after being eaten; it stays set until
	// the activation countdown releases it again.
	Eaten bool

	// Spawn positions, used to send an eaten ghost home.
	StartGrid    Coord
	StartDisplay struct{ X, Y float64 }
}

func (*Ghost) cellContent() {}
