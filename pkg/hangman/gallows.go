package hangman

// Gallows is how much of the hanged figure has been drawn.
type Gallows int

const (
	GallowsStart Gallows = iota
	GallowsHead
	GallowsTorso
	GallowsLeftArm
	GallowsRightArm
	GallowsLeftLeg
	GallowsRightLeg
)

// GallowsEnd is the stage at which the figure is complete and the game is lost.
const GallowsEnd = GallowsRightLeg

// Next returns the stage after g. The second value is false when g is already
// GallowsEnd.
func (g Gallows) Next() (Gallows, bool) {
	switch g {
	case GallowsStart:
		return GallowsHead, true
	case GallowsHead:
		return GallowsTorso, true
	case GallowsTorso:
		return GallowsLeftArm, true
	case GallowsLeftArm:
		return GallowsRightArm, true
	case GallowsRightArm:
		return GallowsLeftLeg, true
	case GallowsLeftLeg:
		return GallowsRightLeg, true
	default:
		return g, false
	}
}

func (g Gallows) String() string {
	switch g {
	case GallowsStart:
		return "Start"
	case GallowsHead:
		return "Head"
	case GallowsTorso:
		return "Torso"
	case GallowsLeftArm:
		return "LeftArm"
	case GallowsRightArm:
		return "RightArm"
	case GallowsLeftLeg:
		return "LeftLeg"
	case GallowsRightLeg:
		return "RightLeg"
	default:
		return "Unknown"
	}
}

// Stages lists every stage from GallowsStart to GallowsEnd by following Next.
func Stages() []Gallows {
	stages := []Gallows{GallowsStart}
	for g, ok := GallowsStart.Next(); ok; g, ok = g.Next() {
		stages = append(stages, g)
	}
	return stages
}
