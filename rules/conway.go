package rules

// Outcome names the rule a cell took during a generation.
type Outcome int

const (
	Underpopulation Outcome = iota
	Survival
	Overcrowding
	Reproduction
	StaysDead

	outcomeCount
)

var outcomeNames = [outcomeCount]string{
	Underpopulation: "underpopulation",
	Survival:        "survival",
	Overcrowding:    "overcrowding",
	Reproduction:    "reproduction",
	StaysDead:       "stays dead",
}

func (o Outcome) String() string {
	if o < 0 || o >= outcomeCount {
		return "unknown"
	}
	return outcomeNames[o]
}

// Alive reports the next state of a cell that took this outcome
func (o Outcome) Alive() bool {
	return o == Survival || o == Reproduction
}

/*
Classify maps a cell's current state and live-neighbor count to the rule it takes.

	alive, 0-1 neighbors -> underpopulation
	alive, 2-3 neighbors -> survival
	alive, 4-8 neighbors -> overcrowding
	dead,  3 neighbors   -> reproduction
	dead,  otherwise     -> stays dead
*/
func Classify(alive bool, neighbors int) Outcome {
	if !alive {
		if neighbors == 3 {
			return Reproduction
		}
		return StaysDead
	}
	switch {
	case neighbors < 2:
		return Underpopulation
	case neighbors <= 3:
		return Survival
	default:
		return Overcrowding
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Classify(alive, neighbors).Alive()
}
