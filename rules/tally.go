package rules

// Tally counts how many cells took each Outcome in a single generation
type Tally [outcomeCount]int

// Add records one cell taking o
func (t *Tally) Add(o Outcome) {
	if o < 0 || o >= outcomeCount {
		return
	}
	t[o]++
}

// Count returns the number of cells that took o
func (t Tally) Count(o Outcome) int {
	if o < 0 || o >= outcomeCount {
		return 0
	}
	return t[o]
}

// Births returns the number of dead cells that came alive
func (t Tally) Births() int { return t[Reproduction] }

// Deaths returns the number of live cells that died
func (t Tally) Deaths() int { return t[Underpopulation] + t[Overcrowding] }

// Survivals returns the number of live cells that stayed alive
func (t Tally) Survivals() int { return t[Survival] }

// Total returns the number of cells classified
func (t Tally) Total() (n int) {
	for _, c := range t {
		n += c
	}
	return
}
