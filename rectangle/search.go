package rectangle

import (
	"math"
	"math/rand"
)

// expTableSize is the resolution of the precomputed Boltzmann weight table:
// one entry per clamped exponent step from -10 to +10.
const expTableSize = 101

// boltzmannTable holds exp(x) for x in [-10, 10] at 101 evenly spaced
// points, indexed by clampedExponentIndex. Built once at package init since
// it depends on no runtime state.
var boltzmannTable [expTableSize]float64

func init() {
	for i := 0; i < expTableSize; i++ {
		x := -10.0 + 20.0*float64(i)/float64(expTableSize-1)
		boltzmannTable[i] = math.Exp(x)
	}
}

// clampedExponentIndex maps an arbitrary exponent to the boltzmannTable
// entry at or just below it, clamping to [-10, 10] first.
func clampedExponentIndex(x float64) int {
	if x < -10 {
		x = -10
	}
	if x > 10 {
		x = 10
	}
	idx := int((x + 10.0) / 20.0 * float64(expTableSize-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= expTableSize {
		idx = expTableSize - 1
	}
	return idx
}

// DefaultCandidateFactor is the fraction of probe area above which a
// non-conflicting probe is still recorded as a near-conflict candidate.
const DefaultCandidateFactor = 0.9

// SearchOptions configures EnergyConflictSearch.
type SearchOptions struct {
	// CandidateFactor is the threshold from step 2 of the descent: a probe
	// whose minimum energy exceeds CandidateFactor times its area, without
	// exceeding the area itself, is recorded as a candidate. Zero defaults
	// to DefaultCandidateFactor.
	CandidateFactor float64

	// Temperature is the Boltzmann temperature governing edge-choice
	// randomness: lower values concentrate probability mass on the edge
	// with the least slack delta, higher values flatten the distribution
	// toward uniform. Zero defaults to 1.0.
	Temperature float64
}

func (o SearchOptions) normalize() SearchOptions {
	if o.CandidateFactor <= 0 {
		o.CandidateFactor = DefaultCandidateFactor
	}
	if o.Temperature <= 0 {
		o.Temperature = 1.0
	}
	return o
}

// DefaultSearchOptions returns SearchOptions with every field at its
// documented default.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{CandidateFactor: DefaultCandidateFactor, Temperature: 1.0}
}

// SearchResult is the accumulated output of one EnergyConflictSearch
// trajectory.
type SearchResult struct {
	Conflicts  []Rectangle
	Candidates []Rectangle
}

var allEdges = [4]Edge{EdgeLeft, EdgeBottom, EdgeRight, EdgeTop}

// EnergyConflictSearch performs a Monte-Carlo descent from the bounding box
// of every item's placement range, shrinking one edge at a time by a
// Boltzmann-weighted choice among the edges still available, until no edge
// can be shrunk further or the mandatory energy reaches zero. rng must be
// supplied by the caller (seeded) so a trajectory can be reproduced exactly.
func EnergyConflictSearch(items []RectangleInRange, rng *rand.Rand, opts SearchOptions) (SearchResult, error) {
	opts = opts.normalize()
	if rng == nil {
		return SearchResult{}, ErrInvariant
	}

	p, err := NewProbingRectangle(items)
	if err != nil {
		return SearchResult{}, err
	}

	var result SearchResult
	for {
		probe := p.Probe()
		area := probe.Area()
		energy := p.MinimumEnergy()

		switch {
		case energy > area:
			result.Conflicts = append(result.Conflicts, probe)
		case float64(energy) > opts.CandidateFactor*float64(area):
			result.Candidates = append(result.Candidates, probe)
		}

		if energy == 0 {
			break
		}

		edge, ok := chooseEdge(p, opts.Temperature, rng)
		if !ok {
			break
		}
		if err := p.Shrink(edge); err != nil {
			break
		}
	}

	return result, nil
}

// chooseEdge picks one of the currently shrinkable edges with probability
// proportional to exp(-(slackDelta - minSlackDelta) * 5 / T), per the
// descent's Boltzmann weighting. Returns ok=false if no edge can shrink.
func chooseEdge(p *ProbingRectangle, temperature float64, rng *rand.Rand) (Edge, bool) {
	var candidates []Edge
	var slackDeltas []float64
	for _, e := range allEdges {
		if !p.CanShrink(e) {
			continue
		}
		next, _ := p.withEdgeShrunk(e)
		deltaEnergy := p.DeltaEnergy(e)
		deltaArea := p.Probe().Area() - next.Area()
		candidates = append(candidates, e)
		slackDeltas = append(slackDeltas, float64(deltaEnergy)-float64(deltaArea))
	}
	if len(candidates) == 0 {
		return 0, false
	}

	minSlack := slackDeltas[0]
	for _, s := range slackDeltas[1:] {
		if s < minSlack {
			minSlack = s
		}
	}

	weights := make([]float64, len(candidates))
	var total float64
	for i, s := range slackDeltas {
		exponent := -(s - minSlack) * 5 / temperature
		weights[i] = boltzmannTable[clampedExponentIndex(exponent)]
		total += weights[i]
	}

	target := rng.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if target <= cumulative {
			return candidates[i], true
		}
	}

	return candidates[len(candidates)-1], true
}
