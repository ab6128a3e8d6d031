package pgsgd

import "math"

// GenerateSchedule computes the per-iteration learning-rate sequence
// η₀…η_{T-1}, peaking at iterPeak and decaying exponentially on both sides
// toward the iteration furthest from it. It is a pure function of its
// inputs: calling it twice with the same arguments yields bit-identical
// output.
//
// wMin must be > 0, wMax >= wMin, iterMax >= 1, iterPeak in [0, iterMax),
// eps > 0. GenerateSchedule rejects iterMax < 1 with ErrIterMax and does not
// validate the other inputs: Params.Validate covers the parameters Run
// derives wMin/wMax/eps from; callers invoking GenerateSchedule directly are
// responsible for passing a sane input.
//
// Complexity: O(iterMax).
func GenerateSchedule(wMin, wMax float64, iterMax, iterPeak int, eps float64) ([]float64, error) {
	if iterMax < 1 {
		return nil, ErrIterMax
	}

	etaMax := 1.0 / wMin
	etaMin := eps / wMax

	etas := make([]float64, iterMax)
	if iterMax == 1 {
		etas[0] = etaMax
		return etas, nil
	}

	lambda := math.Log(etaMax/etaMin) / float64(iterMax-1)
	for t := 0; t < iterMax; t++ {
		dist := math.Abs(float64(t - iterPeak))
		etas[t] = etaMax * math.Exp(-lambda*dist)
	}
	return etas, nil
}
