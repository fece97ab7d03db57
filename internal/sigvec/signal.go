// internal/sigvec/signal.go
package sigvec

import "math"

// Signal is a rank profile, unit length unless empty.
type Signal []float64

// Encode maps each recognized symbol of seq to its rank, in order, and scales
// the result to unit Euclidean norm. Unrecognized bytes are skipped, so a
// sequence without recognized symbols yields an empty Signal.
func Encode(seq string) Signal {
	out := make(Signal, 0, Recognized(seq))
	for i := 0; i < len(seq); i++ {
		if r := ranks[seq[i]]; r != 0 {
			out = append(out, float64(r))
		}
	}
	if n := Norm(out); n > 0 {
		for i := range out {
			out[i] /= n
		}
	}
	return out
}

// Norm is the Euclidean length of v.
func Norm(v Signal) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Distance is the Euclidean distance between a and b after right-padding the
// shorter one with zeros. The padding makes length differences count as
// content differences; rankings depend on that, so keep it.
func Distance(a, b Signal) float64 {
	if len(a) < len(b) {
		a, b = b, a
	}
	var sum float64
	for i, x := range a {
		d := x
		if i < len(b) {
			d -= b[i]
		}
		sum += d * d
	}
	return math.Sqrt(sum)
}
