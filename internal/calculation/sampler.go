package calculation

import (
	"math"
	"math/rand/v2"

	"github.com/exitsim/exit-value-estimator/internal/domain"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSharpness is the PERT concentration parameter (lambda) used when none is configured.
const DefaultSharpness = 4.0

// Sampler draws bounded, mode-weighted variates (PERT) from an explicit random source.
// A Sampler is not safe for concurrent use; give each goroutine its own.
type Sampler struct {
	Src       rand.Source
	Sharpness float64
}

// NewSampler creates a sampler over src with the default sharpness
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{Src: src, Sharpness: DefaultSharpness}
}

// Sample draws one value in [low, high] concentrated around mode.
func (s *Sampler) Sample(low, mode, high float64) (float64, error) {
	return SamplePERT(s.Src, low, mode, high, s.Sharpness)
}

// SampleBounds is Sample over a three-point estimate.
func (s *Sampler) SampleBounds(b domain.Bounds) (float64, error) {
	return s.Sample(b.Low, b.Mode, b.High)
}

// PERTShape returns the Beta shape parameters for a PERT distribution:
//
//	a = 1 + sharpness*(mode-low)/(high-low)
//	b = 1 + sharpness*(high-mode)/(high-low)
func PERTShape(low, mode, high, sharpness float64) (float64, float64, error) {
	if !(low < high) {
		return 0, 0, domain.NewDomainError("pert sample", "low (%g) must be strictly less than high (%g)", low, high)
	}
	if mode < low || mode > high {
		return 0, 0, domain.NewDomainError("pert sample", "mode %g outside [%g, %g]", mode, low, high)
	}
	if sharpness < 0 || math.IsNaN(sharpness) || math.IsInf(sharpness, 0) {
		return 0, 0, domain.NewDomainError("pert sample", "invalid sharpness %g", sharpness)
	}

	width := high - low
	a := 1 + sharpness*(mode-low)/width
	b := 1 + sharpness*(high-mode)/width
	if !validShape(a) || !validShape(b) {
		return 0, 0, domain.NewDomainError("pert sample", "invalid beta shape parameters a=%g b=%g", a, b)
	}
	return a, b, nil
}

func validShape(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SamplePERT draws x ~ Beta(a, b) and maps it onto [low, high]. A nil src
// falls back to the process-wide generator, which is not reproducible.
func SamplePERT(src rand.Source, low, mode, high, sharpness float64) (float64, error) {
	a, b, err := PERTShape(low, mode, high, sharpness)
	if err != nil {
		return 0, err
	}

	x := distuv.Beta{Alpha: a, Beta: b, Src: src}.Rand()
	if math.IsNaN(x) {
		return 0, domain.NewDomainError("pert sample", "beta draw produced NaN for a=%g b=%g", a, b)
	}

	// low + x*(high-low) can overshoot high by an ulp when x rounds to 1
	return Clamp(low+x*(high-low), low, high), nil
}
