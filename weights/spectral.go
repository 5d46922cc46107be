package weights

import (
	"math/rand"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/randfeat/pkg/errors"
)

// Spectral generates correlated random weights by drawing complex
// Gaussian noise and projecting it through the discrete Fourier basis
// of size n_features. The real part is kept and each row is normalized
// to unit standard deviation, producing smooth zero-mean rows instead
// of i.i.d. entries.
type Spectral struct{}

// NewSpectral creates a spectral ("classical") weight generator.
func NewSpectral() Spectral {
	return Spectral{}
}

// Name implements Generator.
func (Spectral) Name() string { return "spectral" }

// Generate implements Generator.
func (Spectral) Generate(width, nFeatures int, rng *rand.Rand) (*mat.Dense, error) {
	if err := validateShape(width, nFeatures); err != nil {
		return nil, err
	}
	return spectralRows(width, nFeatures, 0, nFeatures, rng)
}

// BandLimited generates spectral weights whose Fourier coefficients
// are zero outside the frequency band [Lowcut, Highcut). Rows are
// band-limited to the target spatial-frequency range and normalized to
// unit standard deviation.
type BandLimited struct {
	// Lowcut is the low end of the band, a column index of the
	// (n_features x n_features) DFT matrix.
	Lowcut int
	// Highcut is the high end of the band, exclusive.
	Highcut int
}

// NewBandLimited creates a band-limited spectral weight generator for
// the frequency band [lowcut, highcut).
func NewBandLimited(lowcut, highcut int) BandLimited {
	return BandLimited{Lowcut: lowcut, Highcut: highcut}
}

// Name implements Generator.
func (BandLimited) Name() string { return "band_limited" }

// Generate implements Generator.
func (g BandLimited) Generate(width, nFeatures int, rng *rand.Rand) (*mat.Dense, error) {
	if err := validateShape(width, nFeatures); err != nil {
		return nil, err
	}
	if g.Lowcut < 0 {
		return nil, errors.NewValidationError("lowcut", "must be non-negative", g.Lowcut)
	}
	if g.Highcut > nFeatures {
		return nil, errors.NewValidationError("highcut",
			"must not exceed n_features", g.Highcut)
	}
	if g.Lowcut >= g.Highcut {
		return nil, errors.NewValidationError("lowcut",
			"must be strictly less than highcut", g.Lowcut)
	}
	return spectralRows(width, nFeatures, g.Lowcut, g.Highcut, rng)
}

// spectralRows draws complex N(0,1) coefficients on [lowcut, highcut),
// applies the unnormalized forward DFT to each row, keeps the real
// part, and scales every row to unit standard deviation.
func spectralRows(width, nFeatures, lowcut, highcut int, rng *rand.Rand) (*mat.Dense, error) {
	fft := fourier.NewCmplxFFT(nFeatures)

	W := mat.NewDense(width, nFeatures, nil)
	coeff := make([]complex128, nFeatures)
	freq := make([]complex128, nFeatures)

	for i := 0; i < width; i++ {
		for j := range coeff {
			coeff[j] = 0
		}
		for j := lowcut; j < highcut; j++ {
			coeff[j] = complex(rng.NormFloat64(), rng.NormFloat64())
		}

		fft.Coefficients(freq, coeff)

		row := W.RawRowView(i)
		for k := range row {
			row[k] = real(freq[k])
		}
		if err := normalizeRow(row, i); err != nil {
			return nil, err
		}
	}
	return W, nil
}

// normalizeRow scales row in place to unit population standard deviation.
func normalizeRow(row []float64, rowIdx int) error {
	sd := stat.PopStdDev(row, nil)
	if err := errors.CheckScalar("row_normalization", sd, rowIdx); err != nil {
		return err
	}
	if sd < 1e-12 {
		return errors.NewNumericalInstabilityError("row_normalization", []float64{sd}, rowIdx)
	}
	for k := range row {
		row[k] /= sd
	}
	return nil
}
