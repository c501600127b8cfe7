package montecarlo

import (
	"cascadix"
	"gonum.org/v1/gonum/mat"
)

// CorrelationMatrix holds a symmetric correlation matrix over the
// components registered with an Analyzer, initialized to the identity
// (no correlation), and transforms a vector of independent standard
// normal draws into correlated ones via a Cholesky factor.
//
// An identity matrix passes independent draws through unchanged; any other
// positive-definite matrix correlates them via gonum's dense linear algebra.
type CorrelationMatrix struct {
	size int
	data []float64 // row-major size x size
}

// NewCorrelationMatrix returns an n x n correlation matrix initialized to
// the identity.
func NewCorrelationMatrix(n int) *CorrelationMatrix {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1.0
	}
	return &CorrelationMatrix{size: n, data: data}
}

// SetCorrelation sets the (symmetric) correlation coefficient between
// components i and j.
func (c *CorrelationMatrix) SetCorrelation(i, j int, correlation float64) {
	c.data[i*c.size+j] = correlation
	c.data[j*c.size+i] = correlation
}

// GetCorrelation returns the correlation coefficient between components
// i and j.
func (c *CorrelationMatrix) GetCorrelation(i, j int) float64 {
	return c.data[i*c.size+j]
}

// GenerateCorrelated applies the Cholesky factor L of the correlation
// matrix (R = L*L^T) to a vector of independent standard-normal draws,
// producing draws with the configured pairwise correlation: correlated =
// L * independent. Returns an InvalidDistribution error if the matrix is
// not positive definite (e.g. an inconsistent set of pairwise
// correlations was configured).
func (c *CorrelationMatrix) GenerateCorrelated(independent []float64) ([]float64, error) {
	if len(independent) != c.size {
		return nil, cascadix.Kindf(cascadix.InvalidDistribution, "CorrelationMatrix.GenerateCorrelated",
			"expected %d independent samples, got %d", c.size, len(independent))
	}

	r := mat.NewSymDense(c.size, nil)
	for i := 0; i < c.size; i++ {
		for j := i; j < c.size; j++ {
			r.SetSym(i, j, c.data[i*c.size+j])
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(r); !ok {
		return nil, cascadix.Kindf(cascadix.InvalidDistribution, "CorrelationMatrix.GenerateCorrelated",
			"correlation matrix is not positive definite")
	}
	var l mat.TriDense
	chol.LTo(&l)

	x := mat.NewVecDense(c.size, independent)
	var y mat.VecDense
	y.MulVec(&l, x)

	out := make([]float64, c.size)
	for i := 0; i < c.size; i++ {
		out[i] = y.AtVec(i)
	}
	return out, nil
}
