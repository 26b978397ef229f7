package interp

// Strategy predicts an interpolated value from a point in a
// strategy-specific active-axes coordinate order. Implementations are
// immutable after construction.
type Strategy interface {
	// Predict returns the interpolated value at point, or an error of
	// kind OutOfBounds, InvalidInput or DegenerateGrid (see package
	// pdferr) if point cannot be evaluated.
	Predict(point []float64) (float64, error)

	// Arity returns the number of coordinates Predict expects.
	Arity() int
}
