// SPDX-License-Identifier: MIT

// Package matrix: convenience constructors over Dense.
package matrix

// NewIdentity returns the n×n identity matrix.
//
// Errors:
//   - ErrInvalidDimensions if n <= 0.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}
