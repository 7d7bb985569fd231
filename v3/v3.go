/*
 * v3.go, part of molonsurf.
 *
 * Copyright 2026 Sebastian Echeverri <sebastianecheverrir{at}gmailDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, one per row.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//The length of data must be divisible by 3, or an error is returned.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//Matrix2Dense returns the underlying mat.Dense of A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a Dense into a Matrix. The Dense must have 3 columns,
//the function panics otherwise, as a Matrix with a different number of
//columns would corrupt every computation made with it.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic("v3: only 3-column matrices allowed")
	}
	return &Matrix{A}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in the view
//are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from vector i and spanning r vectors.
func (F *Matrix) View(i, r int) *Matrix {
	ret := F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)
	return &Matrix{ret}
}

//SetMatrix copies the matrix A into F starting at the vector i.
//It panics if A doesn't fit in F.
func (F *Matrix) SetMatrix(i int, A *Matrix) {
	fr, _ := F.Dims()
	ar, _ := A.Dims()
	if ar+i > fr {
		panic("v3: SetMatrix: matrix too big to be set into the receiver")
	}
	for row := 0; row < ar; row++ {
		for col := 0; col < 3; col++ {
			F.Set(i+row, col, A.At(row, col))
		}
	}
}

//CloneFrom copies A into a newly allocated Matrix of the same size.
func CloneFrom(A *Matrix) *Matrix {
	r := Zeros(A.NVecs())
	r.Dense.Copy(A.Dense)
	return r
}

//SwapVecs exchanges vectors i and j of the matrix.
func (F *Matrix) SwapVecs(i, j int) {
	for col := 0; col < 3; col++ {
		vi := F.At(i, col)
		F.Set(i, col, F.At(j, col))
		F.Set(j, col, vi)
	}
}

//VecNorm returns the Euclidean norm of the ith vector of the matrix.
func (F *Matrix) VecNorm(i int) float64 {
	x := F.At(i, 0)
	y := F.At(i, 1)
	z := F.At(i, 2)
	return math.Sqrt(x*x + y*y + z*z)
}

//MaxVecNorm returns the largest Euclidean norm among the vectors
//of the matrix, or 0 for an empty matrix.
func (F *Matrix) MaxVecNorm() float64 {
	max := 0.0
	for i := 0; i < F.NVecs(); i++ {
		if n := F.VecNorm(i); n > max {
			max = n
		}
	}
	return max
}

//ScaleVec multiplies the ith vector of the matrix by v, in place.
func (F *Matrix) ScaleVec(i int, v float64) {
	for col := 0; col < 3; col++ {
		F.Set(i, col, F.At(i, col)*v)
	}
}

//ZeroVec sets the ith vector of the matrix to (0,0,0).
func (F *Matrix) ZeroVec(i int) {
	F.Set(i, 0, 0)
	F.Set(i, 1, 0)
	F.Set(i, 2, 0)
}

//IsFinite returns true if no element of F is NaN or an infinity.
func IsFinite(F *Matrix) bool {
	r, c := F.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := F.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

//Raw returns a fresh slice with the contents of F in row-major order.
func (F *Matrix) Raw() []float64 {
	r, c := F.Dims()
	out := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i*c+j] = F.At(i, j)
		}
	}
	return out
}

//Errors

//Error implements the molonsurf Error interface for the v3 package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("v3 error: %s", err.message)
}

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }
