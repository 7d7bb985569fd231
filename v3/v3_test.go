/*
 * v3_test.go, part of molonsurf.
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
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("Expected error for a slice not divisible by 3")
	}
	A, err := NewMatrix([]float64{0, 0, 0, 3, 4, 0})
	if err != nil {
		Te.Error(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("Wrong number of vectors: %d", A.NVecs())
	}
	if A.VecNorm(1) != 5 {
		Te.Errorf("Wrong norm: %f", A.VecNorm(1))
	}
	if A.MaxVecNorm() != 5 {
		Te.Errorf("Wrong max norm: %f", A.MaxVecNorm())
	}
}

func TestViewsShareMemory(Te *testing.T) {
	A := Zeros(3)
	v := A.VecView(2)
	v.Set(0, 1, 42.0)
	if A.At(2, 1) != 42.0 {
		Te.Error("View does not share memory with the viewed matrix")
	}
}

func TestIsFinite(Te *testing.T) {
	A := Zeros(2)
	if !IsFinite(A) {
		Te.Error("Zeros reported as non finite")
	}
	A.Set(1, 2, math.NaN())
	if IsFinite(A) {
		Te.Error("NaN not detected")
	}
	A.Set(1, 2, math.Inf(-1))
	if IsFinite(A) {
		Te.Error("-Inf not detected")
	}
}

func TestZeroVecAndScale(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	A.ScaleVec(0, 2)
	if A.At(0, 2) != 6 {
		Te.Errorf("ScaleVec failed: %f", A.At(0, 2))
	}
	A.ZeroVec(1)
	if A.VecNorm(1) != 0 {
		Te.Error("ZeroVec failed")
	}
}
