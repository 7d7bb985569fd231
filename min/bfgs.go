/*
 * bfgs.go, part of molonsurf.
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

package min

import (
	"gonum.org/v1/gonum/mat"

	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

//The quasi-Newton memory: the current approximation to the inverse Hessian
//and the position/gradient of the previous accepted step. It belongs to one
//minimizer instance and is discarded when the run ends; nothing here leaks
//into the configuration or the trajectory.
type hessian struct {
	dim  int
	inv  *mat.Dense //approximate inverse Hessian, dim x dim
	x0   *mat.VecDense
	g0   *mat.VecDense
	have bool //do x0/g0 hold a previous step?
}

//Updates with a secant pair whose curvature is below curvTol are skipped,
//as they would make the inverse Hessian approximation indefinite.
const curvTol = 1e-10

func newHessian(dim int, alpha float64) *hessian {
	h := new(hessian)
	h.dim = dim
	h.inv = mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		h.inv.Set(i, i, 1/alpha)
	}
	h.x0 = mat.NewVecDense(dim, nil)
	h.g0 = mat.NewVecDense(dim, nil)
	return h
}

//update absorbs the secant pair formed by the current position x and
//gradient g together with the stored previous step, using the standard
//BFGS update of the inverse Hessian.
func (h *hessian) update(x, g *mat.VecDense) {
	if !h.have {
		return
	}
	s := mat.NewVecDense(h.dim, nil)
	y := mat.NewVecDense(h.dim, nil)
	s.SubVec(x, h.x0)
	y.SubVec(g, h.g0)
	sy := mat.Dot(s, y)
	if sy <= curvTol {
		return
	}
	hy := mat.NewVecDense(h.dim, nil)
	hy.MulVec(h.inv, y)
	yhy := mat.Dot(y, hy)
	h.inv.RankOne(h.inv, (sy+yhy)/(sy*sy), s, s)
	h.inv.RankOne(h.inv, -1/sy, hy, s)
	h.inv.RankOne(h.inv, -1/sy, s, hy)
}

//step returns the quasi-Newton displacement for the current position x and
//gradient g, as a matrix with one row per atom, and stores x and g for the
//next secant pair. The longest per-atom displacement is clamped to maxStep
//by scaling the whole step, which keeps the direction intact.
func (h *hessian) step(x, g *mat.VecDense, maxStep float64) *v3.Matrix {
	h.update(x, g)
	p := mat.NewVecDense(h.dim, nil)
	p.MulVec(h.inv, g)
	p.ScaleVec(-1, p)
	h.x0.CopyVec(x)
	h.g0.CopyVec(g)
	h.have = true
	disp := vecToCoords(p)
	if longest := disp.MaxVecNorm(); longest > maxStep {
		disp.Scale(maxStep/longest, disp.Dense)
	}
	return disp
}

//coordsToVec flattens an n x 3 coordinate (or force) matrix into a
//3n-vector, row by row.
func coordsToVec(F *v3.Matrix) *mat.VecDense {
	n := F.NVecs()
	v := mat.NewVecDense(n*3, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			v.SetVec(i*3+j, F.At(i, j))
		}
	}
	return v
}

//vecToCoords is the inverse of coordsToVec.
func vecToCoords(v *mat.VecDense) *v3.Matrix {
	n := v.Len() / 3
	F := v3.Zeros(n)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, v.AtVec(i*3+j))
		}
	}
	return F
}
