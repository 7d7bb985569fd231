/*
 * constraints.go, part of molonsurf.
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

package surf

import (
	"fmt"

	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

//Fixed marks a set of atoms as immovable. It is the usual constraint for
//surface models, where the bottom layers of a slab are kept at their bulk
//positions. It fulfills the Constrainer interface.
type Fixed struct {
	indices []int
}

//FixAtoms returns a Fixed constraint over the given atom indices.
//The indices are copied, so the caller can reuse the slice.
func FixAtoms(indices []int) *Fixed {
	F := new(Fixed)
	F.indices = make([]int, len(indices))
	copy(F.indices, indices)
	return F
}

//Fixed methods

//Indices returns a copy of the constrained atom indices.
func (F *Fixed) Indices() []int {
	r := make([]int, len(F.indices))
	copy(r, F.indices)
	return r
}

//ProjectForces zeroes the force vectors of the fixed atoms, in place.
//Zeroing is idempotent, so applying the projection twice is harmless.
func (F *Fixed) ProjectForces(forces *v3.Matrix) {
	for _, i := range F.indices {
		forces.ZeroVec(i)
	}
}

//ProjectDisplacement zeroes the displacement of the fixed atoms, in place.
func (F *Fixed) ProjectDisplacement(disp *v3.Matrix) {
	for _, i := range F.indices {
		disp.ZeroVec(i)
	}
}

//Valid returns an error if any constrained index is out of range for a
//configuration of n atoms.
func (F *Fixed) Valid(n int) error {
	for _, i := range F.indices {
		if i < 0 || i >= n {
			return CError{fmt.Sprintf("Fixed-atom index %d out of range for %d atoms", i, n), []string{"Valid"}}
		}
	}
	return nil
}
