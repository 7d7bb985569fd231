/*
 * lj.go, part of molonsurf.
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

package calc

import (
	"math"

	"gonum.org/v1/gonum/mat"

	surf "github.com/sebastianecheverrir/MolOnSurf"
	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

//LennardJones is a single-species 12-6 pair potential,
//V(r) = 4*Eps*((Sigma/r)^12 - (Sigma/r)^6), truncated at Cutoff.
//For periodic configurations the minimum-image convention is applied
//through fractional coordinates, so general (triclinic) cells work,
//the sheared cells of the slab package included. The cutoff can be at
//most half the perpendicular width of the cell along each periodic
//direction. It is not meant to be a quantitative surface model; it
//gives the relaxation something physically shaped to chew on without
//any external program.
type LennardJones struct {
	Eps    float64
	Sigma  float64
	Cutoff float64
}

//Calculate returns the Lennard-Jones energy and forces at the coordinates
//of conf.
func (L *LennardJones) Calculate(conf *surf.Configuration) (float64, *v3.Matrix, error) {
	if conf == nil || conf.Coords == nil {
		return 0, nil, Error{"Given a nil configuration", "LennardJones", []string{"Calculate"}, true}
	}
	if L.Eps <= 0 || L.Sigma <= 0 || L.Cutoff <= 0 {
		return 0, nil, Error{"Eps, Sigma and Cutoff must all be positive", "LennardJones", []string{"Calculate"}, true}
	}
	var cell *mat.Dense
	var inv mat.Dense
	if conf.Cell != nil && (conf.Periodic[0] || conf.Periodic[1] || conf.Periodic[2]) {
		cell = mat.NewDense(3, 3, conf.Cell)
		if err := inv.Inverse(cell); err != nil {
			return 0, nil, Error{"Singular cell matrix", "LennardJones", []string{"Calculate"}, true}
		}
		if err := L.checkCell(conf); err != nil {
			return 0, nil, err
		}
	}
	n := conf.Len()
	forces := v3.Zeros(n)
	energy := 0.0
	cut2 := L.Cutoff * L.Cutoff
	var d, s [3]float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := 0; k < 3; k++ {
				d[k] = conf.Coords.At(i, k) - conf.Coords.At(j, k)
			}
			if cell != nil {
				//d and s are row vectors: s = d A^-1, d = s A,
				//with the lattice vectors as the rows of A.
				for k := 0; k < 3; k++ {
					s[k] = d[0]*inv.At(0, k) + d[1]*inv.At(1, k) + d[2]*inv.At(2, k)
					if conf.Periodic[k] {
						s[k] -= math.Round(s[k])
					}
				}
				for k := 0; k < 3; k++ {
					d[k] = s[0]*cell.At(0, k) + s[1]*cell.At(1, k) + s[2]*cell.At(2, k)
				}
			}
			r2 := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
			if r2 > cut2 {
				continue
			}
			sr2 := L.Sigma * L.Sigma / r2
			sr6 := sr2 * sr2 * sr2
			sr12 := sr6 * sr6
			energy += 4 * L.Eps * (sr12 - sr6)
			//dV/dr * 1/r, so the force on i is fpref*d
			fpref := 24 * L.Eps * (2*sr12 - sr6) / r2
			for k := 0; k < 3; k++ {
				forces.Set(i, k, forces.At(i, k)+fpref*d[k])
				forces.Set(j, k, forces.At(j, k)-fpref*d[k])
			}
		}
	}
	return energy, forces, nil
}

//checkCell verifies that the minimum-image convention is applicable:
//twice the cutoff must fit in the perpendicular width of the cell along
//every periodic direction.
func (L *LennardJones) checkCell(conf *surf.Configuration) error {
	c := conf.Cell
	volume := c[0]*(c[4]*c[8]-c[5]*c[7]) - c[1]*(c[3]*c[8]-c[5]*c[6]) + c[2]*(c[3]*c[7]-c[4]*c[6])
	volume = math.Abs(volume)
	for k := 0; k < 3; k++ {
		if !conf.Periodic[k] {
			continue
		}
		i, j := (k+1)%3, (k+2)%3
		//area of the face spanned by the other two lattice vectors
		ax := c[i*3+1]*c[j*3+2] - c[i*3+2]*c[j*3+1]
		ay := c[i*3+2]*c[j*3+0] - c[i*3+0]*c[j*3+2]
		az := c[i*3+0]*c[j*3+1] - c[i*3+1]*c[j*3+0]
		width := volume / math.Sqrt(ax*ax+ay*ay+az*az)
		if L.Cutoff > width/2 {
			return Error{"Cutoff larger than half the periodic cell width", "LennardJones", []string{"Calculate"}, true}
		}
	}
	return nil
}
