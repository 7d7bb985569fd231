/*
 * harmonic.go, part of molonsurf.
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
	surf "github.com/sebastianecheverrir/MolOnSurf"
	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

//Harmonic is a synthetic calculator: every atom feels an independent
//linear restoring force -K*x towards the origin, with energy
//0.5*K*|x|^2 summed over atoms. Its only minimum is all atoms at the
//origin, with a known analytic shape, which makes it the reference
//potential for validating the minimizer without any real model behind it.
type Harmonic struct {
	K float64
}

//Calculate returns the energy and forces of the restoring field at the
//coordinates of conf.
func (H *Harmonic) Calculate(conf *surf.Configuration) (float64, *v3.Matrix, error) {
	if conf == nil || conf.Coords == nil {
		return 0, nil, Error{"Given a nil configuration", "Harmonic", []string{"Calculate"}, true}
	}
	n := conf.Len()
	forces := v3.Zeros(n)
	energy := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			x := conf.Coords.At(i, j)
			energy += 0.5 * H.K * x * x
			forces.Set(i, j, -H.K*x)
		}
	}
	return energy, forces, nil
}
