/*
 * interfaces.go, part of molonsurf.
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

import v3 "github.com/sebastianecheverrir/MolOnSurf/v3"

//Calculator is the interface for anything that can produce a potential
//energy and per-atom forces for a configuration: a machine-learned
//potential, a classical force field, or a synthetic test function.
//The minimizer only ever talks to a potential through this interface.
type Calculator interface {

	//Calculate returns the potential energy (eV) of the configuration and
	//the force (eV/A) on each atom, one force vector per atom, in the atom
	//order of the configuration. A call can be expensive (it may drive
	//hardware-accelerated inference or an external program), so callers
	//should budget calls explicitly. The forces matrix is freshly
	//allocated on each call; the caller owns it.
	Calculate(conf *Configuration) (energy float64, forces *v3.Matrix, err error)
}

//Constrainer is a positional constraint on a configuration. Both methods
//must be idempotent: projecting an already-projected matrix changes nothing.
type Constrainer interface {

	//ProjectForces nullifies, in place, the force components of the
	//constrained degrees of freedom.
	ProjectForces(forces *v3.Matrix)

	//ProjectDisplacement enforces the same restriction, in place, on a
	//proposed displacement of the whole configuration.
	ProjectDisplacement(disp *v3.Matrix)

	//Valid returns an error if the constraint cannot apply to a
	//configuration of n atoms (e.g. an out-of-range atom index).
	Valid(n int) error
}

//FrameInfo carries the per-frame metadata of a relaxation trajectory.
type FrameInfo struct {
	Step   int
	Energy float64
	Fmax   float64
}

//Traj is the interface for reading a relaxation trajectory.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads the next frame into output, which must have one vector
	//per atom, and returns the frame metadata. The error returned at the
	//normal end of the trajectory implements LastFrameError.
	Next(output *v3.Matrix) (*FrameInfo, error)

	//Returns the number of atoms per frame
	Len() int
}

//TrajW is the interface for recording a relaxation trajectory. Frames are
//only ever appended, in the order the minimizer accepts them, and are never
//rewritten.
type TrajW interface {

	//WNext appends one frame.
	WNext(coord *v3.Matrix, info *FrameInfo) error

	//Returns the number of atoms per frame
	Len() int
}

//Errors

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows to add and retrieve info from the
//error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string

	//Decorate adds information when the error is passed up, and returns
	//the current decoration slice. Passed an empty string, it only returns
	//the current value. The slice should contain the names of the
	//functions in the calling stack, plus any relevant extra info in the
	//format "FunctionName: Extra info".
	Decorate(string) []string
}

//TrajError is the interface for errors in trajectories.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
}

//LastFrameError has a useless method to distinguish the harmless
//end-of-trajectory errors, so they can be filtered in a typeswitch.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination()
}
