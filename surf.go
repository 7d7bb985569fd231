/*
 * surf.go, part of molonsurf.
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

//Atom contains the static data for one atom. The coordinates are kept
//separately, in a v3.Matrix, as they are the part that changes during
//a relaxation.
type Atom struct {
	Symbol string
	Mass   float64
	Tag    int //free for the caller. The slab builder uses it for the layer index.
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Symbol = A.Symbol
	Newat.Mass = A.Mass
	Newat.Tag = A.Tag
	return Newat
}

//Configuration is an ordered set of atoms with coordinates, an optional
//cell and periodicity flags, and an attached set of positional constraints.
//The number and order of atoms is fixed for the lifetime of a relaxation
//run; only the coordinates change, and only the minimizer changes them.
type Configuration struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	//The cell matrix as 9 values, 3 contiguous row vectors,
	//or nil for a non-periodic configuration.
	Cell        []float64
	Periodic    [3]bool
	constraints []Constrainer
}

//NewConfiguration builds a configuration from atoms and coordinates.
//It returns an error if either is nil or their lengths mismatch.
func NewConfiguration(atoms []*Atom, coords *v3.Matrix) (*Configuration, error) {
	if atoms == nil {
		return nil, CError{"Supplied a nil atom slice", []string{"NewConfiguration"}}
	}
	if coords == nil {
		return nil, CError{"Supplied nil coordinates", []string{"NewConfiguration"}}
	}
	if len(atoms) != coords.NVecs() {
		return nil, CError{fmt.Sprintf("%d atoms but %d coordinate vectors", len(atoms), coords.NVecs()), []string{"NewConfiguration"}}
	}
	C := new(Configuration)
	C.Atoms = atoms
	C.Coords = coords
	return C, nil
}

//Configuration methods

//Len returns the number of atoms in the configuration.
func (C *Configuration) Len() int {
	return len(C.Atoms)
}

//Atom returns the Atom corresponding to the index i.
//Panics if out of range.
func (C *Configuration) Atom(i int) *Atom {
	if i >= C.Len() {
		panic("Configuration: Requested Atom out of bounds")
	}
	return C.Atoms[i]
}

//SetCell sets the cell of the configuration to the 9 values in cell
//(3 contiguous row vectors) and the periodicity to the given flags.
func (C *Configuration) SetCell(cell []float64, periodic [3]bool) error {
	if cell != nil && len(cell) != 9 {
		return CError{fmt.Sprintf("Cell needs 9 values, got %d", len(cell)), []string{"SetCell"}}
	}
	C.Cell = cell
	C.Periodic = periodic
	return nil
}

//SetConstraints attaches the given constraints to the configuration,
//replacing any previous ones. Constraints are meant to be set once,
//before a relaxation run.
func (C *Configuration) SetConstraints(cons ...Constrainer) {
	C.constraints = cons
}

//Constraints returns the constraints attached to the configuration.
func (C *Configuration) Constraints() []Constrainer {
	return C.constraints
}

//ProjectForces applies every attached constraint to the forces, in place,
//so constrained degrees of freedom carry no force.
func (C *Configuration) ProjectForces(forces *v3.Matrix) {
	for _, con := range C.constraints {
		con.ProjectForces(forces)
	}
}

//ProjectDisplacement applies every attached constraint to a proposed
//displacement, in place. This guards the constrained atoms against any
//numerical drift that survived the force projection.
func (C *Configuration) ProjectDisplacement(disp *v3.Matrix) {
	for _, con := range C.constraints {
		con.ProjectDisplacement(disp)
	}
}

//Copy returns a deep copy of the configuration, including coordinates.
//The constraints are shared, not copied, as they are immutable for a run.
func (C *Configuration) Copy() *Configuration {
	N := new(Configuration)
	N.Atoms = make([]*Atom, C.Len())
	for key, val := range C.Atoms {
		N.Atoms[key] = val.Copy()
	}
	N.Coords = v3.CloneFrom(C.Coords)
	if C.Cell != nil {
		N.Cell = make([]float64, 9)
		copy(N.Cell, C.Cell)
	}
	N.Periodic = C.Periodic
	N.constraints = C.constraints
	return N
}

//Corrupted checks the internal consistency of the configuration: matching
//atom and coordinate counts, a well-formed cell, finite coordinates, and
//constraint indices within range. It returns nil if everything is in order.
//It is meant to be called once before a relaxation starts; the minimizer
//refuses corrupted configurations.
func (C *Configuration) Corrupted() error {
	if C.Atoms == nil || C.Coords == nil {
		return CError{"Configuration with nil atoms or coordinates", []string{"Corrupted"}}
	}
	if len(C.Atoms) != C.Coords.NVecs() {
		return CError{fmt.Sprintf("%d atoms but %d coordinate vectors", len(C.Atoms), C.Coords.NVecs()), []string{"Corrupted"}}
	}
	if C.Cell != nil && len(C.Cell) != 9 {
		return CError{fmt.Sprintf("Cell needs 9 values, got %d", len(C.Cell)), []string{"Corrupted"}}
	}
	if !v3.IsFinite(C.Coords) {
		return CError{NonFiniteCoords, []string{"Corrupted"}}
	}
	for _, con := range C.constraints {
		if err := con.Valid(C.Len()); err != nil {
			return errDecorate(err, "Corrupted")
		}
	}
	return nil
}
