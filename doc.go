/*
 * doc.go, part of molonsurf.
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

/*Package surf is the main package of the MolOnSurf library. It provides
atom and configuration structures for molecule-on-surface models, positional
constraints, and the interfaces connecting configurations to energy/force
calculators, structure relaxation and trajectory recording.


	**MolOnSurf capabilities**


    Holds periodic atomic configurations (symbols, coordinates, cell,
	periodicity flags) with attached positional constraints.

    Relaxes configurations to a local minimum of the potential energy
	with a quasi-Newton (BFGS) minimizer (package min).

    Records and replays relaxation trajectories in a compressed,
	append-only format (package traj/stf).

    Evaluates energies and forces with pluggable calculators: synthetic
	restoring fields, a Lennard-Jones pair potential, and external
	machine-learned potential programs (package calc).

    Builds fcc(111) slab + adsorbate starting geometries (package slab).

    Reads and writes XYZ files for visualization.

Coordinates are handled in v3.Matrix objects (package v3), one row per atom,
backed by gonum. Units are eV and Angstrom throughout.
*/
package surf
