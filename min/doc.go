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

/*Package min relaxes atomic configurations to a local minimum of the
potential energy with a quasi-Newton (BFGS) minimizer.

The minimizer queries a surf.Calculator once per step, projects the forces
through the constraints attached to the configuration, and moves the atoms
along the quasi-Newton direction, with the longest per-atom displacement
clamped to a maximum step length. Every accepted configuration, with its
energy and fmax (the largest per-atom force norm, the convergence
statistic), is appended to a trajectory recorder. A run ends in exactly one
of the terminal states Converged, StepLimitReached, Failed or Cancelled.

Energies are in eV, distances in A, forces in eV/A.
*/
package min
