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

/*Package calc provides energy/force calculators fulfilling the
surf.Calculator interface.

Three calculators are included: Harmonic, a synthetic restoring field
(force = -k*x) useful to validate relaxations independently of any real
potential; LennardJones, a simple classical pair potential; and Extern,
which bridges to an external potential program (typically a pretrained
machine-learned potential) through XYZ input files and a plain-text
energy/forces output file.

Any other type fulfilling surf.Calculator plugs into the minimizer the
same way; nothing in the library depends on the calculators defined here.
*/
package calc
