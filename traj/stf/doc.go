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

/*Package stf implements the simple trajectory format for relaxation runs.

An stf file is a compressed text stream: optional key=value header lines,
a "** natoms" line, and then one block per frame with one line of scaled
integer coordinates per atom, closed by a terminator line

	* <step> <energy> <fmax>

carrying the frame metadata. Frames are only ever appended during a run,
in step order, so a trajectory can be read back, frame by frame, exactly as
it was recorded, and a reader can follow a file that is still being
written up to its current tail.

The compressor is picked from the last letter of the file name:
"s"/"f" (or anything else) for zstd, "z" for gzip, "r" for flate and
"l" for lzw. The recommended extension is .stf.
*/
package stf
