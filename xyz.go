/*
 * xyz.go, part of molonsurf.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

//XYZRead reads an XYZ formatted stream and returns a slice of Atom objects
//and the coordinates, or an error. Masses are filled from the internal
//table where the symbol is known, and left at zero otherwise.
func XYZRead(in io.Reader) ([]*Atom, *v3.Matrix, error) {
	r := bufio.NewReader(in)
	line, err := r.ReadString('\n')
	if err != nil {
		return nil, nil, makeError("XYZRead", "%s: can't read atom number line: %v", WrongXYZFormat, err)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, nil, makeError("XYZRead", "%s: can't parse atom number: %v", WrongXYZFormat, err)
	}
	//we don't care about the comment line
	if _, err = r.ReadString('\n'); err != nil {
		return nil, nil, makeError("XYZRead", "%s: missing comment line", WrongXYZFormat)
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, nil, makeError("XYZRead", "%s: line %d: %v", WrongXYZFormat, i, err)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, nil, makeError("XYZRead", "%s: line %d ill formed", WrongXYZFormat, i)
		}
		atoms[i] = new(Atom)
		atoms[i].Symbol = fields[0]
		atoms[i].Mass = symbolMass[atoms[i].Symbol]
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, nil, makeError("XYZRead", "%s: can't parse coordinate %d of line %d: %v", WrongXYZFormat, j, i, err)
			}
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, nil, errDecorate(err, "XYZRead")
	}
	return atoms, mcoords, nil
}

//XYZFileRead reads the XYZ file xyzname and returns the configuration
//contained in it, or an error.
func XYZFileRead(xyzname string) (*Configuration, error) {
	f, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	atoms, coords, err := XYZRead(f)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead "+xyzname)
	}
	return NewConfiguration(atoms, coords)
}

//XYZWrite writes the given coordinates and atoms in XYZ format to out,
//with comment as the comment line.
func XYZWrite(out io.Writer, coords *v3.Matrix, atoms []*Atom, comment string) error {
	if coords == nil || atoms == nil {
		return CError{"Given nil coordinates or atoms", []string{"XYZWrite"}}
	}
	if len(atoms) != coords.NVecs() {
		return makeError("XYZWrite", "%d atoms but %d coordinate vectors", len(atoms), coords.NVecs())
	}
	var err error
	if _, err = fmt.Fprintf(out, "%-4d\n%s\n", len(atoms), comment); err != nil {
		return CError{err.Error(), []string{"XYZWrite"}}
	}
	for i := range atoms {
		_, err = fmt.Fprintf(out, "%-2s  %12.6f%12.6f%12.6f\n", atoms[i].Symbol, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
		if err != nil {
			return CError{err.Error(), []string{"XYZWrite"}}
		}
	}
	return nil
}

//XYZFileWrite writes the configuration conf in an XYZ file with name
//xyzname, which will be created. An existing file is overwritten.
func XYZFileWrite(xyzname string, conf *Configuration) error {
	if err := conf.Corrupted(); err != nil {
		return errDecorate(err, "XYZFileWrite")
	}
	out, err := os.Create(xyzname)
	if err != nil {
		return err
	}
	defer out.Close()
	err = XYZWrite(out, conf.Coords, conf.Atoms, "")
	if err != nil {
		return errDecorate(err, "XYZFileWrite "+xyzname)
	}
	return nil
}
