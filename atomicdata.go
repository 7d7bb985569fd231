/*
 * atomicdata.go, part of molonsurf.
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

//A map for assigning mass to elements.
//Common molecular elements plus the fcc metals used for surfaces.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"F":  18.998,
	"Cl": 35.45,
	"Na": 22.99,
	"K":  39.1,
	"Al": 26.98,
	"Si": 28.08,
	"Ni": 58.69,
	"Cu": 63.55,
	"Zn": 65.38,
	"Pd": 106.42,
	"Ag": 107.87,
	"Pt": 195.08,
	"Au": 196.97,
}

//SymbolMass returns the mass for an element symbol, and false if the
//symbol is not in the internal table.
func SymbolMass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

//Conventional fcc lattice constants, in A.
//From the compilation of Ashcroft and Mermin.
var fccLatticeConstant = map[string]float64{
	"Al": 4.05,
	"Ni": 3.52,
	"Cu": 3.61,
	"Pd": 3.89,
	"Ag": 4.09,
	"Pt": 3.92,
	"Au": 4.08,
}

//FCCLatticeConstant returns the conventional fcc lattice constant for an
//element symbol, and false if the symbol is not in the internal table.
func FCCLatticeConstant(symbol string) (float64, bool) {
	a, ok := fccLatticeConstant[symbol]
	return a, ok
}
