/*
 * slab.go, part of molonsurf.
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

/*Package slab builds starting geometries for molecule-on-surface
relaxations: fcc(111) metal slabs, vacuum padding, adsorbate placement and
bottom-layer fixing. The builder only produces the initial configuration
and its constraints; everything that happens to them afterwards belongs to
the minimizer.*/
package slab

import (
	"fmt"
	"math"

	surf "github.com/sebastianecheverrir/MolOnSurf"
	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

//FCC111 builds an fcc(111) slab of the given element with nx by ny atoms
//per layer and nlayers layers, ABC stacked, periodic in x and y, with
//vacuum A of empty space below and above the slab. The lattice constant a
//is in A; passing a <= 0 takes the tabulated conventional value for the
//element, if there is one. Every atom gets its 0-based layer index,
//counted from the bottom, in its Tag.
func FCC111(symbol string, nx, ny, nlayers int, a, vacuum float64) (*surf.Configuration, error) {
	if nx < 1 || ny < 1 || nlayers < 1 {
		return nil, Error{fmt.Sprintf("Slab size %dx%dx%d not positive", nx, ny, nlayers), []string{"FCC111"}, true}
	}
	if a <= 0 {
		var ok bool
		a, ok = surf.FCCLatticeConstant(symbol)
		if !ok {
			return nil, Error{"No tabulated lattice constant for element " + symbol, []string{"FCC111"}, true}
		}
	}
	mass, ok := surf.SymbolMass(symbol)
	if !ok {
		return nil, Error{"No tabulated mass for element " + symbol, []string{"FCC111"}, true}
	}
	d := a / math.Sqrt2        //nearest-neighbour distance, the in-plane lattice spacing
	h := a / math.Sqrt(3)      //spacing between (111) layers
	sy := d * math.Sqrt(3) / 2 //y extent of one in-plane cell
	natoms := nx * ny * nlayers
	atoms := make([]*surf.Atom, 0, natoms)
	coords := make([]float64, 0, natoms*3)
	for l := 0; l < nlayers; l++ {
		//ABC stacking: each layer is shifted by a third of (v1+v2)
		ox := float64(l%3) * d / 2
		oy := float64(l%3) * d / (2 * math.Sqrt(3))
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				x := float64(i)*d + float64(j)*d/2 + ox
				y := float64(j)*sy + oy
				z := vacuum + float64(l)*h
				coords = append(coords, x, y, z)
				atoms = append(atoms, &surf.Atom{Symbol: symbol, Mass: mass, Tag: l})
			}
		}
	}
	m, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "FCC111")
	}
	conf, err := surf.NewConfiguration(atoms, m)
	if err != nil {
		return nil, errDecorate(err, "FCC111")
	}
	cell := []float64{
		float64(nx) * d, 0, 0,
		float64(ny) * d / 2, float64(ny) * sy, 0,
		0, 0, float64(nlayers-1)*h + 2*vacuum,
	}
	if err := conf.SetCell(cell, [3]bool{true, true, false}); err != nil {
		return nil, errDecorate(err, "FCC111")
	}
	return conf, nil
}

//FixBottomLayers returns a constraint fixing the n bottom layers of a
//slab built by FCC111, using the layer index kept in the atom tags.
func FixBottomLayers(conf *surf.Configuration, n int) *surf.Fixed {
	var indices []int
	for i := 0; i < conf.Len(); i++ {
		if conf.Atom(i).Tag < n {
			indices = append(indices, i)
		}
	}
	return surf.FixAtoms(indices)
}

//Diatomic builds a two-atom molecule standing along z: sym1 at the
//origin, sym2 at bond A above it. Unknown symbols get zero mass.
func Diatomic(sym1, sym2 string, bond float64) (*surf.Configuration, error) {
	m1, _ := surf.SymbolMass(sym1)
	m2, _ := surf.SymbolMass(sym2)
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 0, 0, bond})
	if err != nil {
		return nil, errDecorate(err, "Diatomic")
	}
	return surf.NewConfiguration([]*surf.Atom{{Symbol: sym1, Mass: m1}, {Symbol: sym2, Mass: m2}}, coords)
}

//AddAdsorbate returns a new configuration with the adsorbate placed over
//the slab: its lowest atom ends up at (x, y, ztop+height), where ztop is
//the height of the topmost slab atom. The slab's cell, periodicity and
//constraints are kept; the adsorbate atoms are appended after the slab
//atoms and are free unless the caller constrains them.
func AddAdsorbate(slab, ads *surf.Configuration, height, x, y float64) (*surf.Configuration, error) {
	if err := slab.Corrupted(); err != nil {
		return nil, errDecorate(err, "AddAdsorbate")
	}
	if err := ads.Corrupted(); err != nil {
		return nil, errDecorate(err, "AddAdsorbate")
	}
	ztop := math.Inf(-1)
	for i := 0; i < slab.Len(); i++ {
		if z := slab.Coords.At(i, 2); z > ztop {
			ztop = z
		}
	}
	zlow := math.Inf(1)
	for i := 0; i < ads.Len(); i++ {
		if z := ads.Coords.At(i, 2); z < zlow {
			zlow = z
		}
	}
	n := slab.Len() + ads.Len()
	atoms := make([]*surf.Atom, 0, n)
	coords := v3.Zeros(n)
	for i := 0; i < slab.Len(); i++ {
		atoms = append(atoms, slab.Atom(i).Copy())
	}
	coords.SetMatrix(0, slab.Coords)
	for i := 0; i < ads.Len(); i++ {
		atoms = append(atoms, ads.Atom(i).Copy())
		coords.Set(slab.Len()+i, 0, ads.Coords.At(i, 0)+x)
		coords.Set(slab.Len()+i, 1, ads.Coords.At(i, 1)+y)
		coords.Set(slab.Len()+i, 2, ads.Coords.At(i, 2)-zlow+ztop+height)
	}
	conf, err := surf.NewConfiguration(atoms, coords)
	if err != nil {
		return nil, errDecorate(err, "AddAdsorbate")
	}
	if slab.Cell != nil {
		cell := make([]float64, 9)
		copy(cell, slab.Cell)
		if err := conf.SetCell(cell, slab.Periodic); err != nil {
			return nil, errDecorate(err, "AddAdsorbate")
		}
	}
	conf.SetConstraints(slab.Constraints()...)
	return conf, nil
}

//TopCenter returns the x,y center of the surface cell of a slab, a
//reasonable default spot for a single adsorbate.
func TopCenter(conf *surf.Configuration) (x, y float64) {
	if conf.Cell == nil {
		return 0, 0
	}
	x = (conf.Cell[0] + conf.Cell[3]) / 2
	y = (conf.Cell[1] + conf.Cell[4]) / 2
	return x, y
}

//Errors

//Error is the concrete error type of the slab package. It fulfills the
//surf.Error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("slab error: %s", err.message)
}

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//errDecorate asserts that err implements surf.Error and decorates it.
func errDecorate(err error, caller string) error {
	err2 := err.(surf.Error)
	err2.Decorate(caller)
	return err2
}
