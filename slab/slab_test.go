/*
 * slab_test.go, part of molonsurf.
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

package slab

import (
	"fmt"
	"math"
	"testing"
)

func TestFCC111(Te *testing.T) {
	conf, err := FCC111("Cu", 3, 3, 4, 0, 10.0)
	if err != nil {
		Te.Fatal(err)
	}
	if conf.Len() != 3*3*4 {
		Te.Fatalf("Expected 36 atoms, got %d", conf.Len())
	}
	if err := conf.Corrupted(); err != nil {
		Te.Error(err)
	}
	if !conf.Periodic[0] || !conf.Periodic[1] || conf.Periodic[2] {
		Te.Error("A slab must be periodic in x and y only")
	}
	//layer spacing must be a/sqrt(3)
	want := 3.61 / math.Sqrt(3)
	z0, z1 := conf.Coords.At(0, 2), 0.0
	for i := 0; i < conf.Len(); i++ {
		if conf.Atom(i).Tag == 1 {
			z1 = conf.Coords.At(i, 2)
			break
		}
	}
	if math.Abs((z1-z0)-want) > 1e-10 {
		Te.Errorf("Wrong layer spacing: %f, wanted %f", z1-z0, want)
	}
	//the bottom layer sits at the vacuum offset
	if math.Abs(z0-10.0) > 1e-10 {
		Te.Errorf("Wrong vacuum padding: %f", z0)
	}
	fmt.Println("Slab cell:", conf.Cell)
}

func TestFCC111Errors(Te *testing.T) {
	if _, err := FCC111("Cu", 0, 3, 4, 0, 10); err == nil {
		Te.Error("Zero-size slab accepted")
	}
	if _, err := FCC111("Xx", 2, 2, 2, 0, 10); err == nil {
		Te.Error("Unknown element without lattice constant accepted")
	}
}

func TestFixBottomLayers(Te *testing.T) {
	conf, err := FCC111("Pt", 2, 2, 3, 0, 8.0)
	if err != nil {
		Te.Fatal(err)
	}
	fixed := FixBottomLayers(conf, 2)
	if len(fixed.Indices()) != 2*2*2 {
		Te.Errorf("Expected 8 fixed atoms, got %d", len(fixed.Indices()))
	}
	conf.SetConstraints(fixed)
	if err := conf.Corrupted(); err != nil {
		Te.Error(err)
	}
	for _, i := range fixed.Indices() {
		if conf.Atom(i).Tag >= 2 {
			Te.Errorf("Atom %d of layer %d should not be fixed", i, conf.Atom(i).Tag)
		}
	}
}

func TestAddAdsorbate(Te *testing.T) {
	slab, err := FCC111("Cu", 2, 2, 3, 0, 10.0)
	if err != nil {
		Te.Fatal(err)
	}
	slab.SetConstraints(FixBottomLayers(slab, 2))
	co, err := Diatomic("C", "O", 1.14)
	if err != nil {
		Te.Fatal(err)
	}
	x, y := TopCenter(slab)
	conf, err := AddAdsorbate(slab, co, 2.0, x, y)
	if err != nil {
		Te.Fatal(err)
	}
	if conf.Len() != slab.Len()+2 {
		Te.Fatalf("Expected %d atoms, got %d", slab.Len()+2, conf.Len())
	}
	//the C atom has to sit 2 A over the top layer
	ztop := math.Inf(-1)
	for i := 0; i < slab.Len(); i++ {
		if z := slab.Coords.At(i, 2); z > ztop {
			ztop = z
		}
	}
	zc := conf.Coords.At(slab.Len(), 2)
	if math.Abs(zc-(ztop+2.0)) > 1e-10 {
		Te.Errorf("Adsorbate height wrong: %f, wanted %f", zc, ztop+2.0)
	}
	zo := conf.Coords.At(slab.Len()+1, 2)
	if math.Abs(zo-zc-1.14) > 1e-10 {
		Te.Error("Adsorbate bond length not preserved")
	}
	//the slab constraints must carry over and stay valid
	if len(conf.Constraints()) != 1 {
		Te.Fatal("Slab constraints not carried over")
	}
	if err := conf.Corrupted(); err != nil {
		Te.Error(err)
	}
}
