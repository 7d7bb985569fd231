/*
 * calc_test.go, part of molonsurf.
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

package calc

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	surf "github.com/sebastianecheverrir/MolOnSurf"
	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

func confFromCoords(Te *testing.T, data []float64) *surf.Configuration {
	coords, err := v3.NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	atoms := make([]*surf.Atom, coords.NVecs())
	for i := range atoms {
		atoms[i] = &surf.Atom{Symbol: "Cu"}
	}
	conf, err := surf.NewConfiguration(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return conf
}

func TestHarmonic(Te *testing.T) {
	conf := confFromCoords(Te, []float64{1, 0, 0, 0, -2, 0})
	H := &Harmonic{K: 2.0}
	energy, forces, err := H.Calculate(conf)
	if err != nil {
		Te.Fatal(err)
	}
	//0.5*2*(1+4) = 5
	if math.Abs(energy-5.0) > 1e-12 {
		Te.Errorf("Wrong energy: %f", energy)
	}
	if forces.At(0, 0) != -2.0 || forces.At(1, 1) != 4.0 {
		Te.Error("Wrong restoring forces")
	}
}

//Two atoms at the potential minimum separation must feel no force; closer
//than that, a repulsive one.
func TestLennardJones(Te *testing.T) {
	L := &LennardJones{Eps: 1.0, Sigma: 1.0, Cutoff: 5.0}
	rmin := math.Pow(2.0, 1.0/6.0)
	conf := confFromCoords(Te, []float64{0, 0, 0, rmin, 0, 0})
	energy, forces, err := L.Calculate(conf)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("LJ at the minimum:", energy, forces.At(0, 0))
	if math.Abs(energy+1.0) > 1e-10 {
		Te.Errorf("Wrong well depth: %f", energy)
	}
	if math.Abs(forces.At(0, 0)) > 1e-10 {
		Te.Errorf("Force at the minimum should vanish: %g", forces.At(0, 0))
	}
	conf.Coords.Set(1, 0, 0.9)
	_, forces, err = L.Calculate(conf)
	if err != nil {
		Te.Fatal(err)
	}
	if forces.At(0, 0) >= 0 || forces.At(1, 0) <= 0 {
		Te.Error("Overlapping atoms should repel")
	}
	//Newton's third law
	if math.Abs(forces.At(0, 0)+forces.At(1, 0)) > 1e-10 {
		Te.Error("Pair forces are not opposite")
	}
}

func TestLennardJonesMinimumImage(Te *testing.T) {
	L := &LennardJones{Eps: 1.0, Sigma: 1.0, Cutoff: 3.0}
	//two atoms near opposite faces of a 10 A periodic box: the minimum
	//image distance is 1 A, not 9 A.
	conf := confFromCoords(Te, []float64{0.5, 0, 0, 9.5, 0, 0})
	err := conf.SetCell([]float64{10, 0, 0, 0, 10, 0, 0, 0, 10}, [3]bool{true, true, true})
	if err != nil {
		Te.Fatal(err)
	}
	_, forces, err := L.Calculate(conf)
	if err != nil {
		Te.Fatal(err)
	}
	if forces.At(0, 0) == 0 {
		Te.Error("Periodic image interaction missed")
	}
	//with the same atoms in a non-periodic box they are out of cutoff
	conf.Periodic = [3]bool{false, false, false}
	_, forces, err = L.Calculate(conf)
	if err != nil {
		Te.Fatal(err)
	}
	if forces.At(0, 0) != 0 {
		Te.Error("Non-periodic atoms beyond the cutoff should not interact")
	}
}

//A sheared periodic cell, as the slab builder produces. The wrap has
//to go through fractional coordinates to find the right image.
func TestLennardJonesShearedCell(Te *testing.T) {
	L := &LennardJones{Eps: 1.0, Sigma: 1.0, Cutoff: 3.0}
	conf := confFromCoords(Te, []float64{0.5, 0.5, 0, 9.5, 0.5, 0})
	err := conf.SetCell([]float64{10, 0, 0, 5, 10, 0, 0, 0, 20}, [3]bool{true, true, false})
	if err != nil {
		Te.Fatal(err)
	}
	_, forces, err := L.Calculate(conf)
	if err != nil {
		Te.Fatal(err)
	}
	//the minimum image distance along x is 1 A, not 9 A
	if forces.At(0, 0) == 0 {
		Te.Error("Periodic image interaction missed in the sheared cell")
	}
	if math.Abs(forces.At(0, 0)+forces.At(1, 0)) > 1e-10 {
		Te.Error("Pair forces are not opposite")
	}
	//a cutoff wider than half the cell must be refused
	L.Cutoff = 6.0
	if _, _, err = L.Calculate(conf); err == nil {
		Te.Error("Expected a cutoff-too-large error")
	}
}

//TestExtern fakes the external potential program with a shell script that
//writes a fixed .ef file, and checks the full write-run-parse cycle.
func TestExtern(Te *testing.T) {
	dir := Te.TempDir()
	script := filepath.Join(dir, "fakepot")
	ef := filepath.Join(dir, "job.ef")
	body := fmt.Sprintf("#!/bin/sh\nprintf -- '-12.5\\n0.1 0 0\\n-0.1 0 0\\n' > %s\n", ef)
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		Te.Fatal(err)
	}
	E := NewExtern(script, "model.ckpt", 42)
	E.SetWorkDir(dir)
	E.SetName("job")
	conf := confFromCoords(Te, []float64{0, 0, 0, 2, 0, 0})
	energy, forces, err := E.Calculate(conf)
	if err != nil {
		Te.Fatal(err)
	}
	if energy != -12.5 {
		Te.Errorf("Wrong energy: %f", energy)
	}
	if forces.NVecs() != 2 || forces.At(0, 0) != 0.1 || forces.At(1, 0) != -0.1 {
		Te.Error("Wrong forces parsed")
	}
	//the input must have been written for the program
	if _, err := os.Stat(filepath.Join(dir, "job.xyz")); err != nil {
		Te.Error("Input XYZ file was not written")
	}
}

func TestExternMissingOutput(Te *testing.T) {
	dir := Te.TempDir()
	script := filepath.Join(dir, "badpot")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		Te.Fatal(err)
	}
	E := NewExtern(script, "model.ckpt", 1)
	E.SetWorkDir(dir)
	conf := confFromCoords(Te, []float64{0, 0, 0})
	_, _, err := E.Calculate(conf)
	if err == nil {
		Te.Error("Expected an error for a program that writes no output")
	}
}
