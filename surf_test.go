/*
 * surf_test.go, part of molonsurf.
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
	"bytes"
	"fmt"
	"math"
	"testing"

	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

func testConf(Te *testing.T, n int) *Configuration {
	atoms := make([]*Atom, n)
	data := make([]float64, n*3)
	for i := 0; i < n; i++ {
		atoms[i] = &Atom{Symbol: "Cu", Mass: symbolMass["Cu"]}
		data[i*3] = float64(i)
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	conf, err := NewConfiguration(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return conf
}

func TestConfigurationCorrupted(Te *testing.T) {
	conf := testConf(Te, 4)
	if err := conf.Corrupted(); err != nil {
		Te.Error(err)
	}
	conf.SetConstraints(FixAtoms([]int{0, 7}))
	if err := conf.Corrupted(); err == nil {
		Te.Error("Out-of-range constraint index not detected")
	}
	conf.SetConstraints(FixAtoms([]int{0, 3}))
	if err := conf.Corrupted(); err != nil {
		Te.Error(err)
	}
	conf.Coords.Set(1, 1, math.NaN())
	if err := conf.Corrupted(); err == nil {
		Te.Error("Non-finite coordinate not detected")
	}
}

//The projections must be idempotent: applying them twice has to yield
//exactly the same matrix as applying them once.
func TestFixedIdempotent(Te *testing.T) {
	conf := testConf(Te, 5)
	conf.SetConstraints(FixAtoms([]int{0, 1, 2}))
	forces, _ := v3.NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5})
	conf.ProjectForces(forces)
	once := v3.CloneFrom(forces)
	conf.ProjectForces(forces)
	for i := 0; i < forces.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			if forces.At(i, j) != once.At(i, j) {
				Te.Errorf("Projection not idempotent at %d,%d", i, j)
			}
		}
	}
	for _, i := range []int{0, 1, 2} {
		if forces.VecNorm(i) != 0 {
			Te.Errorf("Fixed atom %d still carries force", i)
		}
	}
	if forces.At(3, 0) != 4 || forces.At(4, 2) != 5 {
		Te.Error("Free atom forces were altered by the projection")
	}
}

func TestMemTraj(Te *testing.T) {
	rec := NewMemTraj(2)
	c, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	for i := 0; i < 3; i++ {
		c.Set(1, 0, float64(i))
		err := rec.WNext(c, &FrameInfo{Step: i, Energy: -float64(i), Fmax: 0.1})
		if err != nil {
			Te.Error(err)
		}
	}
	if rec.NFrames() != 3 {
		Te.Errorf("Expected 3 frames, got %d", rec.NFrames())
	}
	out := v3.Zeros(2)
	for i := 0; ; i++ {
		info, err := rec.Next(out)
		if err != nil {
			if _, ok := err.(LastFrameError); ok {
				break
			}
			Te.Error(err)
			break
		}
		if info.Step != i {
			Te.Errorf("Frames out of order: expected step %d, got %d", i, info.Step)
		}
		if out.At(1, 0) != float64(i) {
			Te.Error("Frame coordinates not preserved")
		}
	}
	rec.Rewind()
	if !rec.Readable() {
		Te.Error("MemTraj not readable after Rewind")
	}
}

func TestXYZRoundTrip(Te *testing.T) {
	fmt.Println("XYZ round trip test!")
	conf := testConf(Te, 3)
	var b bytes.Buffer
	if err := XYZWrite(&b, conf.Coords, conf.Atoms, "relaxed"); err != nil {
		Te.Fatal(err)
	}
	atoms, coords, err := XYZRead(&b)
	if err != nil {
		Te.Fatal(err)
	}
	if len(atoms) != 3 {
		Te.Fatalf("Expected 3 atoms, got %d", len(atoms))
	}
	for i := range atoms {
		if atoms[i].Symbol != "Cu" {
			Te.Errorf("Wrong symbol for atom %d: %s", i, atoms[i].Symbol)
		}
		for j := 0; j < 3; j++ {
			if math.Abs(coords.At(i, j)-conf.Coords.At(i, j)) > 1e-6 {
				Te.Errorf("Coordinate %d,%d not preserved", i, j)
			}
		}
	}
}
