/*
 * stf_test.go, part of molonsurf.
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

package stf

import (
	"fmt"
	"math"
	"path/filepath"
	"testing"

	surf "github.com/sebastianecheverrir/MolOnSurf"
	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

//Writes a small trajectory and reads it back, for each compressor,
//checking count, order and coordinates within the format precision.
func TestRoundTrip(Te *testing.T) {
	for _, name := range []string{"test.stf", "test.stz", "test.str", "test.stl"} {
		fname := filepath.Join(Te.TempDir(), name)
		fmt.Println("STF round trip test on", fname)
		const natoms = 3
		const nframes = 5
		w, err := NewWriter(fname, natoms, map[string]string{"potential": "harmonic"})
		if err != nil {
			Te.Fatal(err)
		}
		frames := make([]*v3.Matrix, 0, nframes)
		infos := make([]*surf.FrameInfo, 0, nframes)
		for i := 0; i < nframes; i++ {
			c := v3.Zeros(natoms)
			for a := 0; a < natoms; a++ {
				for j := 0; j < 3; j++ {
					c.Set(a, j, float64(a)+0.25*float64(j)-0.1*float64(i))
				}
			}
			info := &surf.FrameInfo{Step: i, Energy: -10.0 + 0.5*float64(i), Fmax: 1.0 / float64(i+1)}
			if err := w.WNext(c, info); err != nil {
				Te.Fatal(err)
			}
			frames = append(frames, c)
			infos = append(infos, info)
		}
		w.Close()

		r, header, err := New(fname)
		if err != nil {
			Te.Fatal(err)
		}
		if header["potential"] != "harmonic" {
			Te.Error("Header metadata not preserved")
		}
		if r.Len() != natoms {
			Te.Errorf("Wrong number of atoms per frame: %d", r.Len())
		}
		read := 0
		c := v3.Zeros(natoms)
		for ; ; read++ {
			info, err := r.Next(c)
			if err != nil {
				if _, ok := err.(surf.LastFrameError); ok {
					break
				}
				Te.Fatal(err)
			}
			if info.Step != infos[read].Step {
				Te.Errorf("Frame %d out of order: step %d", read, info.Step)
			}
			if math.Abs(info.Energy-infos[read].Energy) > 1e-6 {
				Te.Errorf("Energy not preserved in frame %d", read)
			}
			if math.Abs(info.Fmax-infos[read].Fmax) > 1e-6 {
				Te.Errorf("Fmax not preserved in frame %d", read)
			}
			for a := 0; a < natoms; a++ {
				for j := 0; j < 3; j++ {
					if math.Abs(c.At(a, j)-frames[read].At(a, j)) > 0.006 {
						Te.Errorf("Coordinate %d,%d of frame %d not preserved", a, j, read)
					}
				}
			}
		}
		if read != nframes {
			Te.Errorf("Wrote %d frames but read %d", nframes, read)
		}
	}
}

//Two numerically identical consecutive frames are both kept.
func TestNoDeduplication(Te *testing.T) {
	fname := filepath.Join(Te.TempDir(), "dup.stf")
	w, err := NewWriter(fname, 1, nil)
	if err != nil {
		Te.Fatal(err)
	}
	c, _ := v3.NewMatrix([]float64{1, 2, 3})
	if err := w.WNext(c, &surf.FrameInfo{Step: 0, Energy: -1, Fmax: 0.5}); err != nil {
		Te.Fatal(err)
	}
	if err := w.WNext(c, &surf.FrameInfo{Step: 1, Energy: -1, Fmax: 0.5}); err != nil {
		Te.Fatal(err)
	}
	w.Close()
	r, _, err := New(fname)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	n := 0
	for {
		if _, err := r.Next(nil); err != nil {
			break
		}
		n++
	}
	if n != 2 {
		Te.Errorf("Expected 2 identical frames, got %d", n)
	}
}

func TestHigherPrecision(Te *testing.T) {
	fname := filepath.Join(Te.TempDir(), "prec.stf")
	w, err := NewWriter(fname, 1, map[string]string{"prec": "4"})
	if err != nil {
		Te.Fatal(err)
	}
	c, _ := v3.NewMatrix([]float64{1.23456, -2.34567, 0.00012})
	if err := w.WNext(c, &surf.FrameInfo{Step: 0}); err != nil {
		Te.Fatal(err)
	}
	w.Close()
	r, _, err := New(fname)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	out := v3.Zeros(1)
	if _, err := r.Next(out); err != nil {
		Te.Fatal(err)
	}
	if math.Abs(out.At(0, 0)-1.2346) > 1e-9 || math.Abs(out.At(0, 2)-0.0001) > 1e-9 {
		Te.Errorf("prec=4 coordinates not preserved: %v %v", out.At(0, 0), out.At(0, 2))
	}
}

//The writer refuses frames with wrong sizes or non-increasing steps.
func TestWriterChecks(Te *testing.T) {
	fname := filepath.Join(Te.TempDir(), "bad.stf")
	w, err := NewWriter(fname, 2, nil)
	if err != nil {
		Te.Fatal(err)
	}
	defer w.Close()
	small, _ := v3.NewMatrix([]float64{1, 2, 3})
	if err := w.WNext(small, &surf.FrameInfo{Step: 0}); err == nil {
		Te.Error("Wrong frame size accepted")
	}
	good := v3.Zeros(2)
	if err := w.WNext(good, &surf.FrameInfo{Step: 0}); err != nil {
		Te.Error(err)
	}
	if err := w.WNext(good, &surf.FrameInfo{Step: 0}); err == nil {
		Te.Error("Repeated step accepted")
	}
	if err := w.WNext(good, nil); err == nil {
		Te.Error("Nil frame info accepted")
	}
}
