/*
 * memtraj.go, part of molonsurf.
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

import v3 "github.com/sebastianecheverrir/MolOnSurf/v3"

//MemTraj keeps a relaxation trajectory in memory. It fulfills both TrajW
//and Traj, so it can record a run and replay it without touching the disk,
//which is also handy for tests. Frames are deep-copied on append and only
//ever appended, never rewritten.
type MemTraj struct {
	natoms  int
	frames  []*v3.Matrix
	infos   []*FrameInfo
	readpos int
}

//NewMemTraj returns an empty in-memory trajectory for natoms atoms
//per frame.
func NewMemTraj(natoms int) *MemTraj {
	M := new(MemTraj)
	M.natoms = natoms
	return M
}

//WNext appends one frame. The coordinates are copied.
func (M *MemTraj) WNext(coord *v3.Matrix, info *FrameInfo) error {
	if coord == nil || info == nil {
		return CError{"Given nil coordinates or frame info", []string{"WNext"}}
	}
	if coord.NVecs() != M.natoms {
		return makeError("WNext", "%d coordinates given, but %d expected", coord.NVecs(), M.natoms)
	}
	i := *info
	M.frames = append(M.frames, v3.CloneFrom(coord))
	M.infos = append(M.infos, &i)
	return nil
}

//Readable returns true if there are frames left to read.
func (M *MemTraj) Readable() bool {
	return M.readpos < len(M.frames)
}

//Next copies the coordinates of the next frame into output, if non-nil,
//and returns the frame metadata. At the end of the trajectory it returns
//an error implementing LastFrameError.
func (M *MemTraj) Next(output *v3.Matrix) (*FrameInfo, error) {
	if M.readpos >= len(M.frames) {
		return nil, lastFrame{}
	}
	f := M.frames[M.readpos]
	if output != nil {
		output.Dense.Copy(f.Dense)
	}
	info := *M.infos[M.readpos]
	M.readpos++
	return &info, nil
}

//Rewind restarts reading from the first frame.
func (M *MemTraj) Rewind() {
	M.readpos = 0
}

//Len returns the number of atoms per frame.
func (M *MemTraj) Len() int {
	return M.natoms
}

//NFrames returns the number of frames recorded so far.
func (M *MemTraj) NFrames() int {
	return len(M.frames)
}

//lastFrame implements LastFrameError for MemTraj.
type lastFrame struct{}

func (e lastFrame) Error() string               { return "EOF" }
func (e lastFrame) Decorate(d string) []string  { return nil }
func (e lastFrame) Critical() bool              { return false }
func (e lastFrame) FileName() string            { return "" }
func (e lastFrame) NormalLastFrameTermination() {}
