/*
 * stf.go, part of molonsurf.
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
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	surf "github.com/sebastianecheverrir/MolOnSurf"
	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

const (
	lzwLitwidth int = 8
)

//Write!

//StfW writes a relaxation trajectory. It fulfills surf.TrajW.
type StfW struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	filename  string
	writeable bool
	prec      int
	laststep  int
}

//Close flushes and closes the trajectory. The object can not be used
//after this call.
func (S *StfW) Close() {
	if S == nil {
		return
	}
	if S.writeable {
		S.h.Close()
		S.f.Close()
	}
	S.writeable = false
	return
}

//Len returns the number of atoms per frame.
func (S *StfW) Len() int {
	return S.natoms
}

//WNext appends one frame with its metadata to the trajectory.
//Frames must arrive with strictly increasing steps, as the minimizer
//produces them; a frame that travels back in time is an error.
func (S *StfW) WNext(coord *v3.Matrix, info *surf.FrameInfo) error {
	if !S.writeable {
		return Error{TrajUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return Error{NilCoordinates, S.filename, []string{"WNext"}, true}
	}
	if info == nil {
		return Error{NilFrameInfo, S.filename, []string{"WNext"}, true}
	}
	v := coord.NVecs()
	if v != S.natoms {
		return Error{fmt.Sprintf("%d coordinates given, but %d expected", v, S.natoms), S.filename, []string{"WNext"}, true}
	}
	if S.laststep >= 0 && info.Step <= S.laststep {
		return Error{fmt.Sprintf("Frame step %d not after the previous step %d", info.Step, S.laststep), S.filename, []string{"WNext"}, true}
	}
	var temp [3]int
	var floats [3]float64
	for i := 0; i < v; i++ {
		floats[0] = coord.At(i, 0)
		floats[1] = coord.At(i, 1)
		floats[2] = coord.At(i, 2)
		S.h.Write([]byte(coordsEncode(floats, temp, S.prec)))
	}
	S.h.Write([]byte(fmt.Sprintf("* %d %.8f %.8f\n", info.Step, info.Energy, info.Fmax)))
	S.laststep = info.Step
	return nil
}

//NewWriter opens the file name for writing a trajectory of natoms atoms
//per frame, with the key=value pairs of header (which may be nil) written
//before the frames. A "prec" header sets the number of decimals kept per
//coordinate (2 by default). The compression level, where the chosen
//compressor has one, can be given as an optional argument.
func NewWriter(name string, natoms int, header map[string]string, compressionLevel ...int) (*StfW, error) {
	var level int = 9
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	S := new(StfW)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	zwriter := func(a io.Writer) (io.WriteCloser, error) {
		r, err := flate.NewWriter(a, level)
		return r, err
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, level) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'l':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewWriter = gzipwriter
	case 'r':
		AnyNewWriter = zwriter
	default:
		AnyNewWriter = zstdwriter
	}
	S.h, err = AnyNewWriter(S.f)
	if err != nil {
		return nil, Error{"Can't set up the compressor: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.natoms = natoms
	S.filename = name
	S.writeable = true
	S.prec = 2
	S.laststep = -1
	if header != nil {
		if p, ok := header["prec"]; ok {
			prec, err := strconv.Atoi(p)
			if err != nil {
				return nil, Error{"Invalid precision in header: " + p, name, []string{"NewWriter"}, true}
			}
			S.prec = prec
		}
		for k, v := range header {
			S.h.Write([]byte(fmt.Sprintf("%s=%v\n", k, v)))
		}
	}
	S.h.Write([]byte(fmt.Sprintf("** %d\n", S.natoms)))
	return S, nil
}

func coordsEncode(f [3]float64, temp [3]int, prec int) string {
	p := 100.0
	if prec > 0 && prec != 2 { //2 is the default, so we save the operation
		p = math.Pow(10.0, float64(prec))
	}
	for i, v := range f {
		temp[i] = int(math.RoundToEven(v * p))
	}
	return fmt.Sprintf("%d %d %d\n", temp[0], temp[1], temp[2])
}

//Read!

//StfR reads a relaxation trajectory. It fulfills surf.Traj.
type StfR struct {
	f            *os.File
	z            io.ReadCloser
	h            *bufio.Reader
	intermediate *bufio.Reader
	natoms       int
	filename     string
	prec         int
	readable     bool
}

//zstd.Decoder does not implement io.ReadCloser (its Close returns
//nothing), so it gets a little wrapper.
type stdql struct {
	closeql func()
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.closeql()
	return nil
}

//New opens an stf trajectory for reading, and returns a pointer to the
//handle, a map with the header metadata (or nil, if no metadata is found)
//and error or nil.
func New(name string) (*StfR, map[string]string, error) {
	S := new(StfR)
	S.natoms = -1 //just so we know if things don't work
	var m map[string]string
	var err error
	S.filename = name
	S.f, err = os.Open(S.filename)
	if err != nil {
		return nil, nil, err
	}
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	zreader := func(a io.Reader) (io.ReadCloser, error) {
		r := flate.NewReader(a)
		return r, nil
	}
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		return &stdql{r.Close, r}, err
	}
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	switch strings.ToLower(name)[len(name)-1] {
	case 'l':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return lzw.NewReader(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewReader = gzreader
	case 'r':
		AnyNewReader = zreader
	default:
		AnyNewReader = zstdreader
	}
	S.intermediate = bufio.NewReader(S.f)
	S.z, err = AnyNewReader(S.intermediate)
	if err != nil {
		return nil, nil, Error{"Can't set up the decompressor: " + err.Error(), S.filename, []string{"New"}, true}
	}
	S.h = bufio.NewReader(S.z)
	S.prec = 2
	for {
		str, err := S.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read header: " + err.Error(), S.filename, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from '%s'", str), S.filename, []string{"New"}, true}
			}
			S.natoms, err = strconv.Atoi(nat[1])
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from '%s': %s", nat[1], err.Error()), S.filename, []string{"New"}, true}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, Error{"Malformed header line: " + str, S.filename, []string{"New"}, true}
		}
		if m == nil {
			m = map[string]string{}
		}
		m[kv[0]] = kv[1]
	}
	if p, ok := m["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err != nil {
			return nil, nil, Error{"Invalid precision in header: " + p, S.filename, []string{"New"}, true}
		}
		S.prec = prec
	}
	S.readable = true
	return S, m, nil
}

//Readable returns true if the handle is readable (if it is possible to
//call Next on it)
func (S *StfR) Readable() bool {
	return S.readable
}

func coordsDecode(str string, temp *[3]float64, prec int) error {
	p := 100.0
	if prec > 0 && prec != 2 {
		p = math.Pow(10.0, float64(prec))
	}
	s := strings.Fields(str)
	if len(s) != 3 {
		return fmt.Errorf("Ill formatted coordinates line in stf: %s", str)
	}
	for i, v := range s {
		f, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("Can't parse coordinate %d (%s): %s", i, v, err.Error())
		}
		temp[i] = float64(f) / p
	}
	return nil
}

//Next puts in the given matrix (c) the coordinates for the next frame of
//the trajectory, or reads and discards a frame if c is nil, and returns
//the frame metadata. If the error is a surf.LastFrameError, the end of
//the trajectory has been reached, not an actual problem.
func (S *StfR) Next(c *v3.Matrix) (*surf.FrameInfo, error) {
	if !S.readable {
		return nil, Error{TrajUnIniRead, S.filename, []string{"Next"}, true}
	}
	if c != nil && c.NVecs() != S.natoms {
		return nil, Error{NotEnoughSpace, S.filename, []string{"Next"}, true}
	}
	var temp [3]float64
	for i := 0; i < S.natoms; i++ {
		b, err := S.h.ReadBytes('\n')
		if err != nil {
			//EOF should only happen when reading the first atom
			if err == io.EOF && i == 0 {
				//nothing bad happened here, the trajectory just ended.
				S.Close()
				return nil, newlastFrameError(S.filename, "Next")
			}
			return nil, Error{ReadError + ": " + err.Error(), S.filename, []string{"Next"}, true}
		}
		if err := coordsDecode(string(b[:len(b)-1]), &temp, S.prec); err != nil {
			return nil, Error{err.Error(), S.filename, []string{"Next"}, true}
		}
		if c == nil {
			continue //We ignore this whole frame, reading but not saving it.
			//Note that we still check the frame for correctness.
		}
		for j, v := range temp {
			c.Set(i, j, v)
		}
	}
	s, err := S.h.ReadString('\n')
	if err != nil {
		return nil, Error{"Can't read the frame terminator: " + err.Error(), S.filename, []string{"Next"}, true}
	}
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 4 || fields[0] != "*" {
		return nil, Error{WrongFormat + ": bad terminator: " + s, S.filename, []string{"Next"}, true}
	}
	info := new(surf.FrameInfo)
	if info.Step, err = strconv.Atoi(fields[1]); err != nil {
		return nil, Error{WrongFormat + ": " + err.Error(), S.filename, []string{"Next"}, true}
	}
	if info.Energy, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return nil, Error{WrongFormat + ": " + err.Error(), S.filename, []string{"Next"}, true}
	}
	if info.Fmax, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return nil, Error{WrongFormat + ": " + err.Error(), S.filename, []string{"Next"}, true}
	}
	return info, nil
}

//Close closes the object, and marks it as unreadable
func (S *StfR) Close() {
	if !S.readable {
		return
	}
	S.z.Close()
	S.f.Close()
	S.readable = false
	return
}

//Len returns the number of atoms in each frame of the trajectory.
func (S *StfR) Len() int {
	return S.natoms
}

//Errors

//Error is the general structure for stf trajectory errors. It fulfills
//surf.Error and surf.TrajError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("stf file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "stf") associated to the error
func (err Error) Format() string { return "stf" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	ReadError      = "Error reading frame"
	NilCoordinates = "Given nil coordinates"
	NilFrameInfo   = "Given nil frame info"
	WrongFormat    = "Wrong format in the STF file or frame"
	NotEnoughSpace = "Not enough space in passed blocks"
)

//lastFrameError implements surf.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "stf" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
