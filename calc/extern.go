/*
 * extern.go, part of molonsurf.
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
//To use this calculator you need a potential program installed separately,
//together with its checkpoint file. The program is treated as a black box:
//only the file convention described in the Extern doc connects the two.

package calc

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	surf "github.com/sebastianecheverrir/MolOnSurf"
	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

//Extern evaluates energies and forces by running an external potential
//program, typically the inference front end of a pretrained machine-learned
//potential. For every Calculate call it writes the configuration to
//<name>.xyz in the work directory and runs
//
//	command --checkpoint <checkpoint> --seed <seed> <name>.xyz
//
//redirecting the program's output to <name>.out. The program must leave a
//file <name>.ef next to its input: one line with the potential energy in
//eV, then one line per atom with the three force components in eV/A, in
//the atom order of the input. Runs are synchronous: Calculate blocks until
//the program exits. With a fixed checkpoint and seed the program is
//expected to be deterministic.
type Extern struct {
	command    string
	checkpoint string
	seed       int
	name       string
	workdir    string
}

//NewExtern returns an external-program calculator running command with the
//given checkpoint and random seed.
func NewExtern(command, checkpoint string, seed int) *Extern {
	E := new(Extern)
	E.command = command
	E.checkpoint = checkpoint
	E.seed = seed
	E.name = "molonsurf"
	E.workdir = "."
	return E
}

//Extern methods

//SetName sets the job name, used for the input and output file names.
func (E *Extern) SetName(name string) {
	E.name = name
}

//SetWorkDir sets the directory where the input and output files live.
func (E *Extern) SetWorkDir(dir string) {
	E.workdir = dir
}

//Command returns the command the calculator runs.
func (E *Extern) Command() string {
	return E.command
}

//Calculate writes conf, runs the external program, and parses its
//energy/forces file. Missing or non-numeric output is reported as an
//error; the finiteness of the numbers themselves is the minimizer's
//concern, as it has to tell non-finite model output apart from
//plumbing failures.
func (E *Extern) Calculate(conf *surf.Configuration) (float64, *v3.Matrix, error) {
	if conf == nil {
		return 0, nil, Error{"Given a nil configuration", E.command, []string{"Calculate"}, true}
	}
	xyz := filepath.Join(E.workdir, E.name+".xyz")
	if err := surf.XYZFileWrite(xyz, conf); err != nil {
		return 0, nil, Error{ErrCantInput + ": " + err.Error(), E.command, []string{"Calculate"}, true}
	}
	com := fmt.Sprintf("%s --checkpoint %s --seed %d %s > %s 2>&1", E.command, E.checkpoint, E.seed, xyz, filepath.Join(E.workdir, E.name+".out"))
	command := exec.Command("sh", "-c", com)
	if err := command.Run(); err != nil {
		return 0, nil, Error{ErrNotRunning + ": " + err.Error(), E.command, []string{"exec.Run", "Calculate"}, true}
	}
	return E.readEF(conf.Len())
}

//readEF parses the <name>.ef file left by the program.
func (E *Extern) readEF(natoms int) (float64, *v3.Matrix, error) {
	f, err := os.Open(filepath.Join(E.workdir, E.name+".ef"))
	if err != nil {
		return 0, nil, Error{ErrNoEnergy + ": " + err.Error(), E.command, []string{"readEF"}, true}
	}
	defer f.Close()
	r := bufio.NewReader(f)
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, nil, Error{ErrNoEnergy + ": " + err.Error(), E.command, []string{"readEF"}, true}
	}
	energy, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, nil, Error{ErrNoEnergy + ": " + err.Error(), E.command, []string{"readEF"}, true}
	}
	forces := v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		line, err = r.ReadString('\n')
		if err != nil {
			return 0, nil, Error{fmt.Sprintf("%s: force line %d: %s", ErrNoForces, i, err.Error()), E.command, []string{"readEF"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, nil, Error{fmt.Sprintf("%s: force line %d ill formed", ErrNoForces, i), E.command, []string{"readEF"}, true}
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return 0, nil, Error{fmt.Sprintf("%s: force line %d: %s", ErrNoForces, i, err.Error()), E.command, []string{"readEF"}, true}
			}
			forces.Set(i, j, v)
		}
	}
	return energy, forces, nil
}

//Errors

//Error is the concrete error type of the calc package. It fulfills the
//surf.Error interface.
type Error struct {
	message    string
	calculator string
	deco       []string
	critical   bool
}

func (err Error) Error() string {
	return fmt.Sprintf("calc %s error: %s", err.calculator, err.message)
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

//Messages for the errors the calc package produces.
const (
	ErrCantInput  = "Can't write the input for the external program"
	ErrNotRunning = "External program failed to run"
	ErrNoEnergy   = "Can't read the energy from the external program's output"
	ErrNoForces   = "Can't read the forces from the external program's output"
)
