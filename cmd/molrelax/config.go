/*
 * config.go, part of molonsurf.
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

package main

import (
	"fmt"
	"os"

	surf "github.com/sebastianecheverrir/MolOnSurf"
	"github.com/sebastianecheverrir/MolOnSurf/calc"
	"github.com/sebastianecheverrir/MolOnSurf/slab"
	"gopkg.in/yaml.v3"
)

//Config is the YAML run description for molrelax. Command-line flags
//override the corresponding fields.
type Config struct {
	Calculator CalculatorConfig `yaml:"calculator"`
	Relaxation RelaxationConfig `yaml:"relaxation"`
	System     SystemConfig     `yaml:"system"`
}

//CalculatorConfig selects and parameterizes the potential.
type CalculatorConfig struct {
	Kind       string  `yaml:"kind"` //"harmonic", "lj" or "extern"
	K          float64 `yaml:"k,omitempty"`
	Eps        float64 `yaml:"eps,omitempty"`
	Sigma      float64 `yaml:"sigma,omitempty"`
	Cutoff     float64 `yaml:"cutoff,omitempty"`
	Command    string  `yaml:"command,omitempty"`
	Checkpoint string  `yaml:"checkpoint,omitempty"`
	Seed       int     `yaml:"seed,omitempty"`
}

//RelaxationConfig carries the convergence settings. Fmax and MaxSteps are
//required: there are no default convergence criteria.
type RelaxationConfig struct {
	Fmax       *float64 `yaml:"fmax"`
	MaxSteps   *int     `yaml:"maxsteps"`
	MaxStep    float64  `yaml:"maxstep,omitempty"`
	Trajectory string   `yaml:"trajectory,omitempty"`
	Plot       string   `yaml:"plot,omitempty"`
	FinalXYZ   string   `yaml:"finalxyz,omitempty"`
}

//SystemConfig describes the starting geometry: either an XYZ file, or a
//slab (possibly with an adsorbate) to be built.
type SystemConfig struct {
	XYZ       string           `yaml:"xyz,omitempty"`
	Slab      *SlabConfig      `yaml:"slab,omitempty"`
	Adsorbate *AdsorbateConfig `yaml:"adsorbate,omitempty"`
}

type SlabConfig struct {
	Element   string  `yaml:"element"`
	NX        int     `yaml:"nx"`
	NY        int     `yaml:"ny"`
	Layers    int     `yaml:"layers"`
	Lattice   float64 `yaml:"lattice,omitempty"` //0 takes the tabulated value
	Vacuum    float64 `yaml:"vacuum"`
	FixLayers int     `yaml:"fixlayers,omitempty"`
}

type AdsorbateConfig struct {
	Atom1  string  `yaml:"atom1"`
	Atom2  string  `yaml:"atom2"`
	Bond   float64 `yaml:"bond"`
	Height float64 `yaml:"height"`
}

//ReadConfig parses a YAML run file.
func ReadConfig(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	conf := new(Config)
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("can't parse config %s: %w", fname, err)
	}
	return conf, nil
}

//Validate checks that the config names everything a run needs.
func (C *Config) Validate() error {
	if C.Relaxation.Fmax == nil {
		return fmt.Errorf("relaxation.fmax is required")
	}
	if *C.Relaxation.Fmax < 0 {
		return fmt.Errorf("relaxation.fmax must be >= 0, got %v", *C.Relaxation.Fmax)
	}
	if C.Relaxation.MaxSteps == nil {
		return fmt.Errorf("relaxation.maxsteps is required")
	}
	if *C.Relaxation.MaxSteps < 0 {
		return fmt.Errorf("relaxation.maxsteps must be >= 0, got %d", *C.Relaxation.MaxSteps)
	}
	if C.System.XYZ == "" && C.System.Slab == nil {
		return fmt.Errorf("system needs either an xyz file or a slab")
	}
	if C.System.XYZ != "" && C.System.Slab != nil {
		return fmt.Errorf("system can't have both an xyz file and a slab")
	}
	switch C.Calculator.Kind {
	case "harmonic":
		if C.Calculator.K <= 0 {
			return fmt.Errorf("the harmonic calculator needs k > 0")
		}
	case "lj":
		if C.Calculator.Eps <= 0 || C.Calculator.Sigma <= 0 || C.Calculator.Cutoff <= 0 {
			return fmt.Errorf("the lj calculator needs positive eps, sigma and cutoff")
		}
	case "extern":
		if C.Calculator.Command == "" || C.Calculator.Checkpoint == "" {
			return fmt.Errorf("the extern calculator needs a command and a checkpoint")
		}
	default:
		return fmt.Errorf("unknown calculator kind %q", C.Calculator.Kind)
	}
	return nil
}

//BuildSystem produces the starting configuration described by the config.
func (C *Config) BuildSystem() (*surf.Configuration, error) {
	if C.System.XYZ != "" {
		return surf.XYZFileRead(C.System.XYZ)
	}
	s := C.System.Slab
	conf, err := slab.FCC111(s.Element, s.NX, s.NY, s.Layers, s.Lattice, s.Vacuum)
	if err != nil {
		return nil, err
	}
	if s.FixLayers > 0 {
		conf.SetConstraints(slab.FixBottomLayers(conf, s.FixLayers))
	}
	if a := C.System.Adsorbate; a != nil {
		mol, err := slab.Diatomic(a.Atom1, a.Atom2, a.Bond)
		if err != nil {
			return nil, err
		}
		x, y := slab.TopCenter(conf)
		conf, err = slab.AddAdsorbate(conf, mol, a.Height, x, y)
		if err != nil {
			return nil, err
		}
	}
	return conf, nil
}

//BuildCalculator produces the calculator described by the config.
func (C *Config) BuildCalculator() (surf.Calculator, error) {
	switch C.Calculator.Kind {
	case "harmonic":
		return &calc.Harmonic{K: C.Calculator.K}, nil
	case "lj":
		return &calc.LennardJones{Eps: C.Calculator.Eps, Sigma: C.Calculator.Sigma, Cutoff: C.Calculator.Cutoff}, nil
	case "extern":
		return calc.NewExtern(C.Calculator.Command, C.Calculator.Checkpoint, C.Calculator.Seed), nil
	}
	return nil, fmt.Errorf("unknown calculator kind %q", C.Calculator.Kind)
}
