/*
 * plot.go, part of molonsurf.
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

/*Package relaxplot draws convergence plots for relaxation runs, in the
form of little functions over gonum's plot. Not needed for running
anything; it exists so a run can be eyeballed without external tools.*/
package relaxplot

import (
	"fmt"
	"image/color"

	surf "github.com/sebastianecheverrir/MolOnSurf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Convergence plots the energy and fmax of a relaxation report against the
//step number, writing <basename>_energy.png and <basename>_fmax.png.
//An empty report is an error.
func Convergence(report []surf.FrameInfo, title, basename string) error {
	if len(report) == 0 {
		return Error{"Empty relaxation report", []string{"Convergence"}, true}
	}
	energies := make(plotter.XYs, len(report))
	fmaxes := make(plotter.XYs, len(report))
	for i, r := range report {
		energies[i].X = float64(r.Step)
		energies[i].Y = r.Energy
		fmaxes[i].X = float64(r.Step)
		fmaxes[i].Y = r.Fmax
	}
	err := linePlot(energies, title, "step", "energy (eV)", basename+"_energy.png", color.RGBA{B: 255, A: 255})
	if err != nil {
		return err
	}
	return linePlot(fmaxes, title, "step", "fmax (eV/A)", basename+"_fmax.png", color.RGBA{R: 255, A: 255})
}

func linePlot(xys plotter.XYs, title, xlabel, ylabel, fname string, col color.Color) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	line, err := plotter.NewLine(xys)
	if err != nil {
		return Error{err.Error(), []string{"linePlot"}, true}
	}
	line.Color = col
	p.Add(plotter.NewGrid(), line)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, fname); err != nil {
		return Error{err.Error(), []string{"linePlot"}, true}
	}
	return nil
}

//Errors

//Error is the concrete error type of the relaxplot package. It fulfills
//the surf.Error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("relaxplot error: %s", err.message)
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
