/*
 * min.go, part of molonsurf.
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

package min

import (
	"context"
	"fmt"
	"log"
	"math"

	surf "github.com/sebastianecheverrir/MolOnSurf"
	v3 "github.com/sebastianecheverrir/MolOnSurf/v3"
)

//Status is the terminal state of a relaxation run. Every run ends in
//exactly one of these.
type Status int

const (
	//NotRun means Run has not been called yet.
	NotRun Status = iota
	//Converged: fmax went at or below the requested threshold.
	Converged
	//StepLimitReached: the step budget ran out before convergence.
	//This is a normal, reportable outcome, not an error.
	StepLimitReached
	//Failed: the calculator returned non-finite results, or the proposed
	//displacement was non-finite. The trajectory up to the last good step
	//remains valid.
	Failed
	//Cancelled: the context was cancelled between steps. The trajectory
	//up to the last completed step remains valid.
	Cancelled
)

func (s Status) String() string {
	switch s {
	case NotRun:
		return "NotRun"
	case Converged:
		return "Converged"
	case StepLimitReached:
		return "StepLimitReached"
	case Failed:
		return "Failed"
	case Cancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

//The default clamp on the longest per-atom displacement of one step, in A.
//Change it per-minimizer with SetMaxStep.
const DefaultMaxStep = 0.2

//The default initial curvature (the diagonal of the initial Hessian
//approximation), in eV/A^2. Change it per-minimizer with SetCurvature.
const DefaultCurvature = 70.0

//BFGS relaxes one configuration with a quasi-Newton minimizer. Build it
//with New, adjust it with the Set* methods, and call Run once. The
//configuration is exclusively owned by the minimizer between New and the
//end of Run.
type BFGS struct {
	conf *surf.Configuration
	calc surf.Calculator
	rec  surf.TrajW

	fmaxTol  float64
	maxSteps int
	maxStep  float64
	alpha    float64
	logger   *log.Logger

	status Status
	nsteps int
	report []surf.FrameInfo
	mem    *hessian
}

//New returns a minimizer for the given configuration and calculator.
//fmaxTol is the convergence threshold on the largest per-atom force norm,
//in eV/A; a threshold of 0 is legal and means "run until the step limit".
//maxSteps is the step budget; 0 only evaluates the starting configuration.
//Both are required: there are no default convergence settings. New returns
//an error if the configuration is corrupted.
func New(conf *surf.Configuration, calc surf.Calculator, fmaxTol float64, maxSteps int) (*BFGS, error) {
	if conf == nil || calc == nil {
		return nil, Error{BadSettings + ": nil configuration or calculator", []string{"New"}, true}
	}
	if err := conf.Corrupted(); err != nil {
		return nil, errDecorate(err, "min.New")
	}
	if fmaxTol < 0 || math.IsNaN(fmaxTol) {
		return nil, Error{fmt.Sprintf("%s: fmax threshold %v", BadSettings, fmaxTol), []string{"New"}, true}
	}
	if maxSteps < 0 {
		return nil, Error{fmt.Sprintf("%s: negative step budget %d", BadSettings, maxSteps), []string{"New"}, true}
	}
	M := new(BFGS)
	M.conf = conf
	M.calc = calc
	M.fmaxTol = fmaxTol
	M.maxSteps = maxSteps
	M.maxStep = DefaultMaxStep
	M.alpha = DefaultCurvature
	return M, nil
}

//BFGS methods

//SetRecorder attaches a trajectory recorder. Every accepted configuration,
//the starting one included, is appended to it.
func (M *BFGS) SetRecorder(rec surf.TrajW) error {
	if rec != nil && rec.Len() != M.conf.Len() {
		return Error{fmt.Sprintf("Recorder wants %d atoms per frame, configuration has %d", rec.Len(), M.conf.Len()), []string{"SetRecorder"}, true}
	}
	M.rec = rec
	return nil
}

//SetMaxStep sets the clamp on the longest per-atom displacement of one
//step, in A.
func (M *BFGS) SetMaxStep(s float64) {
	M.maxStep = s
}

//SetCurvature sets the initial curvature of the Hessian approximation,
//in eV/A^2.
func (M *BFGS) SetCurvature(alpha float64) {
	M.alpha = alpha
}

//SetLogger makes the minimizer print one diagnostic line per step to the
//given logger. A nil logger (the default) keeps the run silent.
func (M *BFGS) SetLogger(l *log.Logger) {
	M.logger = l
}

//Status returns the terminal status of the run, or NotRun.
func (M *BFGS) Status() Status {
	return M.status
}

//NSteps returns the number of completed (accepted) displacement steps.
func (M *BFGS) NSteps() int {
	return M.nsteps
}

//Report returns the per-step record of the run: step index, energy and
//fmax for every accepted configuration, in order.
func (M *BFGS) Report() []surf.FrameInfo {
	r := make([]surf.FrameInfo, len(M.report))
	copy(r, M.report)
	return r
}

//Run drives the relaxation to a terminal state and returns it. Non-nil
//errors accompany only the Failed and Cancelled states; Converged and
//StepLimitReached return a nil error. The ctx is checked once at the top
//of each iteration, so a long run can be aborted between steps; a nil ctx
//is accepted and means no cancellation. Run can only be called once.
func (M *BFGS) Run(ctx context.Context) (Status, error) {
	if M.status != NotRun {
		return M.status, Error{"Run called twice on the same minimizer", []string{"Run"}, true}
	}
	M.mem = newHessian(M.conf.Len()*3, M.alpha)
	for {
		if ctx != nil {
			select {
			case <-ctx.Done():
				M.status = Cancelled
				return M.status, Error{"Relaxation cancelled: " + ctx.Err().Error(), []string{"Run"}, false}
			default:
			}
		}
		energy, forces, err := M.calc.Calculate(M.conf)
		if err != nil {
			M.status = Failed
			return M.status, Error{CalculatorFailure + ": " + err.Error(), []string{"Run"}, true}
		}
		if forces == nil || forces.NVecs() != M.conf.Len() {
			M.status = Failed
			return M.status, Error{CalculatorFailure + ": wrong or missing forces", []string{"Run"}, true}
		}
		if math.IsNaN(energy) || math.IsInf(energy, 0) || !v3.IsFinite(forces) {
			M.status = Failed
			return M.status, Error{CalculatorFailure + ": " + NonFiniteResult, []string{"Run"}, true}
		}
		M.conf.ProjectForces(forces)
		fmax := forces.MaxVecNorm()
		info := surf.FrameInfo{Step: M.nsteps, Energy: energy, Fmax: fmax}
		if err := M.record(&info); err != nil {
			M.status = Failed
			return M.status, err
		}
		if M.logger != nil {
			M.logger.Printf("step %4d  energy %14.6f  fmax %12.6f", info.Step, info.Energy, info.Fmax)
		}
		if fmax <= M.fmaxTol {
			M.status = Converged
			return M.status, nil
		}
		if M.nsteps >= M.maxSteps {
			M.status = StepLimitReached
			return M.status, nil
		}
		x := coordsToVec(M.conf.Coords)
		g := coordsToVec(forces)
		g.ScaleVec(-1, g) //the gradient is minus the force
		disp := M.mem.step(x, g, M.maxStep)
		if !v3.IsFinite(disp) {
			M.status = Failed
			return M.status, Error{NonFiniteDisplacement, []string{"Run"}, true}
		}
		M.conf.ProjectDisplacement(disp)
		M.conf.Coords.Add(M.conf.Coords.Dense, disp.Dense)
		M.nsteps++
	}
}

func (M *BFGS) record(info *surf.FrameInfo) error {
	M.report = append(M.report, *info)
	if M.rec == nil {
		return nil
	}
	if err := M.rec.WNext(M.conf.Coords, info); err != nil {
		return Error{"Can't record frame: " + err.Error(), []string{"record"}, true}
	}
	return nil
}

//Relax is the thin driver over BFGS: it builds a minimizer for conf and
//calc with the given convergence settings, attaches the recorder (which
//may be nil), runs to a terminal state and returns the status, the
//per-step report and the error, if any.
func Relax(ctx context.Context, conf *surf.Configuration, calc surf.Calculator, rec surf.TrajW, fmaxTol float64, maxSteps int) (Status, []surf.FrameInfo, error) {
	M, err := New(conf, calc, fmaxTol, maxSteps)
	if err != nil {
		return NotRun, nil, err
	}
	if err := M.SetRecorder(rec); err != nil {
		return NotRun, nil, err
	}
	status, err := M.Run(ctx)
	return status, M.Report(), err
}

//Errors

//Error is the concrete error type of the min package. It fulfills the
//surf.Error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("min error: %s", err.message)
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

//errDecorate asserts that err implements surf.Error and decorates it with
//the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(surf.Error)
	err2.Decorate(caller)
	return err2
}

//Messages for the errors the min package produces. CalculatorFailure and
//NonFiniteDisplacement mark the two ways a run ends in the Failed state;
//they are kept distinct for diagnostics.
const (
	BadSettings           = "Invalid minimizer settings"
	CalculatorFailure     = "Calculator failure"
	NonFiniteResult       = "non-finite energy or forces"
	NonFiniteDisplacement = "Proposed displacement is not finite"
)
