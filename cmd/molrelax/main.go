/*
 * main.go, part of molonsurf.
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

//molrelax relaxes a molecule-on-surface model from a YAML run file:
//
//	molrelax relax --config run.yaml
//
//See the Config type for the run file contents. A SIGINT stops the run
//cleanly between steps, keeping the trajectory written so far.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	surf "github.com/sebastianecheverrir/MolOnSurf"
	"github.com/sebastianecheverrir/MolOnSurf/min"
	"github.com/sebastianecheverrir/MolOnSurf/relaxplot"
	"github.com/sebastianecheverrir/MolOnSurf/traj/stf"
)

func main() {
	root := &cobra.Command{
		Use:           "molrelax",
		Short:         "Structure relaxation for molecule-on-surface models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(relaxCommand())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "molrelax:", err)
		os.Exit(1)
	}
}

func relaxCommand() *cobra.Command {
	var configFile string
	var fmax float64
	var maxSteps int
	var trajFile string
	var plotBase string
	var finalXYZ string
	cmd := &cobra.Command{
		Use:   "relax",
		Short: "Relax a configuration to a local energy minimum",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := ReadConfig(configFile)
			if err != nil {
				return err
			}
			//flags beat the run file
			if cmd.Flags().Changed("fmax") {
				conf.Relaxation.Fmax = &fmax
			}
			if cmd.Flags().Changed("steps") {
				conf.Relaxation.MaxSteps = &maxSteps
			}
			if cmd.Flags().Changed("traj") {
				conf.Relaxation.Trajectory = trajFile
			}
			if cmd.Flags().Changed("plot") {
				conf.Relaxation.Plot = plotBase
			}
			if cmd.Flags().Changed("out") {
				conf.Relaxation.FinalXYZ = finalXYZ
			}
			if err := conf.Validate(); err != nil {
				return err
			}
			return runRelaxation(conf)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "run.yaml", "YAML run file")
	cmd.Flags().Float64Var(&fmax, "fmax", 0, "convergence threshold on the largest per-atom force (eV/A)")
	cmd.Flags().IntVar(&maxSteps, "steps", 0, "step budget")
	cmd.Flags().StringVar(&trajFile, "traj", "", "trajectory output file (.stf)")
	cmd.Flags().StringVar(&plotBase, "plot", "", "base name for convergence plots")
	cmd.Flags().StringVar(&finalXYZ, "out", "", "XYZ file for the final configuration")
	return cmd
}

func runRelaxation(conf *Config) error {
	system, err := conf.BuildSystem()
	if err != nil {
		return err
	}
	calculator, err := conf.BuildCalculator()
	if err != nil {
		return err
	}
	M, err := min.New(system, calculator, *conf.Relaxation.Fmax, *conf.Relaxation.MaxSteps)
	if err != nil {
		return err
	}
	if conf.Relaxation.MaxStep > 0 {
		M.SetMaxStep(conf.Relaxation.MaxStep)
	}
	M.SetLogger(log.New(os.Stdout, "", 0))
	var w *stf.StfW
	if conf.Relaxation.Trajectory != "" {
		w, err = stf.NewWriter(conf.Relaxation.Trajectory, system.Len(), map[string]string{"potential": conf.Calculator.Kind})
		if err != nil {
			return err
		}
		defer w.Close()
		if err := M.SetRecorder(w); err != nil {
			return err
		}
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	status, runErr := M.Run(ctx)
	fmt.Printf("relaxation finished: %v after %d steps\n", status, M.NSteps())
	if conf.Relaxation.FinalXYZ != "" && status != min.Failed {
		if err := surf.XYZFileWrite(conf.Relaxation.FinalXYZ, system); err != nil {
			return err
		}
	}
	if conf.Relaxation.Plot != "" && len(M.Report()) > 0 {
		if err := relaxplot.Convergence(M.Report(), "relaxation", conf.Relaxation.Plot); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}
	return nil
}
