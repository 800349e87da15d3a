package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/osterhed/thread-priority/pkg/config"
	"github.com/osterhed/thread-priority/pkg/schedbench"
)

func newBenchCmd(defaultCfg *config.Config) *cobra.Command {
	var verbose bool
	var quiet bool
	var rounds int
	var iterations int
	var prioritySpec string
	var policySpec string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure scheduler wakeup latency at a given priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			priority, policy, err := parseScheduling(prioritySpec, policySpec)
			if err != nil {
				return err
			}

			var onProgress func(int, int)
			if verbose {
				onProgress = func(round, total int) {
					fmt.Fprintf(os.Stderr, "\rMeasuring latency: Round %d/%d", round, total)
					if round == total {
						fmt.Fprintln(os.Stderr)
					}
				}
				fmt.Fprintf(os.Stderr, "Starting measurement (Priority: %s, Policy: %s, Rounds: %d, Iterations: %d)...\n",
					priority, policy, rounds, iterations)
			}

			var s *spinner.Spinner
			if !verbose && !quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
				s.Suffix = fmt.Sprintf(" Measuring wakeup latency (Priority: %s, Policy: %s)...", priority, policy)
				s.Start()
			}

			res, err := schedbench.New().Run(priority, policy, rounds, iterations, onProgress)

			if s != nil {
				s.Stop()
			}

			if err != nil {
				return err
			}
			if verbose {
				fmt.Fprintln(os.Stderr, "Done.")
			}

			return printJSON(os.Stdout, res)
		},
	}
	cmd.Flags().StringVar(&prioritySpec, "priority", "50", "Priority to measure at (min, max, 0-99 or os:<n>)")
	cmd.Flags().StringVar(&policySpec, "policy", "other", "Scheduling policy (other, fifo, round-robin)")
	cmd.Flags().IntVar(&rounds, "rounds", defaultCfg.BenchRounds, "Number of rounds")
	cmd.Flags().IntVar(&iterations, "iterations", defaultCfg.BenchIterations, "Handoffs per round")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show progress during measurement")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}
