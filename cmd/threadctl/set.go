package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osterhed/thread-priority/pkg/procscan"
	"github.com/osterhed/thread-priority/pkg/threadprio"
)

func newSetCmd() *cobra.Command {
	var prioritySpec string
	var policySpec string

	cmd := &cobra.Command{
		Use:   "set <pid>...",
		Short: "Set the scheduling state of every thread of the given processes",
		Long: `Sets the priority (and optionally the policy) of every thread of the
given processes. Without --policy each thread keeps its current policy.
Priorities: min, max, a value between 0 and 99, or os:<n> for a raw native
value.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			priority, err := threadprio.ParsePriority(prioritySpec)
			if err != nil {
				return err
			}
			var policy threadprio.Policy
			havePolicy := policySpec != ""
			if havePolicy {
				if policy, err = threadprio.ParsePolicy(policySpec); err != nil {
					return err
				}
			}

			scan := procscan.New()
			updated, failed := 0, 0
			for _, arg := range args {
				pid, err := strconv.Atoi(arg)
				if err != nil || pid <= 0 {
					return fmt.Errorf("invalid pid %q", arg)
				}

				tids, err := scan.Threads(pid)
				if err != nil {
					slog.Warn("Failed to list threads, falling back to main thread", "pid", pid, "error", err)
					tids = []int{pid}
				}

				for _, tid := range tids {
					id := threadprio.ThreadID(tid)
					pol := policy
					if !havePolicy {
						if pol, err = threadprio.ThreadSchedulePolicy(id); err != nil {
							slog.Error("Failed to read thread policy", "pid", pid, "tid", tid, "error", err)
							failed++
							continue
						}
					}
					if err := threadprio.SetThreadPriorityAndPolicy(id, priority, pol); err != nil {
						slog.Error("Failed to set thread state", "pid", pid, "tid", tid, "error", err)
						failed++
						continue
					}
					updated++
				}
			}

			fmt.Printf("Updated %d threads (%d failed)\n", updated, failed)
			if updated == 0 && failed > 0 {
				return fmt.Errorf("no thread could be updated")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&prioritySpec, "priority", "", "Priority to set (min, max, 0-99 or os:<n>)")
	cmd.Flags().StringVar(&policySpec, "policy", "", "Scheduling policy (other, fifo, round-robin); keeps the current one when omitted")
	_ = cmd.MarkFlagRequired("priority")
	return cmd
}
