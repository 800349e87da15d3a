package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osterhed/thread-priority/pkg/threadprio"
)

func newGetCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "get [tid]",
		Short: "Show the scheduling state of a thread",
		Long:  "Shows the scheduling policy and priority of a thread. Without a tid the calling thread is inspected.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var state *threadState
			if len(args) == 0 {
				thread := threadprio.Current()
				defer thread.Release()
				s, err := readThreadState(thread.ID())
				if err != nil {
					return err
				}
				state = s
			} else {
				tid, err := strconv.Atoi(args[0])
				if err != nil || tid <= 0 {
					return fmt.Errorf("invalid thread id %q", args[0])
				}
				s, err := readThreadState(threadprio.ThreadID(tid))
				if err != nil {
					return err
				}
				state = s
			}

			if jsonOutput {
				return printJSON(os.Stdout, state)
			}
			state.print(os.Stdout)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON")
	return cmd
}
