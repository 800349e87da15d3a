package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osterhed/thread-priority/pkg/threadprio"
)

func newInfoCmd() *cobra.Command {
	var jsonOutput bool

	type policyInfo struct {
		Policy    string `json:"policy"`
		Realtime  bool   `json:"realtime"`
		NativeMin int    `json:"native_min"`
		NativeMax int    `json:"native_max"`
	}
	type platformInfo struct {
		Platform string       `json:"platform"`
		Policies []policyInfo `json:"policies"`
	}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the platform's native priority ranges",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := platformInfo{Platform: runtime.GOOS}
			for _, pol := range threadprio.Policies() {
				info.Policies = append(info.Policies, policyInfo{
					Policy:    pol.String(),
					Realtime:  pol.Realtime(),
					NativeMin: threadprio.MinPriorityForPolicy(pol),
					NativeMax: threadprio.MaxPriorityForPolicy(pol),
				})
			}

			if jsonOutput {
				return printJSON(os.Stdout, info)
			}

			fmt.Printf("Platform: %s\n\n", info.Platform)
			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "POLICY\tREALTIME\tNATIVE MIN\tNATIVE MAX")
			for _, p := range info.Policies {
				fmt.Fprintf(w, "%s\t%v\t%d\t%d\n", p.Policy, p.Realtime, p.NativeMin, p.NativeMax)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON")
	return cmd
}
