package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/osterhed/thread-priority/pkg/config"
	"github.com/osterhed/thread-priority/pkg/profile"
)

func newApplyCmd(defaultCfg *config.Config) *cobra.Command {
	var file string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a scheduling profile to running processes",
		Long: `Applies a YAML profile: each rule matches processes by command name and
assigns a priority and policy to every one of their threads.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := profile.Load(file)
			if err != nil {
				return err
			}

			results, err := profile.NewApplier().Apply(prof)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(os.Stdout, results)
			}
			for _, r := range results {
				printRuleResult(os.Stdout, r)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", defaultCfg.ProfileFile, "Profile file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON")
	return cmd
}
