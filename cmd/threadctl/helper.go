package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/osterhed/thread-priority/pkg/profile"
	"github.com/osterhed/thread-priority/pkg/threadprio"
)

// threadState is the printable scheduling state of one thread.
type threadState struct {
	TID      int    `json:"tid"`
	Policy   string `json:"policy"`
	Priority string `json:"priority"`
	Native   int    `json:"native"`
}

func readThreadState(id threadprio.ThreadID) (*threadState, error) {
	policy, params, err := threadprio.SchedulePolicyParam(id)
	if err != nil {
		return nil, err
	}
	priority, err := threadprio.GetThreadPriority(id)
	if err != nil {
		return nil, err
	}
	return &threadState{
		TID:      int(id),
		Policy:   policy.String(),
		Priority: priority.String(),
		Native:   params.SchedPriority,
	}, nil
}

func (s *threadState) print(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "tid\t%d\n", s.TID)
	fmt.Fprintf(tw, "policy\t%s\n", s.Policy)
	fmt.Fprintf(tw, "priority\t%s\n", s.Priority)
	fmt.Fprintf(tw, "native\t%d\n", s.Native)
	_ = tw.Flush()
}

// parseScheduling parses a priority spec and an optional policy name. An
// empty policy means the normal policy.
func parseScheduling(prioritySpec, policySpec string) (threadprio.Priority, threadprio.Policy, error) {
	priority, err := threadprio.ParsePriority(prioritySpec)
	if err != nil {
		return threadprio.Priority{}, 0, err
	}
	if policySpec == "" {
		return priority, threadprio.PolicyOther, nil
	}
	policy, err := threadprio.ParsePolicy(policySpec)
	if err != nil {
		return threadprio.Priority{}, 0, err
	}
	return priority, policy, nil
}

func printRuleResult(w io.Writer, r profile.RuleResult) {
	if len(r.PIDs) == 0 {
		fmt.Fprintf(w, "rule %s: no processes match %q\n", r.Rule, r.Match)
		return
	}
	fmt.Fprintf(w, "rule %s: updated %d threads across pids %v", r.Rule, r.Threads, r.PIDs)
	if r.Failed > 0 {
		fmt.Fprintf(w, " (%d failed)", r.Failed)
	}
	fmt.Fprintln(w)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
