// Package profile applies declarative scheduling profiles: YAML rules that
// match processes by command name and assign each a priority and policy.
package profile

import (
	"fmt"
	"os"
	"sort"

	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/osterhed/thread-priority/pkg/procscan"
	"github.com/osterhed/thread-priority/pkg/threadprio"
)

// Rule assigns a scheduling state to every process whose command name
// matches. Priority uses the syntax of threadprio.ParsePriority;
// an empty policy means the normal policy.
type Rule struct {
	Name     string `yaml:"name"`
	Match    string `yaml:"match"`
	Priority string `yaml:"priority"`
	Policy   string `yaml:"policy"`
}

// Profile is an ordered list of rules. Later rules win when a process
// matches more than one.
type Profile struct {
	Rules []Rule `yaml:"rules"`
}

// Parse decodes a profile and validates every rule.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks that every rule matches something and resolves to a valid
// priority and policy.
func (p *Profile) Validate() error {
	if len(p.Rules) == 0 {
		return fmt.Errorf("profile contains no rules")
	}
	for i, rule := range p.Rules {
		name := rule.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		if rule.Match == "" {
			return fmt.Errorf("rule %s: match must not be empty", name)
		}
		if _, _, err := rule.resolve(); err != nil {
			return fmt.Errorf("rule %s: %w", name, err)
		}
	}
	return nil
}

func (r Rule) resolve() (threadprio.Priority, threadprio.Policy, error) {
	priority, err := threadprio.ParsePriority(r.Priority)
	if err != nil {
		return threadprio.Priority{}, 0, err
	}
	if r.Policy == "" {
		return priority, threadprio.PolicyOther, nil
	}
	policy, err := threadprio.ParsePolicy(r.Policy)
	if err != nil {
		return threadprio.Priority{}, 0, err
	}
	return priority, policy, nil
}

// setter applies a scheduling state to a single thread.
type setter func(tid int, priority threadprio.Priority, policy threadprio.Policy) error

// RuleResult reports what applying one rule did.
type RuleResult struct {
	Rule    string `json:"rule"`
	Match   string `json:"match"`
	PIDs    []int  `json:"pids"`
	Threads int    `json:"threads"`
	Failed  int    `json:"failed"`
}

// Applier resolves rules against running processes and applies them to
// every thread of every match.
type Applier struct {
	scan procscan.Scanner
	set  setter
}

// NewApplier returns an Applier backed by /proc and the native backend.
func NewApplier() *Applier {
	return &Applier{
		scan: procscan.New(),
		set:  setThreadState,
	}
}

func setThreadState(tid int, priority threadprio.Priority, policy threadprio.Policy) error {
	return threadprio.SetThreadPriorityAndPolicy(threadprio.ThreadID(tid), priority, policy)
}

// Apply walks the profile's rules in order. Per-thread failures are logged
// and counted but do not stop the run; other threads still get updated.
func (a *Applier) Apply(p *Profile) ([]RuleResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	results := make([]RuleResult, 0, len(p.Rules))
	for _, rule := range p.Rules {
		priority, policy, err := rule.resolve()
		if err != nil {
			// Validate caught this already.
			return nil, err
		}

		pids, err := a.scan.FindByComm(rule.Match)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.Name, err)
		}
		if len(pids) == 0 {
			slog.Warn("No matching processes", "rule", rule.Name, "match", rule.Match)
		}

		res := RuleResult{Rule: rule.Name, Match: rule.Match}
		for _, pid := range pids {
			tids, err := a.scan.Threads(pid)
			if err != nil {
				slog.Warn("Failed to list threads, falling back to main thread", "pid", pid, "error", err)
				tids = []int{pid}
			}
			res.PIDs = append(res.PIDs, pid)
			for _, tid := range tids {
				if err := a.set(tid, priority, policy); err != nil {
					slog.Error("Failed to set thread state", "rule", rule.Name, "pid", pid, "tid", tid, "error", err)
					res.Failed++
					continue
				}
				res.Threads++
			}
		}
		sort.Ints(res.PIDs)
		slog.Info("Applied rule", "rule", rule.Name, "priority", priority.String(), "policy", policy.String(), "pids", res.PIDs, "threads", res.Threads, "failed", res.Failed)
		results = append(results, res)
	}
	return results, nil
}
