package threadprio

import "fmt"

// Policy selects the scheduling class a thread runs under.
type Policy int

const (
	// PolicyOther is the standard time-sharing policy.
	PolicyOther Policy = iota
	// PolicyFifo is the realtime first-in, first-out policy.
	PolicyFifo
	// PolicyRoundRobin is the realtime round-robin policy.
	PolicyRoundRobin
)

// Realtime reports whether the policy belongs to the realtime class.
func (p Policy) Realtime() bool {
	return p == PolicyFifo || p == PolicyRoundRobin
}

func (p Policy) String() string {
	switch p {
	case PolicyOther:
		return "other"
	case PolicyFifo:
		return "fifo"
	case PolicyRoundRobin:
		return "round-robin"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Policies lists every policy the portable model knows about.
func Policies() []Policy {
	return []Policy{PolicyOther, PolicyFifo, PolicyRoundRobin}
}

// ParsePolicy parses a policy name as printed by Policy.String.
// "normal" and "rr" are accepted as aliases.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "other", "normal":
		return PolicyOther, nil
	case "fifo":
		return PolicyFifo, nil
	case "round-robin", "roundrobin", "rr":
		return PolicyRoundRobin, nil
	default:
		return 0, fmt.Errorf("unknown scheduling policy %q: expected other, fifo or round-robin", s)
	}
}
