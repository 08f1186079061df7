package ledger

import (
	"fmt"
	"strings"
)

// Policy selects which duration lines of an entry count towards the aggregate.
type Policy string

const (
	PolicyAll   Policy = "all"
	PolicyFirst Policy = "first"
)

func ParsePolicy(value string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case "", PolicyAll:
		return PolicyAll, nil
	case PolicyFirst:
		return PolicyFirst, nil
	default:
		return "", fmt.Errorf("unsupported aggregate policy %q (supported: all, first)", value)
	}
}

// TransitionFunc observes scanner state changes; line is the 0-based index that caused it.
type TransitionFunc func(line int, from, to State)

type Processor struct {
	layout       Layout
	policy       Policy
	onTransition TransitionFunc
}

type Option func(*Processor)

func WithPolicy(policy Policy) Option {
	return func(p *Processor) {
		p.policy = policy
	}
}

func WithTransitionHook(fn TransitionFunc) Option {
	return func(p *Processor) {
		p.onTransition = fn
	}
}

func NewProcessor(layout Layout, opts ...Option) *Processor {
	p := &Processor{layout: layout, policy: PolicyAll}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Processor) Policy() Policy {
	return p.policy
}
