// Package rules holds the rule registry and the evaluation environment
// rules run in. Rules are plain Go functions over the algebra; there is no
// rule text to parse.
package rules

import (
	"sort"

	"github.com/verdictlab/verdict/internal/domain"
)

// EvalFunc evaluates a rule for the given subjects. The returned value is
// whatever the algebra produced: a resolved truth value or scalar, a Stub
// when more input is needed, or Unset when the question does not apply.
type EvalFunc func(env *Env, subjects ...string) domain.Value

type Rule struct {
	Name  string
	Arity int
	Doc   string
	Eval  EvalFunc
}

// Registry maps fact and rule names to their definitions.
type Registry struct {
	facts map[string]domain.FactDef
	rules map[string]Rule
}

func NewRegistry() *Registry {
	return &Registry{
		facts: make(map[string]domain.FactDef),
		rules: make(map[string]Rule),
	}
}

func (r *Registry) DefineFact(def domain.FactDef) {
	r.facts[def.Name] = def
}

func (r *Registry) FactDef(name string) (domain.FactDef, bool) {
	def, ok := r.facts[name]
	return def, ok
}

func (r *Registry) FactDefs() []domain.FactDef {
	out := make([]domain.FactDef, 0, len(r.facts))
	for _, def := range r.facts {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Register(rule Rule) {
	r.rules[rule.Name] = rule
}

func (r *Registry) Rule(name string) (Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

func (r *Registry) Rules() []Rule {
	out := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, rule)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
