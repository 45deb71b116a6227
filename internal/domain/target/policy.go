// Where: warmup/internal/domain/target/policy.go
// What: Enablement policy variant parsed from warmup directives.
// Why: Replace shape-sniffing of bool/string/list directives with one type.
package target

// PolicyKind discriminates the enablement policy variants.
type PolicyKind int

const (
	// KindNone warms on no stage. The zero value, and the resolver default.
	KindNone PolicyKind = iota
	// KindAll warms on every stage.
	KindAll
	// KindStages warms only on the listed stages.
	KindStages
)

// Policy decides whether a function participates in warming for a stage.
type Policy struct {
	Kind   PolicyKind
	Stages []string
}

// NoStages returns the policy that never warms.
func NoStages() Policy {
	return Policy{Kind: KindNone}
}

// AllStages returns the policy that warms on every stage.
func AllStages() Policy {
	return Policy{Kind: KindAll}
}

// OnlyStages returns the policy that warms on the named stages.
func OnlyStages(stages ...string) Policy {
	return Policy{Kind: KindStages, Stages: stages}
}

// ParsePolicy maps a raw directive value onto a Policy.
// Accepted shapes: bool, stage name, sequence of stage names. Any other
// shape reports ok=false so callers can apply their own degrade rule.
func ParsePolicy(v any) (Policy, bool) {
	switch typed := v.(type) {
	case bool:
		if typed {
			return AllStages(), true
		}
		return NoStages(), true
	case string:
		return OnlyStages(typed), true
	case []string:
		return OnlyStages(typed...), true
	case []any:
		stages := make([]string, 0, len(typed))
		for _, item := range typed {
			s, ok := item.(string)
			if !ok {
				return Policy{}, false
			}
			stages = append(stages, s)
		}
		return OnlyStages(stages...), true
	}
	return Policy{}, false
}

// Enabled reports whether the policy warms functions on the given stage.
func (p Policy) Enabled(stage string) bool {
	switch p.Kind {
	case KindAll:
		return true
	case KindStages:
		for _, candidate := range p.Stages {
			if candidate == stage {
				return true
			}
		}
	}
	return false
}
