// Where: warmup/internal/domain/target/selector.go
// What: Target selection over the host's function inventory.
// Why: Decide per deployment stage which functions the warmer should ping.
package target

// Descriptor is the read-only view of one host function.
type Descriptor struct {
	// FunctionName is the logical id inside the service definition.
	FunctionName string
	// Name is the deployed function name the warmer invokes.
	Name string
	// Warmup is the raw per-function directive, nil when not declared.
	Warmup any
}

// Select filters the inventory down to the deployed names that should be
// warmed on the given stage. A per-function directive overrides the fallback
// policy; a directive of an unrecognized shape disables that function rather
// than falling back. Inventory order is preserved and nothing is deduplicated.
func Select(inventory []Descriptor, stage string, fallback Policy) []string {
	var names []string
	for _, fn := range inventory {
		policy := fallback
		if fn.Warmup != nil {
			parsed, ok := ParsePolicy(fn.Warmup)
			if !ok {
				parsed = NoStages()
			}
			policy = parsed
		}
		if policy.Enabled(stage) {
			names = append(names, fn.Name)
		}
	}
	return names
}
