// Where: warmup/internal/domain/target/selector_test.go
// What: Tests for enablement policy parsing and target selection.
// Why: Selection order and directive precedence drive the whole pipeline.
package target

import (
	"reflect"
	"testing"
)

func inventory() []Descriptor {
	return []Descriptor{
		{FunctionName: "alpha", Name: "svc-dev-alpha"},
		{FunctionName: "beta", Name: "svc-dev-beta"},
		{FunctionName: "gamma", Name: "svc-dev-gamma"},
	}
}

func TestSelectDefaultTrueKeepsInventoryOrder(t *testing.T) {
	got := Select(inventory(), "dev", AllStages())
	want := []string{"svc-dev-alpha", "svc-dev-beta", "svc-dev-gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSelectDefaultFalseSelectsNothing(t *testing.T) {
	if got := Select(inventory(), "dev", NoStages()); len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}

func TestSelectStageListOverride(t *testing.T) {
	inv := []Descriptor{
		{FunctionName: "alpha", Name: "a", Warmup: []any{"prod", "staging"}},
	}

	if got := Select(inv, "staging", NoStages()); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("staging should be included, got %v", got)
	}
	// Excluded on a non-listed stage even when the fallback would include it.
	if got := Select(inv, "dev", AllStages()); len(got) != 0 {
		t.Fatalf("dev should be excluded, got %v", got)
	}
}

func TestSelectStageNameDirective(t *testing.T) {
	inv := []Descriptor{{FunctionName: "alpha", Name: "a", Warmup: "prod"}}
	if got := Select(inv, "prod", NoStages()); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("got %v", got)
	}
	if got := Select(inv, "dev", NoStages()); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestSelectFalseDirectiveBeatsFallback(t *testing.T) {
	inv := []Descriptor{{FunctionName: "alpha", Name: "a", Warmup: false}}
	if got := Select(inv, "dev", AllStages()); len(got) != 0 {
		t.Fatalf("explicit false must disable, got %v", got)
	}
}

func TestSelectMalformedDirectiveDisables(t *testing.T) {
	inv := []Descriptor{
		{FunctionName: "alpha", Name: "a", Warmup: 42},
		{FunctionName: "beta", Name: "b", Warmup: []any{"prod", 9}},
	}
	if got := Select(inv, "prod", AllStages()); len(got) != 0 {
		t.Fatalf("malformed directives must disable, got %v", got)
	}
}

func TestParsePolicyShapes(t *testing.T) {
	cases := []struct {
		in   any
		want Policy
		ok   bool
	}{
		{true, AllStages(), true},
		{false, NoStages(), true},
		{"staging", OnlyStages("staging"), true},
		{[]any{"prod", "staging"}, OnlyStages("prod", "staging"), true},
		{[]string{"prod"}, OnlyStages("prod"), true},
		{42, Policy{}, false},
		{map[string]any{}, Policy{}, false},
	}
	for _, tc := range cases {
		got, ok := ParsePolicy(tc.in)
		if ok != tc.ok || !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParsePolicy(%#v) = %#v, %v; want %#v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPolicyEnabled(t *testing.T) {
	if NoStages().Enabled("dev") {
		t.Fatalf("NoStages must never enable")
	}
	if !AllStages().Enabled("anything") {
		t.Fatalf("AllStages must always enable")
	}
	p := OnlyStages("prod")
	if !p.Enabled("prod") || p.Enabled("dev") {
		t.Fatalf("OnlyStages(prod) mismatch")
	}
}
