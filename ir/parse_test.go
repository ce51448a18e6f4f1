package ir

import (
	"strings"
	"testing"
)

// =============================================================================
// Round-Trip Tests
// =============================================================================

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			"flat graph",
			"graph(%0 : Tensor(nonzero), %1 : Tensor):\n" +
				"  %2 : Tensor = AutogradAdd(%0, %1)\n" +
				"  return (%2)\n",
		},
		{
			"no inputs",
			"graph():\n" +
				"  %0 : Tensor(zero) = AutogradZero()\n" +
				"  return (%0)\n",
		},
		{
			"constant payload",
			"graph(%0 : Tensor, %1 : Tensor):\n" +
				"  %2 : int = Constant[value=1]()\n" +
				"  %3 : Tensor = Add(%0, %1, %2)\n" +
				"  return (%3)\n",
		},
		{
			"nested block",
			"graph(%0 : Tensor[], %1 : bool, %2 : float):\n" +
				"  %3 : bool = AutogradAnyNonZero(%0)\n" +
				"  %4 : Tensor, %5 : Tensor = If(%3) {\n" +
				"    %6 : Tensor = Cat(%0)\n" +
				"    %7 : Tensor = Neg(%6)\n" +
				"    -> (%6, %7)\n" +
				"  }\n" +
				"  return (%4, %5)\n",
		},
		{
			"no outputs",
			"graph(%0 : Tensor):\n" +
				"  Profile()\n" +
				"  %1 : Tensor = Profile(%0)\n" +
				"  return (%1)\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := g.String(); got != tt.text {
				t.Errorf("round trip mismatch\ngot:\n%swant:\n%s", got, tt.text)
			}
		})
	}
}

func TestParseConstantPayload(t *testing.T) {
	g, err := Parse("graph():\n  %0 : int = Constant[value=42]()\n  return (%0)\n")
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Block().First().Int(); got != 42 {
		t.Errorf("constant payload = %d, want 42", got)
	}
}

func TestParseIgnoresCommentsAndBlanks(t *testing.T) {
	g, err := Parse("# a gradient graph\n\ngraph(%0 : Tensor):\n\n  # identity\n  return (%0)\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Inputs()) != 1 || len(g.Outputs()) != 1 {
		t.Errorf("unexpected graph shape: %d inputs, %d outputs", len(g.Inputs()), len(g.Outputs()))
	}
}

// =============================================================================
// Error Tests
// =============================================================================

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr string
	}{
		{
			"missing header",
			"  %0 : Tensor = AutogradZero()\n",
			"expected graph header",
		},
		{
			"unknown type",
			"graph(%0 : Complex):\n  return (%0)\n",
			"unknown type",
		},
		{
			"undefined value",
			"graph(%0 : Tensor):\n  %1 : Tensor = Neg(%9)\n  return (%1)\n",
			"undefined value %9",
		},
		{
			"duplicate value",
			"graph(%0 : Tensor):\n  %0 : Tensor = Neg(%0)\n  return (%0)\n",
			"duplicate value %0",
		},
		{
			"missing return",
			"graph(%0 : Tensor):\n  %1 : Tensor = Neg(%0)\n",
			"missing return",
		},
		{
			"content after return",
			"graph(%0 : Tensor):\n  return (%0)\n  %1 : Tensor = Neg(%0)\n",
			"content after return",
		},
		{
			"unmatched close",
			"graph(%0 : Tensor):\n  }\n",
			"unmatched }",
		},
		{
			"arrow at top level",
			"graph(%0 : Tensor):\n  -> (%0)\n",
			"-> outside nested block",
		},
		{
			"block output count mismatch",
			"graph(%0 : bool, %1 : Tensor):\n  %2 : Tensor = If(%0) {\n    -> ()\n  }\n  return (%2)\n",
			"block yields 0 values, node declares 1",
		},
		{
			"bad attribute",
			"graph():\n  %0 : int = Constant[scale=1]()\n  return (%0)\n",
			"unsupported attribute",
		},
		{
			"malformed node",
			"graph(%0 : Tensor):\n  %1 : Tensor = Neg\n  return (%1)\n",
			"malformed node",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if err == nil {
				t.Fatalf("Parse succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
