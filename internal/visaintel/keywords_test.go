package visaintel

import "testing"

func TestScanDescription_PositiveSignals(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"plain phrase", "We offer visa sponsorship for this role.", "visa sponsorship"},
		{"available form", "Sponsorship is available for the right candidate.", "sponsorship available"},
		{"skilled worker route", "Eligible for the Skilled Worker route.", "skilled worker"},
		{"h1b hyphenated", "H-1B transfers welcome.", "h1b"},
		{"dutch hsm", "We are a recognised sponsor for the Highly Skilled Migrant scheme.", "highly skilled migrant"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			found, explicitNo := ScanDescription(tc.text)
			if explicitNo {
				t.Fatalf("unexpected negative signal for %q", tc.text)
			}
			if !contains(found, tc.want) {
				t.Fatalf("expected %q in %v", tc.want, found)
			}
		})
	}
}

func TestScanDescription_NegativeSignals(t *testing.T) {
	cases := []string{
		"Unfortunately we offer no visa sponsorship.",
		"Candidates without sponsorship requirements only.",
		"We do not sponsor visas at this time.",
		"We are unable to sponsor work permits.",
		"Applicants must be authorized to work in the US.",
		"You need an existing right to work in the UK.",
	}
	for _, text := range cases {
		_, explicitNo := ScanDescription(text)
		if !explicitNo {
			t.Errorf("expected negative signal for %q", text)
		}
	}
}

func TestScanDescription_NegativeOverlapsPositive(t *testing.T) {
	found, explicitNo := ScanDescription("No visa sponsorship offered for this position.")
	if !explicitNo {
		t.Fatal("expected explicit no-sponsorship")
	}
	// The positive pattern still fires on the substring; the flag is
	// what callers must honour.
	if !contains(found, "visa sponsorship") {
		t.Fatalf("expected overlapping positive match, got %v", found)
	}
}

func TestScanDescription_Empty(t *testing.T) {
	found, explicitNo := ScanDescription("")
	if len(found) != 0 || explicitNo {
		t.Fatalf("expected no signals, got %v %v", found, explicitNo)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
