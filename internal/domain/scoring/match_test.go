package scoring

import "testing"

func TestLooseMatch(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"payment", "payment processing", true},
		{"payment processing", "payment", true},
		{"SQL", "sql", true},
		{"Java", "JavaScript", true}, // known false positive, kept for score stability
		{"go", "golang", true},
		{"react", "vue", false},
		{"", "sql", false},
		{"sql", "", false},
		{"  sql  ", "advanced SQL", true},
	}

	for _, tc := range cases {
		if got := looseMatch(tc.a, tc.b); got != tc.want {
			t.Fatalf("looseMatch(%q, %q) = %v, expected %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMatchAgainst(t *testing.T) {
	pct, matched := matchAgainst(nil, []string{"sql"})
	if pct != 0 || matched != nil {
		t.Fatalf("empty user set should be 0/nil, got %d/%v", pct, matched)
	}

	pct, matched = matchAgainst([]string{"sql", "python", "rust"}, []string{"advanced sql", "python"})
	if pct != 67 {
		t.Fatalf("expected round(200/3)=67, got %d", pct)
	}
	if len(matched) != 2 || matched[0] != "sql" || matched[1] != "python" {
		t.Fatalf("expected matched [sql python] in user order, got %v", matched)
	}

	pct, _ = matchAgainst([]string{"sql"}, nil)
	if pct != 0 {
		t.Fatalf("no job tags should be 0%%, got %d", pct)
	}
}

func TestClampScore(t *testing.T) {
	if clampScore(-3) != 0 || clampScore(104) != 100 || clampScore(55) != 55 {
		t.Fatal("clamp bounds wrong")
	}
}
