package league

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    Code
		wantErr bool
	}{
		{name: "code", raw: "euroleague", want: Euroleague},
		{name: "upper case code", raw: " EuroCup ", want: Eurocup},
		{name: "euroleague slug", raw: "international-euroleague", want: Euroleague},
		{name: "other international slug", raw: "international-eurocup", want: Eurocup},
		{name: "unknown slug family", raw: "international-anything", want: Eurocup},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "unknown", raw: "nba", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected code: got=%s want=%s", got, tc.want)
			}
		})
	}
}

func TestLeagueValidate(t *testing.T) {
	t.Parallel()

	valid := League{Code: Euroleague, Name: "Euroleague", Slug: "international-euroleague"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := valid
	invalid.Code = "nba"
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for unknown code")
	}
}
