package registration

import "testing"

func TestMeasureStrength(t *testing.T) {
	testCases := []struct {
		password  string
		wantScore int
		wantLabel string
	}{
		{password: "", wantScore: 0, wantLabel: "too short"},
		{password: "a", wantScore: 0, wantLabel: "too short"},
		{password: "ab", wantScore: 0, wantLabel: "weak"},
		{password: "aB1", wantScore: 1, wantLabel: "weak"},
		{password: "Abc123", wantScore: 2, wantLabel: "okay"},
		{password: "Abcd1234", wantScore: 3, wantLabel: "good"},
		{password: "Abc123!x", wantScore: 4, wantLabel: "strong"},
	}

	for _, tc := range testCases {
		got := MeasureStrength(tc.password)
		if got.Score != tc.wantScore || got.Label != tc.wantLabel {
			t.Errorf("MeasureStrength(%q) = %+v, want score %d label %q", tc.password, got, tc.wantScore, tc.wantLabel)
		}
	}
}

func TestStrengthDoesNotAffectValidation(t *testing.T) {
	v := validValues()
	v.Password = "aB3def"
	v.Password2 = v.Password

	if MeasureStrength(v.Password).Score > 2 {
		t.Fatalf("test password unexpectedly strong")
	}

	if errs := Validate(v); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors for a weak but valid password", errs)
	}
}
