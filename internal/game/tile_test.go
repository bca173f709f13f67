package game

import (
	"errors"
	"testing"
)

func TestKindIsSafe(t *testing.T) {
	cases := []struct {
		kind     Kind
		unmasked bool
		masked   bool
	}{
		{KindReal, true, true},
		{KindFake, false, true},
		{KindEmpty, false, false},
		{KindStart, true, true},
		{KindExit, true, true},
	}

	for _, tc := range cases {
		if got := tc.kind.IsSafe(false); got != tc.unmasked {
			t.Errorf("%s.IsSafe(false) = %v, want %v", tc.kind, got, tc.unmasked)
		}
		if got := tc.kind.IsSafe(true); got != tc.masked {
			t.Errorf("%s.IsSafe(true) = %v, want %v", tc.kind, got, tc.masked)
		}
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindEmpty, KindReal, KindFake, KindStart, KindExit} {
		parsed, err := ParseKind(k.Rune())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", k.Rune(), err)
		}
		if parsed != k {
			t.Errorf("ParseKind(%q) = %s, want %s", k.Rune(), parsed, k)
		}
	}
}

func TestParseKindRejectsUnknownToken(t *testing.T) {
	_, err := ParseKind('Z')
	var invalid *InvalidLevelError
	if !errors.As(err, &invalid) {
		t.Fatalf("ParseKind('Z') error = %v, want InvalidLevelError", err)
	}
	if invalid.Code != CodeBadToken {
		t.Errorf("error code = %s, want %s", invalid.Code, CodeBadToken)
	}
}
