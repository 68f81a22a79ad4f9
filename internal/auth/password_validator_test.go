package auth

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// Property: any password built from at least one uppercase letter, at
// least one digit and allowed filler characters, 8 characters or longer,
// passes validation.
func TestValidatePassword_AcceptsPolicyCompliant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		upper := rapid.StringMatching(`[A-Z]{1,3}`).Draw(t, "upper")
		digits := rapid.StringMatching(`[0-9]{1,3}`).Draw(t, "digits")
		filler := rapid.StringMatching(`[a-z!@#$%^&*()\-+=]{6,20}`).Draw(t, "filler")
		password := upper + digits + filler

		v := NewPasswordValidator()
		if errs := v.ValidatePassword(password); len(errs) > 0 {
			t.Fatalf("expected %q to pass validation, got %v", password, errs)
		}
		if !v.IsValidPassword(password) {
			t.Fatalf("IsValidPassword disagrees with ValidatePassword for %q", password)
		}
	})
}

// Property: passwords shorter than the minimum are always rejected with
// the length message, whatever else they contain.
func TestValidatePassword_RejectsShort(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		password := rapid.StringMatching(`[A-Za-z0-9]{0,7}`).Draw(t, "password")

		v := NewPasswordValidator()
		errs := v.ValidatePassword(password)

		found := false
		for _, e := range errs {
			if strings.Contains(e.Message, "at least 8 characters") {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected length error for %q, got %v", password, errs)
		}
	})
}

func TestValidatePassword_RejectsMissingClasses(t *testing.T) {
	v := NewPasswordValidator()

	cases := []struct {
		name     string
		password string
		message  string
	}{
		{"no uppercase", "lowercase1!", "uppercase letter"},
		{"no digit", "Lowercase!!", "at least one number"},
		{"disallowed character", "Password1 ", "not allowed"},
		{"disallowed unicode", "Password1é", "not allowed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := v.ValidatePassword(tc.password)
			found := false
			for _, e := range errs {
				if strings.Contains(e.Message, tc.message) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error containing %q for %q, got %v", tc.message, tc.password, errs)
			}
		})
	}
}

// Property: hashing then verifying round-trips for any valid password,
// and verification fails for a different password.
func TestHashPassword_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		password := rapid.StringMatching(`[A-Z][0-9][a-z!@#$%^&*()\-+=]{6,16}`).Draw(t, "password")
		other := password + "x"

		v := NewPasswordValidator()
		hash, err := v.HashPassword(password)
		if err != nil {
			t.Fatalf("hash failed: %v", err)
		}
		if hash == password {
			t.Fatal("hash should not equal the plaintext password")
		}
		if err := v.VerifyPassword(password, hash); err != nil {
			t.Fatalf("verification of correct password failed: %v", err)
		}
		if err := v.VerifyPassword(other, hash); err == nil {
			t.Fatal("verification of wrong password should fail")
		}
	})
}
