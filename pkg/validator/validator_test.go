package validator

import "testing"

func TestValidateRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		username  string
		password  string
		wantField string
	}{
		{"valid", "alice", "secret1", ""},
		{"valid with dash and underscore", "a_b-c", "secret1", ""},
		{"missing username", "", "secret1", "username"},
		{"username too short", "ab", "secret1", "username"},
		{"username bad chars", "alice!", "secret1", "username"},
		{"missing password", "alice", "", "password"},
		{"password too short", "alice", "12345", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRegister(tt.username, tt.password)
			if tt.wantField == "" {
				if errs.HasErrors() {
					t.Fatalf("unexpected errors: %v", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateJob(t *testing.T) {
	t.Parallel()

	if errs := ValidateJob("Backend Engineer", "Build APIs", "Go"); errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	errs := ValidateJob("", "  ", "Go")
	if _, ok := errs["title"]; !ok {
		t.Fatalf("expected title error, got %v", errs)
	}
	if _, ok := errs["description"]; !ok {
		t.Fatalf("expected description error, got %v", errs)
	}
}

func TestValidateProjectAndBid(t *testing.T) {
	t.Parallel()

	if errs := ValidateProject("Site", "Build it", 100); errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if errs := ValidateProject("Site", "Build it", 0); !errs.HasErrors() {
		t.Fatal("expected budget error for zero budget")
	}
	if errs := ValidateBid(-5); !errs.HasErrors() {
		t.Fatal("expected amount error for negative bid")
	}
}

func TestValidateReview(t *testing.T) {
	t.Parallel()

	if errs := ValidateReview("1984", "Orwell", 5, "great"); errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for _, rating := range []int{0, 6} {
		errs := ValidateReview("1984", "Orwell", rating, "great")
		if _, ok := errs["rating"]; !ok {
			t.Fatalf("expected rating error for %d, got %v", rating, errs)
		}
	}
}

func TestMessageDeterministic(t *testing.T) {
	t.Parallel()

	errs := make(ValidationErrors)
	errs.Add("username", "Username is required")
	errs.Add("password", "Password is required")

	want := "password: Password is required; username: Username is required"
	if got := errs.Message(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
