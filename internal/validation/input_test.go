package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"contact@techcorp.com", false},
		{"  Hello@GlobalMarketing.com ", false},
		{"founders+news@startup-xyz.io", false},
		{"", true},
		{"no-at-sign.com", true},
		{"two@@signs.com", true},
		{"user@nodot", true},
		{"bad char@domain.com", true},
		{"user@domain.c", true},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTags(t *testing.T) {
	if err := ValidateTags([]string{"branding", "design"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateTags([]string{"SEO", "seo"}); err == nil {
		t.Error("expected duplicate tag error")
	}
	if err := ValidateTags([]string{" "}); err == nil {
		t.Error("expected empty tag error")
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(0); err != nil {
		t.Errorf("zero amount must be valid: %v", err)
	}
	if err := ValidateAmount(-5); err == nil {
		t.Error("expected negative amount error")
	}
	if err := ValidateAmount(MaxAmount + 1); err == nil {
		t.Error("expected too large amount error")
	}
}

func TestValidateProposalText(t *testing.T) {
	long := make([]rune, MaxProposalTitleLength+1)
	for i := range long {
		long[i] = 'я'
	}
	if err := ValidateProposalText(string(long), "d", ""); err == nil {
		t.Error("expected title length error")
	}
	if err := ValidateProposalText("Brand", "Logo and guidelines", "notes"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
