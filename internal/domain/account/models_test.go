package account

import "testing"

func TestCreateParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  CreateParams
		wantErr bool
	}{
		{"Valid", CreateParams{Name: "Checking", Type: "bank"}, false},
		{"Missing Name", CreateParams{Type: "bank"}, true},
		{"Missing Type", CreateParams{Name: "Checking"}, true},
		{"Invalid Type", CreateParams{Name: "Checking", Type: "crypto"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.params
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateParams_Validate_DefaultsIcon(t *testing.T) {
	p := CreateParams{Name: "Wallet", Type: "cash"}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if p.Icon != DefaultIcon {
		t.Errorf("Icon = %q, want %q", p.Icon, DefaultIcon)
	}

	p = CreateParams{Name: "Wallet", Type: "cash", Icon: "piggy-bank"}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if p.Icon != "piggy-bank" {
		t.Errorf("Icon = %q, supplied icon should be kept", p.Icon)
	}
}

func TestUpdateParams(t *testing.T) {
	if !(UpdateParams{}).IsZero() {
		t.Error("empty patch should be zero")
	}

	badType := "crypto"
	if err := (UpdateParams{Type: &badType}).Validate(); err == nil {
		t.Error("Validate() accepted invalid type")
	}

	goodType := "savings"
	if err := (UpdateParams{Type: &goodType}).Validate(); err != nil {
		t.Errorf("Validate() rejected valid type: %v", err)
	}
}

func TestIsValidType(t *testing.T) {
	for _, typ := range []string{"cash", "bank", "credit", "investment", "savings", "other"} {
		if !IsValidType(typ) {
			t.Errorf("IsValidType(%q) = false, want true", typ)
		}
	}
	if IsValidType("CASH") {
		t.Error("IsValidType should be case-sensitive")
	}
}
