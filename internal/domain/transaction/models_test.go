package transaction

import (
	"testing"
	"time"

	"fintrack/internal/shared/apperr"
)

func validCreateParams() CreateParams {
	return CreateParams{
		Type:        TypeExpense,
		Amount:      42.50,
		Description: "Lunch",
		Category:    "Food",
		Date:        time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateParams)
		wantErr bool
	}{
		{"Valid", func(p *CreateParams) {}, false},
		{"Valid Income", func(p *CreateParams) { p.Type = TypeIncome }, false},
		{"Missing Type", func(p *CreateParams) { p.Type = "" }, true},
		{"Missing Description", func(p *CreateParams) { p.Description = "" }, true},
		{"Missing Category", func(p *CreateParams) { p.Category = "" }, true},
		{"Missing Date", func(p *CreateParams) { p.Date = time.Time{} }, true},
		{"Zero Amount", func(p *CreateParams) { p.Amount = 0 }, true},
		{"Negative Amount", func(p *CreateParams) { p.Amount = -5 }, true},
		{"Invalid Type", func(p *CreateParams) { p.Type = "transfer" }, true},
		{"Description Too Long", func(p *CreateParams) {
			d := make([]byte, MaxDescriptionLength+1)
			for i := range d {
				d[i] = 'x'
			}
			p.Description = string(d)
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validCreateParams()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("Validate() kind = %q, want validation", apperr.KindOf(err))
			}
		})
	}
}

func TestUpdateParams_Validate(t *testing.T) {
	category := "Groceries"
	badType := "transfer"
	goodType := TypeIncome
	negative := -1.0
	positive := 10.0

	tests := []struct {
		name    string
		params  UpdateParams
		wantErr error
	}{
		{"Empty Patch", UpdateParams{}, ErrNoFields},
		{"Category Only", UpdateParams{Category: &category}, nil},
		{"Detach Only", UpdateParams{Detach: true}, nil},
		{"Valid Type", UpdateParams{Type: &goodType}, nil},
		{"Invalid Type", UpdateParams{Type: &badType}, errInvalidType},
		{"Negative Amount", UpdateParams{Amount: &negative}, errNonPositive},
		{"Positive Amount", UpdateParams{Amount: &positive}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.params.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateParams_IsZero(t *testing.T) {
	if !(UpdateParams{}).IsZero() {
		t.Error("empty patch should be zero")
	}
	amount := 1.0
	if (UpdateParams{Amount: &amount}).IsZero() {
		t.Error("patch with amount should not be zero")
	}
	if (UpdateParams{Detach: true}).IsZero() {
		t.Error("detach-only patch should not be zero")
	}
}
