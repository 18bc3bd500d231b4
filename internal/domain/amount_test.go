package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantValue     string
		wantMalformed bool
	}{
		{"bare number", `19.9`, "19.9", false},
		{"quoted number", `"1200.00"`, "1200", false},
		{"integer", `100`, "100", false},
		{"negative", `-5`, "-5", false},
		{"garbage string", `"abc"`, "0", true},
		{"empty string", `""`, "0", true},
		{"null", `null`, "0", true},
		{"boolean", `true`, "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tt.input), &a); err != nil {
				t.Fatalf("Expected lenient decode, got error: %v", err)
			}
			if !a.Decimal.Equal(decimal.RequireFromString(tt.wantValue)) {
				t.Errorf("Expected value %s, got %s", tt.wantValue, a.String())
			}
			if a.Malformed != tt.wantMalformed {
				t.Errorf("Expected malformed=%v, got %v", tt.wantMalformed, a.Malformed)
			}
		})
	}
}

func TestAmount_MarshalJSON_BareNumber(t *testing.T) {
	data, err := json.Marshal(struct {
		Value Amount `json:"value"`
	}{Value: MustAmount("49.90")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != `{"value":49.9}` {
		t.Errorf("Expected bare number, got %s", data)
	}
}

func TestAmount_IsPositive(t *testing.T) {
	if !MustAmount("0.01").IsPositive() {
		t.Error("Expected 0.01 to be positive")
	}
	if MustAmount("0").IsPositive() {
		t.Error("Expected 0 not to be positive")
	}
	if AmountFromString("x").IsPositive() {
		t.Error("Expected malformed amount not to be positive")
	}
}

func TestAmountInsideRecordDoesNotFailDecode(t *testing.T) {
	var rec RecurringExpense
	err := json.Unmarshal([]byte(`{"id":7,"name":"Gym","value":"n/a","frequency":"monthly","isActive":true}`), &rec)
	if err != nil {
		t.Fatalf("Expected record to decode, got %v", err)
	}
	if !rec.Value.Malformed {
		t.Error("Expected value to be flagged malformed")
	}
	if rec.ID != "7" {
		t.Errorf("Expected numeric id to decode as \"7\", got %q", rec.ID)
	}
}
