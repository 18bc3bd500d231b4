package casing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"payment_method", "paymentMethod"},
		{"day_of_month", "dayOfMonth"},
		{"id", "id"},
		{"alreadyCamel", "alreadyCamel"},
		{"_leading", "Leading"},
		{"double__under", "double_Under"},
		{"trailing_", "trailing_"},
		{"digit_1", "digit_1"},
		{"upper_After", "upper_After"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCamel(tt.in))
		})
	}
}

func TestToSnake(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"paymentMethod", "payment_method"},
		{"dayOfWeek", "day_of_week"},
		{"id", "id"},
		{"already_snake", "already_snake"},
		{"Leading", "_leading"},
		{"lastID", "last_i_d"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnake(tt.in))
		})
	}
}

func TestDecode_Nested(t *testing.T) {
	in := map[string]any{
		"recent_transactions": []any{
			map[string]any{"payment_method": "pix", "is_recurring": true},
			"plain_string_value",
		},
		"summary": map[string]any{"total_income": json.Number("10.5")},
		"nothing": nil,
	}

	out := Decode(in).(map[string]any)

	txs := out["recentTransactions"].([]any)
	require.Len(t, txs, 2)
	assert.Equal(t, map[string]any{"paymentMethod": "pix", "isRecurring": true}, txs[0])
	assert.Equal(t, "plain_string_value", txs[1])
	assert.Equal(t, map[string]any{"totalIncome": json.Number("10.5")}, out["summary"])
	assert.Contains(t, out, "nothing")
	assert.Nil(t, out["nothing"])
}

func TestDecode_LeavesDateLikeValuesAlone(t *testing.T) {
	when := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("12.34")

	out := Decode(map[string]any{"start_date": when, "some_value": amount}).(map[string]any)

	assert.Equal(t, when, out["startDate"])
	assert.True(t, amount.Equal(out["someValue"].(decimal.Decimal)))
}

func TestDecode_Primitives(t *testing.T) {
	assert.Equal(t, "snake_case", Decode("snake_case"))
	assert.Equal(t, 42, Decode(42))
	assert.Equal(t, true, Decode(true))
	assert.Nil(t, Decode(nil))
}

func TestEncode_DropsUndefined(t *testing.T) {
	out := Encode(map[string]any{"foo": Undefined, "bar": 1})

	assert.Equal(t, map[string]any{"bar": 1}, out)
}

func TestEncode_KeepsExplicitNull(t *testing.T) {
	out := Encode(map[string]any{"endDate": nil, "isActive": true})

	assert.Equal(t, map[string]any{"end_date": nil, "is_active": true}, out)
}

func TestEncode_UndefinedArrayElementBecomesNull(t *testing.T) {
	out := Encode([]any{1, Undefined})

	assert.Equal(t, []any{1, nil}, out)
}

func TestRoundTrip_SimpleCamelKeys(t *testing.T) {
	in := map[string]any{
		"name":          "Netflix",
		"paymentMethod": "credit-card",
		"dayOfMonth":    json.Number("5"),
		"tags":          []any{map[string]any{"isActive": false}},
	}

	assert.Equal(t, in, Decode(Encode(in)))
}

func TestDecode_AlreadyCamelIsNoOp(t *testing.T) {
	in := map[string]any{"paymentMethod": "pix", "isDefault": true}

	assert.Equal(t, in, Decode(in))
}

func TestTranscode_DoesNotMutateInput(t *testing.T) {
	inner := map[string]any{"is_default": true}
	in := map[string]any{
		"payment_methods": []any{inner},
		"drop_me":         Undefined,
	}
	snapshot := map[string]any{
		"payment_methods": []any{map[string]any{"is_default": true}},
		"drop_me":         Undefined,
	}

	_ = Decode(in)
	_ = Encode(in)

	assert.Equal(t, snapshot, in)
}

func TestDecodeJSON(t *testing.T) {
	out, err := DecodeJSON([]byte(`{"data":[{"is_active":true,"value":19.90}]}`))
	require.NoError(t, err)

	assert.JSONEq(t, `{"data":[{"isActive":true,"value":19.90}]}`, string(out))
}

func TestDecodeJSON_PreservesNumberPrecision(t *testing.T) {
	out, err := DecodeJSON([]byte(`{"big_value":12345678901234567890.01}`))
	require.NoError(t, err)

	assert.Equal(t, `{"bigValue":12345678901234567890.01}`, string(out))
}

func TestDecodeJSON_Empty(t *testing.T) {
	out, err := DecodeJSON([]byte("  "))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecodeJSON_Invalid(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"broken":`))
	assert.Error(t, err)
}

func TestMarshalSnake_OmitsEmptyOptionalFields(t *testing.T) {
	type payload struct {
		Name          string  `json:"name"`
		PaymentMethod *string `json:"paymentMethod,omitempty"`
		DayOfMonth    int     `json:"dayOfMonth"`
	}

	out, err := MarshalSnake(payload{Name: "Gym", DayOfMonth: 10})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"Gym","day_of_month":10}`, string(out))
}

func TestUnmarshalCamel(t *testing.T) {
	var got struct {
		LastDigits string `json:"lastDigits"`
		IsDefault  bool   `json:"isDefault"`
	}

	err := UnmarshalCamel([]byte(`{"last_digits":"1234","is_default":true}`), &got)
	require.NoError(t, err)

	assert.Equal(t, "1234", got.LastDigits)
	assert.True(t, got.IsDefault)
}
