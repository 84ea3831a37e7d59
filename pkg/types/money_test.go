package types

import (
	"encoding/json"
	"testing"
)

func TestMoneyMarshalsAsBareNumber(t *testing.T) {
	m, err := MoneyFromString("5000.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "5000.5" {
		t.Fatalf("expected bare number, got %s", out)
	}
}

func TestMoneyUnmarshalAcceptsNumberAndString(t *testing.T) {
	var fromNumber, fromString Money
	if err := json.Unmarshal([]byte(`1299.99`), &fromNumber); err != nil {
		t.Fatalf("number: %v", err)
	}
	if err := json.Unmarshal([]byte(`"1299.99"`), &fromString); err != nil {
		t.Fatalf("string: %v", err)
	}
	if !fromNumber.Equal(fromString) {
		t.Fatalf("expected equal values, got %s and %s", fromNumber, fromString)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	price := MoneyFromInt(5000)
	if got := price.MulInt(2); !got.Equal(MoneyFromInt(10000)) {
		t.Fatalf("expected 10000, got %s", got)
	}
	if got := price.Add(MoneyFromInt(250)); !got.Equal(MoneyFromInt(5250)) {
		t.Fatalf("expected 5250, got %s", got)
	}
	if !price.IsPositive() {
		t.Fatalf("5000 should be positive")
	}
	var zero Money
	if zero.IsPositive() {
		t.Fatalf("zero value must not be positive")
	}
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{Price: MoneyFromInt(5000), Quantity: 3}
	if got := item.LineTotal(); !got.Equal(MoneyFromInt(15000)) {
		t.Fatalf("expected 15000, got %s", got)
	}
}
