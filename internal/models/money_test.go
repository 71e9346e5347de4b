package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyNoDriftOnRepeatedAdd(t *testing.T) {
	cent, err := NewMoneyFromString("0.01")
	if err != nil {
		t.Fatalf("parse money failed: %v", err)
	}

	// float64 下 1000 次 0.01 累加会得到 9.999999…，定点数必须精确等于 10.00
	sum := Money{}
	for i := 0; i < 1000; i++ {
		sum = sum.Add(cent)
	}
	if sum.String() != "10.00" {
		t.Fatalf("sum want exactly 10.00 got %s", sum.String())
	}
	if !sum.Decimal.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("sum should equal 10 exactly, got %s", sum.Decimal.String())
	}
}

func TestMoneySubAndCompare(t *testing.T) {
	balance, _ := NewMoneyFromString("100.00")
	a, _ := NewMoneyFromString("30.00")
	b, _ := NewMoneyFromString("45.00")

	rest := balance.Sub(a.Add(b))
	if rest.String() != "25.00" {
		t.Fatalf("rest want 25.00 got %s", rest.String())
	}
	if rest.LessThan(Money{}) {
		t.Fatalf("25.00 should not be less than zero")
	}
	if !(Money{}).Sub(a).IsNegative() {
		t.Fatalf("0 - 30.00 should be negative")
	}
}

func TestMoneyRounding(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.RequireFromString("19.999"))
	if m.String() != "20.00" {
		t.Fatalf("19.999 should round to 20.00, got %s", m.String())
	}
}

func TestMoneyJSON(t *testing.T) {
	m, _ := NewMoneyFromString("99.9")
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"99.90"` {
		t.Fatalf(`marshal want "99.90" got %s`, data)
	}

	var fromString Money
	if err := json.Unmarshal([]byte(`"49.99"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if fromString.String() != "49.99" {
		t.Fatalf("unmarshal string want 49.99 got %s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`49.99`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if fromNumber.String() != "49.99" {
		t.Fatalf("unmarshal number want 49.99 got %s", fromNumber.String())
	}
}
