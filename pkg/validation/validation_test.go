package validation

import (
	"math"
	"strings"
	"testing"
)

func TestPositive(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		wantErr     bool
		errContains string
	}{
		{name: "positive", value: 0.5},
		{name: "zero", value: 0, wantErr: true, errContains: "must be positive"},
		{name: "negative", value: -1, wantErr: true, errContains: "must be positive"},
		{name: "nan", value: math.NaN(), wantErr: true, errContains: "must be finite"},
		{name: "inf", value: math.Inf(1), wantErr: true, errContains: "must be finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Positive("mass", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Positive() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Positive() error = %q, want substring %q", err, tt.errContains)
			}
			if tt.wantErr && !strings.HasPrefix(err.Error(), "mass") {
				t.Errorf("Positive() error = %q, want field name prefix", err)
			}
		})
	}
}

func TestNonNegative(t *testing.T) {
	if err := NonNegative("damping", 0); err != nil {
		t.Errorf("NonNegative(0) = %v, want nil", err)
	}
	if err := NonNegative("damping", -0.1); err == nil {
		t.Error("NonNegative(-0.1) = nil, want error")
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 1, false},
		{"inside", 0.7, false},
		{"below", -0.01, true},
		{"above", 1.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InRange("restitution", tt.value, 0, 1)
			if (err != nil) != tt.wantErr {
				t.Errorf("InRange(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "boink", want: "boink"},
		{name: "trimmed", input: "  boink  ", want: "boink"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace", input: "   ", wantErr: true},
		{name: "control", input: "bo\x07ink", wantErr: true},
		{name: "too long", input: strings.Repeat("a", MaxTitleLen+1), wantErr: true},
		{name: "invalid utf8", input: "bo\xffink", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Title(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Title(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollect(t *testing.T) {
	if err := Collect(nil, nil); err != nil {
		t.Errorf("Collect(nil, nil) = %v, want nil", err)
	}

	err := Collect(Positive("a", 0), nil, Positive("b", -1))
	if err == nil {
		t.Fatal("Collect() = nil, want joined error")
	}
	for _, field := range []string{"a must be positive", "b must be positive"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Collect() error %q missing %q", err, field)
		}
	}
}
