package util

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cents    int64
		currency string
		expected string
	}{
		{name: "zero", cents: 0, currency: "usd", expected: "0.00 USD"},
		{name: "under one unit", cents: 7, currency: "usd", expected: "0.07 USD"},
		{name: "whole and fraction", cents: 1250, currency: "eur", expected: "12.50 EUR"},
		{name: "negative", cents: -305, currency: "usd", expected: "-3.05 USD"},
		{name: "no currency", cents: 199, expected: "1.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatMoney(tt.cents, tt.currency); got != tt.expected {
				t.Fatalf("FormatMoney(%d, %q) = %s, want %s", tt.cents, tt.currency, got, tt.expected)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	t.Parallel()

	if got := ShortID("ord_1234567890"); got != "#ord_1234" {
		t.Fatalf("ShortID = %s", got)
	}
	if got := ShortID("42"); got != "#42" {
		t.Fatalf("ShortID = %s", got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
