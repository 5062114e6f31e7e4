// Package parse validates and normalizes single conversation fields.
package parse

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/vosokin/ledgerbot/internal/model"
)

var (
	// ErrInvalidAmount reports input that cannot be read as a finite number.
	ErrInvalidAmount = errors.New("invalid amount format")
	// ErrMalformedSelection reports a callback token without a known
	// entry-type prefix.
	ErrMalformedSelection = errors.New("malformed category selection")
)

// Amount parses user-entered money text. A decimal comma is accepted in
// place of a decimal point. Any finite value passes, negatives and long
// fractions included; bounds are left to the ledger's consumers.
func Amount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// CategorySelection decodes a compound callback token of the shape
// "<entry_type>_<category>". The category part is not checked against the
// fixed sets; keyboards only ever offer known tokens.
func CategorySelection(data string) (model.EntryType, string, error) {
	parts := strings.SplitN(data, "_", 2)
	if len(parts) != 2 {
		return "", "", ErrMalformedSelection
	}
	entryType := model.EntryType(parts[0])
	if !entryType.Valid() {
		return "", "", ErrMalformedSelection
	}
	return entryType, parts[1], nil
}
