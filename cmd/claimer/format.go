package main

import (
	"math/big"
)

func formatGwei(v *big.Int) string {
	if v == nil {
		return "0"
	}
	r := new(big.Rat).SetFrac(v, big.NewInt(1_000_000_000))
	return r.FloatString(2)
}

func formatEther(v *big.Int) string {
	if v == nil {
		return "0"
	}
	s := new(big.Rat).SetFrac(v, big.NewInt(1_000_000_000_000_000_000))
	return s.FloatString(6)
}

// formatEtherString formats a decimal wei string, as stored in the journal.
func formatEtherString(s string) string {
	if s == "" {
		return "-"
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return s
	}
	return formatEther(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func gweiString(s string) string {
	if s == "" {
		return "-"
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return s
	}
	return formatGwei(v)
}
