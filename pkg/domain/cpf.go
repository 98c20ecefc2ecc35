package domain

import (
	"errors"
	"strings"
)

// ErrInvalidCPF is returned when a CPF fails format or checksum validation.
var ErrInvalidCPF = errors.New("invalid cpf")

// NormalizeCPF strips the usual formatting characters from a CPF string,
// so "111.444.777-35" and "11144477735" refer to the same document.
func NormalizeCPF(cpf string) string {
	cpf = strings.ReplaceAll(cpf, ".", "")
	cpf = strings.ReplaceAll(cpf, "-", "")
	return cpf
}

// ValidateCPF checks a Brazilian CPF: eleven digits and both verifier
// digits computed by the standard modulo-11 checksum. Sequences of a
// single repeated digit pass the checksum but are not valid documents.
func ValidateCPF(cpf string) error {
	cpf = NormalizeCPF(cpf)
	if len(cpf) != 11 {
		return ErrInvalidCPF
	}

	allEqual := true
	for i := 0; i < 11; i++ {
		d := cpf[i]
		if d < '0' || d > '9' {
			return ErrInvalidCPF
		}
		if d != cpf[0] {
			allEqual = false
		}
	}
	if allEqual {
		return ErrInvalidCPF
	}

	if cpfVerifierDigit(cpf, 9) != int(cpf[9]-'0') {
		return ErrInvalidCPF
	}
	if cpfVerifierDigit(cpf, 10) != int(cpf[10]-'0') {
		return ErrInvalidCPF
	}
	return nil
}

// cpfVerifierDigit computes the verifier digit over the first n digits,
// with weights n+1 down to 2.
func cpfVerifierDigit(cpf string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(cpf[i]-'0') * (n + 1 - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
