package domain_test

import (
	"testing"

	"github.com/jamadeu/multicontas/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateCPF_Valid(t *testing.T) {
	t.Parallel()
	valid := []string{
		"11144477735",
		"111.444.777-35",
		"52998224725",
		"529.982.247-25",
	}
	for _, cpf := range valid {
		assert.NoError(t, domain.ValidateCPF(cpf), cpf)
	}
}

func TestValidateCPF_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cpf  string
	}{
		{"empty", ""},
		{"too short", "1114447773"},
		{"too long", "111444777350"},
		{"non-digit characters", "1114447773a"},
		{"bad first verifier digit", "11144477745"},
		{"bad second verifier digit", "11144477736"},
		{"repeated digit sequence", "11111111111"},
		{"repeated zeros", "00000000000"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, domain.ValidateCPF(tt.cpf), domain.ErrInvalidCPF)
		})
	}
}

func TestNormalizeCPF(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "11144477735", domain.NormalizeCPF("111.444.777-35"))
	assert.Equal(t, "11144477735", domain.NormalizeCPF("11144477735"))
}
