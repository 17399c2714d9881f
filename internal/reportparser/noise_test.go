package reportparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoiseFilter_IsNoise(t *testing.T) {
	f := NewNoiseFilter()

	tests := []struct {
		line  string
		noise bool
	}{
		{"TOTAL CLIENTE 1.012,50", true},
		{"Total geral: 2.000,00", true},
		{"SUBTOTAL 500,00", true},
		{"Página 2 de 3", true},
		{"PAG. 4", true},
		{"DOCUMENTO EMISSAO VENCIMENTO ATS TIPO BOLETO", true},
		{"RELATÓRIO DE PENDÊNCIAS", true},
		{"------------------------------", true},
		{"==========", true},
		{"_ _ _ _ _ _", true},
		{"TOTALIZADOR DE VENDAS", false},
		{"123 ACME CORP (11)98765-4321 SAO PAULO", false},
		{"1.1 01/01/2024 15/01/2024 14 BANC 5001 1.000,00 10,00 0,00 2,50 1.012,50", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.noise, f.IsNoise(tt.line))
		})
	}
}

func TestNoiseFilter_ExtraMarkers(t *testing.T) {
	f := NewNoiseFilter(" resumo ", "", "TOTAL")

	assert.True(t, f.IsNoise("RESUMO DO PERIODO"))
	assert.False(t, NewNoiseFilter().IsNoise("RESUMO DO PERIODO"))

	markers := f.Markers()
	assert.Contains(t, markers, "RESUMO")
	count := 0
	for _, m := range markers {
		if m == "TOTAL" {
			count++
		}
	}
	assert.Equal(t, 1, count, "duplicate markers are collapsed")
}
