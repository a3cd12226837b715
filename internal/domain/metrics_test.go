package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopByRevenue(t *testing.T) {
	tests := []struct {
		name     string
		rows     []DimensionRevenue
		expected string
	}{
		{
			name:     "Entrada vazia deve retornar o sentinela N/D",
			rows:     []DimensionRevenue{},
			expected: NoDataLabel,
		},
		{
			name:     "Entrada nula deve retornar o sentinela N/D",
			rows:     nil,
			expected: NoDataLabel,
		},
		{
			name: "Linha única deve ser o topo",
			rows: []DimensionRevenue{
				{Label: "Açaí 500ml", Total: 120.0},
			},
			expected: "Açaí 500ml",
		},
		{
			name: "Deve escolher a maior receita independente da ordem de entrada",
			rows: []DimensionRevenue{
				{Label: "09h", Total: 80.0},
				{Label: "14h", Total: 250.0},
				{Label: "23h", Total: 40.0},
			},
			expected: "14h",
		},
		{
			name: "Empate deve manter a primeira linha na ordem de entrada",
			rows: []DimensionRevenue{
				{Label: "Pix", Total: 100.0},
				{Label: "Dinheiro", Total: 100.0},
			},
			expected: "Pix",
		},
		{
			name: "Receita zero ainda é um topo válido",
			rows: []DimensionRevenue{
				{Label: "Complementos", Total: 0},
			},
			expected: "Complementos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TopByRevenue(tt.rows))
		})
	}
}
