package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankedRevenue_LimiteNegativo(t *testing.T) {
	// O limite negativo é rejeitado antes de qualquer acesso ao banco,
	// por isso o repositório pode ser construído sem conexão
	repo := &rankingRepository{}

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "TopProducts com limite negativo deve retornar ErrInvalidLimit",
			call: func() error {
				limit := -1
				_, err := repo.TopProducts(&limit)
				return err
			},
		},
		{
			name: "TopCategories com limite negativo deve retornar ErrInvalidLimit",
			call: func() error {
				limit := -10
				_, err := repo.TopCategories(&limit)
				return err
			},
		},
		{
			name: "TopCustomers com limite negativo deve retornar ErrInvalidLimit",
			call: func() error {
				_, err := repo.TopCustomers(-5)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLimit)
		})
	}
}

func TestWeekdayName(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		expected string
	}{
		{name: "Índice 0 é domingo", index: 0, expected: "Domingo"},
		{name: "Índice 3 é quarta-feira", index: 3, expected: "Quarta-feira"},
		{name: "Índice 6 é sábado", index: 6, expected: "Sábado"},
		{name: "Índice negativo cai no sentinela", index: -1, expected: "N/D"},
		{name: "Índice fora da faixa cai no sentinela", index: 7, expected: "N/D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, weekdayName(tt.index))
		})
	}
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		expected string
	}{
		{name: "Hora de um dígito deve ter zero à esquerda", hour: 9, expected: "09h"},
		{name: "Meia-noite é 00h", hour: 0, expected: "00h"},
		{name: "Hora de dois dígitos", hour: 23, expected: "23h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hourLabel(tt.hour))
		})
	}
}
