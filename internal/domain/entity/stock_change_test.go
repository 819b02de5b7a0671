package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

func TestComputeDirection(t *testing.T) {
	cases := []struct {
		name     string
		before   int64
		after    int64
		expected string
	}{
		{"incremento", 10, 15, entity.DirectionIncrease},
		{"decremento", 15, 10, entity.DirectionDecrease},
		{"sin cambio", 10, 10, entity.DirectionNeutral},
		{"desde cero", 0, 7, entity.DirectionIncrease},
		{"hasta cero", 7, 0, entity.DirectionDecrease},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			change := &entity.StockChange{
				OnHandBefore:    decimal.NewFromInt(tc.before),
				OnHandAfter:     decimal.NewFromInt(tc.after),
				AvailableBefore: decimal.NewFromInt(tc.before),
				AvailableAfter:  decimal.NewFromInt(tc.after),
			}
			assert.Equal(t, tc.expected, change.ComputeDirection())
		})
	}
}

func TestStockLevelAvailable(t *testing.T) {
	level := &entity.StockLevel{
		OnHand:   decimal.NewFromInt(50),
		Reserved: decimal.NewFromInt(8),
	}
	assert.True(t, level.Available().Equal(decimal.NewFromInt(42)))

	// reservado mayor que en mano: el disponible puede ser negativo, el invariante
	// de no-negatividad aplica a on_hand, no al derivado
	level.Reserved = decimal.NewFromInt(60)
	assert.True(t, level.Available().Equal(decimal.NewFromInt(-10)))
}
