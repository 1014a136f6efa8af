package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEntityType(t *testing.T) {
	for _, et := range EntityTypes {
		got, err := ParseEntityType(string(et))
		assert.NoError(t, err)
		assert.Equal(t, et, got)
	}

	_, err := ParseEntityType("tenants")
	assert.Error(t, err)

	_, err = ParseEntityType("")
	assert.Error(t, err)
}

func TestContractKind(t *testing.T) {
	tests := []struct {
		kind   ContractKind
		abbr   string
		rental bool
		sale   bool
	}{
		{ContractSaleWithExclusivity, "VDE", false, true},
		{ContractSaleWithoutExclusivity, "VDS", false, true},
		{ContractRentalWithAdmin, "ALA", true, false},
		{ContractRental, "ALG", true, false},
		{ContractKind("Permuta"), "UNK", false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.abbr, tt.kind.Abbreviation())
			assert.Equal(t, tt.rental, tt.kind.IsRental())
			assert.Equal(t, tt.sale, tt.kind.IsSale())
		})
	}
}
