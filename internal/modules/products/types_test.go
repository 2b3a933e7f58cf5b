package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_KnownTypes(t *testing.T) {
	for _, known := range All {
		parsed, err := Parse(string(known))
		require.NoError(t, err)
		assert.Equal(t, known, parsed)
	}
}

func TestParse_UnknownType(t *testing.T) {
	_, err := Parse("crypto_futures")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestIsTaxExempt(t *testing.T) {
	assert.True(t, IsTaxExempt(FixedIncomeLCI))
	assert.True(t, IsTaxExempt(FixedIncomeLCA))

	for _, other := range []Type{
		FixedIncomeCDB, TreasuryFloating, TreasuryInflationLinked,
		TreasuryFixedRate, SavingsAccount, FixedIncomeFund,
		MultiStrategyFund, Equities, RealEstateFund,
	} {
		assert.False(t, IsTaxExempt(other), "%s should not be exempt", other)
	}
}

func TestIsIndexerBased(t *testing.T) {
	assert.True(t, IsIndexerBased(FixedIncomeCDB))
	assert.True(t, IsIndexerBased(FixedIncomeLCI))
	assert.True(t, IsIndexerBased(FixedIncomeLCA))
	assert.True(t, IsIndexerBased(TreasuryFloating))

	assert.False(t, IsIndexerBased(TreasuryFixedRate))
	assert.False(t, IsIndexerBased(SavingsAccount))
	assert.False(t, IsIndexerBased(Equities))
}

func TestIsFund(t *testing.T) {
	assert.True(t, IsFund(FixedIncomeFund))
	assert.True(t, IsFund(MultiStrategyFund))
	assert.False(t, IsFund(RealEstateFund))
	assert.False(t, IsFund(FixedIncomeCDB))
}
