package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{25000, "USD", "$25,000.00"},
		{0, "", "$0.00"},
		{1234.5, "eur", "€1,234.50"},
		{1500, "CHF", "CHF 1,500.00"},
		{-42, "USD", "-$42.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.amount, tt.currency))
	}
	assert.Equal(t, "1,000,000", FormatAmount(1000000))
}

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(100, " usd ")
	require.NoError(t, err)
	assert.Equal(t, "USD", m.Currency)
	assert.Equal(t, "$100.00", m.String())

	_, err = NewMoney(-1, "USD")
	assert.Error(t, err)
}

func TestProposalStatus(t *testing.T) {
	s, err := NewProposalStatus(" Under_Review ")
	require.NoError(t, err)
	assert.Equal(t, ProposalStatusUnderReview, s)
	assert.Equal(t, "Under Review", s.Label())
	assert.Equal(t, "Draft", ProposalStatusDraft.Label())

	_, err = NewProposalStatus("archived")
	assert.Error(t, err)
	assert.Len(t, AllProposalStatuses, 8)
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, PriorityLow.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityHigh.Rank())
	assert.Less(t, PriorityHigh.Rank(), PriorityUrgent.Rank())
	assert.Zero(t, Priority("").Rank())

	_, err := NewPriority("critical")
	assert.Error(t, err)

	pt, err := NewProposalType("Retainer")
	require.NoError(t, err)
	assert.Equal(t, ProposalTypeRetainer, pt)
}
