package journal

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTradeType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    TradeType
		wantErr bool
	}{
		{"stock", Stock, false},
		{"STOCK", Stock, false},
		{" Option ", Option, false},
		{"future", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTradeType(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseAction(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Action{"buy": Buy, "Sell": Sell, "BUY": Buy} {
		got, err := ParseAction(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseAction("short")
	assert.Error(t, err)
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stock", Stock.String())
	assert.Equal(t, "option", Option.String())
	assert.Equal(t, "buy", Buy.String())
	assert.Equal(t, "sell", Sell.String())
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	tr := sampleTrade()
	tr.ID = 3
	tr.Comment = "has, comma"

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []Trade{tr}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, []string{"3", "2024-01-15", "AAPL", "stock", "buy", "150.5", "100", "5", "has, comma"}, rows[1])
}

func TestWriteCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "id,date,symbol,type,action,price,quantity,fees,comment\n", buf.String())
}

func TestTradeValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, sampleTrade().Validate())

	tr := sampleTrade()
	tr.Price = decimal.Zero
	tr.Fees = decimal.Zero
	assert.NoError(t, tr.Validate(), "zero price and fees are allowed")
}
