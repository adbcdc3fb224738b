package grocery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var billDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestParseBillText(t *testing.T) {
	text := "SUPERMART\n1. Fresh Milk 1L 2 3.50\n2. White Bread 1 2.20\nTOTAL 5.70"

	items := ParseBillText(text, billDate)
	require.Len(t, items, 2)

	assert.Equal(t, "Fresh Milk 1L", items[0].Name)
	assert.InDelta(t, 2, items[0].Quantity, 0.001)
	assert.InDelta(t, 3.50, items[0].Price, 0.001)
	assert.Equal(t, "pcs", items[0].Unit)
	assert.Equal(t, billDate.AddDate(0, 0, 7), items[0].ExpiryDate, "milk keyword sets a short shelf life")

	assert.Equal(t, "White Bread", items[1].Name)
	assert.Equal(t, billDate.AddDate(0, 0, 4), items[1].ExpiryDate)
}

func TestParseBillTextFoldsWrappedLines(t *testing.T) {
	text := "1. Organic Chicken\nBreast 2 8.90"

	items := ParseBillText(text, billDate)
	require.Len(t, items, 1)
	assert.Equal(t, "Organic Chicken Breast", items[0].Name)
	assert.InDelta(t, 8.90, items[0].Price, 0.001)
	assert.Equal(t, billDate.AddDate(0, 0, 3), items[0].ExpiryDate)
}

func TestParseBillTextSkipsPercentColumn(t *testing.T) {
	text := "1. Olive Oil 10% 1 12.00"

	items := ParseBillText(text, billDate)
	require.Len(t, items, 1)
	assert.Equal(t, "Olive Oil", items[0].Name)
	assert.InDelta(t, 12.00, items[0].Price, 0.001)
}

func TestParseBillTextNormalizesThousandsSeparator(t *testing.T) {
	text := "1. Basmati Rice 5kg 1 15,500"

	items := ParseBillText(text, billDate)
	require.Len(t, items, 1)
	assert.InDelta(t, 15.5, items[0].Price, 0.001)
	assert.Equal(t, billDate.AddDate(0, 0, 365), items[0].ExpiryDate)
}

func TestParseBillTextDropsUnparsableLines(t *testing.T) {
	text := "STORE HEADER\n1. Mystery Item without numbers\nCASH 20.00\nCHANGE 1.30"

	items := ParseBillText(text, billDate)
	assert.Empty(t, items)
}

func TestParseBillTextUnknownItemGetsDefaultShelfLife(t *testing.T) {
	text := "1. Canned Soup 2 4.00"

	items := ParseBillText(text, billDate)
	require.Len(t, items, 1)
	assert.Equal(t, billDate.AddDate(0, 0, defaultShelfLifeDays), items[0].ExpiryDate)
}
