package csvexport_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiprecon/internal/csvexport"
	"shiprecon/internal/domain"
)

func TestWriteMissingOrders(t *testing.T) {
	delivered := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	orders := []domain.MissingOrder{
		{
			OrderCode:     "A1",
			CustomerName:  "Bob",
			NetAmount:     decimal.RequireFromString("95.5"),
			DeliveredDate: &delivered,
			Status:        "Delivered",
		},
		{
			OrderCode:    "B2",
			CustomerName: "Eve",
			NetAmount:    decimal.RequireFromString("10"),
			Status:       "Delivered",
		},
	}

	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteMissingOrders(orders))
	w.Flush()
	require.NoError(t, w.Error())

	want := "Order Code,Customer,Net Amount,Delivered Date,Status\n" +
		"A1,Bob,95.50,2024-03-15,Delivered\n" +
		"B2,Eve,10.00,,Delivered\n"
	assert.Equal(t, want, buf.String())
}

func TestBuildFilename(t *testing.T) {
	want := fmt.Sprintf("missing_orders_%s.csv", time.Now().Format("2006-01-02"))
	assert.Equal(t, want, csvexport.BuildFilename())
}
