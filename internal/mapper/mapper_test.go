package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiprecon/internal/domain"
	"shiprecon/internal/mapper"
)

func shipmentRules() []domain.MappingRule {
	return []domain.MappingRule{
		{FileKind: domain.FileKindShipment, SourceColumn: "Order Code", SystemColumn: "order_code"},
		{FileKind: domain.FileKindShipment, SourceColumn: "Customer", SystemColumn: "customer_name"},
		{FileKind: domain.FileKindShipment, SourceColumn: "Status", SystemColumn: "status"},
		{FileKind: domain.FileKindShipment, SourceColumn: "Amount", SystemColumn: "amount"},
		{FileKind: domain.FileKindShipment, SourceColumn: "Fee", SystemColumn: "shipping_fee"},
		{FileKind: domain.FileKindShipment, SourceColumn: "Delivered", SystemColumn: "delivered_date"},
	}
}

func shipmentColumns() []string {
	return []string{"Order Code", "Customer", "Status", "Amount", "Fee", "Delivered", "Notes"}
}

func TestRequiredColumns(t *testing.T) {
	assert.Equal(t,
		[]string{"order_code", "customer_name", "status", "amount", "shipping_fee", "delivered_date"},
		mapper.RequiredColumns(domain.FileKindShipment))
	assert.Equal(t,
		[]string{"orderNumber", "order_amount"},
		mapper.RequiredColumns(domain.FileKindInvoice))
	assert.Nil(t, mapper.RequiredColumns(domain.FileKind("reference")))
}

func TestHasValidMappings_RequiresBothKinds(t *testing.T) {
	assert.False(t, mapper.HasValidMappings(nil))
	assert.False(t, mapper.HasValidMappings(shipmentRules()))

	rules := append(shipmentRules(), domain.MappingRule{
		FileKind: domain.FileKindInvoice, SourceColumn: "Order No", SystemColumn: "orderNumber",
	})
	assert.True(t, mapper.HasValidMappings(rules))
}

func TestHasValidMappings_RequiresKeyColumns(t *testing.T) {
	rules := []domain.MappingRule{
		{FileKind: domain.FileKindShipment, SourceColumn: "Status", SystemColumn: "status"},
		{FileKind: domain.FileKindInvoice, SourceColumn: "Order No", SystemColumn: "orderNumber"},
	}
	assert.False(t, mapper.HasValidMappings(rules))

	rules[0].SystemColumn = "order_code"
	assert.True(t, mapper.HasValidMappings(rules))
}

// The gate only checks the two key columns, so a mapping set can pass the
// gate and still fail the full required-column validation at ingestion.
func TestGateIsLooserThanIngestionValidation(t *testing.T) {
	rules := []domain.MappingRule{
		{FileKind: domain.FileKindShipment, SourceColumn: "Order Code", SystemColumn: "order_code"},
		{FileKind: domain.FileKindInvoice, SourceColumn: "Order No", SystemColumn: "orderNumber"},
	}
	require.True(t, mapper.HasValidMappings(rules))

	_, err := mapper.ValidateUploadedData(domain.FileKindShipment, rules,
		[]string{"Order Code"}, []map[string]string{{"Order Code": "A1"}})
	var mappingErr *domain.MappingError
	require.ErrorAs(t, err, &mappingErr)
}

func TestValidateUploadedData_UnmappedRequiredColumn(t *testing.T) {
	rules := shipmentRules()[1:] // drop the order_code mapping

	_, err := mapper.ValidateUploadedData(domain.FileKindShipment, rules, shipmentColumns(), nil)
	var mappingErr *domain.MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.Contains(t, mappingErr.Message, "order_code")
}

func TestValidateUploadedData_MappedSourceMissingFromFile(t *testing.T) {
	columns := []string{"Order Code", "Customer", "Status", "Amount", "Fee"} // no Delivered

	_, err := mapper.ValidateUploadedData(domain.FileKindShipment, shipmentRules(), columns, nil)
	var mappingErr *domain.MappingError
	require.ErrorAs(t, err, &mappingErr)
	assert.Contains(t, mappingErr.Message, "Delivered")
}

func TestValidateUploadedData_BlankRequiredFieldRejectsWholeFile(t *testing.T) {
	rows := []map[string]string{
		{"Order Code": "A1", "Customer": "Bob", "Status": "Delivered", "Amount": "100", "Fee": "5", "Delivered": "2024-01-01"},
		{"Order Code": "A2", "Customer": "Eve", "Status": "Delivered", "Amount": "  ", "Fee": "5", "Delivered": "2024-01-02"},
	}

	out, err := mapper.ValidateUploadedData(domain.FileKindShipment, shipmentRules(), shipmentColumns(), rows)
	assert.Nil(t, out)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 2, validationErr.Row)
	assert.Equal(t, "amount", validationErr.Column)
}

func TestValidateUploadedData_ProjectsAndPreservesOrder(t *testing.T) {
	rows := []map[string]string{
		{"Order Code": "A2", "Customer": "Eve", "Status": "Pending", "Amount": "10", "Fee": "1", "Delivered": "2024-01-02", "Notes": "dropped"},
		{"Order Code": "A1", "Customer": "Bob", "Status": "Delivered", "Amount": "20", "Fee": "2", "Delivered": "2024-01-01"},
	}

	out, err := mapper.ValidateUploadedData(domain.FileKindShipment, shipmentRules(), shipmentColumns(), rows)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "A2", out[0]["order_code"])
	assert.Equal(t, "A1", out[1]["order_code"])
	// unmapped source columns are dropped from the canonical row
	_, hasNotes := out[0]["Notes"]
	assert.False(t, hasNotes)
}

func TestShipmentRows_Binding(t *testing.T) {
	rows := []map[string]string{
		{"Order Code": "A1", "Customer": "Bob", "Status": "Delivered", "Amount": "100.00", "Fee": "5.00", "Delivered": "2024-01-01"},
	}

	out, err := mapper.ShipmentRows(shipmentRules(), shipmentColumns(), rows)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, domain.ShipmentRow{
		OrderCode:     "A1",
		CustomerName:  "Bob",
		Status:        "Delivered",
		Amount:        "100.00",
		ShippingFee:   "5.00",
		DeliveredDate: "2024-01-01",
	}, out[0])
}

func TestInvoiceLineRows_Binding(t *testing.T) {
	rules := []domain.MappingRule{
		{FileKind: domain.FileKindInvoice, SourceColumn: "Order No", SystemColumn: "orderNumber"},
		{FileKind: domain.FileKindInvoice, SourceColumn: "Value", SystemColumn: "order_amount"},
	}
	rows := []map[string]string{
		{"Order No": "A1", "Value": "100.00"},
		{"Order No": "B2", "Value": "50.00"},
	}

	out, err := mapper.InvoiceLineRows(rules, []string{"Order No", "Value"}, rows)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, domain.InvoiceLineRow{OrderNumber: "A1", OrderAmount: "100.00"}, out[0])
	assert.Equal(t, domain.InvoiceLineRow{OrderNumber: "B2", OrderAmount: "50.00"}, out[1])
}

// Rules for the other file kind must not leak into the transform.
func TestValidateUploadedData_IgnoresOtherKindRules(t *testing.T) {
	rules := append(shipmentRules(),
		domain.MappingRule{FileKind: domain.FileKindInvoice, SourceColumn: "Order Code", SystemColumn: "orderNumber"})
	rows := []map[string]string{
		{"Order Code": "A1", "Customer": "Bob", "Status": "Delivered", "Amount": "1", "Fee": "0", "Delivered": ""},
	}

	_, err := mapper.ValidateUploadedData(domain.FileKindShipment, rules, shipmentColumns(), rows)
	// delivered_date is required and blank, so the row fails; but the
	// invoice rule must not have added an orderNumber requirement.
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "delivered_date", validationErr.Column)
}
