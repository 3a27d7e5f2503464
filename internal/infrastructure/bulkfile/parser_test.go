package bulkfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"Name,Price,Category,Stock,ImageURL,Description,Status",
		"Gaming Mouse,29.99,Electronics,15,http://img/m.png,A mouse,active",
		"Desk Lamp,12.50,Home,0,,Warm light,",
		"", // blank line, ignored by the csv reader
	}, "\n")

	records, err := Parse("upload.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{
		Name:        "Gaming Mouse",
		Price:       "29.99",
		Category:    "Electronics",
		Stock:       "15",
		ImageURL:    "http://img/m.png",
		Description: "A mouse",
		Status:      "active",
	}, records[0])

	assert.Equal(t, "Desk Lamp", records[1].Name)
	assert.Empty(t, records[1].ImageURL)
	assert.Empty(t, records[1].Status)
}

func TestParseCSVHeaderCaseInsensitive(t *testing.T) {
	csvData := "NAME,price,CATEGORY\nWidget,5,Toys\n"

	records, err := Parse("upload.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Widget", records[0].Name)
	assert.Equal(t, "5", records[0].Price)
	assert.Equal(t, "Toys", records[0].Category)
}

func TestParseCSVHeaderOnly(t *testing.T) {
	records, err := Parse("upload.csv", strings.NewReader("name,price,category\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	rows := [][]interface{}{
		{"name", "price", "category", "stock"},
		{"Keyboard", 79.99, "Electronics", 3},
		{"Notebook", 2.50, "Stationery", 120},
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	records, err := Parse("upload.xlsx", buf)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Keyboard", records[0].Name)
	assert.Equal(t, "79.99", records[0].Price)
	assert.Equal(t, "120", records[1].Stock)
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := Parse("upload.pdf", strings.NewReader("whatever"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}
