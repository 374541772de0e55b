package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/repository"
)

type ExportHandler struct {
	Repo *repository.Repository
}

// SalesXLSX exports the full sales history as a spreadsheet.
func (h *ExportHandler) SalesXLSX(c *gin.Context) {
	sales := h.Repo.Sales()

	f := excelize.NewFile()
	sheetName := "Sales History"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sheet"})
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"Date Sold", "Category", "Brand", "Model", "Identifier", "Purchase Price", "Selling Price", "Profit"}
	for i, head := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx, sale := range sales {
		row := idx + 2
		p := sale.Product
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), sale.DateSold.Format("2006-01-02 15:04"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Brand)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.Model)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), p.Identifier)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), p.PurchasePrice)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), p.SellingPrice)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), sale.Profit)
	}

	f.SetColWidth(sheetName, "A", "A", 18)
	f.SetColWidth(sheetName, "B", "E", 15)
	f.SetColWidth(sheetName, "F", "H", 14)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"sales_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write spreadsheet"})
	}
}

// KhataCSV exports every ledger entry with the customer name resolved.
func (h *ExportHandler) KhataCSV(c *gin.Context) {
	entries := h.Repo.KhataEntries()

	names := make(map[string]string)
	for _, cust := range h.Repo.Customers() {
		names[cust.ID] = cust.Name
	}

	// Build the document in memory first so a write failure can still be
	// reported as a 500 instead of a truncated download.
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	writer.Write([]string{"Date", "Customer", "Type", "Amount", "Description", "Product", "Condition"})
	for _, e := range entries {
		name := names[e.CustomerID]
		if name == "" {
			name = e.CustomerID
		}
		writer.Write([]string{
			e.Date.Format("2006-01-02"),
			name,
			e.Type,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Description,
			e.ProductName,
			e.Condition,
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build CSV"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"khata_%s.csv\"",
		time.Now().Format("20060102")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
