package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// requestStatistics returns the aggregated counts the intranet charts
// are rendered from.
func (s *Server) requestStatistics(c *gin.Context) {
	statistics, err := s.store.RequestStatistics()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, statistics)
}

// exportStatistics renders the same aggregates as a workbook, one sheet
// per dimension.
func (s *Server) exportStatistics(c *gin.Context) {
	statistics, err := s.store.RequestStatistics()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	f := excelize.NewFile()

	sheets := []struct {
		name   string
		header string
		counts map[string]int64
	}{
		{"Categories", "Category", statistics.ByCategory},
		{"Statuses", "Status", statistics.ByStatus},
		{"Cities", "City", statistics.ByCity},
	}

	for i, sheet := range sheets {
		if i == 0 {
			f.SetSheetName(f.GetSheetName(0), sheet.name)
		} else {
			f.NewSheet(sheet.name)
		}

		f.SetCellValue(sheet.name, "A1", sheet.header)
		f.SetCellValue(sheet.name, "B1", "Count")

		row := 2
		for key, count := range sheet.counts {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			f.SetCellValue(sheet.name, cell, key)
			cell, _ = excelize.CoordinatesToCellName(2, row)
			f.SetCellValue(sheet.name, cell, count)
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	filename := "statistics-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
