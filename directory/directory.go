// Package directory loads the HR roster spreadsheet and resolves the
// employee identity referenced by a request's IdBoost field.
package directory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/cnet-digital/backoffice-api/schema"
)

const directoryLogPrefix = "directory"

var (
	ErrEmployeeNotFound = fmt.Errorf("no employee carries this IDBOOST")
	ErrEmptyRoster      = fmt.Errorf("the roster sheet has no data rows")
)

var hireDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"1/2/06 15:04",
}

// Directory is an in-memory index of the roster, loaded once at
// startup. The roster workbook is small (one row per employee) so a
// full load is cheap; a stale roster requires a restart to pick up.
type Directory struct {
	employees map[int64]schema.Employee
}

// Load reads the first sheet of the roster workbook. Expected header
// row: IDBOOST, FULLNAME, CIN, JOBTITLE, HIREDATE. Rows with an
// unparsable IDBOOST are skipped with a warning rather than failing
// the whole load.
func Load(path string) (*Directory, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyRoster
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyRoster
	}

	columns := map[string]int{}
	for i, header := range rows[0] {
		columns[strings.ToUpper(strings.TrimSpace(header))] = i
	}

	employees := make(map[int64]schema.Employee, len(rows)-1)
	for _, row := range rows[1:] {
		idBoost, err := strconv.ParseInt(cell(row, columns, "IDBOOST"), 10, 64)
		if err != nil {
			log.WithField("prefix", directoryLogPrefix).
				Warnf("skipping roster row with invalid IDBOOST: %v", row)
			continue
		}

		employees[idBoost] = schema.Employee{
			IDBoost:  idBoost,
			FullName: cell(row, columns, "FULLNAME"),
			CIN:      cell(row, columns, "CIN"),
			JobTitle: cell(row, columns, "JOBTITLE"),
			HireDate: parseHireDate(cell(row, columns, "HIREDATE")),
		}
	}

	log.WithField("prefix", directoryLogPrefix).
		Infof("loaded %d employees from %s", len(employees), path)

	return &Directory{employees: employees}, nil
}

// FindByIDBoost returns the roster entry for an IDBOOST identity.
func (d *Directory) FindByIDBoost(idBoost int64) (*schema.Employee, error) {
	employee, ok := d.employees[idBoost]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return &employee, nil
}

// Size returns the number of loaded roster entries.
func (d *Directory) Size() int {
	return len(d.employees)
}

func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseHireDate(value string) time.Time {
	for _, layout := range hireDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
