package reports

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/frahmantamala/smart-records/internal"
	departmentDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/employee"
)

// exportRowCap bounds the employee table in exported documents; the
// canonical text report is never truncated.
const exportRowCap = 50

// ExportText writes the full text report into dir and returns the file path.
func (g *Generator) ExportText(dir string) (string, error) {
	report, err := g.Generate()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", internal.NewInternalError("failed to create report directory", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.txt", g.now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", internal.NewInternalError("failed to write report file", err)
	}

	g.logger.Info("text report exported", "path", path)
	return path, nil
}

// Workbook renders the report snapshot as a styled spreadsheet: a summary
// sheet, the employee listing (capped) and the department listing.
func (g *Generator) Workbook() (*excelize.File, error) {
	employees, err := g.employees.GetAll()
	if err != nil {
		return nil, err
	}
	departments, err := g.departments.GetAll()
	if err != nil {
		return nil, err
	}
	stats := g.employees.GetStatistics()

	return buildWorkbook(employees, departments, stats, g.now().Format("2006-01-02 15:04:05"))
}

// ExportXLSX writes the spreadsheet into dir and returns the file path.
func (g *Generator) ExportXLSX(dir string) (string, error) {
	f, err := g.Workbook()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", internal.NewInternalError("failed to create report directory", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.xlsx", g.now().Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", internal.NewInternalError("failed to write spreadsheet", err)
	}

	g.logger.Info("spreadsheet report exported", "path", path)
	return path, nil
}

func buildWorkbook(
	employees []*employeeDatamodel.Employee,
	departments []*departmentDatamodel.Department,
	stats *employeeDatamodel.Statistics,
	generatedAt string,
) (*excelize.File, error) {
	f := excelize.NewFile()

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, internal.NewInternalError("failed to create sheet style", err)
	}

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)
	summaryRows := [][]any{
		{"Smart Records System Report"},
		{"Generated on", generatedAt},
		{},
		{"Total Employees", stats.TotalEmployees},
		{"Total Departments", len(departments)},
		{"Average Salary", stats.AvgSalary},
		{"Minimum Salary", stats.MinSalary},
		{"Maximum Salary", stats.MaxSalary},
		{"Total Salary Budget", stats.TotalSalary},
	}
	for i, row := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return nil, internal.NewInternalError("failed to write summary sheet", err)
		}
	}
	f.SetCellStyle(summary, "A1", "A1", boldStyle)
	f.SetColWidth(summary, "A", "A", 22)
	f.SetColWidth(summary, "B", "B", 20)

	empSheet := "Employees"
	if _, err := f.NewSheet(empSheet); err != nil {
		return nil, internal.NewInternalError("failed to create employee sheet", err)
	}
	empHeaders := []any{"ID", "First Name", "Last Name", "Email", "Phone", "Position", "Salary", "Department", "Hire Date"}
	f.SetSheetRow(empSheet, "A1", &empHeaders)
	f.SetCellStyle(empSheet, "A1", "I1", boldStyle)

	capped := employees
	if len(capped) > exportRowCap {
		capped = capped[:exportRowCap]
	}
	for i, emp := range capped {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Phone,
			emp.Position, emp.Salary, emp.DepartmentName, emp.HireDate,
		}
		f.SetSheetRow(empSheet, cell, &row)
	}
	if extra := len(employees) - exportRowCap; extra > 0 {
		cell, _ := excelize.CoordinatesToCellName(1, exportRowCap+2)
		row := []any{"...", fmt.Sprintf("...and %d more employees", extra)}
		f.SetSheetRow(empSheet, cell, &row)
	}
	f.SetColWidth(empSheet, "B", "D", 22)
	f.SetColWidth(empSheet, "F", "F", 25)
	f.SetColWidth(empSheet, "H", "I", 20)

	deptSheet := "Departments"
	if _, err := f.NewSheet(deptSheet); err != nil {
		return nil, internal.NewInternalError("failed to create department sheet", err)
	}
	deptHeaders := []any{"ID", "Name", "Description"}
	f.SetSheetRow(deptSheet, "A1", &deptHeaders)
	f.SetCellStyle(deptSheet, "A1", "C1", boldStyle)
	for i, dept := range departments {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{dept.ID, dept.Name, dept.Description}
		f.SetSheetRow(deptSheet, cell, &row)
	}
	f.SetColWidth(deptSheet, "B", "B", 28)
	f.SetColWidth(deptSheet, "C", "C", 60)

	return f, nil
}
