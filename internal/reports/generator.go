// Package reports derives the summary report from data already fetched
// through the record models. The text built here is the canonical report
// representation; file export is a rendering step on top of it.
package reports

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	departmentDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/employee"
)

const (
	reportWidth = 80
	// noDepartmentBucket collects employees with an absent department
	// reference in the per-department breakdown.
	noDepartmentBucket = "No Department"
)

type EmployeeSource interface {
	GetAll() ([]*employeeDatamodel.Employee, error)
	GetStatistics() *employeeDatamodel.Statistics
}

type DepartmentSource interface {
	GetAll() ([]*departmentDatamodel.Department, error)
}

// Generator fetches the current snapshot from the record models and renders
// it. The clock is injectable so the generation footer is testable.
type Generator struct {
	employees   EmployeeSource
	departments DepartmentSource
	logger      *slog.Logger
	now         func() time.Time
}

func NewGenerator(employees EmployeeSource, departments DepartmentSource, logger *slog.Logger) *Generator {
	return &Generator{
		employees:   employees,
		departments: departments,
		logger:      logger,
		now:         time.Now,
	}
}

// Generate fetches employees, departments and statistics and renders the
// full text report.
func (g *Generator) Generate() (string, error) {
	employees, err := g.employees.GetAll()
	if err != nil {
		return "", err
	}
	departments, err := g.departments.GetAll()
	if err != nil {
		return "", err
	}
	stats := g.employees.GetStatistics()

	return BuildReport(employees, departments, stats, g.now()), nil
}

// BuildReport is the pure transform: header, statistics block,
// per-department employee counts, fixed-width employee and department
// listings, and the generation timestamp.
func BuildReport(
	employees []*employeeDatamodel.Employee,
	departments []*departmentDatamodel.Department,
	stats *employeeDatamodel.Statistics,
	generatedAt time.Time,
) string {
	var b strings.Builder
	line := strings.Repeat("=", reportWidth) + "\n"
	sep := strings.Repeat("-", reportWidth) + "\n"

	b.WriteString(line)
	b.WriteString(strings.Repeat(" ", 25) + "SMART RECORDS SYSTEM REPORT\n")
	b.WriteString(line)
	b.WriteString("\n")

	b.WriteString("SUMMARY STATISTICS\n")
	b.WriteString(sep)
	fmt.Fprintf(&b, "Total Employees: %d\n", stats.TotalEmployees)
	fmt.Fprintf(&b, "Total Departments: %d\n", len(departments))
	if stats.TotalEmployees > 0 {
		fmt.Fprintf(&b, "Average Salary: $%s\n", formatMoney(stats.AvgSalary))
		fmt.Fprintf(&b, "Minimum Salary: $%s\n", formatMoney(stats.MinSalary))
		fmt.Fprintf(&b, "Maximum Salary: $%s\n", formatMoney(stats.MaxSalary))
		fmt.Fprintf(&b, "Total Salary Budget: $%s\n", formatMoney(stats.TotalSalary))
	}
	b.WriteString("\n" + line + "\n")

	b.WriteString("DEPARTMENT-WISE EMPLOYEE COUNT\n")
	b.WriteString(sep)
	for _, bucket := range countByDepartment(employees) {
		fmt.Fprintf(&b, "%s: %d employee(s)\n", bucket.Name, bucket.Count)
	}
	b.WriteString("\n" + line + "\n")

	b.WriteString("EMPLOYEE LISTING\n")
	b.WriteString(sep)
	if len(employees) > 0 {
		fmt.Fprintf(&b, "%-5s %-25s %-25s %-15s %-12s %-15s\n",
			"ID", "Name", "Email", "Position", "Salary", "Department")
		b.WriteString(sep)
		for _, emp := range employees {
			name := strings.TrimSpace(emp.FirstName + " " + emp.LastName)
			position := emp.Position
			if position == "" {
				position = "N/A"
			}
			salary := "N/A"
			if emp.Salary != 0 {
				salary = fmt.Sprintf("$%.2f", emp.Salary)
			}
			dept := emp.DepartmentName
			if dept == "" {
				dept = "N/A"
			}
			fmt.Fprintf(&b, "%-5d %-25s %-25s %-15s %-12s %-15s\n",
				emp.ID, name, emp.Email, position, salary, dept)
		}
	} else {
		b.WriteString("No employees found.\n")
	}
	b.WriteString("\n" + line + "\n")

	b.WriteString("DEPARTMENT LISTING\n")
	b.WriteString(sep)
	if len(departments) > 0 {
		fmt.Fprintf(&b, "%-5s %-30s %-40s\n", "ID", "Name", "Description")
		b.WriteString(sep)
		for _, dept := range departments {
			desc := dept.Description
			if desc == "" {
				desc = "N/A"
			}
			if len(desc) > 40 {
				desc = desc[:40]
			}
			fmt.Fprintf(&b, "%-5d %-30s %-40s\n", dept.ID, dept.Name, desc)
		}
	} else {
		b.WriteString("No departments found.\n")
	}

	b.WriteString("\n" + line)
	fmt.Fprintf(&b, "Report generated on: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(line)

	return b.String()
}

type departmentBucket struct {
	Name  string
	Count int
}

// countByDepartment groups employees by the joined department name,
// sorted alphabetically by bucket name.
func countByDepartment(employees []*employeeDatamodel.Employee) []departmentBucket {
	counts := make(map[string]int)
	for _, emp := range employees {
		name := emp.DepartmentName
		if name == "" {
			name = noDepartmentBucket
		}
		counts[name]++
	}

	buckets := make([]departmentBucket, 0, len(counts))
	for name, count := range counts {
		buckets = append(buckets, departmentBucket{Name: name, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Name < buckets[j].Name })
	return buckets
}

// formatMoney renders a salary with two decimals and thousands separators,
// e.g. 85000 -> "85,000.00".
func formatMoney(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + strings.Join(groups, ",") + fracPart
}
