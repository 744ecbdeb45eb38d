package reports

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	departmentDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/employee"
)

func TestReports(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Reports Module Suite")
}

type mockEmployeeSource struct {
	employees     []*employeeDatamodel.Employee
	stats         *employeeDatamodel.Statistics
	errorToReturn error
}

func (m *mockEmployeeSource) GetAll() ([]*employeeDatamodel.Employee, error) {
	if m.errorToReturn != nil {
		return nil, m.errorToReturn
	}
	return m.employees, nil
}

func (m *mockEmployeeSource) GetStatistics() *employeeDatamodel.Statistics {
	if m.stats != nil {
		return m.stats
	}
	return &employeeDatamodel.Statistics{}
}

type mockDepartmentSource struct {
	departments   []*departmentDatamodel.Department
	errorToReturn error
}

func (m *mockDepartmentSource) GetAll() ([]*departmentDatamodel.Department, error) {
	if m.errorToReturn != nil {
		return nil, m.errorToReturn
	}
	return m.departments, nil
}

func sampleEmployees() []*employeeDatamodel.Employee {
	return []*employeeDatamodel.Employee{
		{ID: 1, FirstName: "John", LastName: "Smith", Email: "john.smith@company.com", Position: "Senior Developer", Salary: 85000, DepartmentName: "Engineering"},
		{ID: 2, FirstName: "Sarah", LastName: "Johnson", Email: "sarah.johnson@company.com", Position: "Sales Manager", Salary: 95000, DepartmentName: "Sales"},
		{ID: 3, FirstName: "Emily", LastName: "Brown", Email: "emily.brown@company.com", Position: "Developer", Salary: 70000, DepartmentName: "Engineering"},
		{ID: 4, FirstName: "Mark", LastName: "Davis", Email: "mark.davis@company.com", Position: "", Salary: 0, DepartmentName: ""},
	}
}

func sampleDepartments() []*departmentDatamodel.Department {
	return []*departmentDatamodel.Department{
		{ID: 1, Name: "Engineering", Description: "Software development"},
		{ID: 2, Name: "Sales", Description: strings.Repeat("Sales and business development ", 3)},
		{ID: 3, Name: "Finance", Description: ""},
	}
}

func sampleStats() *employeeDatamodel.Statistics {
	return &employeeDatamodel.Statistics{
		TotalEmployees: 4,
		AvgSalary:      62500,
		MinSalary:      0,
		MaxSalary:      95000,
		TotalSalary:    250000,
	}
}

var fixedTime = time.Date(2025, 6, 15, 14, 30, 45, 0, time.UTC)

var _ = ginkgo.Describe("BuildReport", func() {
	var report string

	ginkgo.BeforeEach(func() {
		report = BuildReport(sampleEmployees(), sampleDepartments(), sampleStats(), fixedTime)
	})

	ginkgo.It("should frame the title between full-width rules", func() {
		lines := strings.Split(report, "\n")
		gomega.Expect(lines[0]).To(gomega.Equal(strings.Repeat("=", 80)))
		gomega.Expect(lines[1]).To(gomega.Equal(strings.Repeat(" ", 25) + "SMART RECORDS SYSTEM REPORT"))
		gomega.Expect(lines[2]).To(gomega.Equal(strings.Repeat("=", 80)))
	})

	ginkgo.It("should render the summary statistics with formatted money", func() {
		gomega.Expect(report).To(gomega.ContainSubstring("Total Employees: 4"))
		gomega.Expect(report).To(gomega.ContainSubstring("Total Departments: 3"))
		gomega.Expect(report).To(gomega.ContainSubstring("Average Salary: $62,500.00"))
		gomega.Expect(report).To(gomega.ContainSubstring("Maximum Salary: $95,000.00"))
		gomega.Expect(report).To(gomega.ContainSubstring("Total Salary Budget: $250,000.00"))
	})

	ginkgo.It("should count employees per department with a bucket for the unassigned", func() {
		gomega.Expect(report).To(gomega.ContainSubstring("Engineering: 2 employee(s)"))
		gomega.Expect(report).To(gomega.ContainSubstring("Sales: 1 employee(s)"))
		gomega.Expect(report).To(gomega.ContainSubstring("No Department: 1 employee(s)"))
	})

	ginkgo.It("should list the department buckets alphabetically", func() {
		engIdx := strings.Index(report, "Engineering: 2")
		noDeptIdx := strings.Index(report, "No Department: 1")
		salesIdx := strings.Index(report, "Sales: 1")
		gomega.Expect(engIdx).To(gomega.BeNumerically("<", noDeptIdx))
		gomega.Expect(noDeptIdx).To(gomega.BeNumerically("<", salesIdx))
	})

	ginkgo.It("should render fixed-width employee rows", func() {
		expected := fmt.Sprintf("%-5d %-25s %-25s %-15s %-12s %-15s",
			1, "John Smith", "john.smith@company.com", "Senior Developer", "$85000.00", "Engineering")
		gomega.Expect(report).To(gomega.ContainSubstring(expected))
	})

	ginkgo.It("should substitute N/A for absent position, salary and department", func() {
		expected := fmt.Sprintf("%-5d %-25s %-25s %-15s %-12s %-15s",
			4, "Mark Davis", "mark.davis@company.com", "N/A", "N/A", "N/A")
		gomega.Expect(report).To(gomega.ContainSubstring(expected))
	})

	ginkgo.It("should truncate long department descriptions to 40 characters", func() {
		longDesc := strings.Repeat("Sales and business development ", 3)
		gomega.Expect(report).To(gomega.ContainSubstring(longDesc[:40]))
		gomega.Expect(report).ToNot(gomega.ContainSubstring(longDesc[:41]))
	})

	ginkgo.It("should stamp the generation time", func() {
		gomega.Expect(report).To(gomega.ContainSubstring("Report generated on: 2025-06-15 14:30:45"))
	})

	ginkgo.Context("with no employees", func() {
		ginkgo.It("should omit the salary lines and print the empty-listing message", func() {
			// When
			empty := BuildReport(nil, sampleDepartments(), &employeeDatamodel.Statistics{}, fixedTime)

			// Then
			gomega.Expect(empty).To(gomega.ContainSubstring("Total Employees: 0"))
			gomega.Expect(empty).ToNot(gomega.ContainSubstring("Average Salary"))
			gomega.Expect(empty).To(gomega.ContainSubstring("No employees found."))
		})
	})

	ginkgo.Context("with no departments", func() {
		ginkgo.It("should print the empty-listing message", func() {
			// When
			empty := BuildReport(sampleEmployees(), nil, sampleStats(), fixedTime)

			// Then
			gomega.Expect(empty).To(gomega.ContainSubstring("No departments found."))
		})
	})
})

var _ = ginkgo.Describe("Generator", func() {
	var (
		generator *Generator
		empSource *mockEmployeeSource
		depSource *mockDepartmentSource
	)

	ginkgo.BeforeEach(func() {
		empSource = &mockEmployeeSource{employees: sampleEmployees(), stats: sampleStats()}
		depSource = &mockDepartmentSource{departments: sampleDepartments()}
		generator = NewGenerator(empSource, depSource, slog.New(slog.NewTextHandler(io.Discard, nil)))
		generator.now = func() time.Time { return fixedTime }
	})

	ginkgo.Describe("Generate", func() {
		ginkgo.It("should render the snapshot from both sources", func() {
			// When
			report, err := generator.Generate()

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(report).To(gomega.ContainSubstring("SMART RECORDS SYSTEM REPORT"))
			gomega.Expect(report).To(gomega.ContainSubstring("Report generated on: 2025-06-15 14:30:45"))
		})

		ginkgo.It("should propagate a listing failure", func() {
			// Given
			empSource.errorToReturn = errors.New("database error")

			// When
			report, err := generator.Generate()

			// Then
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(report).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("Workbook", func() {
		ginkgo.It("should build the three sheets", func() {
			// When
			f, err := generator.Workbook()

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(f.GetSheetList()).To(gomega.ConsistOf("Summary", "Employees", "Departments"))

			title, err := f.GetCellValue("Summary", "A1")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(title).To(gomega.Equal("Smart Records System Report"))

			email, err := f.GetCellValue("Employees", "D2")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(email).To(gomega.Equal("john.smith@company.com"))
		})

		ginkgo.It("should cap the employee sheet and note the overflow", func() {
			// Given 55 employees
			many := make([]*employeeDatamodel.Employee, 0, 55)
			for i := 1; i <= 55; i++ {
				many = append(many, &employeeDatamodel.Employee{
					ID:        int64(i),
					FirstName: fmt.Sprintf("First%02d", i),
					LastName:  fmt.Sprintf("Last%02d", i),
					Email:     fmt.Sprintf("emp%02d@company.com", i),
				})
			}
			empSource.employees = many

			// When
			f, err := generator.Workbook()

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			last, err := f.GetCellValue("Employees", "A51")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(last).To(gomega.Equal("50"))

			note, err := f.GetCellValue("Employees", "B52")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(note).To(gomega.Equal("...and 5 more employees"))

			beyond, err := f.GetCellValue("Employees", "A53")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(beyond).To(gomega.BeEmpty())
		})
	})
})

var _ = ginkgo.Describe("formatMoney", func() {
	ginkgo.It("should group thousands and keep two decimals", func() {
		gomega.Expect(formatMoney(85000)).To(gomega.Equal("85,000.00"))
		gomega.Expect(formatMoney(1234567.5)).To(gomega.Equal("1,234,567.50"))
		gomega.Expect(formatMoney(999.99)).To(gomega.Equal("999.99"))
		gomega.Expect(formatMoney(0)).To(gomega.Equal("0.00"))
	})

	ginkgo.It("should keep the sign in front of the groups", func() {
		gomega.Expect(formatMoney(-85000)).To(gomega.Equal("-85,000.00"))
	})
})
