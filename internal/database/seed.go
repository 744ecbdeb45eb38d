package database

import (
	"github.com/frahmantamala/smart-records/internal/auth"
)

// DefaultAdminUsername and DefaultAdminPassword are the seeded first-run
// account. Documented weakness: any real deployment must change this
// password immediately.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

type seedDepartment struct {
	Name        string
	Description string
}

type seedEmployee struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Position  string
	Salary    float64
	DeptIndex int // index into the seeded department list, -1 for none
	HireDate  string
}

var seedDepartments = []seedDepartment{
	{"Human Resources", "Manages employee relations, recruitment, and benefits"},
	{"Information Technology", "Handles software development, infrastructure, and technical support"},
	{"Sales", "Responsible for customer acquisition and revenue generation"},
	{"Marketing", "Manages brand promotion, advertising, and market research"},
	{"Finance", "Handles accounting, budgeting, and financial planning"},
	{"Operations", "Manages daily operations and services"},
	{"Quality Assurance", "Ensures quality standards and compliance monitoring"},
	{"Research & Development", "Product development and innovation"},
	{"Customer Service", "Customer support and service management"},
	{"Executive Management", "Executive leadership and strategic planning"},
}

var seedEmployees = []seedEmployee{
	{"Ahmed", "Mohammed", "ahmed.mohammed@company.com", "555-0101", "HR Manager", 85000, 0, "2019-03-15"},
	{"Fatima", "Ali", "fatima.ali@company.com", "555-0102", "Software Engineer", 90000, 1, "2018-07-01"},
	{"Khalid", "Hassan", "khalid.hassan@company.com", "555-0103", "Sales Representative", 65000, 2, "2020-05-10"},
	{"Mariam", "Ibrahim", "mariam.ibrahim@company.com", "555-0104", "Marketing Specialist", 70000, 3, "2020-11-20"},
	{"Youssef", "Abdullah", "youssef.abdullah@company.com", "555-0105", "Financial Analyst", 75000, 4, "2021-02-05"},
	{"Sara", "Ahmed", "sara.ahmed@company.com", "555-0106", "Senior Developer", 100000, 1, "2017-09-12"},
	{"Omar", "Mahmoud", "omar.mahmoud@company.com", "555-0107", "Sales Manager", 85000, 2, "2019-06-18"},
	{"Nora", "Saeed", "nora.saeed@company.com", "555-0108", "HR Coordinator", 60000, 0, "2022-03-14"},
	{"Abdulrahman", "Ali", "abdulrahman.ali@company.com", "555-0109", "Operations Manager", 95000, 5, "2018-04-22"},
	{"Layla", "Mohammed", "layla.mohammed@company.com", "555-0110", "Quality Specialist", 72000, 6, "2020-08-30"},
	{"Tariq", "Hussein", "tariq.hussein@company.com", "555-0111", "Development Engineer", 88000, 7, "2019-12-10"},
	{"Zeinab", "Omar", "zeinab.omar@company.com", "555-0112", "Customer Service Specialist", 58000, 8, "2021-07-25"},
	{"Mustafa", "Ahmed", "mustafa.ahmed@company.com", "555-0113", "Development Manager", 110000, 7, "2016-11-05"},
	{"Hind", "Khalid", "hind.khalid@company.com", "555-0114", "Marketing Manager", 92000, 3, "2018-09-15"},
	{"Salem", "Abdullah", "salem.abdullah@company.com", "555-0115", "Accountant", 68000, 4, "2020-01-20"},
	{"Nasser", "Ali", "nasser.ali@company.com", "555-0116", "Senior Sales Representative", 72000, 2, "2019-10-12"},
	{"Reem", "Hassan", "reem.hassan@company.com", "555-0118", "HR Specialist", 64000, 0, "2021-04-18"},
	{"Waleed", "Ibrahim", "waleed.ibrahim@company.com", "555-0119", "Quality Manager", 89000, 6, "2018-02-28"},
	{"Dana", "Mahmoud", "dana.mahmoud@company.com", "555-0120", "Service Manager", 78000, 8, "2020-06-14"},
	{"Badr", "Saeed", "badr.saeed@company.com", "555-0121", "Software Engineer", 82000, 1, "2019-08-22"},
	{"Lina", "Hussein", "lina.hussein@company.com", "555-0122", "Senior Financial Analyst", 80000, 4, "2018-12-05"},
	{"Abdullah", "Omar", "abdullah.omar@company.com", "555-0123", "Executive Manager", 120000, 9, "2015-03-10"},
	{"Mona", "Ahmed", "mona.ahmed@company.com", "555-0124", "Development Specialist", 76000, 7, "2020-10-30"},
	{"Faisal", "Khalid", "faisal.khalid@company.com", "555-0125", "Regional Sales Manager", 98000, 2, "2017-07-20"},
}

// seed populates empty tables with the fixed first-run data: one admin
// account, the department list, and the employees distributed across them.
// Non-empty tables are left untouched.
func (g *Gateway) seed() error {
	if err := g.seedAdminUser(); err != nil {
		return err
	}
	return g.seedRecords()
}

func (g *Gateway) seedAdminUser() error {
	count, err := g.countRows("users")
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := g.RunUpdate(
		"INSERT INTO users (username, password) VALUES (?, ?)",
		DefaultAdminUsername, auth.HashPassword(DefaultAdminPassword),
	); err != nil {
		return err
	}
	g.logger.Info("seeded default admin account", "username", DefaultAdminUsername)
	return nil
}

func (g *Gateway) seedRecords() error {
	count, err := g.countRows("departments")
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, d := range seedDepartments {
		if _, err := g.RunUpdate(
			"INSERT INTO departments (name, description) VALUES (?, ?)",
			d.Name, d.Description,
		); err != nil {
			return err
		}
	}

	rows, err := g.RunQuery("SELECT id FROM departments ORDER BY id")
	if err != nil {
		return err
	}
	deptIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		deptIDs = append(deptIDs, row.Int64("id"))
	}

	for _, e := range seedEmployees {
		var deptID any
		if e.DeptIndex >= 0 && e.DeptIndex < len(deptIDs) {
			deptID = deptIDs[e.DeptIndex]
		}
		if _, err := g.RunUpdate(
			`INSERT INTO employees (first_name, last_name, email, phone, position, salary, department_id, hire_date)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.FirstName, e.LastName, e.Email, e.Phone, e.Position, e.Salary, deptID, e.HireDate,
		); err != nil {
			return err
		}
	}

	g.logger.Info("seeded sample records",
		"departments", len(seedDepartments), "employees", len(seedEmployees))
	return nil
}

func (g *Gateway) countRows(table string) (int64, error) {
	// table names here come from the fixed seed lists, never from input
	rows, err := g.RunQuery("SELECT COUNT(*) AS count FROM " + table)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Int64("count"), nil
}
