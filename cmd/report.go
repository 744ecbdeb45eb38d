package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/smart-records/internal/department"
	departmentMysql "github.com/frahmantamala/smart-records/internal/department/mysql"
	"github.com/frahmantamala/smart-records/internal/employee"
	employeeMysql "github.com/frahmantamala/smart-records/internal/employee/mysql"
	"github.com/frahmantamala/smart-records/internal/reports"

	"github.com/frahmantamala/smart-records/internal/database"
	"github.com/frahmantamala/smart-records/pkg/logger"
)

var (
	reportFormat string
	reportOutDir string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a system report",
	Long:  `Render the summary report. Text reports print to stdout unless --out is given; spreadsheets require --out.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := loadConfig(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(config.Environment)
		lg := logger.L()

		gateway := database.NewGateway(config.Database, lg)
		defer gateway.Close()

		employeeService := employee.NewService(employeeMysql.NewEmployeeRepository(gateway), lg)
		departmentService := department.NewService(departmentMysql.NewDepartmentRepository(gateway), lg)
		generator := reports.NewGenerator(employeeService, departmentService, lg)

		switch reportFormat {
		case "text":
			if reportOutDir == "" {
				report, err := generator.Generate()
				if err != nil {
					lg.Error("report generation failed", "error", err)
					os.Exit(1)
				}
				fmt.Print(report)
				return
			}
			path, err := generator.ExportText(reportOutDir)
			if err != nil {
				lg.Error("report export failed", "error", err)
				os.Exit(1)
			}
			lg.Info("report written", "path", path)
		case "xlsx":
			if reportOutDir == "" {
				fmt.Fprintln(os.Stderr, "--out is required for xlsx reports")
				os.Exit(1)
			}
			path, err := generator.ExportXLSX(reportOutDir)
			if err != nil {
				lg.Error("report export failed", "error", err)
				os.Exit(1)
			}
			lg.Info("report written", "path", path)
		default:
			fmt.Fprintf(os.Stderr, "unknown report format %q (want text or xlsx)\n", reportFormat)
			os.Exit(1)
		}
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "report format: text or xlsx")
	reportCmd.Flags().StringVar(&reportOutDir, "out", "", "directory to write the report file into")
}
