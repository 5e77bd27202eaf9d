package main

import (
	"flag"
	"fmt"
	"log"

	"sustainability-dashboard/internal/entities"
	"sustainability-dashboard/internal/services"
	"sustainability-dashboard/pkg/config"
	"sustainability-dashboard/pkg/utils"
	"sustainability-dashboard/seeders"
)

// Проверка набора мок-данных перед запуском сервера.
func main() {
	log.Println("======================================================")
	log.Println("       🌱 ПРОВЕРКА НАБОРА МОК-ДАННЫХ                  ")
	log.Println("======================================================")

	file := flag.String("file", "", "YAML с набором данных (по умолчанию DATASET_FILE или встроенный набор)")
	summary := flag.Bool("summary", false, "Вывести KPI с производными показателями")
	flag.Parse()

	path := *file
	if path == "" {
		path = config.New().Dashboard.DatasetFile
	}

	ds, err := seeders.LoadDatasetFile(path)
	if err != nil {
		log.Fatalf("❌ Набор данных не прошёл проверку: %v", err)
	}

	source := path
	if source == "" {
		source = "встроенный"
	}
	log.Printf("✅ Набор данных корректен (%s): трендов %d, цехов %d, уведомлений %d",
		source, len(ds.Trend), len(ds.Departments), len(ds.Alerts))

	if !*summary {
		return
	}

	for _, m := range entities.AllMetrics() {
		kpi := ds.KPI(m)
		progress := services.ProgressPercentage(kpi)
		pct := "n/a"
		if progress.Defined {
			pct = fmt.Sprintf("%d%%", progress.Rounded())
		}
		log.Printf("  %-20s %10s / %-10s %-8s %-16s %-6s %s %s",
			m.Title(),
			utils.FormatNumber(kpi.Current),
			utils.FormatNumber(kpi.Target),
			kpi.Unit,
			kpi.Status,
			services.StatusColor(kpi.Status),
			services.TrendIndicator(kpi.Trend).Symbol,
			pct,
		)
	}
	if avg, ok := services.AveragePerformance(ds.Overall); ok {
		log.Printf("  Average Performance: %.0f%% of targets", avg)
	}
	log.Printf("  Critical/warning alerts: %d", services.AlertBadgeCount(ds.Alerts))
}
