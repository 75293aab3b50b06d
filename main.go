package main

import (
	"fmt"
	"log"

	"github.com/pivolan/water_report/config"
)

func main() {
	fmt.Println("started")
	cfg := config.GetConfig()

	report := DefaultReportConfig()
	if cfg.OutputPath != "" {
		report.OutputPath = cfg.OutputPath
	}
	if cfg.HtmlPath != "" {
		report.HtmlPath = cfg.HtmlPath
	}
	if cfg.MarkdownPath != "" {
		report.MarkdownPath = cfg.MarkdownPath
	}

	var samples []Sample
	switch {
	case cfg.DbDsn != "" && cfg.SampleTable != "":
		db, err := OpenSampleDB(cfg.DbDsn)
		if err != nil {
			log.Fatalln(err)
		}
		samples, err = LoadSamplesFromTable(db, cfg.SampleTable, "station", "sample_type")
		if err != nil {
			log.Fatalln("cannot load samples from table:", err)
		}
	case cfg.DataPath != "":
		var err error
		samples, err = LoadSamples(cfg.DataPath, "station", "sample_type")
		if err != nil {
			log.Fatalln("cannot load samples:", err)
		}
	default:
		log.Fatalln("set DATA_PATH or DB_DSN with SAMPLE_TABLE")
	}

	if err := RunReport(samples, report); err != nil {
		log.Fatalln("report failed:", err)
	}
	fmt.Println("report saved:", report.OutputPath, "and", report.HtmlPath)
}
