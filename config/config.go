package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	DbDsn        string // optional: load the cleaned sample table from a database instead of CSV
	SampleTable  string // table name when DbDsn is set
	DataPath     string // path to the cleaned samples CSV (possibly zip/gz/lz4 archived)
	OutputPath   string // destination of the SVG report document
	HtmlPath     string // destination of the interactive companion page
	MarkdownPath string // destination of the markdown median summary
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton config instance
func GetConfig() *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil {
			log.Println("no .env file, using environment as is")
		}

		config = &Config{
			DbDsn:        os.Getenv("DB_DSN"),
			SampleTable:  os.Getenv("SAMPLE_TABLE"),
			DataPath:     os.Getenv("DATA_PATH"),
			OutputPath:   os.Getenv("OUTPUT_PATH"),
			HtmlPath:     os.Getenv("HTML_PATH"),
			MarkdownPath: os.Getenv("MD_PATH"),
		}
	})
	return config
}
