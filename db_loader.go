package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pivolan/go_utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ColumnInfo struct {
	Name string
	Type string // Date DateTime64 Int64 Float64 String
}

// OpenSampleDB connects to the database that holds the cleaned monitoring
// table (MySQL protocol, works against ClickHouse's MySQL port too).
func OpenSampleDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to database: %v", err)
	}
	return db, nil
}

func getColumnAndTypeList(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	query := fmt.Sprintf("DESCRIBE TABLE %s", tableName)
	tx := db.Raw(query)
	if tx.Error != nil {
		return nil, tx.Error
	}

	var columns []ColumnInfo
	tx.Scan(&columns)

	return columns, nil
}

func IsNumericType(_type string) bool {
	return go_utils.InArray(_type, []string{"Int64", "Float64", "Nullable(Int64)", "Nullable(Float64)"})
}

// LoadSamplesFromTable reads the cleaned monitoring table: the two
// categorical columns plus every numeric column as a constituent. NULLs
// become missing measurements.
func LoadSamplesFromTable(db *gorm.DB, tableName, stationColumn, typeColumn string) ([]Sample, error) {
	columnsInfo, err := getColumnAndTypeList(db, tableName)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %v", tableName, err)
	}

	selected := []string{stationColumn, typeColumn}
	for _, columnInfo := range columnsInfo {
		if IsNumericType(columnInfo.Type) {
			selected = append(selected, columnInfo.Name)
		}
	}
	if len(selected) == 2 {
		return nil, fmt.Errorf("no numeric columns in %s", tableName)
	}

	sql := "SELECT " + strings.Join(selected, ",") + " FROM " + tableName
	results := []map[string]interface{}{}
	tx := db.Raw(sql)
	tx.Scan(&results)
	if tx.Error != nil {
		return nil, tx.Error
	}

	samples := make([]Sample, 0, len(results))
	for _, result := range results {
		s := Sample{
			Station:    fmt.Sprint(result[stationColumn]),
			SampleType: fmt.Sprint(result[typeColumn]),
			Values:     map[string]float64{},
		}
		for column, value := range result {
			if column == stationColumn || column == typeColumn {
				continue
			}
			if v, ok := toFloat(value); ok {
				s.Values[column] = v
			}
		}
		samples = append(samples, s)
	}

	fmt.Println("loaded samples:", len(samples), "from table", tableName)
	return samples, nil
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case int:
		return float64(v), true
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
