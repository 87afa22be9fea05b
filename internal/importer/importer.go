// Package importer reads balcony guide polylines from external files: CSV
// point lists and DXF drawings. It supports automatic delimiter detection
// and collects row-level errors and warnings instead of failing fast.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// ImportResult holds the results of a guide import operation.
type ImportResult struct {
	Guide    model.Guide
	Errors   []string
	Warnings []string
}

// headerAliases maps the two coordinate roles to their accepted column
// headers (all lowercase).
var headerAliases = map[string][]string{
	"x": {"x", "x_mm", "x (mm)", "east"},
	"y": {"y", "y_mm", "y (mm)", "north"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter
// that produces the most consistent multi-column row count wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// detectColumns examines a header row and returns the x/y column indices.
// Returns positional defaults (0, 1) and false when no header was found.
func detectColumns(row []string) (xCol, yCol int, isHeader bool) {
	xCol, yCol = -1, -1
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for _, alias := range headerAliases["x"] {
			if normalized == alias && xCol == -1 {
				xCol = i
				isHeader = true
			}
		}
		for _, alias := range headerAliases["y"] {
			if normalized == alias && yCol == -1 {
				yCol = i
				isHeader = true
			}
		}
	}
	if !isHeader {
		return 0, 1, false
	}
	return xCol, yCol, true
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportGuideCSV imports a guide polyline from a CSV file of x,y rows.
// It automatically detects the delimiter and maps columns by header names.
func ImportGuideCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	return importGuideFromReader(bytes.NewReader(data), delimiter, result.Warnings)
}

// ImportGuideCSVFromReader imports a guide from a CSV reader with a known
// delimiter. This is useful for testing.
func ImportGuideCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	return importGuideFromReader(reader, delimiter, nil)
}

func importGuideFromReader(reader io.Reader, delimiter rune, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	xCol, yCol, hasHeader := detectColumns(records[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
		if xCol == -1 || yCol == -1 {
			result.Errors = append(result.Errors, "Required columns not found in header: need both X and Y")
			return result
		}
	}

	for i := startRow; i < len(records); i++ {
		row := records[i]
		if isEmptyRow(row) {
			continue
		}

		lineNum := i + 1
		xStr := getCell(row, xCol)
		yStr := getCell(row, yCol)
		if xStr == "" || yStr == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Missing coordinate value", lineNum))
			continue
		}

		x, err := strconv.ParseFloat(xStr, 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Invalid x '%s'", lineNum, xStr))
			continue
		}
		y, err := strconv.ParseFloat(yStr, 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Invalid y '%s'", lineNum, yStr))
			continue
		}

		result.Guide = append(result.Guide, model.Point2D{X: x, Y: y})
	}

	if result.Guide.EdgeCount() == 0 {
		result.Errors = append(result.Errors, "Guide needs at least two points")
	}

	return result
}
