package repository

import (
	"fmt"
	"strings"
)

// createHeaderMap creates a map of column names to their indices
func createHeaderMap(header []string, expectedHeader []string) (map[string]int, error) {
	columnMap := make(map[string]int)

	for _, column := range expectedHeader {
		found := false
		for i, field := range header {
			if strings.EqualFold(column, strings.TrimSpace(field)) {
				columnMap[column] = i
				found = true
				break
			}
		}

		if !found {
			return nil, fmt.Errorf("required field '%s' not found in CSV header", column)
		}
	}

	return columnMap, nil
}

// maxColumn returns the highest column index the mapping needs
func maxColumn(columnMap map[string]int) int {
	maxIndex := -1
	for _, idx := range columnMap {
		if idx > maxIndex {
			maxIndex = idx
		}
	}
	return maxIndex
}
