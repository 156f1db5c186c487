package common

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	separators = regexp.MustCompile(`[\s\-]+`)
	disallowed = regexp.MustCompile(`[^a-z0-9_]+`)
)

// NormalizeHeaders maps raw source headers onto schema-comparable names:
// lower case, snake case, disallowed characters stripped. "Order ID" and
// "Sub-Category" become "order_id" and "sub_category"; headers already in
// schema form pass through unchanged. Duplicate results after
// normalization get a collision counter suffix so positions stay unique.
func NormalizeHeaders(rawHeaders []string) []string {
	normalized := make([]string, len(rawHeaders))

	counter := map[string]int{}
	for idx, item := range rawHeaders {
		item = strings.ToLower(strings.TrimSpace(item))
		item = separators.ReplaceAllString(item, "_")
		item = disallowed.ReplaceAllString(item, "")
		item = strings.Trim(item, "_")

		if len(item) == 0 {
			normalized[idx] = fmt.Sprintf("cl%d", idx)
			continue
		}

		counter[item]++
		if counter[item] == 1 {
			normalized[idx] = item
		} else {
			normalized[idx] = fmt.Sprintf("%s%d", item, counter[item])
		}
	}
	return normalized
}
