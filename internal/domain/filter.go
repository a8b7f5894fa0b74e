package domain

import "strings"

// CategoryAll is the "all categories" selector token.
const CategoryAll = "Todos"

// FilterProducts returns the order-preserving subsequence of list whose name
// contains query case-insensitively and whose category matches the selected
// one (or the CategoryAll sentinel). Pure: no side effects, no reordering.
func FilterProducts(list []Product, query, category string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0, len(list))
	for _, p := range list {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
