package layouts

import "sort"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title, site string) string {
	switch {
	case title == "":
		return site
	case site == "" || title == site:
		return title
	default:
		return title + " - " + site
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
