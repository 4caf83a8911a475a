package repository

// firstByName indexes rows by name, keeping the first row seen for each name.
// Callers pass rows ordered by id so the lowest id wins.
func firstByName[T any](rows []T, name func(T) string) map[string]T {
	result := make(map[string]T, len(rows))
	for _, row := range rows {
		if _, ok := result[name(row)]; !ok {
			result[name(row)] = row
		}
	}
	return result
}
