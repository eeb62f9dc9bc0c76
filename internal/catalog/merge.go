package catalog

// mergeWithPriority returns all of primary followed by every secondary element
// whose key is not already taken. Elements with a zero key never join from
// secondary. Order within each input is preserved; duplicates inside secondary
// itself are dropped after the first occurrence.
func mergeWithPriority[T any, K comparable](primary, secondary []T, key func(T) K) []T {
	var zero K
	seen := make(map[K]struct{}, len(primary))
	for _, item := range primary {
		if k := key(item); k != zero {
			seen[k] = struct{}{}
		}
	}

	merged := make([]T, 0, len(primary)+len(secondary))
	merged = append(merged, primary...)
	for _, item := range secondary {
		k := key(item)
		if k == zero {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		merged = append(merged, item)
	}
	return merged
}
