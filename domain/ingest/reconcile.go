package ingest

// reconcile.go holds the storage-independent core of the conflict classifier:
// given the records already known (from the store or from earlier rows of the
// same batch) and a candidate batch, split the batch into rows to insert,
// identical duplicates, and conflicting duplicates.

type reconcileResult[R any] struct {
	toInsert   []R
	duplicates []R
	conflicts  []R
}

/*
reconcile classifies each batch record by its natural duplicate key.

	known maps key to the prior record; it is extended in place as new records
	are accepted, so later rows of the batch dedup against earlier ones;
	key computes the natural duplicate key of a record;
	equal reports whether two records with the same key carry identical values,
	treating absent as equal to absent; pass nil when any key repeat counts as
	an identical duplicate regardless of values (one-to-one entities).
*/
func reconcile[K comparable, R any](known map[K]R, batch []R, key func(R) K, equal func(a, b R) bool) reconcileResult[R] {
	result := reconcileResult[R]{}
	for _, record := range batch {
		k := key(record)
		prior, seen := known[k]
		if !seen {
			known[k] = record
			result.toInsert = append(result.toInsert, record)
			continue
		}
		if equal == nil || equal(prior, record) {
			result.duplicates = append(result.duplicates, record)
			continue
		}
		result.conflicts = append(result.conflicts, record)
	}
	return result
}
