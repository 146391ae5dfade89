package kana

// SelectPool returns every catalog entry whose script and category are both
// selected, preserving catalog order. Empty filter sets yield an empty pool.
func SelectPool(catalog []Entry, scripts map[Script]bool, categories map[Category]bool) []Entry {
	var pool []Entry
	for _, e := range catalog {
		if scripts[e.Script] && categories[e.Category] {
			pool = append(pool, e)
		}
	}
	return pool
}

// ByID materializes the entries for the given ids, preserving catalog order
// rather than the order of ids. Unknown ids are skipped.
func ByID(catalog []Entry, ids []string) []Entry {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Entry
	for _, e := range catalog {
		if want[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the catalog entry with the given id.
func Find(catalog []Entry, id string) (Entry, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
