package collection

// MergeHeaders applies updates over existing, in order: an update with
// an empty value removes the key, a matching key is overwritten, a new
// key is appended. An empty value for an absent key is a no-op. The
// inputs are not modified. Duplicate keys in existing collapse to the
// last occurrence.
func MergeHeaders(existing, updates []Header) []Header {
	merged := make([]Header, 0, len(existing)+len(updates))
	index := make(map[string]int, len(existing))

	for _, h := range existing {
		if i, ok := index[h.Key]; ok {
			merged[i].Value = h.Value
			continue
		}
		index[h.Key] = len(merged)
		merged = append(merged, h)
	}

	for _, u := range updates {
		i, ok := index[u.Key]
		switch {
		case ok && u.Value == "":
			merged = append(merged[:i], merged[i+1:]...)
			delete(index, u.Key)
			for k, j := range index {
				if j > i {
					index[k] = j - 1
				}
			}
		case ok:
			merged[i].Value = u.Value
		case u.Value == "":
			// deleting an absent key is a no-op
		default:
			index[u.Key] = len(merged)
			merged = append(merged, u)
		}
	}

	return merged
}
