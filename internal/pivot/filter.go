package pivot

import "strings"

// ApplyFilters drops every row that fails the field -> allowed-values map:
// AND semantics across fields, OR semantics within one field's value list.
// Values are compared as trimmed strings. A row with no value for a filtered
// field survives only if the allowed values contain the "(empty)" sentinel or
// the empty string.
//
// excludeField, when non-empty, removes that key before evaluation; this is
// what lets a dropdown ask which values its own field may take under the
// other active filters. Filter fields unknown to the rows' projection are
// ignored rather than erroring.
func ApplyFilters(rows []Row, filters map[string][]string, excludeField string) []Row {
	if len(filters) == 0 {
		return rows
	}
	active := make(map[string][]string, len(filters))
	for field, allowed := range filters {
		if field != excludeField {
			active[field] = allowed
		}
	}
	if len(active) == 0 {
		return rows
	}

	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if matchesFilters(r, active) {
			out = append(out, r)
		}
	}
	return out
}

func matchesFilters(r Row, active map[string][]string) bool {
	for field, allowed := range active {
		if !r.HasField(field) {
			continue
		}
		value, present := r.FieldValue(field)
		if present {
			if !containsTrimmed(allowed, strings.TrimSpace(value)) {
				return false
			}
		} else {
			if !containsTrimmed(allowed, EmptySentinel) && !containsTrimmed(allowed, "") {
				return false
			}
		}
	}
	return true
}

func containsTrimmed(values []string, want string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == want {
			return true
		}
	}
	return false
}
