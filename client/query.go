package client

import "net/url"

// queryString serializes the filter into a query string, keeping only
// non-empty fields. Returns "" when nothing is set.
func (f *EndpointFilter) queryString() string {
	if f == nil {
		return ""
	}

	params := url.Values{}
	if f.Name != "" {
		params.Set("name", f.Name)
	}
	if f.Fqdn != "" {
		params.Set("fqdn", f.Fqdn)
	}
	if f.OsType != "" {
		params.Set("osType", f.OsType)
	}
	if f.TenantID != "" {
		params.Set("tenantId", f.TenantID)
	}
	if f.PowerState != "" {
		params.Set("powerState", f.PowerState)
	}

	if encoded := params.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// applyPredicates narrows items to those matching every predicate. An empty
// result is a legitimate outcome, not an error.
func applyPredicates[T any](items []T, predicates []func(T) bool) []T {
	if len(predicates) == 0 {
		return items
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, pred := range predicates {
			if !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
