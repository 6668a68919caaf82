package pricing

// Table maps a service name to its unit price in rupees.
type Table map[string]int

// Default returns the studio's service price list. The table is built once
// at startup and never mutated, so it is safe to share across requests.
func Default() Table {
	return Table{
		"Traditional Photography":       5000,
		"Traditional Videography":       6000,
		"Candid Photography":            7000,
		"Cinematic Videography":         8000,
		"Drone":                         3000,
		"LED Screen":                    4000,
		"Candid Album - Pressbook":      6000,
		"Candid Album - Magnum":         8000,
		"Traditional Album - Pressbook": 5000,
		"Traditional Album - Magnum":    7000,
	}
}

// Lookup returns the unit price for a service, or 0 for unknown names.
// Unknown services simply contribute nothing to a line total.
func (t Table) Lookup(service string) int {
	return t[service]
}
