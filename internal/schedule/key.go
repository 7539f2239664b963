package schedule

import "fmt"

// CacheKey identifies one month of cached prayer times. Every parameter that
// changes the provider's output is part of the key, so two configurations
// that differ in any of them never share a cached month.
type CacheKey struct {
	Year         int
	Month        int
	Location     string
	Method       int
	School       int
	MidnightMode int
	Shafaq       string
}

// String renders the key for the underlying key-value store.
func (k CacheKey) String() string {
	return fmt.Sprintf("prayer_times:%04d-%02d:%s:%d:%d:%d:%s",
		k.Year, k.Month, k.Location, k.Method, k.School, k.MidnightMode, k.Shafaq)
}
