package service

// ViewCache caches rendered read models under a named path.
// A path groups every variant (query string, page) of one view.
//
// Readers take a Generation before loading from the store and hand it to Put.
// A Put whose generation predates a Revalidate of the same path is dropped,
// so a load that raced a mutation never repopulates the cache with stale data.
type ViewCache interface {
	// Get returns the cached value for path and variant.
	Get(path, variant string) (any, bool)

	// Generation returns the current revalidation clock.
	Generation() uint64

	// Put stores value for path and variant unless path was revalidated after generation.
	Put(path, variant string, generation uint64, value any)

	// Revalidate drops every variant cached under path.
	Revalidate(path string)
}
