package resolver

// CacheLen returns the number of entries in the current cache.
// This is exported for testing purposes only.
func (r *Resolver) CacheLen() int {
	return r.state.Load().cache.Len()
}
