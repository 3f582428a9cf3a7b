package Sets

// Set is a collection of distinct elements. Put and Remove report whether the set changed.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	//Range calls f on every element until f returns false.
	Range(f func(E) bool)
}
