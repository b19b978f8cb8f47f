// Package host holds the Host aggregate: a person in an origin country who receives,
// photographs and forwards customers' items. A host's order set is its current load.
package host
