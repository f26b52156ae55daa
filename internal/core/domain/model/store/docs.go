// Package store provides the Store aggregate: a merchant location whose
// order feed can be linked to or unlinked from the dispatch console.
// Only linked stores may admit new orders.
package store
