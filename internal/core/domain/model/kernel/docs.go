// Package kernel contains the shared value objects of the domain model:
// identifiers, geocoordinates and money. All types are immutable, created only
// through constructors, and validate themselves via the constructor-guard
// pattern so zero values are detectable.
package kernel
