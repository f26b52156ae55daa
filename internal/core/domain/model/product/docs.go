// Package product provides the Product entity tracked per store for the
// restock forecast. Coverage estimates derive from on-hand stock and the
// trailing daily sales average.
package product
