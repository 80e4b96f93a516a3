// Package menu provides the catalog side of the restaurant domain.
//
// The package includes:
//   - MenuItem: An entity describing a dish available for ordering
//
// Key business rules:
//   - Menu items must have a name and a non-negative price
//   - The current catalog price is authoritative at order time; order lines
//     snapshot it and are never affected by later catalog changes
package menu
