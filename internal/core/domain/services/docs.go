// Package services provides domain services that implement business logic
// spanning multiple aggregates.
//
// The package includes:
//   - MenuPricing: computes a menu's derived total from live product prices
//     and decides whether the menu may be displayed
//
// MenuPricing is the single place where menu prices and product prices meet.
// Every caller that needs the displayed-price invariant — menu creation, menu
// price changes, display toggling, and the cascade triggered by a product
// price change — goes through it, so the cross-aggregate coupling stays a
// single controlled trigger point.
package services
