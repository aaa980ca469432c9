// Package kernel provides the shared value objects of the sales order domain.
//
// The package includes:
//   - UUID: identity value object for aggregates and entities
//   - Currency: validated ISO 4217 currency code
//   - Money: immutable amount+currency pair with mismatch-safe arithmetic
//   - Timestamp: validated point in time, never zero and never in the future
//
// All types follow the constructor-guard pattern: zero values are invalid,
// instances are created through factory functions, and Validate() detects
// improperly constructed values. Value objects are immutable and compared
// by value, making them safe to share across aggregates.
package kernel
