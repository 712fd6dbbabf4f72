// Package fieldcheck validates every field of a value in one pass and reports
// all failures at once, keyed by dotted field path.
//
// A session starts with Of, runs a chain of checks and descents, and ends with
// one of the terminal calls. Every participant of a session writes into one
// shared Store, so nothing is lost when the chain descends into nested values.
//
// # Usage
//
//	err := fieldcheck.Map(
//		fieldcheck.Of(order).
//			Description("order: ").
//			StringNotEmpty("id", func(o *Order) string { return o.ID }).
//			CollectionIsNotEmpty("items", func(o *Order) any { return o.Items }),
//		"customer", func(o *Order) *Customer { return o.Customer },
//		func(c *fieldcheck.Validator[*Customer]) {
//			c.StringNotEmpty("email", func(c *Customer) string { return c.Email })
//		},
//	).Err()
//
// A violation on the customer email above is recorded under "customer.email".
//
// # Failure tolerance
//
// Extractors and predicates supplied by the caller never abort a session.
// An extractor that panics yields an absent value, and a predicate that panics
// counts as failed. Reaching through a nil pointer inside an extractor is
// therefore a normal way to express "this field is missing".
//
// An absent bound value (nil pointer, map, slice, interface) is never checked.
// Map and MapEach report an absent nested value as a NonNull violation at the
// descent path and do not call the nested callback.
//
// # Terminal calls
//
//   - HasViolations reports whether any check failed.
//   - Violations returns the raw path to messages map.
//   - FullErrorMessage renders "<description>[<path> <msg>, ...]".
//   - OrElse builds a caller-chosen error from FullErrorMessage.
//   - Err returns an *Error carrying the raw map.
//
// Both OrElse and Err return nil when the session is clean. Errors from Err
// match ErrValidationFailed with errors.Is, and so do errors from OrElse
// unless the factory supplies its own.
//
// # Description
//
// Description applies to the validator it is called on. Descendants copy the
// description when Map creates them, so set it before the first descent if
// it should appear in messages rendered from nested validators.
//
// # Concurrency
//
// A session is not safe for concurrent use. Validate independent parts in
// separate sessions and combine their reports with Violations.Merge or
// Validator.Merge.
package fieldcheck
