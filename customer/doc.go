// Package customer provides the DynamoDB data access layer for customer records.
//
// Customers live in a dedicated table keyed by (pk, sk) where pk is the
// customer id and sk is the fixed discriminator "C". A shared "common" table
// holds email lookup records keyed by ("L#"+email, "E") mapping back to the
// customer id.
//
// # Operations
//
// [Repository] exposes the full operation set:
//
//   - [Repository.Create] - transactional put of the customer and its email
//     lookup record, guarded against id and email collisions
//   - [Repository.Update] - profile refresh for active customers
//   - [Repository.Disable] / [Repository.Enable] - idempotent state toggle
//   - [Repository.Get] - point read with strict decoding
//   - [Repository.LookupID] - email to customer id resolution
//   - [Repository.List] - paginated full-table scan
//
// Every operation takes a context and runs as a single request against an
// injected [Client]; the repository holds no connection state of its own.
//
// # Errors
//
// Precondition failures surface as distinct sentinels so callers can tell
// them apart from transport errors, which propagate unchanged:
//
//   - [ErrNotFound] - no record at the requested key
//   - [ErrAlreadyExists] - create collided on the customer id
//   - [ErrEmailTaken] - create collided on the email lookup record
//   - [ErrNotActive] - update rejected because the record is missing or disabled
//
// A stored record that cannot be decoded yields a [*DecodeError] naming the
// offending attribute.
package customer
