// Package liststore provides SQLite-backed durable storage for list items.
//
// The store is a single table of items keyed by (author, message_reference):
//   - Writes are idempotent upserts: a second write with the same key
//     overwrites updated_at, closed_at, message and priority on the
//     existing row and leaves row_id, author, message_reference and
//     created_at untouched.
//   - Reads are fixed filtered scans in row_id (insertion) order.
//   - closed_at = 0 marks an item open; any positive value marks it closed.
//
// # Lifecycle
//
// A Store handle is bound to a path at construction and holds at most one
// live connection. Initialize creates the backing file and schema exactly
// once; New never creates files. Open and Close are an explicit pair, and
// With wraps them as a scope guard that closes on every return path.
// Memory-backed handles (MemoryPath) re-create their schema on every open
// because their storage dies with the connection.
//
// # Concurrency
//
// All data operations serialize on a single mutex scoped to the connection
// and hold it for their full duration. Writes are totally ordered by lock
// acquisition; a Get that acquires the lock after a Write releases it
// observes that write. There is no background writer: Write returns only
// after its statement has committed, so errors surface synchronously.
//
// Multiple callers share one handle only through a Registry, which keeps
// one long-lived open handle per store name for the life of the process.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
//   - one pooled connection (SQLite has a single writer anyway, and the
//     memory database only survives while its connection does)
package liststore
