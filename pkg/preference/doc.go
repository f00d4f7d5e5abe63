// Package preference persists the visitor's explicit locale choice.
//
// A preference exists only after the visitor toggled the locale. It never
// expires and this package never deletes it. Values read back are validated:
// anything other than "en" or "kr" is reported as ErrNotFound, exactly as if
// nothing had been stored.
//
// Three stores share the Store interface:
//
//   - MemoryStore keeps the value for the lifetime of the process.
//   - FileStore writes a small JSON document per profile under the user
//     configuration directory, so the choice survives restarts.
//   - RedisStore keeps one key per profile in Redis, without a TTL.
//
// Every store uses the fixed key Key.
package preference
