// Package files manages files and directories under a designated root.
//
// Key responsibilities:
//   - Root path resolution: tilde expansion, absolute paths kept as-is,
//     relative member paths joined with the manager root.
//   - Single-step mutations (create, delete, rename, move, atomic write)
//     that wrap the underlying OS error; no transactionality beyond what
//     the filesystem call itself provides.
//   - Filtered listing (extension, recursion, full paths) in
//     directory-listing order, plus a lazy restartable Walk iterator.
//   - Permission helpers: tree-wide mode correction and rwx rendering.
//
// Operations are synchronous and share no state between calls. Callers
// serialize writes to the same path themselves, or opt into WithLocking to
// serialize mutations across processes sharing a root.
package files
