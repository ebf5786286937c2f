// Package ledger persists batch runs and their per-file outcomes in SQLite.
//
// A run is opened with BeginRun, which takes an advisory file lock next to the
// database so only one batch records at a time, and closed with FinishRun.
// Readers such as the history command open the store without the lock.
package ledger
