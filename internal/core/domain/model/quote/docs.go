// Package quote implements the time-bound commercial quote aggregate and its
// deliberately asymmetric expiration policy: the automated sweep can only
// expire quotes still in play, never documents with a decided outcome.
package quote
