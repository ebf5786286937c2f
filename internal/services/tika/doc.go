// Package tika talks to an Apache Tika server over its REST interface.
//
// Every call uploads the raw bytes of a local file and returns the server's
// response body. Calls are one-shot: no retries and no client-side timeout,
// so cancellation only comes from the caller's context.
package tika
