// Package bridge runs each ticker call inside its own single-use scope.
//
// A scope is a fresh context, a fresh MarketData handle from the factory and a
// call id. Exactly one operation runs in it on a dedicated goroutine; the
// caller blocks until it finishes, then the scope is cancelled and the handle
// closed. Scopes are never reused or shared between calls.
//
// PerCall admits every call immediately. Pooled keeps the same per-call scope
// but bounds how many scopes may be open at once.
package bridge
