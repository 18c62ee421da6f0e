// Package enginetest provides an instrumented engine.Engine for tests.
//
// Recorder wraps a real engine, counts every capability call and can inject
// failures or slow down context construction to widen race windows.
// RunParallel starts n goroutines behind a common start barrier so that
// callers hit the code under test at the same time.
//
// INTERNAL USE ONLY.
package enginetest
