/*
Package tracing funnels all tracing of this module through a global
core tracer.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Debugf traces a debug message to the global core tracer.
func Debugf(msg string, args ...interface{}) {
	gtrace.CoreTracer.Debugf(msg, args...)
}

// Infof traces an info message to the global core tracer.
func Infof(msg string, args ...interface{}) {
	gtrace.CoreTracer.Infof(msg, args...)
}

// Errorf traces an error message to the global core tracer.
func Errorf(msg string, args ...interface{}) {
	gtrace.CoreTracer.Errorf(msg, args...)
}

// P attaches a context parameter to the global core tracer.
func P(key string, val interface{}) tracing.Trace {
	return gtrace.CoreTracer.P(key, val)
}

// SetTestingLog redirects the global core tracer to the log of a testing.T,
// for the duration of the test.
func SetTestingLog(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(teardown)
}
