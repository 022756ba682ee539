// Package biquad provides the second-order IIR section runtime used by the
// console character filters.
//
// A [Section] runs Direct Form II Transposed processing for one set of
// [Coefficients] and owns its two-value delay line. Block processing is
// dispatched once per process to the fastest registered kernel for the host
// CPU (see internal/kernel); every kernel evaluates the same recurrence as
// [Section.ProcessSample].
//
// Coefficient design lives in dsp/filter/design.
package biquad
