// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain]. Steady-state delay-line values ([Coefficients.SteadyState],
// [Chain.SteadyState]) let callers start a filter without a step transient,
// which the zero-phase filter in dsp/filter/zerophase relies on.
//
// Coefficient design lives in dsp/filter/design.
package biquad
