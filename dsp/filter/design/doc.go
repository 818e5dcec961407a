// Package design computes IIR filter coefficients for the conditioning stage.
//
// Designs are returned as cascades of biquad sections consumable by
// dsp/filter/biquad. [EllipticBandpass] builds the minimum-order elliptic
// (Cauer) bandpass that meets passband and stopband tolerances, and
// [Notch] builds a second-order band-stop centred on a single frequency.
package design
