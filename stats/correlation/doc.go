// Package correlation computes Pearson correlation over whole series and over
// a sliding window.
//
// NaN handling follows tabular-data conventions: [Pearson] drops every
// position where either series is NaN, while [Rolling] reports NaN for any
// window that holds a NaN or in which either series is constant.
package correlation
