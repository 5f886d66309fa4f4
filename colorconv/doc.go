// Package colorconv holds the pure numeric transforms between colour spaces:
// 3x3 matrices, white points and Bradford adaptation, RGB models with their
// companding curves, and forward/reverse pairs for XYZ, xyY, Lab, Luv,
// Oklab, ICtCp, Jzazbz, the polar forms, HSB/HSL/HWB and HSLuv/HPLuv.
//
// Every function takes and returns plain triplets. Division by zero and NaN
// inputs propagate as NaN rather than failing.
package colorconv
