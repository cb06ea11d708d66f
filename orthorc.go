/*
Package orthorc computes the three-term recurrence coefficients of orthogonal polynomials from
the moments of their measure. It provides the Golub-Welsch, Stieltjes, Chebyshev and modified
Chebyshev algorithms, Gautschi's determinant based check, and runs every algorithm over double
precision, exact rational or arbitrary precision arithmetic.
*/
package orthorc
