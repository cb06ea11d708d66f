/*
Package recurrence computes the coefficients (alpha_k, beta_k) of the monic three-term
recurrence

	p_{k+1}(x) = (x - alpha_k) p_k(x) - beta_k p_{k-1}(x),  p_{-1} = 0, p_0 = 1,

of the orthogonal polynomials of a measure, from its moments, its modified moments or an
exact integration oracle. beta_0 is, by convention, the total mass of the measure.

The algorithms are generic over an arith.Field and run unchanged in double precision
(arith.Float64), exact rational arithmetic (arith.Rational) and arbitrary precision
(arith.BigFloat):

  - GolubWelsch: Cholesky factorization of the Hankel moment matrix. Numerically unstable,
    in double precision it breaks down after a handful of coefficients.
  - Stieltjes: discretization-free Stieltjes procedure on top of an exact Integrator.
    The degree of the polynomials grows with each step, only use it with exact fields
    and small counts.
  - Chebyshev, ChebyshevModified: the O(n^2) (modified) Chebyshev algorithm. More robust
    than GolubWelsch, but the map from moments to coefficients remains ill-conditioned
    when the input moments are: raw moments of measures on [-1, 1] lose about one decimal
    digit per coefficient in double precision, modified moments w.r.t. a well chosen
    reference system do much better.
  - GautschiTest3: recomputes the coefficients from Hankel determinants and reports the
    elementwise discrepancy of a candidate set of coefficients.

Malformed input fails fast with ErrMomentsParity, ErrMomentsLength, ErrReferenceLength,
ErrLengthMismatch or, when an entry read by the algorithm is the undefined sentinel of
the field, ErrUndefinedMoment. Input that does not stem from a positive measure, or that rounding made
indistinguishable from such, fails with ErrIllConditioned. No algorithm ever clamps or
substitutes a value.

References:

  - G. H. Golub and J. H. Welsch, Calculation of Gauss Quadrature Rules,
    Mathematics of Computation, Vol. 23, No. 106 (1969), pp. 221-230.
  - W. Gautschi, Algorithm 726: ORTHPOL, ACM TOMS, Vol. 20, No. 1 (1994), pp. 21-62.
  - W. Gautschi, How and how not to check Gaussian quadrature formulae,
    BIT Numerical Mathematics, Vol. 23, No. 2 (1983), pp. 209-216.
*/
package recurrence
