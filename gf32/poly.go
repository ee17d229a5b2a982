package gf32

import "strings"

// Poly is a polynomial over GF(32): an ordered sequence of coefficients,
// highest-degree first. Indexing past the end of the sequence yields the
// zero element.
type Poly []Fe

// At returns the i-th coefficient, or Zero if i is out of range.
func (p Poly) At(i int) Fe {
	if i < 0 || i >= len(p) {
		return Zero()
	}
	return p[i]
}

// MulByX multiplies p by x^n, i.e. appends n zero coefficients.
func (p Poly) MulByX(n int) Poly {
	ret := make(Poly, len(p), len(p)+n)
	copy(ret, p)
	for i := 0; i < n; i++ {
		ret = append(ret, Zero())
	}
	return ret
}

// MulByXThenAdd multiplies p by x and adds fe as the new low-order
// coefficient, i.e. appends fe.
func (p Poly) MulByXThenAdd(fe Fe) Poly {
	ret := make(Poly, len(p), len(p)+1)
	copy(ret, p)
	return append(ret, fe)
}

// ReduceMod performs long division of p by the generator polynomial gen,
// returning the residue as exactly len(gen) coefficients (trailing zeros
// are never trimmed: residue positions align with worksheet cells).
func (p Poly) ReduceMod(gen []Fe) Poly {
	acc := make(Poly, len(gen))
	for _, c := range p {
		top := acc[0]
		copy(acc, acc[1:])
		acc[len(acc)-1] = c
		for i := range acc {
			acc[i] = acc[i].Add(top.Mul(gen[i]))
		}
	}
	return acc
}

// CodexGenerator is the codex32 generator polynomial (length 13).
var CodexGenerator = Poly{
	FromIndex(25), FromIndex(27), FromIndex(17), FromIndex(8), FromIndex(0),
	FromIndex(25), FromIndex(25), FromIndex(25), FromIndex(31), FromIndex(27),
	FromIndex(24), FromIndex(16), FromIndex(16),
}

// BechGenerator is the bech32 generator polynomial (length 6).
var BechGenerator = Poly{
	FromIndex(29), FromIndex(22), FromIndex(20), FromIndex(21), FromIndex(29), FromIndex(18),
}

// CodexPolymod reduces p modulo the codex32 generator.
func (p Poly) CodexPolymod() Poly { return p.ReduceMod(CodexGenerator) }

// BechPolymod reduces p modulo the bech32 generator.
func (p Poly) BechPolymod() Poly { return p.ReduceMod(BechGenerator) }

// hrpPoly builds the padded HRP polynomial:
// [1, hi(s[0]), ..., hi(s[h-1]), 0, lo(s[0]), ..., lo(s[h-1])], padded with
// L trailing zeros, where hi/lo split each (lower-cased) HRP byte into its
// top three and bottom five bits.
func hrpPoly(hrp string, genLen int) Poly {
	hrp = strings.ToLower(hrp)
	p := make(Poly, 0, 1+2*len(hrp)+1+genLen)
	p = append(p, One())
	for i := 0; i < len(hrp); i++ {
		p = append(p, FromIndex(hrp[i]>>5))
	}
	p = append(p, Zero())
	for i := 0; i < len(hrp); i++ {
		p = append(p, FromIndex(hrp[i]&31))
	}
	for i := 0; i < genLen; i++ {
		p = append(p, Zero())
	}
	return p
}

// CodexHRPResidue computes the codex32 checksum residue contributed by an
// HRP, before any data characters are mixed in.
func CodexHRPResidue(hrp string) Poly {
	return hrpPoly(hrp, len(CodexGenerator)).CodexPolymod()
}

// BechHRPResidue computes the bech32 checksum residue contributed by an
// HRP, before any data characters are mixed in.
func BechHRPResidue(hrp string) Poly {
	return hrpPoly(hrp, len(BechGenerator)).BechPolymod()
}

// Symbols renders p as its upper-case alphabet character sequence.
func (p Poly) Symbols() string {
	b := make([]byte, len(p))
	for i, fe := range p {
		b[i] = fe.Char()
	}
	return string(b)
}
