package criteria

import (
	"github.com/bpetrov2020/info-f420-tilings/factor"
)

// htreflection1 searches for W = A B C Â D f(D) with B, C palindromes
// and (D, f(D)) an adjacent reflected pair. The split of the final two
// factors is forced by |A|.
func (s *search) htreflection1() *factor.Factorization {
	n := s.n
	for as := 1; as <= n; as++ {
		for al := 1; al < s.half; al++ {
			bs := s.pos(as + al)
			for bl := 1; bl <= n-2*al-3; bl++ {
				if !s.isPal(bs, bl) {
					continue
				}
				cs := s.pos(bs + bl)
				for cl := 1; cl <= n-2*al-bl-2; cl++ {
					if !s.isPal(cs, cl) {
						continue
					}
					hs := s.pos(cs + cl)
					if !s.backtrackAt(as, al, hs) {
						continue
					}
					rem := n - 2*al - bl - cl
					if rem < 2 || rem%2 != 0 {
						continue
					}
					dl := rem / 2
					ds := s.pos(hs + al)
					fds := s.pos(ds + dl)
					if _, ok := s.reflectionAt(ds, fds, dl); !ok {
						continue
					}
					return &factor.Factorization{
						Kind: factor.TypeOneHalfTurnReflection,
						Factors: []factor.Factor{
							s.factor(as, al), s.factor(bs, bl), s.factor(cs, cl),
							s.factor(hs, al), s.factor(ds, dl), s.factor(fds, dl),
						},
					}
				}
			}
		}
	}
	return nil
}

// htreflection2 searches for W = A B C D f(B) f(D) with A, C
// palindromes and the two reflected pairs at axis angles 90° apart.
func (s *search) htreflection2() *factor.Factorization {
	n := s.n
	for as := 1; as <= n; as++ {
		for al := 1; al <= n-3; al++ {
			if !s.isPal(as, al) {
				continue
			}
			bs := s.pos(as + al)
			for bl := 1; al+2*bl+2 < n; bl++ {
				cs := s.pos(bs + bl)
				for cl := 1; al+2*bl+cl+1 < n; cl++ {
					if !s.isPal(cs, cl) {
						continue
					}
					rem := n - al - 2*bl - cl
					if rem < 2 || rem%2 != 0 {
						continue
					}
					dl := rem / 2
					ds := s.pos(cs + cl)
					fbs := s.pos(ds + dl)
					fds := s.pos(fbs + bl)
					angB, ok := s.reflectionAt(bs, fbs, bl)
					if !ok {
						continue
					}
					angD, ok := s.reflectionAt(ds, fds, dl)
					if !ok {
						continue
					}
					if diff := int(angB) - int(angD); diff != 90 && diff != -90 {
						continue
					}
					return &factor.Factorization{
						Kind: factor.TypeTwoHalfTurnReflection,
						Factors: []factor.Factor{
							s.factor(as, al), s.factor(bs, bl), s.factor(cs, cl),
							s.factor(ds, dl), s.factor(fbs, bl), s.factor(fds, dl),
						},
					}
				}
			}
		}
	}
	return nil
}
