package criteria

import (
	"github.com/bpetrov2020/info-f420-tilings/factor"
)

// reflection1 searches for W = A B f(B) Â C f(C): each reflected pair
// sits adjacent on the cycle, and the two pairs may use different axis
// angles.
func (s *search) reflection1() *factor.Factorization {
	n := s.n
	for as := 1; as <= n; as++ {
		for al := 1; al < s.half; al++ {
			for bl := 1; 2*al+2*bl+2 <= n; bl++ {
				rem := n - 2*al - 2*bl
				if rem%2 != 0 {
					continue
				}
				cl := rem / 2
				hs := s.pos(as + al + 2*bl)
				if !s.backtrackAt(as, al, hs) {
					continue
				}
				bs := s.pos(as + al)
				fbs := s.pos(bs + bl)
				if _, ok := s.reflectionAt(bs, fbs, bl); !ok {
					continue
				}
				cs := s.pos(hs + al)
				fcs := s.pos(cs + cl)
				if _, ok := s.reflectionAt(cs, fcs, cl); !ok {
					continue
				}
				return &factor.Factorization{
					Kind: factor.TypeOneReflection,
					Factors: []factor.Factor{
						s.factor(as, al), s.factor(bs, bl), s.factor(fbs, bl),
						s.factor(hs, al), s.factor(cs, cl), s.factor(fcs, cl),
					},
				}
			}
		}
	}
	return nil
}

// reflection2 searches for W = A B C Â f(C) f(B): A and Â antipodal,
// both reflected pairs sharing a single axis angle. Requiring the
// shared angle here keeps the isometry builder total.
func (s *search) reflection2() *factor.Factorization {
	n := s.n
	for as := 1; as <= n; as++ {
		for al := 1; al <= s.half-2; al++ {
			hs := s.pos(as + s.half)
			if !s.backtrackAt(as, al, hs) {
				continue
			}
			for bl := 1; bl <= s.half-al-1; bl++ {
				cl := s.half - al - bl
				bs := s.pos(as + al)
				cs := s.pos(bs + bl)
				fcs := s.pos(hs + al)
				fbs := s.pos(fcs + cl)
				angB, ok := s.reflectionAt(bs, fbs, bl)
				if !ok {
					continue
				}
				angC, ok := s.reflectionAt(cs, fcs, cl)
				if !ok || angC != angB {
					continue
				}
				return &factor.Factorization{
					Kind: factor.TypeTwoReflection,
					Factors: []factor.Factor{
						s.factor(as, al), s.factor(bs, bl), s.factor(cs, cl),
						s.factor(hs, al), s.factor(fcs, cl), s.factor(fbs, bl),
					},
				}
			}
		}
	}
	return nil
}
