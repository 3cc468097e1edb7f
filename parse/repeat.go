package parse

// Unbounded as an upper bound for repetitions lets a parser repeat as often as
// it matches.
const Unbounded = -1

// Repeat returns a parser which applies p between low and high times. It stops
// at the first failure of p or when reaching high, and fails if p matched less
// than low times. The value is the number of repetitions.
func Repeat[V any](low, high int, p Parser[V]) Parser[int] {
	return repeater[V, struct{}, struct{}]{low: low, high: high, item: p}.count()
}

// RepeatCollect is like Repeat, but collects the values of p.
func RepeatCollect[V any](low, high int, p Parser[V]) Parser[[]V] {
	return repeater[V, struct{}, struct{}]{low: low, high: high, item: p}.collect()
}

// RepeatUntil is like Repeat, but tries end before every repetition. If end
// matches, repetition stops without consuming the text matched by end. This
// holds even if less than low repetitions have been matched.
func RepeatUntil[V, E any](low, high int, p Parser[V], end Parser[E]) Parser[int] {
	return repeater[V, struct{}, E]{low: low, high: high, item: p, end: end}.count()
}

// RepeatCollectUntil is like RepeatUntil, but collects the values of p.
func RepeatCollectUntil[V, E any](low, high int, p Parser[V], end Parser[E]) Parser[[]V] {
	return repeater[V, struct{}, E]{low: low, high: high, item: p, end: end}.collect()
}

// Intersperse is like Repeat, but every repetition after the first has to be
// preceded by sep. A failing separator ends the repetition.
func Intersperse[V, S any](low, high int, p Parser[V], sep Parser[S]) Parser[int] {
	return repeater[V, S, struct{}]{low: low, high: high, item: p, sep: sep}.count()
}

// IntersperseCollect is like Intersperse, but collects the values of p.
func IntersperseCollect[V, S any](low, high int, p Parser[V], sep Parser[S]) Parser[[]V] {
	return repeater[V, S, struct{}]{low: low, high: high, item: p, sep: sep}.collect()
}

// IntersperseUntil is like Intersperse, but tries end before every separator
// and every repetition. A separator followed by end is consumed.
func IntersperseUntil[V, S, E any](low, high int, p Parser[V], sep Parser[S], end Parser[E]) Parser[int] {
	return repeater[V, S, E]{low: low, high: high, item: p, sep: sep, end: end}.count()
}

// IntersperseCollectUntil is like IntersperseUntil, but collects the values
// of p.
func IntersperseCollectUntil[V, S, E any](low, high int, p Parser[V], sep Parser[S], end Parser[E]) Parser[[]V] {
	return repeater[V, S, E]{low: low, high: high, item: p, sep: sep, end: end}.collect()
}

// --- Repetition driver -----------------------------------------------------

// repeater drives all repetition parsers. sep and end are optional.
type repeater[V, S, E any] struct {
	low, high int
	item      Parser[V]
	sep       Parser[S]
	end       Parser[E]
}

func (rp repeater[V, S, E]) count() Parser[int] {
	return func(text string) Result[int] {
		return rp.run(text, func(V) {})
	}
}

func (rp repeater[V, S, E]) collect() Parser[[]V] {
	return func(text string) Result[[]V] {
		values := []V{}
		r := rp.run(text, func(v V) {
			values = append(values, v)
		})
		return MapValue(r, func(int) []V { return values })
	}
}

func (rp repeater[V, S, E]) ends(text string) bool {
	return rp.end != nil && rp.end(text).IsOK()
}

// run applies the item parser repeatedly, calling yield for every value. The
// value of the result is the number of repetitions.
//
// An iteration which succeeds without consuming input would match forever. It
// ends the loop and counts for all repetitions still required.
func (rp repeater[V, S, E]) run(text string, yield func(V)) Result[int] {
	low, high := rp.low, rp.high
	if low < 0 {
		low = 0
	}
	if high >= 0 && high < low {
		high = low
	}
	suc := Success[int]{Rest: text}
	for high < 0 || suc.Value < high {
		if rp.ends(suc.Rest) {
			break
		}
		iter := suc // iter includes the separator, if any
		if suc.Value > 0 && rp.sep != nil {
			s, fail := rp.sep(suc.Rest).Unpack()
			if fail != nil {
				if suc.Value < low {
					return Err[int](joinContext(fail, len(suc.Token), text))
				}
				break
			}
			iter = JoinWith(suc, s, text, keepFirst[int, S])
			if rp.ends(iter.Rest) {
				suc = iter
				break
			}
		}
		item, fail := rp.item(iter.Rest).Unpack()
		if fail != nil {
			if suc.Value < low {
				return Err[int](joinContext(fail, len(iter.Token), text))
			}
			break // an unmatched separator is not consumed
		}
		yield(item.Value)
		progress := len(iter.Token) + len(item.Token) - len(suc.Token)
		suc = JoinWith(iter, item, text, func(n int, _ V) int { return n + 1 })
		if progress == 0 {
			tracer().Debugf("repetition matched empty input after %d iterations, stopping", suc.Value)
			for ; suc.Value < low; suc.Value++ {
				yield(item.Value)
			}
			break
		}
	}
	return Ok(suc)
}
