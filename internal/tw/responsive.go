package tw

// Breakpoint is a Tailwind screen prefix. Base is the unprefixed row.
type Breakpoint string

const (
	Base Breakpoint = ""
	SM   Breakpoint = "sm"
	MD   Breakpoint = "md"
	LG   Breakpoint = "lg"
	XL   Breakpoint = "xl"
	XXL  Breakpoint = "2xl"
)

// Full is the span key for col-span-full / row-span-full.
const Full = -1

// Breakpoints lists the responsive breakpoints in cascade order.
var Breakpoints = []Breakpoint{SM, MD, LG, XL, XXL}

// Table is a two-level lookup: breakpoint, then raw value, to a class name.
type Table[T comparable] map[Breakpoint]map[T]string

// Responsive is either a single value applied without a breakpoint prefix, or
// a set of per-breakpoint values. The zero value resolves to nothing.
type Responsive[T comparable] struct {
	value  T
	scalar bool
	at     map[Breakpoint]T
}

// Value returns a scalar responsive value.
func Value[T comparable](v T) Responsive[T] {
	return Responsive[T]{value: v, scalar: true}
}

// At returns a per-breakpoint responsive value. A Base key is ignored; use
// Value for unprefixed classes.
func At[T comparable](values map[Breakpoint]T) Responsive[T] {
	at := make(map[Breakpoint]T, len(values))
	for bp, v := range values {
		if bp == Base {
			continue
		}
		at[bp] = v
	}
	return Responsive[T]{at: at}
}

// IsZero reports whether nothing was set.
func (r Responsive[T]) IsZero() bool {
	return !r.scalar && len(r.at) == 0
}

// Scalar returns the scalar value, if r is one.
func (r Responsive[T]) Scalar() (T, bool) {
	return r.value, r.scalar
}

// Get returns the value set for bp. Base returns the scalar value.
func (r Responsive[T]) Get(bp Breakpoint) (T, bool) {
	if bp == Base {
		return r.Scalar()
	}
	v, ok := r.at[bp]
	return v, ok
}

// Resolve maps r through table. A scalar reads the Base row only; a
// per-breakpoint value reads each defined breakpoint in cascade order. Values
// missing from the table contribute nothing.
func Resolve[T comparable](r Responsive[T], table Table[T]) []string {
	if v, ok := r.Scalar(); ok {
		if class, found := table[Base][v]; found {
			return []string{class}
		}
		return nil
	}

	var classes []string
	for _, bp := range Breakpoints {
		v, ok := r.at[bp]
		if !ok {
			continue
		}
		if class, found := table[bp][v]; found {
			classes = append(classes, class)
		}
	}
	return classes
}

var validGaps = map[int]struct{}{
	1: {}, 2: {}, 3: {}, 4: {}, 5: {}, 6: {}, 7: {}, 8: {},
	9: {}, 10: {}, 11: {}, 12: {}, 13: {}, 14: {}, 15: {}, 16: {},
	20: {}, 24: {}, 28: {}, 32: {}, 36: {}, 40: {}, 44: {}, 48: {},
	52: {}, 56: {}, 60: {}, 64: {}, 72: {}, 80: {}, 96: {},
}

// ValidGap reports whether n is on the spacing scale the stylesheet ships.
func ValidGap(n int) bool {
	_, ok := validGaps[n]
	return ok
}

// ResolveGap resolves a gap value against GapClasses, dropping values outside
// the spacing scale.
func ResolveGap(r Responsive[int]) []string {
	if v, ok := r.Scalar(); ok {
		if !ValidGap(v) {
			return nil
		}
		return Resolve(r, GapClasses)
	}

	filtered := make(map[Breakpoint]int, len(r.at))
	for bp, v := range r.at {
		if ValidGap(v) {
			filtered[bp] = v
		}
	}
	return Resolve(At(filtered), GapClasses)
}
