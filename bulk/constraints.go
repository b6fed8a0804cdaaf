package bulk

// Number covers every element type the bulk kernels operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Real covers the floating-point element types.
type Real interface {
	~float32 | ~float64
}

// Ordered covers types with a total order under <.
type Ordered interface {
	Number | ~string
}
