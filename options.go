package msgpack

// defaultMaxDepth is the recursion-depth cap applied when DecodeOptions.MaxDepth
// is zero. It bounds Array/Map nesting during decode so that adversarial input
// cannot exhaust the call stack.
const defaultMaxDepth = 512

// EncodeOptions tunes Serialize. The zero value is ready to use.
type EncodeOptions struct {
	// MaxDepth caps Object-tree nesting depth during Serialize. Zero means
	// unbounded (the caller's own tree depth is the only limit).
	MaxDepth int
	// Diagnostics, if non-nil, is notified of encode-rejection and
	// depth-exceeded events.
	Diagnostics Diagnostics
}

func (o EncodeOptions) diagnostics() Diagnostics {
	return coalesceDiagnostics(o.Diagnostics)
}

// DecodeOptions tunes Deserialize. The zero value is ready to use and
// applies defaultMaxDepth.
type DecodeOptions struct {
	// MaxDepth caps Array/Map nesting depth during decode. Zero means
	// "use defaultMaxDepth"; a negative value disables the cap entirely
	// (the caller asserts the input is trusted).
	MaxDepth int
	// Diagnostics, if non-nil, is notified of decode-error and
	// depth-exceeded events.
	Diagnostics Diagnostics
}

func (o DecodeOptions) maxDepth() int {
	if o.MaxDepth < 0 {
		return -1
	}
	return coalesce(o.MaxDepth, defaultMaxDepth)
}

func (o DecodeOptions) diagnostics() Diagnostics {
	return coalesceDiagnostics(o.Diagnostics)
}

func coalesceDiagnostics(d Diagnostics) Diagnostics {
	if d == nil {
		return NopDiagnostics{}
	}
	return d
}
