package metamodel

// Slot is the set of shapes a customization declaration may take
type Slot interface {
	~[]string | ~map[string]string
}

// Value holds a customization declaration: either a literal collection or a
// resolver evaluated against the model being initialized.
type Value[T Slot] struct {
	literal  T
	resolver func(Model) T
}

// Literal wraps a concrete collection
func Literal[T Slot](value T) Value[T] {
	return Value[T]{literal: value}
}

// Deferred wraps a resolver invoked with the model on every initialization
func Deferred[T Slot](resolver func(Model) T) Value[T] {
	return Value[T]{resolver: resolver}
}

// Strings is shorthand for a literal attribute list
func Strings(values ...string) Value[[]string] {
	return Literal(values)
}

// Casts is shorthand for a literal cast mapping
func Casts(casts map[string]string) Value[map[string]string] {
	return Literal(casts)
}

// Resolve returns the effective collection for the given model
func (v Value[T]) Resolve(model Model) T {
	if v.resolver != nil {
		return v.resolver(model)
	}
	return v.literal
}

// IsDeferred reports whether the value is computed by a resolver
func (v Value[T]) IsDeferred() bool {
	return v.resolver != nil
}

// Present reports whether anything was declared: a resolver, or a non-empty literal
func (v Value[T]) Present() bool {
	return v.resolver != nil || len(v.literal) > 0
}
