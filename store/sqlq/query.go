package sqlq

// Shape identifies which Params variant a query carries.
type Shape uint8

const (
	// ShapeNone means the query binds no parameters.
	ShapeNone Shape = iota
	// ShapePositional binds params in order to ordinal placeholders.
	ShapePositional
	// ShapeNamed binds (name, param) pairs to named placeholders.
	ShapeNamed
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapePositional:
		return "positional"
	case ShapeNamed:
		return "named"
	default:
		return "unknown"
	}
}

// NamedParam pairs a placeholder name with its bound value. The name is
// written without the placeholder marker ("key", not ":key").
type NamedParam struct {
	Name  string
	Value Param
}

// N builds a NamedParam pair.
func N(name string, value Param) NamedParam {
	return NamedParam{Name: name, Value: value}
}

// Params holds a query's bound parameters in one of three shapes.
// The zero value is the no-parameters shape.
type Params struct {
	shape      Shape
	positional []Param
	named      []NamedParam
}

// NoParams returns the empty parameter set.
func NoParams() Params {
	return Params{}
}

// PositionalParams builds an ordered positional parameter list.
func PositionalParams(params ...Param) Params {
	return Params{shape: ShapePositional, positional: params}
}

// NamedParams builds a named parameter set. Order is preserved for
// inspection; binding is by name.
func NamedParams(pairs ...NamedParam) Params {
	return Params{shape: ShapeNamed, named: pairs}
}

// Shape reports which variant this Params value is.
func (p Params) Shape() Shape {
	return p.shape
}

// Values returns the positional parameter list. It is nil unless the shape
// is positional.
func (p Params) Values() []Param {
	return p.positional
}

// Pairs returns the named parameter pairs. It is nil unless the shape is
// named.
func (p Params) Pairs() []NamedParam {
	return p.named
}

// Equal reports structural equality: same shape, same elements in the same
// order.
func (p Params) Equal(o Params) bool {
	if p.shape != o.shape {
		return false
	}
	switch p.shape {
	case ShapePositional:
		if len(p.positional) != len(o.positional) {
			return false
		}
		for i := range p.positional {
			if !p.positional[i].Equal(o.positional[i]) {
				return false
			}
		}
	case ShapeNamed:
		if len(p.named) != len(o.named) {
			return false
		}
		for i := range p.named {
			if p.named[i].Name != o.named[i].Name || !p.named[i].Value.Equal(o.named[i].Value) {
				return false
			}
		}
	}
	return true
}

// Query is an immutable SQL query descriptor: statement text plus bound
// parameters. It is pure data, safe to copy and replay.
type Query struct {
	text   string
	params Params
}

// New builds a query with no parameters.
func New(text string) Query {
	return Query{text: text}
}

// Args builds a query with positional parameters bound in argument order.
func Args(text string, params ...Param) Query {
	return Query{text: text, params: PositionalParams(params...)}
}

// Named builds a query with named parameters.
func Named(text string, pairs ...NamedParam) Query {
	return Query{text: text, params: NamedParams(pairs...)}
}

// Text returns the statement text.
func (q Query) Text() string {
	return q.text
}

// Params returns the bound parameters.
func (q Query) Params() Params {
	return q.params
}

// Equal reports structural equality of text and parameters.
func (q Query) Equal(o Query) bool {
	return q.text == o.text && q.params.Equal(o.params)
}
