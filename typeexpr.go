package funcschema

// TypeToken is one of the JSON Schema primitive type names.
type TypeToken string

const (
	// TokenString is the JSON Schema "string" type.
	TokenString TypeToken = "string"
	// TokenNumber is the JSON Schema "number" type.
	TokenNumber TypeToken = "number"
	// TokenInteger is the JSON Schema "integer" type.
	TokenInteger TypeToken = "integer"
	// TokenBoolean is the JSON Schema "boolean" type.
	TokenBoolean TypeToken = "boolean"
	// TokenArray is the JSON Schema "array" type.
	TokenArray TypeToken = "array"
	// TokenObject is the JSON Schema "object" type.
	TokenObject TypeToken = "object"
)

// TypeExpr is a type expression: the declared type of a parameter.
//
// The set of shapes is closed. Expressions are built with the package
// constructors (String, Integer, Optional, Union, Literal, Array, Map,
// Annotated, Enum, ...) and are immutable once constructed, so a single
// expression may be shared across concurrent schema generations.
type TypeExpr interface {
	isTypeExpr()
}

type primitiveType struct {
	token TypeToken
}

type nullType struct{}

type anyType struct{}

type unknownType struct {
	name string
}

type unionType struct {
	members []TypeExpr
}

type literalType struct {
	values []any
}

type arrayType struct {
	elem TypeExpr
}

type mapType struct{}

type annotatedType struct {
	inner TypeExpr
	meta  []Metadata
}

// EnumType is an enumeration: a named, ordered set of string members.
// It can be used both as a parameter's type (it classifies as a string)
// and as a metadata item supplying the property's enum list.
type EnumType struct {
	members []string
}

func (primitiveType) isTypeExpr() {}
func (nullType) isTypeExpr()      {}
func (anyType) isTypeExpr()       {}
func (unknownType) isTypeExpr()   {}
func (unionType) isTypeExpr()     {}
func (literalType) isTypeExpr()   {}
func (arrayType) isTypeExpr()     {}
func (mapType) isTypeExpr()       {}
func (annotatedType) isTypeExpr() {}
func (*EnumType) isTypeExpr()     {}

func (*EnumType) isMetadata() {}

// Members returns the enum member names in declaration order.
func (e *EnumType) Members() []string {
	out := make([]string, len(e.members))
	copy(out, e.members)
	return out
}

// String is the text type.
func String() TypeExpr { return primitiveType{TokenString} }

// Integer is the whole-number type.
func Integer() TypeExpr { return primitiveType{TokenInteger} }

// Number is the floating-point type. JSON Schema's number is a superset
// of integer, so unions mixing the two collapse to Number.
func Number() TypeExpr { return primitiveType{TokenNumber} }

// Boolean is the true/false type.
func Boolean() TypeExpr { return primitiveType{TokenBoolean} }

// Null is the null type. It never classifies to a token of its own;
// its presence in a union makes the union nullable.
func Null() TypeExpr { return nullType{} }

// Any accepts any value. It classifies to the empty-schema marker.
func Any() TypeExpr { return anyType{} }

// Unknown is a type the classifier does not recognize. The property is
// still emitted, without a type key.
func Unknown(name string) TypeExpr { return unknownType{name: name} }

// Optional wraps t in a union with Null. Optional(t) classifies the same
// as t and makes the parameter nullable (so it is not required unless a
// field override says otherwise).
func Optional(t TypeExpr) TypeExpr {
	return unionType{members: []TypeExpr{t, nullType{}}}
}

// Union is a type accepting any of the given member types.
func Union(members ...TypeExpr) TypeExpr {
	return unionType{members: members}
}

// Literal is a type accepting exactly the given values. The values'
// runtime types drive classification; the values themselves become the
// property's enum list (nils filtered out).
func Literal(values ...any) TypeExpr {
	return literalType{values: values}
}

// Array is a sequence type. elem may be nil when the element type is
// unspecified.
func Array(elem TypeExpr) TypeExpr { return arrayType{elem: elem} }

// Map is a mapping type. It classifies as "object".
func Map() TypeExpr { return mapType{} }

// Annotated attaches metadata items to a type expression. The inner type
// drives classification; the items participate in description, enum, and
// override resolution ahead of any items attached to the parameter itself.
func Annotated(t TypeExpr, meta ...Metadata) TypeExpr {
	return annotatedType{inner: t, meta: meta}
}

// Enum creates an enumeration from member names, preserving order.
func Enum(members ...string) *EnumType {
	return &EnumType{members: members}
}

// nullable reports whether t accepts null. Unions are nullable when any
// member is; annotations defer to the inner type.
func nullable(t TypeExpr) bool {
	switch v := t.(type) {
	case nullType:
		return true
	case unionType:
		for _, m := range v.members {
			if nullable(m) {
				return true
			}
		}
		return false
	case annotatedType:
		return nullable(v.inner)
	default:
		return false
	}
}
