package funcschema

// Classification is the result of mapping a type expression onto the
// JSON Schema type vocabulary.
//
// Exactly one of three states holds:
//   - Any is true: the type accepts any value (the empty-schema marker).
//   - Tokens is non-empty: the type maps to one or more type tokens.
//   - neither: the type is unclassifiable (or null alone) and the
//     property is emitted without a type key.
type Classification struct {
	Tokens []TypeToken
	Any    bool
}

// None reports whether classification produced no result.
func (c Classification) None() bool {
	return !c.Any && len(c.Tokens) == 0
}

// Single returns the sole token and true when exactly one token resulted.
func (c Classification) Single() (TypeToken, bool) {
	if !c.Any && len(c.Tokens) == 1 {
		return c.Tokens[0], true
	}
	return "", false
}

// Classify maps a type expression to its JSON Schema type token(s).
//
// Composite types recurse: annotations unwrap to the inner type, unions
// classify each non-null member, and literal value-sets classify the
// union of their values' runtime types. Union results are deduplicated
// preserving first-seen order, and a result set of exactly
// {number, integer} collapses to number, since JSON Schema's number
// subsumes integer. An unrecognized type classifies to nothing rather
// than failing.
func Classify(t TypeExpr) Classification {
	switch v := t.(type) {
	case anyType:
		return Classification{Any: true}

	case annotatedType:
		return Classify(v.inner)

	case unionType:
		return classifyMembers(v.members)

	case literalType:
		members := make([]TypeExpr, 0, len(v.values))
		for _, val := range v.values {
			members = append(members, literalValueType(val))
		}
		return classifyMembers(members)

	case arrayType:
		return Classification{Tokens: []TypeToken{TokenArray}}

	case mapType:
		return Classification{Tokens: []TypeToken{TokenObject}}

	case *EnumType:
		return Classification{Tokens: []TypeToken{TokenString}}

	case primitiveType:
		return Classification{Tokens: []TypeToken{v.token}}

	case nullType:
		// Null alone carries no token; it only marks nullability.
		return Classification{}

	default:
		return Classification{}
	}
}

// classifyMembers classifies each non-null member, then applies the
// dedup and number/integer collapse rules.
func classifyMembers(members []TypeExpr) Classification {
	var tokens []TypeToken
	seen := make(map[TypeToken]bool)
	for _, m := range members {
		if _, isNull := m.(nullType); isNull {
			continue
		}
		c := Classify(m)
		if c.Any {
			return Classification{Any: true}
		}
		for _, tok := range c.Tokens {
			if !seen[tok] {
				seen[tok] = true
				tokens = append(tokens, tok)
			}
		}
	}

	if len(tokens) == 2 && seen[TokenNumber] && seen[TokenInteger] {
		return Classification{Tokens: []TypeToken{TokenNumber}}
	}
	return Classification{Tokens: tokens}
}

// literalValueType maps a literal value to the type expression of its
// runtime type. Booleans are matched before the numeric kinds: a boolean
// literal must never classify as a number.
func literalValueType(v any) TypeExpr {
	switch v.(type) {
	case nil:
		return nullType{}
	case string:
		return primitiveType{TokenString}
	case bool:
		return primitiveType{TokenBoolean}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return primitiveType{TokenInteger}
	case float32, float64:
		return primitiveType{TokenNumber}
	default:
		return unknownType{}
	}
}
