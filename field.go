package funcschema

// FieldInfo is an explicit constraint set for a parameter. Attach one or
// more with Annotated or Param.Meta; each is merged into the resolved
// property after type, description, and enum inference, overriding only
// the keys it explicitly sets. Later items win over earlier ones per key.
//
//	Param{
//		Name: "count",
//		Type: Annotated(Integer(), Field().Min(1).Max(100)),
//	}
type FieldInfo struct {
	typ              *TypeToken
	description      *string
	enum             []any
	required         *bool
	minimum          *float64
	maximum          *float64
	exclusiveMinimum *float64
	exclusiveMaximum *float64
	minLength        *int
	maxLength        *int
	pattern          *string
}

func (*FieldInfo) isMetadata() {}

// Field creates an empty constraint set.
func Field() *FieldInfo {
	return &FieldInfo{}
}

// Type overrides the classified type token.
func (f *FieldInfo) Type(t TypeToken) *FieldInfo {
	f.typ = ptr(t)
	return f
}

// Desc overrides the description.
func (f *FieldInfo) Desc(description string) *FieldInfo {
	f.description = ptr(description)
	return f
}

// Enum overrides the allowed values.
func (f *FieldInfo) Enum(values ...any) *FieldInfo {
	f.enum = values
	return f
}

// Required overrides the inferred required flag.
func (f *FieldInfo) Required(required bool) *FieldInfo {
	f.required = ptr(required)
	return f
}

// Min sets the inclusive minimum for numeric parameters.
func (f *FieldInfo) Min(v float64) *FieldInfo {
	f.minimum = ptr(v)
	return f
}

// Max sets the inclusive maximum for numeric parameters.
func (f *FieldInfo) Max(v float64) *FieldInfo {
	f.maximum = ptr(v)
	return f
}

// ExclusiveMin sets the exclusive minimum for numeric parameters.
func (f *FieldInfo) ExclusiveMin(v float64) *FieldInfo {
	f.exclusiveMinimum = ptr(v)
	return f
}

// ExclusiveMax sets the exclusive maximum for numeric parameters.
func (f *FieldInfo) ExclusiveMax(v float64) *FieldInfo {
	f.exclusiveMaximum = ptr(v)
	return f
}

// MinLength sets the minimum string length.
func (f *FieldInfo) MinLength(n int) *FieldInfo {
	f.minLength = ptr(n)
	return f
}

// MaxLength sets the maximum string length.
func (f *FieldInfo) MaxLength(n int) *FieldInfo {
	f.maxLength = ptr(n)
	return f
}

// Pattern sets a regex pattern the string value must match.
func (f *FieldInfo) Pattern(regex string) *FieldInfo {
	f.pattern = ptr(regex)
	return f
}

// apply merges the set keys into the property.
func (f *FieldInfo) apply(p *Property) {
	if f.typ != nil {
		p.tokens = []TypeToken{*f.typ}
		p.anyType = false
	}
	if f.description != nil {
		p.Description = *f.description
	}
	if f.enum != nil {
		p.Enum = f.enum
	}
	if f.required != nil {
		p.requiredOverride = ptr(*f.required)
	}
	if f.minimum != nil {
		p.Minimum = ptr(*f.minimum)
	}
	if f.maximum != nil {
		p.Maximum = ptr(*f.maximum)
	}
	if f.exclusiveMinimum != nil {
		p.ExclusiveMinimum = ptr(*f.exclusiveMinimum)
	}
	if f.exclusiveMaximum != nil {
		p.ExclusiveMaximum = ptr(*f.exclusiveMaximum)
	}
	if f.minLength != nil {
		p.MinLength = ptr(*f.minLength)
	}
	if f.maxLength != nil {
		p.MaxLength = ptr(*f.maxLength)
	}
	if f.pattern != nil {
		p.Pattern = ptr(*f.pattern)
	}
}

// ptr returns a pointer to the value.
func ptr[T any](v T) *T {
	return &v
}
