package funcschema

// Metadata is an annotation attached to a parameter. The recognized
// items are Doc (a description object), Text (a plain string), an
// enumeration created with Enum, a Field constraint set, and Raw (a
// mapping of schema keys merged verbatim).
type Metadata interface {
	isMetadata()
}

// Doc holds a parameter description. When both Doc and Text items are
// present, the first Doc wins regardless of position.
type Doc string

// Text is a plain-string annotation, used as the description when no Doc
// item is present.
type Text string

// Raw is a mapping of schema keys merged directly into the property,
// overriding any inferred value for the keys it sets. A "required" key
// steers the parameter's membership in the required list instead of
// being emitted.
type Raw map[string]any

func (Doc) isMetadata()  {}
func (Text) isMetadata() {}
func (Raw) isMetadata()  {}
