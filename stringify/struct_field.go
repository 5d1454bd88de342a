package stringify

// StructField is a single named field rendered by Struct.
type StructField struct {
	name  string
	value string
}

// NewStructField creates a field with an already stringified value.
func NewStructField(name string, value string) *StructField {
	return &StructField{
		name:  name,
		value: value,
	}
}

func (f *StructField) String() string {
	return f.name + ": " + f.value
}
