package stringify

import (
	"strings"

	"github.com/kr/text"
)

// IndentationSize is the number of spaces used to indent struct fields.
const IndentationSize = 2

// Struct renders a named value and its fields in a readable multi-line form.
func Struct(name string, fields ...*StructField) string {
	return structBuilder{
		name:   name,
		fields: fields,
	}.String()
}

type structBuilder struct {
	name   string
	fields []*StructField
}

func (s structBuilder) String() (result string) {
	result = s.name + " {\n"

	for _, field := range s.fields {
		result += text.Indent(field.String()+"\n", strings.Repeat(" ", IndentationSize))
	}

	result += "}"

	return result
}
