package gridtable

import (
	"errors"
	"fmt"
	"go/token"
	"reflect"
	"strings"
	"time"
	"unicode"
)

// DefaultStructFieldNaming uses the "col" struct tag as row key,
// ignores fields tagged with "-", and uses the field name
// for untagged fields.
var DefaultStructFieldNaming = StructFieldNaming{
	Tag:    "col",
	Ignore: "-",
}

var typeOfTime = reflect.TypeOf(time.Time{})

// StructFieldNaming defines how struct fields
// are mapped to Row keys.
//
// nil is a valid value for *StructFieldNaming
// and is equal to the zero value
// which will use all exported struct fields
// with their field name as key.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as key.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is the key that excludes a field.
	Ignore string
	// Untagged will be called with the struct field name to
	// return a key in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (key string)
}

// String implements the fmt.Stringer interface for StructFieldNaming.
func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldKey returns the row key for a struct field.
func (n *StructFieldNaming) StructFieldKey(structField reflect.StructField) string {
	if n == nil {
		return structField.Name
	}
	if n.Tag != "" {
		if tag, ok := structField.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if tag != "" {
				return tag
			}
		}
	}
	if n.Untagged == nil {
		return structField.Name
	}
	return n.Untagged(structField.Name)
}

func (n *StructFieldNaming) ignored(key string) bool {
	return key == "" || (n != nil && n.Ignore != "" && key == n.Ignore)
}

// StructRows converts a slice or array of structs or struct pointers
// to rows keyed by naming.
// Nil struct pointers result in empty rows.
func StructRows(slice any, naming *StructFieldNaming) ([]Row, error) {
	v := reflect.ValueOf(slice)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice or array of structs, got %T", slice)
	}
	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Pointer {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected slice or array of structs, got %T", slice)
	}
	fields := StructFieldTypes(elemType)
	rows := make([]Row, v.Len())
	for i := range rows {
		rows[i] = make(Row, len(fields))
		elem := v.Index(i)
		if elem.Kind() == reflect.Pointer {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}
		for j, val := range StructFieldValues(elem) {
			key := naming.StructFieldKey(fields[j])
			if naming.ignored(key) {
				continue
			}
			rows[i][key] = val.Interface()
		}
	}
	return rows, nil
}

// StructColumns derives column descriptors from the exported fields
// of a struct type. The label is SpacePascalCase of the field name.
// Numeric fields are of type Number and time.Time fields of type Date,
// all other fields are of type String.
// No column is sortable.
func StructColumns(structType reflect.Type, naming *StructFieldNaming) ([]Column, error) {
	if structType == nil {
		return nil, errors.New("expected struct type, got <nil>")
	}
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct type, got %s", structType)
	}
	var cols []Column
	for _, field := range StructFieldTypes(structType) {
		key := naming.StructFieldKey(field)
		if naming.ignored(key) {
			continue
		}
		cols = append(cols, Column{
			Key:   key,
			Label: SpacePascalCase(field.Name),
			Type:  columnTypeOf(field.Type),
		})
	}
	return cols, nil
}

func columnTypeOf(t reflect.Type) ColumnType {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == typeOfTime {
		return Date
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Number
	}
	return String
}

// StructFieldTypes returns the exported fields of a struct type
// including the inlined fields of any anonymously embedded structs.
func StructFieldTypes(structType reflect.Type) (fields []reflect.StructField) {
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		switch {
		case field.Anonymous && field.Type.Kind() == reflect.Struct:
			fields = append(fields, StructFieldTypes(field.Type)...)
		case token.IsExported(field.Name):
			fields = append(fields, field)
		}
	}
	return fields
}

// StructFieldValues returns the reflect.Value of exported struct fields
// including the inlined fields of any anonymously embedded structs.
func StructFieldValues(structValue reflect.Value) (values []reflect.Value) {
	if structValue.Kind() == reflect.Pointer {
		structValue = structValue.Elem()
	}
	structType := structValue.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		switch {
		case field.Anonymous && field.Type.Kind() == reflect.Struct:
			values = append(values, StructFieldValues(structValue.Field(i))...)
		case token.IsExported(field.Name):
			values = append(values, structValue.Field(i))
		}
	}
	return values
}

// SpacePascalCase inserts spaces before upper case
// characters within PascalCase like names.
// It also replaces underscore '_' characters with spaces.
func SpacePascalCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	lastWasUpper := true
	lastWasSpace := true
	for _, r := range name {
		if r == '_' {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasUpper = false
			lastWasSpace = true
			continue
		}
		isUpper := unicode.IsUpper(r)
		if isUpper && !lastWasUpper && !lastWasSpace {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		lastWasUpper = isUpper
		lastWasSpace = unicode.IsSpace(r)
	}
	return strings.TrimSpace(b.String())
}
