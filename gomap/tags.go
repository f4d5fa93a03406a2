package gomap

import (
	"reflect"
	"strings"
)

const tagName = "yamlet"

// fieldName resolves the encoded name of a struct field.  An empty name
// means the field is skipped.
func fieldName(sf reflect.StructField) (name string, omitEmpty bool) {
	tag, ok := sf.Tag.Lookup(tagName)
	if !ok {
		return sf.Name, false
	}
	name, rest, _ := strings.Cut(tag, ",")
	if name == "-" && rest == "" {
		return "", false
	}
	if name == "" {
		name = sf.Name
	}
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}
