// Package record splits delimited input lines into fields.
//
// Splitting is literal: no quoting, trimming or type coercion. The empty
// line is one empty field, never zero fields.
package record

import "strings"

// Record is the ordered field values of one line. When header names are
// present, field i is also addressable by headers[i].
type Record struct {
	fields  []string
	headers []string
}

// Parse splits line on sep. headers may be nil; it need not have the same
// length as the number of fields.
func Parse(line string, sep rune, headers []string) Record {
	return Record{
		fields:  strings.Split(line, string(sep)),
		headers: append([]string(nil), headers...),
	}
}

// TrimLineEnding removes one trailing "\n" or "\r\n".
func TrimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Fields returns a copy of the field values in order
func (r Record) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Len returns the number of fields
func (r Record) Len() int {
	return len(r.fields)
}

// At returns the field at position i
func (r Record) At(i int) (string, bool) {
	if i < 0 || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

// Headers returns a copy of the header names
func (r Record) Headers() []string {
	return append([]string(nil), r.headers...)
}

// Get looks a field up by header name. Fields beyond the header list, and
// headers beyond the field list, are not addressable by name.
func (r Record) Get(name string) (string, bool) {
	for i, h := range r.headers {
		if h == name {
			return r.At(i)
		}
	}
	return "", false
}

// Map returns the named fields
func (r Record) Map() map[string]string {
	named := make(map[string]string, len(r.headers))
	for i, h := range r.headers {
		if i >= len(r.fields) {
			break
		}
		if _, seen := named[h]; !seen {
			named[h] = r.fields[i]
		}
	}
	return named
}

// Values returns the fields as a value sequence suitable for binding
func (r Record) Values() []any {
	values := make([]any, len(r.fields))
	for i, f := range r.fields {
		values[i] = f
	}
	return values
}

// ValuesFor maps the record onto the given parameter names. Without headers
// this is Values. With headers, parameter i takes the field under its header
// name when there is one, and field i by position otherwise. Collection
// stops at the first parameter with neither, leaving it and the rest to be
// filled from defaults.
func (r Record) ValuesFor(names []string) []any {
	if len(r.headers) == 0 {
		return r.Values()
	}

	values := make([]any, 0, len(names))
	for i, name := range names {
		v, ok := r.Get(name)
		if !ok {
			v, ok = r.At(i)
		}
		if !ok {
			break
		}
		values = append(values, v)
	}
	return values
}
