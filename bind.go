package argparse

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
)

const (
	tagName    = "arg-name"
	tagHelp    = "arg-help"
	tagCount   = "arg-count"
	tagMetavar = "arg-metavar"
	tagFormat  = "arg-format"
	tagIgnore  = "arg-ignore"
)

var boolType = reflect.TypeOf(false)

// -----

type fieldInfo struct {
	reflect.StructField

	// Tags
	name    string
	help    string
	metavar string
	format  string
	count   Count

	// Inferred
	isSlice  bool
	isSwitch bool
	baseType reflect.Type
}

// fieldArgument parses tokens into one struct field.
type fieldArgument struct {
	info  fieldInfo
	field reflect.Value
}

func (a *fieldArgument) Parse(_ *Running, args *Tokens, name string) error {
	if a.info.isSwitch {
		a.field.SetBool(true)
		return nil
	}

	_, err := a.info.count.consume(args, name, func(token string) error {
		v := reflect.New(a.info.baseType).Elem()
		if err := convertValue(token, v, a.info.format); err != nil {
			return argumentError(name, token,
				&Error{Token: token, Msg: "failed to parse " + token, Err: err})
		}

		if a.info.isSlice {
			a.field.Set(reflect.Append(a.field, v))
		} else {
			a.field.Set(v)
		}
		return nil
	})
	return err
}

// -----

// Unwrap takes an argument, which must be a pointer to a struct, and
// returns a reflect.Value of the pointed to struct.
func unwrap(s any) (reflect.Value, error) {
	v := reflect.ValueOf(s)

	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("arg must be ptr to struct")
	}
	v = v.Elem()

	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("arg must be ptr to struct")
	}

	return v, nil
}

// MakeFieldInfo analyses the struct field supplied as argument, reading both
// the field's type and its tags. Returns an error for field types that
// cannot be converted to, and for malformed tags.
func makeFieldInfo(field reflect.StructField) (fieldInfo, error) {
	info := fieldInfo{
		StructField: field,

		// tag.Get() returns "" when tag not found!
		name:    field.Tag.Get(tagName),
		help:    field.Tag.Get(tagHelp),
		metavar: field.Tag.Get(tagMetavar),
		format:  field.Tag.Get(tagFormat),
	}

	if info.name == "" {
		info.name = strings.ToLower(field.Name)
	}

	info.baseType = field.Type
	if field.Type.Kind() == reflect.Slice {
		info.isSlice = true
		info.baseType = field.Type.Elem()
	}

	if field.Type.Kind() == reflect.Pointer || !convertible(info.baseType) {
		return fieldInfo{},
			fmt.Errorf("%s not permitted in struct, maybe use %s tag",
				field.Type, tagIgnore)
	}

	countTag, hasCount := field.Tag.Lookup(tagCount)
	switch {
	case hasCount:
		c, err := ParseCount(countTag)
		if err != nil {
			return fieldInfo{}, fmt.Errorf("field %s: %w", field.Name, err)
		}
		info.count = c

	case IsOptional(info.name) && info.baseType == boolType && !info.isSlice:
		info.count = None
		info.isSwitch = true

	case info.isSlice && !IsOptional(info.name):
		// A positional slice collects the run of values at its position
		info.count = AtLeastOne

	default:
		info.count = Exact(1)
	}

	return info, nil
}

// AnalyzeStruct takes a reflect.Value, which must represent a struct, and
// returns a description of its exported, non-ignored fields in order.
func analyzeStruct(v reflect.Value) ([]fieldInfo, error) {
	typeInfo := v.Type()
	infos := []fieldInfo{}
	seen := map[string]struct{}{}

	for i := 0; i < v.NumField(); i++ {
		field := typeInfo.Field(i)

		if _, ok := field.Tag.Lookup(tagIgnore); ok || !field.IsExported() {
			continue
		}

		info, err := makeFieldInfo(field)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[info.name]; ok {
			return nil, fmt.Errorf("duplicate argument name: %s", info.name)
		}
		seen[info.name] = struct{}{}

		infos = append(infos, info)
	}

	return infos, nil
}

// Bind registers every exported field of the struct that data points to, in
// field order. Optional fields keep their current values unless they appear
// on the command line, so initial values act as defaults.
//
// Returns an error, and registers nothing, if data is not a pointer to a
// struct, if a field has an unsupported type or a malformed tag, or if a name
// is already registered.
func (p *Parser) Bind(data any) error {
	v, err := unwrap(data)
	if err != nil {
		return err
	}

	infos, err := analyzeStruct(v)
	if err != nil {
		return err
	}

	for _, info := range infos {
		if p.defined(info.name) {
			return fmt.Errorf("argument %s already registered", info.name)
		}
	}

	for _, info := range infos {
		p.insert(info.name, &fieldArgument{
			info:  info,
			field: v.FieldByIndex(info.Index),
		}, extra{help: info.help, count: info.count, metavar: info.metavar})
	}

	return nil
}

// PrintValues takes a pointer to a struct and writes the names, types and
// current values of its fields to standard error.
func PrintValues(data any) error {
	return WriteValues(os.Stderr, data)
}

// WriteValues takes a pointer to a struct and writes the names, types and
// current values of its fields to w, one per line, in aligned columns.
func WriteValues(w io.Writer, data any) error {
	v, err := unwrap(data)
	if err != nil {
		return err
	}

	typeInfo := v.Type()

	// Find max length of field names and types
	mxName, mxType := 0, 0
	for i := 0; i < v.NumField(); i++ {
		field := typeInfo.Field(i)
		mxName = max(mxName, len(field.Name))
		mxType = max(mxType, len(field.Type.String()))
	}

	for i := 0; i < v.NumField(); i++ {
		field := typeInfo.Field(i)
		fmt.Fprintf(w, "%-*s   %-*s   %v\n",
			mxName, field.Name, mxType, field.Type.String(), v.Field(i))
	}

	return nil
}
