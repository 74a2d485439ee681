package tagwire

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// fieldDescriptor is the resolved `wire:"..."` declaration for one struct
// field, the dynamic-language analogue of one generator-declared field in
// §4.6.
type fieldDescriptor struct {
	ID       byte
	Index    int
	Name     string
	EnumName string // set if the field's tag carries ",enum=<name>"
}

// structDescriptor is the cached, ascending-by-ID field list for one Go
// struct type — computed once per type and reused, as the Design Notes'
// "introspect declarations at construction time and cache descriptors keyed
// by type identity" option describes.
type structDescriptor struct {
	Fields []fieldDescriptor
}

var descriptorCache sync.Map // reflect.Type -> *structDescriptor

// descriptorFor returns the cached structDescriptor for t, building and
// validating it on first use. It rejects duplicate field ids and ids with
// the high bit set, the dynamic equivalent of the static checks a code
// generator performs at declaration time (§4.6).
func descriptorFor(t reflect.Type) (*structDescriptor, error) {
	if cached, ok := descriptorCache.Load(t); ok {
		return cached.(*structDescriptor), nil
	}
	d, err := buildDescriptor(t)
	if err != nil {
		return nil, err
	}
	actual, _ := descriptorCache.LoadOrStore(t, d)
	return actual.(*structDescriptor), nil
}

func buildDescriptor(t reflect.Type) (*structDescriptor, error) {
	var fields []fieldDescriptor
	seen := make(map[byte]bool)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, ok := sf.Tag.Lookup("wire")
		if !ok || tag == "-" {
			continue
		}
		id, enumName, err := parseFieldTag(tag)
		if err != nil {
			return nil, fmt.Errorf("tagwire: field %s.%s: %w", t.Name(), sf.Name, err)
		}
		if id&0x80 != 0 {
			return nil, fmt.Errorf("tagwire: field %s.%s: field id %d has high bit set", t.Name(), sf.Name, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("tagwire: struct %s: duplicate field id %d", t.Name(), id)
		}
		seen[id] = true
		fields = append(fields, fieldDescriptor{ID: id, Index: i, Name: sf.Name, EnumName: enumName})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].ID < fields[j].ID })
	return &structDescriptor{Fields: fields}, nil
}

// parseFieldTag parses a `wire:"<id>[,enum=<name>]"` tag string.
func parseFieldTag(tag string) (id byte, enumName string, err error) {
	parts := strings.Split(tag, ",")
	n, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return 0, "", fmt.Errorf("invalid field id %q: %w", parts[0], err)
	}
	for _, p := range parts[1:] {
		if name, ok := strings.CutPrefix(p, "enum="); ok {
			enumName = name
		}
	}
	return byte(n), enumName, nil
}

// isOptional reports whether a field's Go type signals optionality by
// pointer kind, per SPEC_FULL.md §4.9: presence is pointer non-nilness, the
// Go-idiomatic realization of the required/optional distinction in §4.6.
func isOptional(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer
}
