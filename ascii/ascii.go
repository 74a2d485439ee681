// Package ascii renders a [value.Value] tree as deterministic ASCII text:
// type-suffixed literals for scalars, quoted/escaped strings, and an
// indented block form for arrays, maps, structs, and enums.
package ascii

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tagwire/tagwire"
	"github.com/tagwire/tagwire/value"
)

// Format renders v as ASCII text.
func Format(v value.Value) string {
	var b strings.Builder
	formatValue(&b, v, 0)
	return b.String()
}

func typeSuffix(id tagwire.TypeId) string {
	switch id {
	case tagwire.Null:
		return "null"
	case tagwire.Bool:
		return "bool"
	case tagwire.U8:
		return "u8"
	case tagwire.U16:
		return "u16"
	case tagwire.U32:
		return "u32"
	case tagwire.U64:
		return "u64"
	case tagwire.U128:
		return "u128"
	case tagwire.I8:
		return "i8"
	case tagwire.I16:
		return "i16"
	case tagwire.I32:
		return "i32"
	case tagwire.I64:
		return "i64"
	case tagwire.I128:
		return "i128"
	case tagwire.F32:
		return "f32"
	case tagwire.F64:
		return "f64"
	case tagwire.String:
		return "string"
	case tagwire.Array:
		return "array"
	case tagwire.Map:
		return "map"
	case tagwire.Struct:
		return "struct"
	case tagwire.Enum:
		return "enum"
	case tagwire.Timestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

func indentStr(n int) string {
	return strings.Repeat("  ", n)
}

func formatValue(b *strings.Builder, v value.Value, indent int) {
	switch v := v.(type) {
	case value.Null:
		b.WriteString("null")
	case value.Bool:
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.U8:
		fmt.Fprintf(b, "%du8", uint8(v))
	case value.U16:
		fmt.Fprintf(b, "%du16", uint16(v))
	case value.U32:
		fmt.Fprintf(b, "%du32", uint32(v))
	case value.U64:
		fmt.Fprintf(b, "%du64", uint64(v))
	case value.U128:
		fmt.Fprintf(b, "%su128", tagwire.Uint128(v).BigInt().String())
	case value.I8:
		fmt.Fprintf(b, "%di8", int8(v))
	case value.I16:
		fmt.Fprintf(b, "%di16", int16(v))
	case value.I32:
		fmt.Fprintf(b, "%di32", int32(v))
	case value.I64:
		fmt.Fprintf(b, "%di64", int64(v))
	case value.I128:
		fmt.Fprintf(b, "%si128", tagwire.Int128(v).BigInt().String())
	case value.F32:
		fmt.Fprintf(b, "%sf32", formatFloat(float64(v), 32))
	case value.F64:
		fmt.Fprintf(b, "%sf64", formatFloat(float64(v), 64))
	case value.String:
		formatStringLiteral(b, string(v))
	case value.Timestamp:
		fmt.Fprintf(b, "timestamp(%d)", uint64(v))
	case value.Array:
		formatArray(b, v, indent)
	case value.Map:
		formatMap(b, v, indent)
	case value.Struct:
		formatStruct(b, v, indent)
	case value.Enum:
		formatEnum(b, v, indent)
	default:
		fmt.Fprintf(b, "<unknown %T>", v)
	}
}

// formatFloat mirrors Rust's Display for floats: the shortest round-tripping
// decimal form, with NaN/Inf spelled out rather than suffixed with digits.
func formatFloat(v float64, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'f', -1, bitSize)
	}
}

func formatArray(b *strings.Builder, a value.Array, indent int) {
	fmt.Fprintf(b, "array<%s> ", typeSuffix(a.ElementType))
	if len(a.Elements) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for _, el := range a.Elements {
		b.WriteString(indentStr(indent + 1))
		formatValue(b, el, indent+1)
		b.WriteString(",\n")
	}
	b.WriteString(indentStr(indent))
	b.WriteString("}")
}

func formatMap(b *strings.Builder, m value.Map, indent int) {
	fmt.Fprintf(b, "map<%s, %s> ", typeSuffix(m.KeyType), typeSuffix(m.ValueType))
	if len(m.Entries) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for _, e := range m.Entries {
		b.WriteString(indentStr(indent + 1))
		formatValue(b, e.Key, indent+1)
		b.WriteString(": ")
		formatValue(b, e.Value, indent+1)
		b.WriteString(",\n")
	}
	b.WriteString(indentStr(indent))
	b.WriteString("}")
}

func formatStruct(b *strings.Builder, s value.Struct, indent int) {
	b.WriteString("struct ")
	if len(s.Fields) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for _, f := range s.Fields {
		fmt.Fprintf(b, "%s%d: ", indentStr(indent+1), f.ID)
		formatValue(b, f.Value, indent+1)
		b.WriteString(",\n")
	}
	b.WriteString(indentStr(indent))
	b.WriteString("}")
}

func formatEnum(b *strings.Builder, e value.Enum, indent int) {
	b.WriteString("enum {\n")
	fmt.Fprintf(b, "%s%d: ", indentStr(indent+1), e.VariantID)
	formatValue(b, e.Value, indent+1)
	b.WriteString(",\n")
	b.WriteString(indentStr(indent))
	b.WriteString("}")
}

// formatStringLiteral writes s as a double-quoted, escaped string literal.
func formatStringLiteral(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
