package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// fileConfig is the TOML form of a record layout:
//
//	name = "sample"
//
//	[[field]]
//	name = "magic"
//	type = "u32"
//
//	[[field]]
//	name = "coords"
//	type = "i16[3]"
type fileConfig struct {
	Name   string        `toml:"name"`
	Fields []fieldConfig `toml:"field"`
}

type fieldConfig struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// reservedNames are the keys every record event writes besides its fields.
var reservedNames = map[string]bool{
	"record":                   true,
	"offset":                   true,
	zerolog.MessageFieldName:   true,
	zerolog.LevelFieldName:     true,
	zerolog.TimestampFieldName: true,
	zerolog.ErrorFieldName:     true,
	zerolog.CallerFieldName:    true,
}

// recordLayout is a validated record description.
type recordLayout struct {
	Name   string
	Fields []fieldSpec
}

type fieldSpec struct {
	Name  string
	Elem  string // key of scalars
	Count int    // array length, 0 for a scalar field
}

func loadLayout(path string) (recordLayout, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return recordLayout{}, fmt.Errorf("load layout: %w", err)
	}
	return buildLayout(raw, meta)
}

func parseLayout(data string) (recordLayout, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return recordLayout{}, fmt.Errorf("parse layout: %w", err)
	}
	return buildLayout(raw, meta)
}

func buildLayout(raw fileConfig, meta toml.MetaData) (recordLayout, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return recordLayout{}, fmt.Errorf("layout: unknown keys %v", undecoded)
	}

	l := recordLayout{Name: "record"}
	if meta.IsDefined("name") {
		if name := strings.TrimSpace(raw.Name); name != "" {
			l.Name = name
		}
	}
	if len(raw.Fields) == 0 {
		return recordLayout{}, fmt.Errorf("layout %s: no fields", l.Name)
	}

	seen := make(map[string]bool, len(raw.Fields))
	for i, f := range raw.Fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return recordLayout{}, fmt.Errorf("layout %s: field %d has no name", l.Name, i)
		}
		if reservedNames[name] {
			return recordLayout{}, fmt.Errorf("layout %s: field name %q is reserved", l.Name, name)
		}
		if seen[name] {
			return recordLayout{}, fmt.Errorf("layout %s: duplicate field %q", l.Name, name)
		}
		seen[name] = true

		spec, err := parseFieldType(f.Type)
		if err != nil {
			return recordLayout{}, fmt.Errorf("layout %s: field %q: %w", l.Name, name, err)
		}
		spec.Name = name
		l.Fields = append(l.Fields, spec)
	}
	return l, nil
}

// parseFieldType accepts "u16" or "u16[4]".
func parseFieldType(typ string) (fieldSpec, error) {
	typ = strings.ToLower(strings.TrimSpace(typ))
	elem, rest, isArray := strings.Cut(typ, "[")

	var spec fieldSpec
	if _, ok := scalars[elem]; !ok {
		return spec, fmt.Errorf("unknown type %q", typ)
	}
	spec.Elem = elem

	if isArray {
		n, ok := strings.CutSuffix(rest, "]")
		if !ok {
			return spec, fmt.Errorf("malformed array type %q", typ)
		}
		count, err := strconv.Atoi(n)
		if err != nil || count <= 0 {
			return spec, fmt.Errorf("invalid array length in %q", typ)
		}
		spec.Count = count
	}
	return spec, nil
}
