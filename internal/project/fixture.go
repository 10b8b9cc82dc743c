// Package project loads container fixtures: TOML descriptions of
// containers and their direct member declarations, used by the CLI and
// by integration-style tests in place of a parsed source tree.
package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"lumen/internal/decl"
)

// Fixture is a loaded set of containers backed by one declaration table.
type Fixture struct {
	Table      *decl.Table
	Containers []decl.ContainerID
}

type fixtureConfig struct {
	Container []containerConfig `toml:"container"`
}

type containerConfig struct {
	Name       string       `toml:"name"`
	Qualified  string       `toml:"qualified"`
	Local      bool         `toml:"local"`
	TypeParams []string     `toml:"type_params"`
	Decl       []declConfig `toml:"decl"`
}

type declConfig struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`
}

// LoadFixture reads a .scopes.toml fixture file.
func LoadFixture(path string) (*Fixture, error) {
	var cfg fixtureConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("container") {
		return nil, fmt.Errorf("%s: missing [[container]]", path)
	}

	table := decl.NewTable(decl.Hints{}, nil)
	fixture := &Fixture{Table: table}

	for i, c := range cfg.Container {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("%s: container %d: missing name", path, i)
		}
		if !c.Local && strings.TrimSpace(c.Qualified) == "" {
			return nil, fmt.Errorf("%s: container %q: non-local containers need a qualified name", path, c.Name)
		}

		var params []decl.TypeParam
		for j, p := range c.TypeParams {
			params = append(params, decl.TypeParam{
				Name:  table.Strings.Intern(p),
				Index: uint32(j),
			})
		}

		ids := make([]decl.DeclID, 0, len(c.Decl))
		for _, d := range c.Decl {
			kind, err := parseKind(d.Kind)
			if err != nil {
				return nil, fmt.Errorf("%s: container %q: decl %q: %w", path, c.Name, d.Name, err)
			}
			ids = append(ids, table.Decls.New(decl.Decl{
				Name: table.Strings.Intern(d.Name),
				Kind: kind,
			}))
		}

		id := table.NewContainer(decl.ContainerSpec{
			Name:          table.Strings.Intern(c.Name),
			QualifiedName: c.Qualified,
			Local:         c.Local,
			TypeParams:    params,
			Decls:         func() []decl.DeclID { return ids },
		})
		fixture.Containers = append(fixture.Containers, id)
	}

	return fixture, nil
}

func parseKind(s string) (decl.Kind, error) {
	switch s {
	case "class":
		return decl.KindClass, nil
	case "typealias":
		return decl.KindTypeAlias, nil
	case "function":
		return decl.KindFunction, nil
	case "property":
		return decl.KindProperty, nil
	default:
		return decl.KindInvalid, fmt.Errorf("unknown declaration kind %q", s)
	}
}
