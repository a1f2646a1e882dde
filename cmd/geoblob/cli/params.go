// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams creates a [pflag.FlagSet] with flags bound to the tagged
// fields of params. params must be a pointer to a struct. Panics on
// invalid input (programming error, not runtime data).
//
// Commands normally reach this through [Command.Params]:
//
//	type upgradeParams struct {
//	    globalParams
//	    Force bool `json:"force" flag:"force,f" desc:"overwrite the output file if it exists"`
//	}
//
//	var params upgradeParams
//	command := &cli.Command{
//	    Name:   "upgrade",
//	    Params: func() any { return &params },
//	    Run: func(args []string) error {
//	        // params.Force is set once flags are parsed
//	    },
//	}
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers a pflag entry for each tagged field in params,
// which must be a pointer to a struct.
//
// The flag tag gives the long name and an optional single-character
// shorthand ("output" or "output,o"); untagged fields are skipped. The
// desc tag is the help text and the default tag the default value.
// Fields must be string or bool: blob paths, config paths and log
// levels are strings, everything else a switch. Embedded structs, such
// as the global flags and [JSONOutput], are bound recursively.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStructFields(value.Elem(), flagSet)
}

func bindStructFields(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	structType := structValue.Type()

	for i := range structType.NumField() {
		field := structType.Field(i)
		fieldValue := structValue.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStructFields(fieldValue, flagSet); err != nil {
				return fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		flagTag := field.Tag.Get("flag")
		if flagTag == "" {
			continue
		}
		name, shorthand, _ := strings.Cut(flagTag, ",")
		description := field.Tag.Get("desc")
		defaultString := field.Tag.Get("default")

		if !fieldValue.CanAddr() {
			return fmt.Errorf("field %s: not addressable", field.Name)
		}

		switch target := fieldValue.Addr().Interface().(type) {
		case *string:
			flagSet.StringVarP(target, name, shorthand, defaultString, description)
		case *bool:
			defaultValue := false
			if defaultString != "" {
				var err error
				if defaultValue, err = strconv.ParseBool(defaultString); err != nil {
					return fmt.Errorf("field %s: default for --%s: %w", field.Name, name, err)
				}
			}
			flagSet.BoolVarP(target, name, shorthand, defaultValue, description)
		default:
			return fmt.Errorf("field %s: unsupported type %s for flag --%s", field.Name, fieldValue.Type(), name)
		}
	}

	return nil
}
