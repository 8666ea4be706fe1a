// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env maps struct fields tagged `env:"NAME"` to and from environment
// variables.
package env

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
)

// Write writes an environment file with the given name and content.
func Write(name string, e any) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := Marshal(f, e); err != nil {
		return fmt.Errorf("failed to marshal env: %v", err)
	}
	return f.Close()
}

// Marshal writes NAME=value lines for every tagged field that is set. Nil
// pointers and zero values are skipped.
func Marshal(o io.Writer, e any) error {
	re := reflect.ValueOf(e)
	if re.Kind() == reflect.Ptr {
		re = re.Elem()
	}
	if re.Kind() != reflect.Struct {
		return fmt.Errorf("env: %s is not a struct", re.Type())
	}
	ret := re.Type()
	for i := 0; i < re.NumField(); i++ {
		field := re.Field(i)
		tag := ret.Field(i).Tag.Get("env")
		if tag == "" {
			continue
		}
		if field.IsZero() {
			continue
		}
		if field.Kind() == reflect.Ptr {
			field = field.Elem()
		}
		if _, err := fmt.Fprintf(o, "%s=%v\n", tag, field.Interface()); err != nil {
			return err
		}
	}
	return nil
}

// Apply sets every tagged field whose variable is present in the
// environment. lookup is usually os.LookupEnv.
func Apply(e any, lookup func(string) (string, bool)) error {
	re := reflect.ValueOf(e)
	if re.Kind() != reflect.Ptr || re.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("env: Apply needs a pointer to a struct, got %T", e)
	}
	re = re.Elem()
	ret := re.Type()
	for i := 0; i < re.NumField(); i++ {
		tag := ret.Field(i).Tag.Get("env")
		if tag == "" {
			continue
		}
		value, ok := lookup(tag)
		if !ok {
			continue
		}
		if err := setField(re.Field(i), value); err != nil {
			return fmt.Errorf("%s: %w", tag, err)
		}
	}
	return nil
}

func setField(field reflect.Value, value string) error {
	if field.Kind() == reflect.Ptr {
		v := reflect.New(field.Type().Elem())
		if err := setField(v.Elem(), value); err != nil {
			return err
		}
		field.Set(v)
		return nil
	}
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool value %q: %w", value, err)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 0, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q: %w", value, err)
		}
		field.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q: %w", value, err)
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}
