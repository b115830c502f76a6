package processor

import (
	"reflect"
)

// overlay copies every non-zero field of src onto dst, recursing into structs and pointers.
func overlay(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Struct:
		for _, f := range reflect.VisibleFields(src.Type()) {
			if !f.IsExported() {
				continue
			}
			overlay(dst.FieldByIndex(f.Index), src.FieldByIndex(f.Index))
		}
	case reflect.Pointer:
		if src.IsNil() {
			return
		}
		if dst.IsNil() || src.Elem().Kind() != reflect.Struct {
			// Set pointers win even when they point to a zero value, e.g. pretty: false.
			dst.Set(reflect.New(src.Type().Elem()))
			dst.Elem().Set(src.Elem())
			return
		}
		merged := reflect.New(src.Type().Elem())
		merged.Elem().Set(dst.Elem())
		overlay(merged.Elem(), src.Elem())
		dst.Set(merged)
	default:
		if !src.IsZero() {
			dst.Set(src)
		}
	}
}

// Merge returns base with all non-zero values of override applied on top.
func Merge[T any](base, override T) T {
	out := base
	overlay(reflect.ValueOf(&out).Elem(), reflect.ValueOf(override))
	return out
}
