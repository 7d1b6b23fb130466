package nprop

import "reflect"

// Record is the adapter interface for attribute-bearing host objects.
// Implementing it once lets a host type participate in every path
// operation and in query matching, without per-call reflection.
//
// GetField returns the named field and whether it is present.
// DeleteField removes the field where the host representation allows it;
// fixed-shape hosts may implement it as resetting the field instead.
type Record interface {
	GetField(name string) (any, bool)
	SetField(name string, value any)
	DeleteField(name string)
}

// AsRecord adapts v to a Record. A value implementing Record is returned
// as is. A non-nil pointer to a struct is wrapped in a reflection-based
// adapter exposing its exported fields. Anything else is not a Record.
func AsRecord(v any) (Record, bool) {
	if r, ok := v.(Record); ok {
		return r, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, false
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, false
	}
	return structRecord{val: elem}, true
}

// structRecord adapts a struct value addressed through a pointer.
type structRecord struct {
	val reflect.Value
}

func (r structRecord) field(name string) (reflect.Value, bool) {
	f, ok := r.val.Type().FieldByName(name)
	if !ok || !f.IsExported() {
		return reflect.Value{}, false
	}
	return r.val.FieldByIndex(f.Index), true
}

func (r structRecord) GetField(name string) (any, bool) {
	f, ok := r.field(name)
	if !ok {
		return nil, false
	}
	return f.Interface(), true
}

func (r structRecord) SetField(name string, value any) {
	f, ok := r.field(name)
	if !ok || !f.CanSet() {
		return
	}
	if value == nil {
		f.Set(reflect.Zero(f.Type()))
		return
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(f.Type()) {
		return
	}
	f.Set(rv)
}

// DeleteField resets the field to its zero value. Struct fields cannot be
// removed, so a deleted field still reports as present via GetField.
func (r structRecord) DeleteField(name string) {
	f, ok := r.field(name)
	if ok && f.CanSet() {
		f.Set(reflect.Zero(f.Type()))
	}
}
