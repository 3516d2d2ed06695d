// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package structadapter derives table columns from the exported fields of a
// struct type.
package structadapter

import (
	"fmt"
	"reflect"

	"github.com/domonda/go-retable"

	"github.com/magpierre/fyne-closuretable/closuretable"
)

// Columns returns one column per exported field of T, which is a struct or
// a pointer to a struct. The referral is the field name and the title comes
// from naming; fields titled naming.Ignore are skipped. String fields of
// pointer types get an edit closure.
func Columns[T any](naming *retable.StructFieldNaming) []*closuretable.Column[T] {
	structType := reflect.TypeFor[T]()
	editable := structType.Kind() == reflect.Pointer
	if editable {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil
	}

	var columns []*closuretable.Column[T]
	for _, field := range retable.StructFieldTypes(structType) {
		title := naming.StructFieldColumn(field)
		if naming != nil && naming.Ignore != "" && title == naming.Ignore {
			continue
		}

		name := field.Name
		c := closuretable.NewColumn[T](name)
		c.Title = title
		c.Display = func(item T) string {
			v, ok := fieldValue(item, name)
			if !ok {
				return ""
			}
			if v.Kind() == reflect.String {
				return v.String()
			}
			return fmt.Sprint(v.Interface())
		}
		if editable && field.Type.Kind() == reflect.String {
			c.Edit = func(item T, text string) {
				if v, ok := fieldValue(item, name); ok && v.CanSet() {
					v.SetString(text)
				}
			}
		}
		columns = append(columns, c)
	}
	return columns
}

func fieldValue[T any](item T, name string) (reflect.Value, bool) {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	f := v.FieldByName(name)
	return f, f.IsValid()
}
