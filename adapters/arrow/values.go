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

package arrowadapter

import (
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// FormatValue converts the value at pos to display text. Nulls are empty.
func FormatValue(col arrow.Array, pos int) string {
	if pos < 0 || pos >= col.Len() || col.IsNull(pos) {
		return ""
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		return col.(*array.String).Value(pos)

	case arrow.BINARY:
		return string(col.(*array.Binary).Value(pos))

	case arrow.DATE32:
		return col.(*array.Date32).Value(pos).ToTime().Format("2006-01-02")

	case arrow.DATE64:
		return col.(*array.Date64).Value(pos).ToTime().Format("2006-01-02")

	case arrow.TIMESTAMP:
		ts := col.(*array.Timestamp)
		unit := ts.DataType().(*arrow.TimestampType).Unit
		return ts.Value(pos).ToTime(unit).Format("2006-01-02 15:04:05.999999999")

	case arrow.FLOAT32:
		return strconv.FormatFloat(float64(col.(*array.Float32).Value(pos)), 'f', -1, 32)

	case arrow.FLOAT64:
		return strconv.FormatFloat(col.(*array.Float64).Value(pos), 'f', -1, 64)

	default:
		return col.ValueStr(pos)
	}
}

// appendValue copies the value at pos of col into builder. Both must have
// the same data type.
func appendValue(builder array.Builder, col arrow.Array, pos int) error {
	if col.IsNull(pos) {
		builder.AppendNull()
		return nil
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		builder.(*array.StringBuilder).Append(col.(*array.String).Value(pos))
	case arrow.BINARY:
		builder.(*array.BinaryBuilder).Append(col.(*array.Binary).Value(pos))
	case arrow.BOOL:
		builder.(*array.BooleanBuilder).Append(col.(*array.Boolean).Value(pos))
	case arrow.INT32:
		builder.(*array.Int32Builder).Append(col.(*array.Int32).Value(pos))
	case arrow.INT64:
		builder.(*array.Int64Builder).Append(col.(*array.Int64).Value(pos))
	case arrow.FLOAT32:
		builder.(*array.Float32Builder).Append(col.(*array.Float32).Value(pos))
	case arrow.FLOAT64:
		builder.(*array.Float64Builder).Append(col.(*array.Float64).Value(pos))
	case arrow.DATE32:
		builder.(*array.Date32Builder).Append(col.(*array.Date32).Value(pos))
	case arrow.TIMESTAMP:
		builder.(*array.TimestampBuilder).Append(col.(*array.Timestamp).Value(pos))
	default:
		return builder.AppendValueFromString(col.ValueStr(pos))
	}
	return nil
}
