package db

import (
	"context"
	"log"
	"reflect"

	"gorm.io/gorm/schema"
)

// lenientJSONSerializerName is the gorm serializer tag used by profile and
// recipe JSON columns.
const lenientJSONSerializerName = "lenientjson"

func init() {
	schema.RegisterSerializer(lenientJSONSerializerName, lenientJSONSerializer{})
}

// lenientJSONSerializer behaves like gorm's json serializer but leaves the
// field at its zero value when the stored text does not decode, so a single
// corrupt column cannot make the whole row unreadable.
type lenientJSONSerializer struct{}

func (lenientJSONSerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue interface{}) error {
	if err := (schema.JSONSerializer{}).Scan(ctx, field, dst, dbValue); err != nil {
		log.Printf("discarding malformed %s.%s column: %v", field.Schema.Table, field.DBName, err)
		field.ReflectValueOf(ctx, dst).Set(reflect.Zero(field.FieldType))
	}
	return nil
}

func (lenientJSONSerializer) Value(ctx context.Context, field *schema.Field, dst reflect.Value, fieldValue interface{}) (interface{}, error) {
	return (schema.JSONSerializer{}).Value(ctx, field, dst, fieldValue)
}
