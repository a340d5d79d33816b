package sqlclient

import (
	"testing"

	"github.com/eatonphil/sqlclient/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value *service.Value
		want  string
	}{
		{&service.Value{Value: &service.Value_IntValue{IntValue: 42}}, "42"},
		{&service.Value{Value: &service.Value_IntValue{IntValue: -7}}, "-7"},
		{&service.Value{Value: &service.Value_FloatValue{FloatValue: 3.5}}, "3.5"},
		{&service.Value{Value: &service.Value_VarcharValue{VarcharValue: "x"}}, "x"},
		{&service.Value{Value: &service.Value_VarcharValue{VarcharValue: ""}}, ""},
		{&service.Value{Value: &service.Value_NullValue{NullValue: true}}, "NULL"},
		{&service.Value{}, "NULL"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, FormatValue(test.value))
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0.000us", FormatElapsed(0))
	assert.Equal(t, "999.000us", FormatElapsed(999))
	assert.Equal(t, "1.000ms", FormatElapsed(1000))
	assert.Equal(t, "999.999ms", FormatElapsed(999999))
	assert.Equal(t, "1.000s", FormatElapsed(1000000))
	assert.Equal(t, "12.346s", FormatElapsed(12345678))
}
