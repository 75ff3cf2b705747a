package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWithTraceID(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	assert.Equal(t, "01HZX", ErrorWithTraceID(Fields{RequestIDKey: "01HZX"}, "boom"))

	generated := ErrorWithTraceID(nil, "boom")
	assert.Len(t, generated, 36)
	assert.NotEqual(t, generated, ErrorWithTraceID(Fields{RequestIDKey: "unknown"}, "boom"))
}
