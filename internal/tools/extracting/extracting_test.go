package extracting_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
)

func decode(t *testing.T, raw string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}

	assert.NoError(t, json.Unmarshal([]byte(raw), &result))

	return result
}

func TestStringFallsBackOnMissingAndWrongType(t *testing.T) {
	source := decode(t, `{"name": "Hilton", "count": 3}`)

	assert.Equal(t, "Hilton", extracting.String(source, "name", "x"))
	assert.Equal(t, "x", extracting.String(source, "missing", "x"))
	assert.Equal(t, "x", extracting.String(source, "count", "x"))
}

func TestStringFromAnyStringifiesNumbers(t *testing.T) {
	source := decode(t, `{"id": 12345, "flag": true, "name": "A"}`)

	assert.Equal(t, "12345", extracting.StringFromAny(source, "id", ""))
	assert.Equal(t, "true", extracting.StringFromAny(source, "flag", ""))
	assert.Equal(t, "A", extracting.StringFromAny(source, "name", ""))
	assert.Equal(t, "none", extracting.StringFromAny(source, "missing", "none"))
}

func TestFloatAcceptsNumericStrings(t *testing.T) {
	source := decode(t, `{"price": "1500.50", "total": 120, "bad": "abc"}`)

	assert.Equal(t, 1500.50, extracting.Float(source, "price", 0))
	assert.Equal(t, 120.0, extracting.Float(source, "total", 0))
	assert.Equal(t, 9.9, extracting.Float(source, "bad", 9.9))
	assert.Equal(t, 9.9, extracting.Float(source, "missing", 9.9))
}

func TestFloatPtrReturnsNilWhenAbsent(t *testing.T) {
	source := decode(t, `{"lat": 25.2, "lng": "55.27"}`)

	lat := extracting.FloatPtr(source, "lat")
	lng := extracting.FloatPtr(source, "lng")

	assert.NotNil(t, lat)
	assert.Equal(t, 25.2, *lat)
	assert.NotNil(t, lng)
	assert.Equal(t, 55.27, *lng)
	assert.Nil(t, extracting.FloatPtr(source, "missing"))
}

func TestIntTruncatesJsonNumbers(t *testing.T) {
	source := decode(t, `{"stops": 2, "quantity": "4"}`)

	assert.Equal(t, 2, extracting.Int(source, "stops", 0))
	assert.Equal(t, 4, extracting.Int(source, "quantity", 0))
	assert.Equal(t, 1, extracting.Int(source, "missing", 1))
}

func TestMapsDropsNonObjectElements(t *testing.T) {
	source := decode(t, `{"items": [{"a": 1}, "junk", {"b": 2}]}`)

	items := extracting.Maps(source, "items")

	assert.Len(t, items, 2)
}

func TestFirstMapAcceptsObjectOrList(t *testing.T) {
	wrapped := decode(t, `{"option": [{"key": "v"}]}`)
	bare := decode(t, `{"option": {"key": "v"}}`)
	empty := decode(t, `{"option": []}`)

	entry, ok := extracting.FirstMap(wrapped, "option")
	assert.True(t, ok)
	assert.Equal(t, "v", entry["key"])

	entry, ok = extracting.FirstMap(bare, "option")
	assert.True(t, ok)
	assert.Equal(t, "v", entry["key"])

	_, ok = extracting.FirstMap(empty, "option")
	assert.False(t, ok)
}

func TestHasMapDistinguishesAbsentFromEmpty(t *testing.T) {
	source := decode(t, `{"present": {}}`)

	_, ok := extracting.HasMap(source, "present")
	assert.True(t, ok)

	_, ok = extracting.HasMap(source, "absent")
	assert.False(t, ok)
}

func TestStringsFiltersNonStrings(t *testing.T) {
	source := decode(t, `{"facilities": ["wifi", 5, "pool"]}`)

	assert.Equal(t, []string{"wifi", "pool"}, extracting.Strings(source, "facilities"))
}
