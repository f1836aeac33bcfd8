package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"catering-suggest/internal/model"

	"github.com/tidwall/gjson"
)

// ErrInvalidPayload is returned when the catalog body is not a JSON array.
var ErrInvalidPayload = errors.New("invalid catalog payload")

// DecodeProducts parses a catalog body leniently. Non-object entries are
// skipped and counted; missing or mistyped fields become "" or 0.
func DecodeProducts(body []byte) ([]model.Product, int, error) {
	if !gjson.ValidBytes(body) {
		return nil, 0, fmt.Errorf("%w: malformed JSON", ErrInvalidPayload)
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, 0, fmt.Errorf("%w: expected a JSON array", ErrInvalidPayload)
	}

	products := make([]model.Product, 0)
	skipped := 0
	root.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			skipped++
			return true
		}
		products = append(products, model.Product{
			ID:       idField(item.Get("id")),
			Name:     stringField(item.Get("name")),
			Category: stringField(item.Get("category")),
			Price:    priceField(item.Get("price")),
			Position: len(products),
		})
		return true
	})

	return products, skipped, nil
}

func stringField(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}

func idField(r gjson.Result) string {
	switch r.Type {
	case gjson.String, gjson.Number:
		return r.String()
	default:
		return ""
	}
}

// priceField accepts numbers and numeric strings. Anything else, including
// negative or non-finite values, becomes 0.
func priceField(r gjson.Result) float64 {
	var v float64
	switch r.Type {
	case gjson.Number:
		v = r.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return 0
		}
		v = parsed
	default:
		return 0
	}

	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
