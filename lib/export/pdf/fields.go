package pdfexport

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// masked keys keep only the last 4 characters
var maskedKeys = map[string]bool{
	"ssn":           true,
	"accountNumber": true,
	"routingNumber": true,
}

// FieldsFromPayload - flattens a document payload into label/value rows
func FieldsFromPayload(raw []byte) ([]Field, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode document payload")
	}
	result := []Field{}
	flatten("", payload, &result)
	return result, nil
}

func flatten(prefix string, value interface{}, result *[]Field) {
	switch v := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			label := humanize(key)
			if prefix != "" {
				label = prefix + " / " + label
			}
			if s, ok := v[key].(string); ok && maskedKeys[key] {
				*result = append(*result, Field{Label: label, Value: mask(s)})
				continue
			}
			flatten(label, v[key], result)
		}
	case []interface{}:
		for idx, item := range v {
			flatten(fmt.Sprintf("%s #%d", prefix, idx+1), item, result)
		}
	case nil:
		*result = append(*result, Field{Label: prefix})
	case bool:
		answer := "No"
		if v {
			answer = "Yes"
		}
		*result = append(*result, Field{Label: prefix, Value: answer})
	default:
		*result = append(*result, Field{Label: prefix, Value: fmt.Sprint(v)})
	}
}

// humanize - "dateOfBirth" -> "Date Of Birth"
func humanize(key string) string {
	var sb strings.Builder
	for idx, r := range key {
		if idx == 0 {
			sb.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func mask(value string) string {
	if len(value) <= 4 {
		return value
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}
