package http

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

func toJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", errors.New(err.Error())
	}

	return string(data), nil
}

func length(v any) int {
	return reflect.ValueOf(v).Len()
}

// rowsJSON renders rows as a JSON array of objects with keys in columns order.
func rowsJSON(columnNames []string, rows [][]any) (string, error) {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, row := range rows {
		if i > 0 {
			sb.WriteByte(',')
		}

		sb.WriteByte('{')

		for j, columnName := range columnNames {
			if j > 0 {
				sb.WriteByte(',')
			}

			key, err := toJSON(columnName)
			if err != nil {
				return "", err
			}

			var value any
			if j < len(row) {
				value = row[j]
			}

			encoded, err := toJSON(value)
			if err != nil {
				return "", err
			}

			sb.WriteString(key)
			sb.WriteByte(':')
			sb.WriteString(encoded)
		}

		sb.WriteByte('}')
	}

	sb.WriteByte(']')

	return sb.String(), nil
}
