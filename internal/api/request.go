package api

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// formOrJSON flattens the request body into string values whatever the
// Content-Type: JSON objects, urlencoded forms and multipart forms all come
// out the same way, so every handler reads fields uniformly. Malformed bodies
// yield an empty map rather than an error, matching the lenient parsing of
// the public API.
func formOrJSON(c echo.Context) map[string]string {
	data := map[string]string{}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		raw := map[string]interface{}{}
		if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil && err != io.EOF {
			return data
		}
		for key, value := range raw {
			data[key] = stringify(value)
		}
		return data
	}

	form, err := c.FormParams()
	if err != nil {
		return data
	}
	for key, values := range form {
		if len(values) > 0 {
			data[key] = strings.TrimSpace(values[0])
		}
	}
	return data
}

func stringify(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case nil:
		return ""
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// parsePrice accepts a non-negative number, tolerating surrounding
// whitespace.
func parsePrice(s string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || price < 0 {
		return 0, false
	}
	return price, true
}

// parseQuantity accepts a non-negative integer, tolerating surrounding
// whitespace.
func parseQuantity(s string) (int, bool) {
	quantity, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || quantity < 0 {
		return 0, false
	}
	return quantity, true
}

func parseID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
