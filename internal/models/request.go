package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMalformedBody: the body is not exactly one JSON value, or it is null.
	ErrMalformedBody = errors.New("malformed request body")
	// ErrMessageRequired: "message" is absent or falsy (null, false, 0, "").
	ErrMessageRequired = errors.New("message is required")
)

// DecodeMessage reads one JSON document from r and returns its "message"
// field as text. Non-string messages are rendered the way a JavaScript
// template literal would render them, so {"message":5} yields "5".
func DecodeMessage(r io.Reader) (string, error) {
	fields, err := decodeFields(r)
	if err != nil {
		return "", err
	}
	return messageText(fields)
}

// DecodeWSRequest parses one websocket frame. Backend is filled in whenever
// the frame is a JSON object, even if the message is missing.
func DecodeWSRequest(data []byte) (WSRequest, error) {
	fields, err := decodeFields(bytes.NewReader(data))
	if err != nil {
		return WSRequest{}, err
	}

	var req WSRequest
	req.Backend, _ = fields["backend"].(string)
	req.Message, err = messageText(fields)
	return req, err
}

func decodeFields(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedBody)
	}

	switch v := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null body", ErrMalformedBody)
	case map[string]any:
		return v, nil
	default:
		// Arrays and scalars have no "message" field.
		return map[string]any{}, nil
	}
}

func messageText(fields map[string]any) (string, error) {
	v, ok := fields["message"]
	if !ok || !truthy(v) {
		return "", ErrMessageRequired
	}
	return jsString(v), nil
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		// Out-of-range numbers parse as ±Inf with an error; they are truthy.
		return err != nil || f != 0
	default:
		return true
	}
}

func jsString(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case json.Number:
		return jsNumber(v)
	case []any:
		parts := make([]string, len(v))
		for i, el := range v {
			if el != nil {
				parts[i] = jsString(el)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

func jsNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		if math.IsInf(f, 1) {
			return "Infinity"
		}
		if math.IsInf(f, -1) {
			return "-Infinity"
		}
		return n.String()
	}
	if f == 0 {
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Exponent form: 1e+21, 1.5e-7 (Go pads the exponent to two digits).
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
