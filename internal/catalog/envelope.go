package catalog

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// Envelope decoding failures, wrapped in a KindDecode *Error.
var (
	ErrInvalidJSON = errors.New("body is not valid JSON")
	ErrNotObject   = errors.New("envelope is not a JSON object")
	ErrMissingData = errors.New("envelope has no data field")
)

// Decode extracts the top-level "data" field of a catalog envelope and
// unmarshals it into T. It has no side effects, so decoding the same body
// twice yields equal values.
func Decode[T any](raw []byte) (T, error) {
	const op = "decode envelope"

	var out T
	if !gjson.ValidBytes(raw) {
		return out, &Error{Kind: KindDecode, Op: op, Body: truncateBody(raw), Err: ErrInvalidJSON}
	}

	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return out, &Error{Kind: KindDecode, Op: op, Body: truncateBody(raw), Err: ErrNotObject}
	}

	data := root.Get("data")
	if !data.Exists() {
		return out, &Error{Kind: KindDecode, Op: op, Body: truncateBody(raw), Err: ErrMissingData}
	}

	if err := json.Unmarshal([]byte(data.Raw), &out); err != nil {
		var zero T
		return zero, &Error{Kind: KindDecode, Op: op, Body: truncateBody(raw), Err: err}
	}

	return out, nil
}
