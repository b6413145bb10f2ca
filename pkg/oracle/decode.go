package oracle

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// stripFences removes markdown code fences the generation model sometimes
// wraps around its JSON body (```json ... ``` or bare ```), plus surrounding
// whitespace. Input without fences passes through untouched.
func stripFences(b []byte) []byte {
	b = bytes.TrimSpace(b)
	if !bytes.HasPrefix(b, []byte("```")) {
		return b
	}
	b = bytes.TrimPrefix(b, []byte("```"))
	// drop an optional language tag on the opening fence line
	if i := bytes.IndexByte(b, '\n'); i >= 0 && !bytes.ContainsAny(b[:i], "{[") {
		b = b[i+1:]
	}
	b = bytes.TrimSpace(b)
	b = bytes.TrimSuffix(b, []byte("```"))
	return bytes.TrimSpace(b)
}

// decodeJSON is the single decode path shared by every oracle call: strip
// incidental formatting wrappers, then unmarshal into the expected shape.
// Failures are reported as ErrMalformed.
func decodeJSON[T any](body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(stripFences(body), &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}
