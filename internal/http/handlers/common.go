package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid or missing JSON body"

// BindJSONObject decodes a non-empty JSON object body into dst.
// An absent body, malformed JSON or an empty object is answered with 400.
func BindJSONObject[T any](c *gin.Context, dst *T) bool {
	raw, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		respondError(c, http.StatusBadRequest, msgInvalidBody)
		return false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		respondError(c, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}
