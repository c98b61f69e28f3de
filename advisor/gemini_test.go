package advisor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geminiServer fakes the Gemini generateContent endpoint and records the request body.
func geminiServer(t *testing.T, status int, answer string) (*httptest.Server, *[]any) {
	t.Helper()
	var bodies []any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "models/"+DefaultModel+":generateContent") {
			http.NotFound(w, r)
			return
		}
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("reading request: %v", err)
		}
		var body any
		if err := json.Unmarshal(data, &body); err != nil {
			t.Errorf("request is not JSON: %v", err)
		}
		bodies = append(bodies, body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			io.WriteString(w, `{"error": {"code": 400, "message": "backend exploded", "status": "INVALID_ARGUMENT"}}`)
			return
		}
		resp := map[string]any{
			"candidates": []any{map[string]any{
				"content":      map[string]any{"role": "model", "parts": []any{map[string]any{"text": answer}}},
				"finishReason": "STOP",
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &bodies
}

func TestGeminiWireRequest(t *testing.T) {
	srv, bodies := geminiServer(t, http.StatusOK, validAnswer)
	c, err := New(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	require.NoError(t, err)
	require.True(t, c.Enabled())

	advice, err := c.Advise(context.Background(), mockPortfolio(t))
	require.NoError(t, err)
	assert.Len(t, advice.Suggestions, 3)

	require.Len(t, *bodies, 1)
	body := (*bodies)[0]

	get := func(path string) any {
		t.Helper()
		v, err := jsonpath.Get(path, body)
		require.NoError(t, err, path)
		return v
	}
	assert.Equal(t, 0.5, get("$.generationConfig.temperature"))
	assert.Equal(t, "application/json", get("$.generationConfig.responseMimeType"))
	assert.ElementsMatch(t, []any{"reasoning", "suggestions"}, get("$.generationConfig.responseSchema.required"))
	assert.ElementsMatch(t, []any{"action", "asset", "percentage", "rationale"}, get("$.generationConfig.responseSchema.properties.suggestions.items.required"))
	assert.Contains(t, get("$.contents[0].parts[0].text"), "BTC: 1.5000 (valued at 97500.00")
}

func TestGeminiWireServerError(t *testing.T) {
	srv, bodies := geminiServer(t, http.StatusBadRequest, "")
	c, err := New(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = c.Advise(context.Background(), mockPortfolio(t))

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.NotContains(t, err.Error(), "backend exploded")
	assert.Len(t, *bodies, 1, "no retry")
}
