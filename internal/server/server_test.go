package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kovidgoyal/unicolour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	New(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func representation(t *testing.T, body map[string]any, space string) []any {
	t.Helper()
	reps, ok := body["representations"].(map[string]any)
	require.True(t, ok)
	v, ok := reps[space].([]any)
	require.True(t, ok, space)
	require.Len(t, v, 3)
	return v
}

func TestColour(t *testing.T) {
	code, body := get(t, "/colour/FF0000")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "#FF0000FF", body["hex"])
	assert.Equal(t, true, body["in_gamut"])
	assert.Equal(t, []any{1.0, 0.0, 0.0}, representation(t, body, "RGB"))
	hsl := representation(t, body, "HSL")
	assert.InDelta(t, 0.5, hsl[2].(float64), 1e-12)

	code, body = get(t, "/colour/%23ff000080")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "#FF000080", body["hex"])

	code, body = get(t, "/colour/teal")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "#008080FF", body["hex"])

	code, body = get(t, "/colour/FF00")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["error"], "invalid hex")
}

func TestContrastAndDifference(t *testing.T) {
	code, body := get(t, "/contrast?a=000000&b=FFFFFF")
	require.Equal(t, http.StatusOK, code)
	assert.InDelta(t, 21, body["contrast"].(float64), 1e-9)

	code, body = get(t, "/difference?a=808080&b=808080&metric=cie76")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "CIE76", body["metric"])
	assert.Equal(t, 0.0, body["difference"])

	code, body = get(t, "/difference?a=FF0000&b=00FF00")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "CIEDE2000", body["metric"])
	assert.Greater(t, body["difference"].(float64), 50.0)

	code, _ = get(t, "/difference?a=FF0000&b=00FF00&metric=manhattan")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = get(t, "/contrast?a=FF0000")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestMix(t *testing.T) {
	code, body := get(t, "/mix?a=FF0000&b=0000FF&space=rgb&amount=0.5")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{0.5, 0.0, 0.5}, representation(t, body, "RGB"))

	code, _ = get(t, "/mix?a=FF0000&b=0000FF&space=cmyk")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = get(t, "/mix?a=FF0000&b=0000FF&amount=half")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = get(t, "/mix?a=FF0000&b=0000FF&premultiply=maybe")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGamut(t *testing.T) {
	code, body := get(t, "/gamut?space=oklch&values=0.7,0.35,150")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["in_gamut"])

	code, _ = get(t, "/gamut?space=oklch&values=0.7,0.35")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSimulate(t *testing.T) {
	code, body := get(t, "/simulate/FF0000/achromatopsia")
	require.Equal(t, http.StatusOK, code)
	lin := representation(t, body, "RGBLinear")
	for _, v := range lin {
		assert.InDelta(t, 0.2126, v.(float64), 1e-12)
	}
	for _, name := range []string{"deutan", "protan", "tritan"} {
		code, _ = get(t, "/simulate/FF0000/"+name)
		assert.Equal(t, http.StatusOK, code, name)
	}
	code, _ = get(t, "/simulate/FF0000/colourblind")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRequestsLogOnlyAtDebug(t *testing.T) {
	var buf bytes.Buffer
	unicolour.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer unicolour.SetLogger(nil)
	get(t, "/colour/FF0000")
	get(t, "/colour/nope")
	assert.Empty(t, buf.String())

	unicolour.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	get(t, "/colour/FF0000")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "path=/colour/FF0000")
	assert.Contains(t, buf.String(), "status=200")
}

func TestNumberEncodesNaNAsNull(t *testing.T) {
	b, err := json.Marshal([]Number{1.5, Number(math.NaN()), Number(math.Inf(-1))})
	require.NoError(t, err)
	assert.Equal(t, "[1.5,null,null]", string(b))
}
