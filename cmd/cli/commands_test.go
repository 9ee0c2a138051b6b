package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingPath(t *testing.T) {
	tests := []struct {
		name                            string
		search, age, gender, tournament string
		want                            string
	}{
		{"defaults", "", "all", "all", "all", "/ranking"},
		{"empty", "", "", "", "", "/ranking"},
		{"search only", " fed ", "all", "all", "all", "/ranking?search=fed"},
		{"all criteria", "serena williams", "31-45", "F", "t1", "/ranking?age=31-45&gender=F&search=serena+williams&tournament=t1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rankingPath(tt.search, tt.age, tt.gender, tt.tournament))
		})
	}
}

func TestWithParams(t *testing.T) {
	assert.Equal(t, "/rules", withParams("/rules", false, false))
	assert.Equal(t, "/rules?dry_run=true", withParams("/rules", true, false))
	assert.Equal(t, "/ranking?search=x&dry_run=true&verbose=true", withParams("/ranking?search=x", true, true))
}

func TestPerformRequest(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.RequestURI()
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			json.Unmarshal(raw, &gotBody)
		}
		if r.URL.Path == "/missing" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	oldHost, oldDryRun := host, dryRun
	host, dryRun = srv.URL, true
	defer func() { host, dryRun = oldHost, oldDryRun }()

	require.NoError(t, performRequest(http.MethodPut, "/rules", map[string]float64{"winPoints": 3, "lossPoints": 1}))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/rules?dry_run=true", gotPath)
	assert.Equal(t, map[string]any{"winPoints": 3.0, "lossPoints": 1.0}, gotBody)

	assert.Error(t, performGetRequest("/missing"))
}
