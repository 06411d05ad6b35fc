package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/countrydex/internal/cli"
	"github.com/rshade/countrydex/internal/config"
)

const allCountriesBody = `[
	{"name":{"common":"Chile"},"flags":{"png":"https://flagcdn.com/w320/cl.png"},"region":"Americas","population":19116209},
	{"name":{"common":"Peru"},"flags":{"png":"https://flagcdn.com/w320/pe.png"},"region":"Americas","population":32971846},
	{"name":{"common":"France"},"flags":{"png":"https://flagcdn.com/w320/fr.png"},"region":"Europe","population":67391582},
	{"name":{"common":"Kenya"},"flags":{"png":"https://flagcdn.com/w320/ke.png"},"region":"Africa","population":53771300}
]`

var detailBodies = map[string]string{
	"Chile": `[{"name":{"common":"Chile"},"capital":["Santiago"],"languages":{"spa":"Spanish"},
		"currencies":{"CLP":{"name":"Chilean peso","symbol":"$"}},"timezones":["UTC-06:00","UTC-04:00"],
		"maps":{"googleMaps":"https://goo.gl/maps/XboxyNHh2fAjCPNn9"},"flags":{"png":"https://flagcdn.com/w320/cl.png"}}]`,
	"Peru": `[{"name":{"common":"Peru"},"capital":["Lima"],"languages":{"aym":"Aymara","que":"Quechua","spa":"Spanish"},
		"currencies":{"PEN":{"name":"Peruvian sol","symbol":"S/ "}},"timezones":["UTC-05:00"],
		"maps":{"googleMaps":"https://goo.gl/maps/uDWEUaXNcZTng1fP6"},"flags":{"png":"https://flagcdn.com/w320/pe.png"}}]`,
	"Kenya": `[{"name":{"common":"Kenya"},"capital":["Nairobi"],"timezones":["UTC+03:00"],"maps":{"googleMaps":""},"flags":{"png":""}}]`,
}

// newCountriesServer serves a small REST Countries v3.1 fixture.
func newCountriesServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v3.1/all", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(allCountriesBody))
	})
	mux.HandleFunc("/v3.1/name/{name}", func(w http.ResponseWriter, r *http.Request) {
		body, ok := detailBodies[r.PathValue("name")]
		if !ok {
			http.Error(w, `{"status":404,"message":"Not Found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// setupCLITest isolates configuration and logging from the developer machine.
func setupCLITest(t *testing.T) {
	t.Helper()
	t.Setenv("COUNTRYDEX_HOME", t.TempDir())
	t.Setenv("COUNTRYDEX_LOGGING__FILE", "")
	t.Setenv("COUNTRYDEX_LOGGING__LEVEL", "error")
	t.Chdir(t.TempDir())
	t.Cleanup(func() { config.SetGlobalConfig(nil) })
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(strings.NewReader(s)).Decode(&v))
	return v
}
