package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/vignes"
	"github.com/aretw0/vignes/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vignes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEstimateCmd_JSON(t *testing.T) {
	out, err := execute(t, "estimate", "--xa", "0.5", "--t", "298.15", "--json")
	require.NoError(t, err)

	var res domain.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, -11.175511572215445, res.LnD, 1e-12)
	assert.InEpsilon(t, 1.4013189394832653e-05, res.D, 1e-12)
	assert.Equal(t, 5.362, res.RelativeErrorPercent)
	assert.Equal(t, 0.5, res.Xa)
	assert.Equal(t, 298.15, res.T)
}

func TestEstimateCmd_Breakdown(t *testing.T) {
	out, err := execute(t, "estimate", "--xa", "0.25", "--t", "313.13", "--breakdown")
	require.NoError(t, err)

	var payload struct {
		Result    domain.Result    `json:"result"`
		Breakdown domain.Breakdown `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, 1.604, payload.Result.RelativeErrorPercent)
	assert.InDelta(t, 0.75, payload.Breakdown.Xb, 1e-15)
	assert.InDelta(t, payload.Result.LnD, payload.Breakdown.Terms.Sum(), 1e-12)
}

func TestEstimateCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"fraction above one", []string{"--xa", "1.5", "--t", "298.15"}, domain.MsgFractionRange},
		{"negative temperature", []string{"--xa", "0.5", "--t", "-10"}, domain.MsgTemperature},
		{"pure component", []string{"--xa", "0", "--t", "298.15"}, domain.MsgFractionSingular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"estimate"}, tt.args...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tt.msg, domain.UserMessage(err))
		})
	}
}

func TestEstimateCmd_NonFinite(t *testing.T) {
	for _, args := range [][]string{
		{"estimate", "--xa", "0.5", "--t", "0.1", "--json"},
		{"estimate", "--xa", "0.5", "--t", "0.1", "--breakdown"},
	} {
		out, err := execute(t, args...)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNonFinite)
		assert.True(t, strings.HasPrefix(err.Error(), domain.MsgComputePrefix))
		assert.NotContains(t, err.Error(), "json:")
		assert.Empty(t, out)
	}
}

func TestEstimateCmd_MissingFlags(t *testing.T) {
	_, err := execute(t, "estimate", "--xa", "0.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"t"`)
}

func TestEstimateCmd_ConfigConstants(t *testing.T) {
	path := writeConfig(t, "constants:\n  v_exp: 1.4013189394832653e-05\n")

	out, err := execute(t, "--config", path, "estimate", "--xa", "0.5", "--t", "298.15", "--json")
	require.NoError(t, err)

	var res domain.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 0, res.RelativeErrorPercent, 1e-3)
}

func TestEstimateCmd_InvalidConstants(t *testing.T) {
	path := writeConfig(t, "constants:\n  q_a: -1\n")

	_, err := execute(t, "--config", path, "estimate", "--xa", "0.5", "--t", "298.15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "q_a")
}

func TestRootCmd_MissingConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "constants")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "loud", "constants"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level")
}

func TestConstantsCmd(t *testing.T) {
	out, err := execute(t, "constants")
	require.NoError(t, err)

	var got domain.ModelConstants
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.DefaultConstants(), got)
	assert.Contains(t, out, "lambda_a:")
}

func TestExplainCmd(t *testing.T) {
	out, err := execute(t, "explain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Modèle de diffusion"))
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "vignes version "+strings.TrimSpace(vignes.Version)+"\n", out)
}

func TestMCPCmd_UnknownTransport(t *testing.T) {
	_, err := execute(t, "mcp", "--transport", "carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}

func TestMCPCmd_TransportHasNoShorthand(t *testing.T) {
	cmd, _, err := NewRootCmd().Find([]string{"mcp"})
	require.NoError(t, err)

	flag := cmd.Flags().Lookup("transport")
	require.NotNil(t, flag)
	assert.Empty(t, flag.Shorthand)
	assert.Nil(t, cmd.Flags().ShorthandLookup("t"))
}

func TestNewHTTPServer(t *testing.T) {
	app, err := bootstrap(GlobalOptions{LogLevel: "error"})
	require.NoError(t, err)
	require.NotNil(t, app.Metrics)

	srv, err := newHTTPServer(app)
	require.NoError(t, err)
	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, app.Config.Server.ReadTimeout, srv.ReadTimeout)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/estimate?xa=0.5&t=298.15", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `vignes_estimates_total{outcome="ok"} 1`)
}

func TestNewHTTPServer_MetricsDisabled(t *testing.T) {
	path := writeConfig(t, "metrics:\n  enabled: false\n")
	app, err := bootstrap(GlobalOptions{ConfigPath: path, LogLevel: "error"})
	require.NoError(t, err)
	assert.Nil(t, app.Metrics)

	srv, err := newHTTPServer(app)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRunServer_StopsOnCancel(t *testing.T) {
	app, err := bootstrap(GlobalOptions{LogLevel: "error"})
	require.NoError(t, err)
	app.Config.Server.Addr = "127.0.0.1:0"

	srv, err := newHTTPServer(app)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, runServer(ctx, app, srv))
}
