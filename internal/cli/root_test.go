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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketcollection/mkdeploy/internal/domain"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// newProject creates a Hardhat project directory and makes it the working directory
func newProject(t *testing.T, mkdeployToml string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "hardhat.config.js"), []byte("module.exports = {}"), 0644))
	if mkdeployToml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(root, "mkdeploy.toml"), []byte(mkdeployToml), 0644))
	}
	chdir(t, root)
	t.Setenv("PRIVATE_KEY", "")
	t.Setenv("MKDEPLOY_NETWORK", "")
	t.Setenv("MKDEPLOY_SCRIPT_NAME", "")
	return root
}

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestSaveArgsCommand(t *testing.T) {
	t.Run("suffix", func(t *testing.T) {
		root := newProject(t, "")

		stdout, _, err := executeCommand(t, "save-args", `["MarketCollection","MKC"]`, "--suffix", "erc721")
		require.NoError(t, err)

		path := filepath.Join(root, "arguments", "erc721.js")
		assert.Equal(t, path+"\n", stdout)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `module.exports = ["MarketCollection","MKC"]`, string(data))
	})

	t.Run("script name from env", func(t *testing.T) {
		root := newProject(t, "")
		t.Setenv("MKDEPLOY_SCRIPT_NAME", "scripts/deploy.ts")

		_, _, err := executeCommand(t, "save-args", `{"royalty":250,"max":115792089237316195423570985008687907853269984665640564039457584007913129639935}`)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(root, "arguments", "deploy.js"))
		require.NoError(t, err)
		assert.Equal(t,
			`module.exports = {"royalty":250,"max":115792089237316195423570985008687907853269984665640564039457584007913129639935}`,
			string(data))
	})

	t.Run("invalid json", func(t *testing.T) {
		newProject(t, "")

		_, _, err := executeCommand(t, "save-args", `["MarketCollection"`, "--suffix", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "valid JSON")
	})

	t.Run("trailing data", func(t *testing.T) {
		newProject(t, "")

		_, _, err := executeCommand(t, "save-args", `[1] [2]`, "--suffix", "x")
		require.Error(t, err)
	})
}

func TestDeployCommandRejections(t *testing.T) {
	t.Run("unreachable rpc rejects the first target", func(t *testing.T) {
		newProject(t, `
[networks.dead]
url = "http://127.0.0.1:1"
chain_id = 31337
private_key = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
`)

		stdout, _, err := executeCommand(t, "deploy", "--network", "dead", "--non-interactive")
		require.Error(t, err)
		assert.Empty(t, stdout)

		var rejected *domain.DeploymentRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "Market", rejected.Label)
	})

	t.Run("missing artifacts rejects the first target", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				ID json.RawMessage `json:"id"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": "0x7a69"})
		}))
		t.Cleanup(srv.Close)

		newProject(t, `
default_network = "node"

[networks.node]
url = "`+srv.URL+`"
chain_id = 31337
private_key = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
`)

		stdout, _, err := executeCommand(t, "deploy", "--non-interactive")
		require.Error(t, err)
		assert.Empty(t, stdout)
		assert.True(t, strings.HasPrefix(err.Error(), "Market deployment rejected (MarketPlace)"), err.Error())
		assert.Contains(t, err.Error(), "npx hardhat compile")
	})

	t.Run("unknown network", func(t *testing.T) {
		newProject(t, "")

		_, _, err := executeCommand(t, "deploy", "-n", "nowhere")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
	})
}

func TestNetworksCommand(t *testing.T) {
	newProject(t, `
[networks.sepolia]
url = "https://sepolia.example.org"
chain_id = 11155111
`)

	stdout, stderr, err := executeCommand(t, "networks", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, stdout, "localhost")
	assert.Contains(t, stdout, "31337")
	assert.Contains(t, stdout, "sepolia")
	assert.Contains(t, stdout, "11155111")
	assert.Empty(t, stderr)
}

func TestUnreachableDefaultNetwork(t *testing.T) {
	const toml = `
default_network = "sepolia"

[networks.sepolia]
url = "http://127.0.0.1:1"

[networks.local2]
url = "http://127.0.0.1:8546"
chain_id = 31338
`

	t.Run("save-args does not need the network", func(t *testing.T) {
		root := newProject(t, toml)

		_, _, err := executeCommand(t, "save-args", `["MarketCollection","MKC"]`, "--suffix", "erc721", "--non-interactive")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(root, "arguments", "erc721.js"))
		require.NoError(t, err)
		assert.Equal(t, `module.exports = ["MarketCollection","MKC"]`, string(data))
	})

	t.Run("networks lists every network", func(t *testing.T) {
		newProject(t, toml)

		stdout, _, err := executeCommand(t, "networks", "--non-interactive")
		require.NoError(t, err)
		assert.Contains(t, stdout, "local2")
		assert.Contains(t, stdout, "31338")
		assert.Contains(t, stdout, "sepolia")
	})

	t.Run("deploy rejects the first target", func(t *testing.T) {
		newProject(t, toml)

		stdout, _, err := executeCommand(t, "deploy", "--non-interactive")
		require.Error(t, err)
		assert.Empty(t, stdout)

		var rejected *domain.DeploymentRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "Market", rejected.Label)
		assert.Contains(t, err.Error(), "sepolia")
	})
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "mkdeploy version "))
}

func TestParseArguments(t *testing.T) {
	value, err := parseArguments([]byte(` {"z": ["a", 1.50], "a": {"b": true}} `))
	require.NoError(t, err)

	content, err := usecase.EncodeArgumentsModule(value)
	require.NoError(t, err)
	assert.Equal(t, `module.exports = {"z":["a",1.50],"a":{"b":true}}`, string(content))

	_, err = parseArguments([]byte(``))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
