package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeCmd runs the root command with the given args and returns stdout, stderr, and error.
func executeCmd(stdin string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const resultDoc = `{
  "acs_data": {"iteration_logs": [{"phase": "ACS", "cluster_id": 1, "route_sequence": "0-1-2-0", "total_distance": 10.5}]},
  "rvnd_data": {"iteration_logs": []},
  "routes": [{"cluster_id": 1, "sequence": [0, 1, 2, 0], "total_distance": 10.5, "vehicle_type": "B"}]
}`

const contextDoc = `points:
  depots:
    - name: Gudang
vehicles:
  - id: B
    fixed_cost: 2000
    variable_cost_per_km: 100
`

func TestVersion(t *testing.T) {
	stdout, _, err := executeCmd("", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "routesum dev\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestSummarizeTable(t *testing.T) {
	result := writeFile(t, "result.json", resultDoc)
	ctx := writeFile(t, "context.yaml", contextDoc)

	stdout, _, err := executeCmd("", "summarize", "--result", result, "--context", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"ACS iterations",
		"0-1-2-0",
		"Gudang",
		"3.050",
		"Total Jarak Keseluruhan: 10,50 km",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestSummarizeJSONFromStdin(t *testing.T) {
	ctx := writeFile(t, "context.yaml", contextDoc)

	stdout, _, err := executeCmd(resultDoc, "summarize", "--result", "-", "--context", ctx, "--json", "--locale", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got struct {
		Status    string `json:"status"`
		TotalCost string `json:"total_cost"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, stdout)
	}
	if got.Status != "ok" || got.TotalCost != "3,050" {
		t.Errorf("got %+v", got)
	}
}

func TestSummarizeWithoutDepotsFails(t *testing.T) {
	result := writeFile(t, "result.json", resultDoc)

	_, _, err := executeCmd("", "summarize", "--result", result)
	if err == nil {
		t.Fatal("expected error without depot definitions")
	}
}

func TestSummarizeRequiresResultFlag(t *testing.T) {
	_, _, err := executeCmd("", "summarize")
	if err == nil {
		t.Fatal("expected error for missing --result")
	}
}

func TestSummarizeNoIterationLogs(t *testing.T) {
	result := writeFile(t, "result.json", `{"mode": "ACADEMIC_REPLAY", "routes": [], "costs": {"total_cost": 0}}`)

	stdout, _, err := executeCmd("", "summarize", "--result", result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "No iteration logs.") {
		t.Errorf("output missing no-data notice:\n%s", stdout)
	}
}
