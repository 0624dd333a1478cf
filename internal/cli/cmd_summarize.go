package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"route-summary-service/internal/adapters/repositories"
	"route-summary-service/internal/format"
	"route-summary-service/internal/resultjson"
	"route-summary-service/internal/services"
)

type summarizeOpts struct {
	resultPath  string
	contextPath string
	locale      string
	json        bool
}

func newSummarizeCmd() *cobra.Command {
	var opts summarizeOpts

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a pipeline result file",
		Long: `Summarize a pipeline result file.

The result may be a standard or an ACADEMIC_REPLAY document; use "-" to read
it from stdin. Standard results need depot and vehicle definitions from a
JSON or YAML --context file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.resultPath, "result", "", "pipeline result JSON file (\"-\" for stdin)")
	cmd.Flags().StringVar(&opts.contextPath, "context", "", "depot and vehicle definitions (JSON or YAML)")
	cmd.Flags().StringVar(&opts.locale, "locale", format.DefaultLocale, "number formatting locale")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output the rendered report as JSON")
	_ = cmd.MarkFlagRequired("result")

	return cmd
}

func runSummarize(cmd *cobra.Command, opts summarizeOpts) error {
	f, err := format.NewFromLocale(opts.locale)
	if err != nil {
		return err
	}

	raw, err := readInput(cmd.InOrStdin(), opts.resultPath)
	if err != nil {
		return fmt.Errorf("summarize: read result: %w", err)
	}
	res, err := resultjson.Decode(raw)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	var sctx *resultjson.Context
	if opts.contextPath != "" {
		b, err := os.ReadFile(opts.contextPath)
		if err != nil {
			return fmt.Errorf("summarize: read context: %w", err)
		}
		if sctx, err = resultjson.DecodeContext(b); err != nil {
			return fmt.Errorf("summarize: %w", err)
		}
	}

	svc := &services.SummaryService{Context: repositories.NewStaticContextRepository(sctx)}
	report, err := svc.Summarize(cmd.Context(), res, services.ContextOverride{})
	if err != nil {
		return err
	}

	view := f.Render(report)
	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	return writeView(out, view)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
