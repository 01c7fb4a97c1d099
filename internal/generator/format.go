package generator

import (
	"context"
	"os/exec"
	"strings"

	slogctx "github.com/veqryn/slog-context"
)

// formatFile runs clang-format in place on a generated file. Formatting is
// cosmetic, so a missing binary or a formatter failure is logged and never
// fails the run.
func formatFile(ctx context.Context, path string) {
	cmd := exec.CommandContext(ctx, "clang-format", "-i", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		slogctx.Debug(ctx, "clang-format skipped",
			"path", path,
			"reason", err.Error(),
			"output", strings.TrimSpace(string(out)),
		)
	}
}
