package report

import (
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/dirdigest/digester"
)

// Summary is the JSON form of a run.
type Summary struct {
	Root      string `json:"root"`
	Output    string `json:"output"`
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
	Files     int    `json:"files"`
}

// NewSummary condenses res.
func NewSummary(res digester.Result) Summary {
	return Summary{
		Root:      res.Root,
		Output:    res.Output,
		Algorithm: res.Algorithm,
		Digest:    res.Digest,
		Files:     len(res.Files),
	}
}

// Vars returns the template variables for res.
func Vars(res digester.Result) map[string]interface{} {
	return map[string]interface{}{
		"root":      res.Root,
		"output":    res.Output,
		"algorithm": res.Algorithm,
		"digest":    res.Digest,
		"files":     strconv.Itoa(len(res.Files)),
	}
}

// Render substitutes {VAR} placeholders in format with the
// values of res. Unknown variables are preserved as-is.
func Render(format string, res digester.Result) string {
	return fasttemplate.ExecuteStringStd(
		format, "{", "}", Vars(res),
	)
}

// JSON writes the Summary of res as one JSON line to w.
func JSON(w io.Writer, res digester.Result) error {
	const errCtx = "writing json report"

	by, err := json.Marshal(NewSummary(res))
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	by = append(by, '\n')

	if _, err := w.Write(by); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
