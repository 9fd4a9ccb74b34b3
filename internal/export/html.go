package export

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"

	"github.com/jmallek/promptstash/internal/errors"
	"github.com/jmallek/promptstash/internal/model"
)

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
pre { background: #f4f4f4; padding: 0.75rem; border-radius: 4px; overflow-x: auto; }
code { font-family: monospace; }
hr { border: none; border-top: 1px solid #ddd; margin: 1.5rem 0; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTMLReport renders the detailed report as a standalone HTML page by
// converting the Markdown body with goldmark.
func HTMLReport(result *model.ConsolidationResult) ([]byte, error) {
	md := DetailedReport(result)

	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md), &body); err != nil {
		return nil, errors.NewInternal(err)
	}

	title := html.EscapeString(result.Project.Name + " - Full Report")
	return []byte(fmt.Sprintf(htmlShell, title, body.String())), nil
}
