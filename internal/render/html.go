package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
)

// Recorder tees report output into a buffer so the transcript can be
// exported after the fact.
type Recorder struct {
	buf bytes.Buffer
	out io.Writer
}

func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out}
}

func (r *Recorder) Write(p []byte) (int, error) {
	r.buf.Write(p)
	return r.out.Write(p)
}

// Transcript returns everything written through the recorder so far.
func (r *Recorder) Transcript() string {
	return r.buf.String()
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { background: #272822; color: #f8f8f2; }
pre { font-family: Menlo, Consolas, monospace; font-size: 13px; line-height: 1.4; }
</style>
</head>
<body>
<pre>{{.Body}}</pre>
</body>
</html>
`))

// ExportHTML writes the recorded transcript as a standalone HTML report.
func ExportHTML(path, title, transcript string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export html: create %s: %w", path, err)
	}
	defer f.Close()

	data := struct {
		Title string
		Body  string
	}{Title: title, Body: transcript}

	if err := reportTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("export html: render template: %w", err)
	}

	return nil
}
