package web

import "html/template"

// Templates for the two pages the server renders. The segmented-view CSS
// keeps the original look: monospace line container, tinted labeled blocks,
// hover highlight with the segment name in the title tooltip.

const uploadPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document Segment Visualizer</title>
<style>
    body { font-family: sans-serif; max-width: 900px; margin: 40px auto; }
    form { padding: 20px; border: 1px dashed #adb5bd; border-radius: 10px; }
</style>
</head>
<body>
<h1>&#128196; Document Segment Visualizer</h1>
<form action="/segment" method="post" enctype="multipart/form-data">
    <p>Upload a text file</p>
    <input type="file" name="document" accept=".txt" required>
    <button type="submit">Segment</button>
</form>
</body>
</html>
`

const resultPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document Segment Visualizer</title>
<style>
    body { font-family: sans-serif; max-width: 1100px; margin: 40px auto; }
    .error {
        background-color: #f8d7da;
        border: 1px solid #f5c2c7;
        border-radius: 6px;
        padding: 10px 16px;
        margin-bottom: 16px;
    }
    .hint { color: #6c757d; margin-bottom: 12px; }
    .line-container {
        font-family: 'Courier New', Courier, monospace;
        white-space: pre;
        line-height: 1.2;
        background-color: #f8f9fa;
        padding: 20px;
        border-radius: 10px;
        border: 1px solid #dee2e6;
        overflow-x: auto;
    }
    .segment-block {
        display: block;
        border: 1px solid transparent;
        border-radius: 4px;
        transition: all 0.2s ease;
        cursor: help;
        margin: 2px 0;
    }
    .segment-block:hover {
        background-color: #fff3cd !important;
        border: 1px solid #ffeeba;
        box-shadow: 0 4px 8px rgba(0,0,0,0.1);
        transform: scale(1.002);
        z-index: 10;
        position: relative;
    }
    .highlighted { background-color: #e2f0d9; }
    .unhighlighted { background-color: transparent; cursor: default; }
    .line-num {
        color: #adb5bd;
        font-size: 0.85em;
        user-select: none;
        margin-right: 15px;
        border-right: 1px solid #dee2e6;
        padding-right: 8px;
        display: inline-block;
        width: 40px;
        text-align: right;
    }
    details { margin-top: 20px; }
    details pre {
        background-color: #f8f9fa;
        border: 1px solid #dee2e6;
        border-radius: 6px;
        padding: 12px;
        overflow-x: auto;
    }
</style>
</head>
<body>
<h1>&#128196; Document Segment Visualizer</h1>
{{if .Error}}<div class="error">Error during segmentation: {{.Error}}</div>{{end}}
{{if .HasSections}}<p class="hint">&#128161; <b>Hover</b> over a green block to see its segment name.</p>{{end}}
<div class="line-container">
{{- range .Doc.Blocks}}
{{- if .Labeled}}<div class="segment-block highlighted" title="Segment: {{.Label}}">
{{- else}}<div class="segment-block unhighlighted">
{{- end}}
{{- range .Lines}}<span class="line-num">{{.Num}}</span>{{raw .Text}}
{{end -}}
</div>
{{- end}}
</div>
{{if .HasSections}}<details>
<summary>Show Raw Segmentation JSON</summary>
<pre>{{.RawJSON}}</pre>
</details>{{end}}
<p><a href="/">&#8592; Upload another document</a></p>
</body>
</html>
`

// raw marks renderer output as pre-escaped: the segment package already
// escaped &, < and >, so running it through the template escaper again would
// double-escape the entities.
var templateFuncs = template.FuncMap{
	"raw": func(s string) template.HTML { return template.HTML(s) },
}

var (
	uploadTmpl = template.Must(template.New("upload").Parse(uploadPage))
	resultTmpl = template.Must(template.New("result").Funcs(templateFuncs).Parse(resultPage))
)
