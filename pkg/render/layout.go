package render

import "html/template"

// layoutCSS is the static stylesheet for the email shell. It is a constant
// on purpose: the shell never varies per template, only the content does.
const layoutCSS = `
body { margin: 0; padding: 0; background-color: #f4f4f7; }
.wrapper { width: 100%; background-color: #f4f4f7; padding: 24px 0; }
.container { max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 6px; overflow: hidden; font-family: Helvetica, Arial, sans-serif; color: #333333; }
.header { padding: 24px 32px; border-bottom: 1px solid #eaeaec; font-size: 18px; font-weight: bold; }
.content { padding: 32px; font-size: 15px; line-height: 1.6; }
.content h1, .content h2, .content h3 { margin: 0 0 16px; line-height: 1.3; }
.content p { margin: 0 0 16px; }
.content ul { margin: 0 0 16px; padding-left: 24px; }
.content hr { border: none; border-top: 1px solid #eaeaec; margin: 24px 0; }
.btn { display: inline-block; padding: 12px 24px; background-color: #3869d4; color: #ffffff !important; text-decoration: none; border-radius: 4px; font-weight: bold; }
p:has(> .btn) { text-align: center; }
.footer { padding: 24px 32px; border-top: 1px solid #eaeaec; font-size: 12px; color: #9a9ea6; text-align: center; }
`

// layoutShell is the fixed email-safe wrapper: a header region, a content
// region housing the converted body, and a footer region.
const layoutShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<style>{{.CSS}}</style>
</head>
<body>
<div class="wrapper">
<div class="container">
{{if .HeaderTitle}}<div class="header">{{.HeaderTitle}}</div>
{{end}}<div class="content">
{{.Content}}</div>
{{if .FooterText}}<div class="footer">{{.FooterText}}</div>
{{end}}</div>
</div>
</body>
</html>
`

var layoutTmpl = template.Must(template.New("layout").Parse(layoutShell))
