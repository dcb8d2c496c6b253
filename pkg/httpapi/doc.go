// Package httpapi exposes the template engine over HTTP.
//
// Routes:
//
//	POST   /templates                 create from a name and markdown source
//	GET    /templates                 list stored templates
//	GET    /templates/{key}           fetch one template
//	PUT    /templates/{key}           replace a template's content
//	DELETE /templates/{key}           delete a template
//	POST   /templates/import          import a legacy-shaped template payload
//	POST   /templates/{key}/send-test deliver a rendered test email
//	POST   /preview                   render markdown to layout-wrapped HTML
//	POST   /import/html               convert legacy HTML to markdown
//	GET    /healthz                   aggregated dependency health
//
// All request and response bodies are JSON. Validation failures return 422
// with the joined violation messages; unknown keys return 404; duplicate
// keys return 409.
package httpapi
