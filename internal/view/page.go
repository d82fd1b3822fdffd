// Package view is the HTML rendering boundary. It only supplies shared
// page chrome; each handler assembles its own body markup. Bodies are
// inserted verbatim; escaping, or the lack of it, is each handler's
// own business.
package view

import (
	"fmt"
	"html"
)

const layout = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>%s | vulnerable-app</title>
</head>
<body>
<nav><a href="/">home</a> | <a href="/login">login</a> | <a href="/logout">logout</a> | <a href="/reset-db">reset db</a></nav>
<hr>
<h1>%s</h1>
%s
</body>
</html>
`

// Page wraps body in the shared layout. The title is escaped; the body
// is not.
func Page(title, body string) string {
	t := html.EscapeString(title)
	return fmt.Sprintf(layout, t, t, body)
}
