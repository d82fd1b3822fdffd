package handler

import "github.com/cycy2xxx/vulnerable-app/internal/view"

// page renders a body inside the shared layout.
func page(title, body string) string { return view.Page(title, body) }
