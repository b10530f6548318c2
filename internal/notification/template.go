package notification

import "strings"

// RenderTemplate substitutes {{variable}} placeholders. Unknown
// placeholders are left as-is.
func RenderTemplate(content string, vars map[string]string) string {
	for k, v := range vars {
		content = strings.ReplaceAll(content, "{{"+k+"}}", v)
	}
	return content
}
