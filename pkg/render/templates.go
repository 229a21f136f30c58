package render

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"cppString": cppString,
		"cppFloat":  cppFloat,
		"goString":  strconv.Quote,
		"goFloat":   ddi.FormatFloat,
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

func renderTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// cppString quotes s as a C++ narrow string literal. Non-ASCII text is
// passed through as UTF-8.
func cppString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '?':
			// Avoid forming trigraphs.
			if i+1 < len(s) && s[i+1] == '?' {
				b.WriteString(`\?`)
			} else {
				b.WriteByte(c)
			}
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\%03o`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// cppFloat renders v as a float literal with a decimal point and an f suffix.
func cppFloat(v float64) string {
	return ddi.FormatFloat(v) + "f"
}
