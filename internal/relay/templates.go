package relay

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/aymerick/raymond"

	"github.com/nfrund/backstory/internal/domain"
)

//go:embed templates/*.hbs
var templateFS embed.FS

// Templates renders message bodies for relays that send raw HTML.
type Templates struct {
	mu    sync.Mutex
	cache map[string]*raymond.Template
}

// NewTemplates returns a renderer over the embedded templates.
func NewTemplates() *Templates {
	return &Templates{cache: make(map[string]*raymond.Template)}
}

// Render renders msg's template. A template id with no matching file falls
// back to the form's default template.
func (t *Templates) Render(msg domain.RelayMessage) (string, error) {
	tmpl, err := t.lookup(msg.TemplateID)
	if err != nil {
		tmpl, err = t.lookup("contact_" + string(msg.Form))
		if err != nil {
			return "", fmt.Errorf("no template for %q: %w", msg.TemplateID, err)
		}
	}

	ctx := make(map[string]interface{}, len(msg.Params))
	for k, v := range msg.Params {
		ctx[k] = v
	}
	out, err := tmpl.Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render %q: %w", msg.TemplateID, err)
	}
	return out, nil
}

// Subject builds the mail subject line for msg.
func Subject(msg domain.RelayMessage) string {
	if msg.Form == domain.FormQuick {
		return "Quick message from " + msg.Params["from_email"]
	}
	subject := strings.TrimSpace(msg.Params["subject"])
	if subject == "" {
		subject = "New inquiry"
	}
	return subject
}

func (t *Templates) lookup(name string) (*raymond.Template, error) {
	if name == "" || strings.ContainsAny(name, "/\\.") {
		return nil, domain.ErrNotFound
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if tmpl, ok := t.cache[name]; ok {
		return tmpl, nil
	}

	content, err := templateFS.ReadFile(path.Join("templates", name+".hbs"))
	if err != nil {
		return nil, domain.ErrNotFound
	}
	tmpl, err := raymond.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	t.cache[name] = tmpl
	return tmpl, nil
}
