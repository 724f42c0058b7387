package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/resume-export/internal/types"
)

//go:embed templates/resume.html.tmpl
var templateFS embed.FS

const defaultTemplateName = "templates/resume.html.tmpl"

// Options selects the summary, the role target and the template for a render.
type Options struct {
	SummaryKey   string
	RoleKey      string
	TemplatePath string // empty selects the built-in template
}

// SkillGroup is a labelled skill list in display order.
type SkillGroup struct {
	Label string
	Items []string
}

// TemplateData is the value templates execute against. Every resume field is
// available directly, e.g. {{.Name}} or {{.Contact.Email}}.
type TemplateData struct {
	types.Resume
	Summary       string
	SummaryKey    string
	RoleKey       string
	SkillsOrdered []SkillGroup
}

// RenderHTML renders the resume to an HTML document. The template is read
// and parsed on every call.
func RenderHTML(r *types.Resume, opts Options) (string, error) {
	if r == nil {
		return "", &RenderError{Message: "resume is nil"}
	}

	tmpl, err := parseTemplate(opts.TemplatePath)
	if err != nil {
		return "", err
	}

	data := TemplateData{
		Resume:        *r,
		Summary:       ResolveSummary(r, opts.SummaryKey),
		SummaryKey:    opts.SummaryKey,
		RoleKey:       opts.RoleKey,
		SkillsOrdered: OrderSkills(r, opts.RoleKey),
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// ResolveSummary picks summaries[key], then summaries["default"], then the
// first summary in document order, then "".
func ResolveSummary(r *types.Resume, key string) string {
	if s, ok := r.Summaries.Get(key); ok {
		return s
	}
	if s, ok := r.Summaries.Get("default"); ok {
		return s
	}
	if _, s, ok := r.Summaries.First(); ok {
		return s
	}
	return ""
}

// OrderSkills lists skill groups in the role target's skills_order when it
// is non-empty, otherwise in document order. Labels without a matching skill
// group are dropped.
func OrderSkills(r *types.Resume, roleKey string) []SkillGroup {
	labels := r.Skills.Keys()
	if rt, ok := r.RoleTarget(roleKey); ok && len(rt.Emphasis.SkillsOrder) > 0 {
		labels = rt.Emphasis.SkillsOrder
	}

	groups := make([]SkillGroup, 0, len(labels))
	for _, label := range labels {
		items, ok := r.Skills.Get(label)
		if !ok {
			continue
		}
		groups = append(groups, SkillGroup{Label: label, Items: items})
	}
	return groups
}

func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := readTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("resume").Funcs(Helpers()).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

func readTemplate(templatePath string) (string, error) {
	if templatePath == "" {
		content, err := templateFS.ReadFile(defaultTemplateName)
		if err != nil {
			return "", &TemplateError{
				Message: "failed to read built-in template",
				Cause:   err,
			}
		}
		return string(content), nil
	}

	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return string(content), nil
}
