// Package types provides the resume data model shared by the loader, exporters, renderer and server.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is a validated resume document. It is built once by the loader and
// treated as read-only afterwards.
type Resume struct {
	Name        string                  `json:"name" yaml:"name" validate:"required,min=1"`
	Title       string                  `json:"title" yaml:"title" validate:"required,min=1"`
	Contact     Contact                 `json:"contact" yaml:"contact"`
	Summaries   OrderedMap[string]      `json:"summaries" yaml:"summaries"`
	Experience  []Experience            `json:"experience" yaml:"experience" validate:"dive"`
	Skills      OrderedMap[[]string]    `json:"skills" yaml:"skills"`
	RoleTargets *OrderedMap[RoleTarget] `json:"role_targets,omitempty" yaml:"role_targets,omitempty" validate:"omitempty"`
	Projects    []any                   `json:"projects" yaml:"projects"`
}

// Contact holds the contact block printed at the top of every rendering.
type Contact struct {
	Email    string `json:"email" yaml:"email" validate:"required,email"`
	Phone    string `json:"phone" yaml:"phone" validate:"required,min=1"`
	Location string `json:"location" yaml:"location" validate:"required,min=1"`
	LinkedIn string `json:"linkedin" yaml:"linkedin" validate:"required,url"`
	GitHub   string `json:"github" yaml:"github" validate:"required,url"`
}

// Experience is a single position. End is nil for a current role.
type Experience struct {
	Company      string   `json:"company" yaml:"company" validate:"required,min=1"`
	Role         string   `json:"role" yaml:"role" validate:"required,min=1"`
	Start        string   `json:"start" yaml:"start" validate:"required,min=1"`
	End          *string  `json:"end" yaml:"end"`
	DatesDisplay string   `json:"dates_display" yaml:"dates_display" validate:"required,min=1"`
	Location     string   `json:"location" yaml:"location" validate:"required,min=1"`
	Highlights   []string `json:"highlights" yaml:"highlights"`
}

// RoleTarget tailors the rendering for a target role.
type RoleTarget struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
	Emphasis Emphasis `json:"emphasis" yaml:"emphasis"`
}

// Emphasis selects the summary and skill group order for a role target.
type Emphasis struct {
	Summary     string   `json:"summary" yaml:"summary" validate:"required,min=1"`
	SkillsOrder []string `json:"skills_order" yaml:"skills_order"`
}

// CurrentRole reports whether the position has no end date.
func (e Experience) CurrentRole() bool {
	return e.End == nil
}

// RoleTarget returns the role target stored under key, if any.
func (r *Resume) RoleTarget(key string) (RoleTarget, bool) {
	if r.RoleTargets == nil {
		return RoleTarget{}, false
	}
	return r.RoleTargets.Get(key)
}
