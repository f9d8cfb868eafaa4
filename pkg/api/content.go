package api

import "time"

type (
	// Category groups reasons (and solutions) for display
	Category struct {
		Order *int       `json:"order,omitempty" yaml:"order,omitempty"`
		ID    CategoryID `json:"id" yaml:"id"`
		Name  string     `json:"name" yaml:"name"`
	}

	// Reason is a motivation a user can select explaining why the business
	// park seeks mobility solutions
	Reason struct {
		Order    *int       `json:"order,omitempty" yaml:"order,omitempty"`
		ID       ReasonID   `json:"id" yaml:"id"`
		Title    string     `json:"title" yaml:"title"`
		Summary  string     `json:"summary,omitempty" yaml:"summary,omitempty"`
		Category CategoryID `json:"category,omitempty" yaml:"category,omitempty"`
		Icon     string     `json:"icon,omitempty" yaml:"icon,omitempty"`
	}

	// Solution is a collective-mobility offering such as shared bikes or a
	// shuttle service. Markdown fields may embed raw HTML tables
	Solution struct {
		Order       *int        `json:"order,omitempty" yaml:"order,omitempty"`
		ID          SolutionID  `json:"id" yaml:"id"`
		Slug        string      `json:"slug,omitempty" yaml:"slug,omitempty"`
		Title       string      `json:"title" yaml:"title"`
		Summary     string      `json:"summary,omitempty" yaml:"summary,omitempty"`
		Description string      `json:"description,omitempty" yaml:"description,omitempty"`
		Benefits    string      `json:"benefits,omitempty" yaml:"benefits,omitempty"`
		Challenges  string      `json:"challenges,omitempty" yaml:"challenges,omitempty"`
		Category    CategoryID  `json:"category,omitempty" yaml:"category,omitempty"`
		Icon        string      `json:"icon,omitempty" yaml:"icon,omitempty"`
		Reasons     []ReasonID  `json:"reasons,omitempty" yaml:"reasons,omitempty"`
		Variants    []VariantID `json:"variants,omitempty" yaml:"variants,omitempty"`
	}

	// Variant is an implementation approach for a given solution
	Variant struct {
		Order        *int       `json:"order,omitempty" yaml:"order,omitempty"`
		ID           VariantID  `json:"id" yaml:"id"`
		Solution     SolutionID `json:"solution" yaml:"solution"`
		Title        string     `json:"title" yaml:"title"`
		Summary      string     `json:"summary,omitempty" yaml:"summary,omitempty"`
		Description  string     `json:"description,omitempty" yaml:"description,omitempty"`
		Costs        string     `json:"costs,omitempty" yaml:"costs,omitempty"`
		Organisation string     `json:"organisation,omitempty" yaml:"organisation,omitempty"`
		Pros         string     `json:"pros,omitempty" yaml:"pros,omitempty"`
		Cons         string     `json:"cons,omitempty" yaml:"cons,omitempty"`
	}

	// GovernanceModel is an organizational or legal structure for operating
	// the chosen solutions
	GovernanceModel struct {
		Order       *int              `json:"order,omitempty" yaml:"order,omitempty"`
		ID          GovernanceModelID `json:"id" yaml:"id"`
		Title       string            `json:"title" yaml:"title"`
		Summary     string            `json:"summary,omitempty" yaml:"summary,omitempty"`
		Description string            `json:"description,omitempty" yaml:"description,omitempty"`
		Pros        string            `json:"pros,omitempty" yaml:"pros,omitempty"`
		Cons        string            `json:"cons,omitempty" yaml:"cons,omitempty"`
	}

	// Content bundles every CMS collection the wizard needs for one locale
	Content struct {
		FetchedAt        time.Time          `json:"fetched_at" yaml:"-"`
		Locale           string             `json:"locale" yaml:"locale"`
		Categories       []*Category        `json:"categories" yaml:"categories"`
		Reasons          []*Reason          `json:"reasons" yaml:"reasons"`
		Solutions        []*Solution        `json:"solutions" yaml:"solutions"`
		Variants         []*Variant         `json:"variants" yaml:"variants"`
		GovernanceModels []*GovernanceModel `json:"governance_models" yaml:"governance_models"`
	}
)

// Category returns the category with the given ID
func (c *Content) Category(id CategoryID) (*Category, bool) {
	return find(c.Categories, func(e *Category) bool { return e.ID == id })
}

// Reason returns the reason with the given ID
func (c *Content) Reason(id ReasonID) (*Reason, bool) {
	return find(c.Reasons, func(e *Reason) bool { return e.ID == id })
}

// Solution returns the solution with the given ID
func (c *Content) Solution(id SolutionID) (*Solution, bool) {
	return find(c.Solutions, func(e *Solution) bool { return e.ID == id })
}

// Variant returns the variant with the given ID
func (c *Content) Variant(id VariantID) (*Variant, bool) {
	return find(c.Variants, func(e *Variant) bool { return e.ID == id })
}

// GovernanceModel returns the governance model with the given ID
func (c *Content) GovernanceModel(
	id GovernanceModelID,
) (*GovernanceModel, bool) {
	return find(c.GovernanceModels,
		func(e *GovernanceModel) bool { return e.ID == id },
	)
}

// VariantsOf returns the variants that belong to the given solution, in the
// order they appear in the global variant list
func (c *Content) VariantsOf(id SolutionID) []*Variant {
	var res []*Variant
	for _, v := range c.Variants {
		if v.Solution == id {
			res = append(res, v)
		}
	}
	return res
}

func find[T any](items []*T, match func(*T) bool) (*T, bool) {
	for _, item := range items {
		if item != nil && match(item) {
			return item, true
		}
	}
	return nil, false
}
