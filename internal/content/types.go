package content

// Model holds everything rendered onto the portfolio page.
type Model struct {
	Person       Person          `json:"person" yaml:"person"`
	Experiences  []Experience    `json:"experiences" yaml:"experiences" validate:"dive"`
	Projects     []Project       `json:"projects" yaml:"projects" validate:"dive"`
	Skills       []SkillCategory `json:"skills" yaml:"skills" validate:"dive"`
	Achievements []Achievement   `json:"achievements" yaml:"achievements" validate:"dive"`
}

// Person is the page owner shown in the hero and footer.
type Person struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Tagline string `json:"tagline" yaml:"tagline"`
}

// Experience is one timeline entry; Achievements and Technologies render in order.
type Experience struct {
	Company      string   `json:"company" yaml:"company" validate:"required"`
	Role         string   `json:"role" yaml:"role" validate:"required"`
	Location     string   `json:"location" yaml:"location"`
	Period       string   `json:"period" yaml:"period"`
	Achievements []string `json:"achievements" yaml:"achievements"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

// Project is a portfolio entry. Award is optional and omitted from the page when empty.
type Project struct {
	Name         string   `json:"name" yaml:"name" validate:"required"`
	Date         string   `json:"date" yaml:"date"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Award        string   `json:"award,omitempty" yaml:"award,omitempty"`
	Image        string   `json:"image" yaml:"image"`
}

// SkillCategory groups skill tags under a heading.
type SkillCategory struct {
	Category string   `json:"category" yaml:"category" validate:"required"`
	Items    []string `json:"items" yaml:"items"`
}

// Achievement is an award card; Icon is a Font Awesome class such as fa-trophy.
type Achievement struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Result      string `json:"result" yaml:"result"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon" validate:"required"`
}
