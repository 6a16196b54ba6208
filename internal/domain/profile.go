package domain

// Profile es la ficha profesional publicada en el sitio.
type Profile struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	Email        string `json:"email"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`
	LinkedInURL  string `json:"linkedinUrl"`
	InstagramURL string `json:"instagram"`
}

type Experience struct {
	ID          int    `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// ProjectCategory es el conjunto cerrado de areas de un proyecto.
type ProjectCategory string

const (
	ProjectCategoryLandscaping   ProjectCategory = "Paisagismo"
	ProjectCategoryReforestation ProjectCategory = "Reflorestamento"
	ProjectCategoryConsulting    ProjectCategory = "Consultoria"
)

// ProjectCategories lista todas las categorias en orden de presentacion.
var ProjectCategories = []ProjectCategory{
	ProjectCategoryLandscaping,
	ProjectCategoryReforestation,
	ProjectCategoryConsulting,
}

func (c ProjectCategory) Valid() bool {
	switch c {
	case ProjectCategoryLandscaping, ProjectCategoryReforestation, ProjectCategoryConsulting:
		return true
	}
	return false
}

type Project struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Category    ProjectCategory `json:"category"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Tags        []string        `json:"tags"`
}

// SkillCategory agrupa habilidades al renderizar.
type SkillCategory string

const (
	SkillCategoryTechnical  SkillCategory = "Técnica"
	SkillCategorySoftware   SkillCategory = "Software"
	SkillCategoryManagement SkillCategory = "Gestão"
)

// SkillCategories lista todas las categorias de habilidad en orden de presentacion.
var SkillCategories = []SkillCategory{
	SkillCategoryTechnical,
	SkillCategorySoftware,
	SkillCategoryManagement,
}

func (c SkillCategory) Valid() bool {
	switch c {
	case SkillCategoryTechnical, SkillCategorySoftware, SkillCategoryManagement:
		return true
	}
	return false
}

type Skill struct {
	Name     string        `json:"name"`
	Level    int           `json:"level"` // 0 a 100
	Category SkillCategory `json:"category"`
}
