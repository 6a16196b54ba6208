package portfolio

import (
	"slices"

	"github.com/samber/lo"

	"ecofolio/internal/domain"
)

// Store guarda los datos del portfolio. Se carga una vez y no se modifica;
// todos los accesores devuelven copias.
type Store struct {
	profile     domain.Profile
	experiences []domain.Experience
	projects    []domain.Project
	skills      []domain.Skill
}

func NewStore(profile domain.Profile, experiences []domain.Experience, projects []domain.Project, skills []domain.Skill) *Store {
	return &Store{
		profile:     profile,
		experiences: slices.Clone(experiences),
		projects:    cloneProjects(projects),
		skills:      slices.Clone(skills),
	}
}

// Default devuelve el store con los datos publicados en el sitio.
func Default() *Store {
	return NewStore(defaultProfile, defaultExperiences, defaultProjects, defaultSkills)
}

func (s *Store) Profile() domain.Profile {
	return s.profile
}

func (s *Store) Experiences() []domain.Experience {
	return slices.Clone(s.experiences)
}

func (s *Store) Projects() []domain.Project {
	return cloneProjects(s.projects)
}

// ProjectsByCategory filtra manteniendo el orden de origen.
func (s *Store) ProjectsByCategory(category domain.ProjectCategory) []domain.Project {
	return lo.Filter(s.Projects(), func(p domain.Project, _ int) bool {
		return p.Category == category
	})
}

func (s *Store) Skills() []domain.Skill {
	return slices.Clone(s.skills)
}

func cloneProjects(in []domain.Project) []domain.Project {
	if in == nil {
		return nil
	}
	return lo.Map(in, func(p domain.Project, _ int) domain.Project {
		p.Tags = slices.Clone(p.Tags)
		return p
	})
}
