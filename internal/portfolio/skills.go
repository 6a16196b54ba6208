package portfolio

import (
	"github.com/samber/lo"

	"ecofolio/internal/domain"
)

// SkillGroup junta las habilidades de una misma categoria.
type SkillGroup struct {
	Category domain.SkillCategory `json:"category"`
	Skills   []domain.Skill       `json:"skills"`
}

// GroupSkills arma un grupo por cada categoria conocida, en el orden de
// domain.SkillCategories. Las habilidades con categoria desconocida se descartan.
func GroupSkills(skills []domain.Skill) []SkillGroup {
	byCategory := lo.GroupBy(skills, func(s domain.Skill) domain.SkillCategory {
		return s.Category
	})

	groups := make([]SkillGroup, 0, len(domain.SkillCategories))
	for _, category := range domain.SkillCategories {
		groups = append(groups, SkillGroup{
			Category: category,
			Skills:   append([]domain.Skill{}, byCategory[category]...),
		})
	}
	return groups
}

// UngroupedSkills devuelve las habilidades que ningun grupo acepta.
func UngroupedSkills(skills []domain.Skill) []domain.Skill {
	return lo.Reject(skills, func(s domain.Skill, _ int) bool {
		return s.Category.Valid()
	})
}
