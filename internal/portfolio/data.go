package portfolio

import "ecofolio/internal/domain"

var defaultProfile = domain.Profile{
	Name:  "Rafael de Andrade Ammon",
	Title: "Engenheiro Florestal",
	Bio: "Engenheiro Florestal pela UFRRJ com MBA em Gestão de Projetos (USP/ESALQ) e trajetória voltada à conservação ambiental, " +
		"restauração florestal e sustentabilidade corporativa. Atuo como Fiscal Operacional na RPBC, promovendo práticas alinhadas " +
		"à gestão ambiental em áreas industriais. Participei de projetos de relevância ecológica como o Inventário Florestal " +
		"Nacional (RJ) e a restauração do COMPERJ/GasLub.",
	Email:        "rafael.ammon@gmail.com",
	Location:     "Praia Grande - SP",
	Phone:        "(31) 99915-4408",
	LinkedInURL:  "https://www.linkedin.com/in/rafael-andrade-ammon-2527a72a/",
	InstagramURL: "",
}

var defaultExperiences = []domain.Experience{
	{
		ID:      1,
		Role:    "Engenheiro Florestal (Fiscal Operacional)",
		Company: "Vinil Engenharia",
		Period:  "2024 - Atual",
		Description: "Fiscalização de contratos de áreas verdes na refinaria Presidente Bernardes (RPBC) e consultoria técnica " +
			"na refinaria de Paulínia (REPLAN). Elaboração de pareceres técnicos, análise de conformidade legal e treinamentos.",
	},
	{
		ID:      2,
		Role:    "Planejador em áreas verdes",
		Company: "Vinil Engenharia",
		Period:  "2023 - 2024",
		Description: "Planejamento e gestão de atividades de manutenção de áreas verdes em ambiente industrial. Responsável por " +
			"equipes, cronogramas operacionais, implantação de plantios compensatórios e análise de risco. Presidente da CIPA do contrato.",
	},
	{
		ID:      3,
		Role:    "Coordenador Operacional",
		Company: "Elementus",
		Period:  "2021 - 2023",
		Description: "Coordenação de projeto de restauração florestal do GasLub com 350 hectares de mata nativa. Liderança de " +
			"equipes, planejamento de atividades e avaliação da qualidade técnica dos plantios e manutenção.",
	},
	{
		ID:      4,
		Role:    "Analista Ambiental Pleno",
		Company: "EGIS Brasil",
		Period:  "2018 - 2021",
		Description: "Atuação em projetos de restauração florestal na bacia do Rio Doce. Supervisão de equipes, gestão ambiental " +
			"e elaboração de diagnósticos técnicos. Apoio a vistorias da Fundação Renova e levantamentos fitossociológicos.",
	},
	{
		ID:          5,
		Role:        "Analista Ambiental Jr.",
		Company:     "CTA Meio Ambiente",
		Period:      "2015 - 2018",
		Description: "Atuação focada em licenciamento e estudos ambientais, garantindo conformidade técnica e legal em projetos diversos.",
	},
}

var defaultProjects = []domain.Project{
	{
		ID:       1,
		Title:    "Restauração GasLub (COMPERJ)",
		Category: domain.ProjectCategoryReforestation,
		Description: "Coordenação da restauração de 350 hectares de mata nativa, gerenciando equipes e qualidade técnica em um " +
			"dos maiores projetos de recuperação do RJ.",
		ImageURL: "https://picsum.photos/seed/gaslub/800/600",
		Tags:     []string{"Mata Atlântica", "Gestão de Equipes", "Restauração"},
	},
	{
		ID:       2,
		Title:    "Gestão Áreas Verdes RPBC",
		Category: domain.ProjectCategoryConsulting,
		Description: "Fiscalização e planejamento de manutenção de áreas verdes em refinarias (Petrobras), integrando segurança " +
			"(SMS) e conservação ambiental industrial.",
		ImageURL: "https://picsum.photos/seed/refinery/800/600",
		Tags:     []string{"Industrial", "SMS", "Fiscalização"},
	},
	{
		ID:       3,
		Title:    "Recuperação Rio Doce",
		Category: domain.ProjectCategoryReforestation,
		Description: "Participação estratégica na recuperação da bacia do Rio Doce, realizando diagnósticos, planejamento de campo " +
			"e levantamentos fitossociológicos.",
		ImageURL: "https://picsum.photos/seed/riodoce/800/600",
		Tags:     []string{"Bacia Hidrográfica", "Diagnóstico", "Fundação Renova"},
	},
	{
		ID:       4,
		Title:    "Inventário Florestal Nacional",
		Category: domain.ProjectCategoryConsulting,
		Description: "Execução de levantamentos para o Inventário Florestal Nacional no Rio de Janeiro, contribuindo para o " +
			"mapeamento da biodiversidade brasileira.",
		ImageURL: "https://picsum.photos/seed/inventory/800/600",
		Tags:     []string{"Pesquisa", "Botânica", "Levantamento"},
	},
}

var defaultSkills = []domain.Skill{
	{Name: "Gestão de Projetos (PMBOK)", Level: 90, Category: domain.SkillCategoryManagement},
	{Name: "QGIS / Geoprocessamento", Level: 95, Category: domain.SkillCategorySoftware},
	{Name: "MS Project & Primavera P6", Level: 85, Category: domain.SkillCategorySoftware},
	{Name: "Power BI", Level: 80, Category: domain.SkillCategorySoftware},
	{Name: "Restauração Florestal", Level: 95, Category: domain.SkillCategoryTechnical},
	{Name: "Fiscalização de Contratos", Level: 90, Category: domain.SkillCategoryManagement},
	{Name: "Inglês Fluente", Level: 90, Category: domain.SkillCategoryManagement},
}
