// Package content holds the marketing copy of the landing page.
package content

const (
	Brand      = "FormationPro"
	Tagline    = "La plateforme de formation en ligne qui transforme votre carrière."
	Headline   = "Développez vos compétences avec notre plateforme de formation en ligne"
	GetStarted = "Commencer maintenant"
	WatchDemo  = "Voir la démo"
	Copyright  = "© 2024 FormationPro. Tous droits réservés."

	FeaturesTitle    = "Pourquoi choisir FormationPro ?"
	FeaturesSubtitle = "Une expérience d'apprentissage moderne et personnalisée pour tous vos besoins de formation"

	TestimonialsTitle    = "Ce que disent nos apprenants"
	TestimonialsSubtitle = "Découvrez les témoignages de ceux qui ont transformé leur carrière avec FormationPro"

	PricingTitle    = "Choisissez votre plan"
	PricingSubtitle = "Des tarifs transparents pour tous vos besoins de formation"
	Monthly         = "Mensuel"
	Annual          = "Annuel"
	AnnualSavings   = "Jusqu'à 30% d'économie"
)

// NavLink is an entry of the navigation bar pointing at a page section.
type NavLink struct {
	Label   string
	Section string
}

var NavLinks = []NavLink{
	{Label: "Fonctionnalités", Section: "features"},
	{Label: "Témoignages", Section: "testimonials"},
	{Label: "Tarifs", Section: "pricing"},
}

type Feature struct {
	Title       string
	Description string
	Stats       string
	Color       string
}

var Features = []Feature{
	{
		Title:       "Cours Interactifs",
		Description: "Des contenus riches et engageants avec vidéos, quiz et exercices pratiques",
		Stats:       "500+ cours",
		Color:       "blue",
	},
	{
		Title:       "Communauté Active",
		Description: "Échangez avec d'autres apprenants et bénéficiez du support de nos experts",
		Stats:       "10k+ membres",
		Color:       "green",
	},
	{
		Title:       "Certifications",
		Description: "Obtenez des certificats reconnus pour valoriser vos nouvelles compétences",
		Stats:       "50+ certificats",
		Color:       "purple",
	},
}

type Testimonial struct {
	Name    string
	Role    string
	Content string
	Rating  int
}

var Testimonials = []Testimonial{
	{
		Name:    "Marie Dubois",
		Role:    "Développeuse Web",
		Content: "FormationPro m'a permis de maîtriser React en quelques semaines. Les cours sont excellents !",
		Rating:  5,
	},
	{
		Name:    "Pierre Martin",
		Role:    "Chef de Projet",
		Content: "Une plateforme intuitive avec des formateurs de qualité. Je recommande vivement !",
		Rating:  5,
	},
	{
		Name:    "Sophie Laurent",
		Role:    "Designer UX",
		Content: "Les certifications obtenues m'ont aidée à décrocher mon poste actuel. Merci FormationPro !",
		Rating:  5,
	},
}

// Plan prices are in euros per month.
type Plan struct {
	Name          string
	MonthlyPrice  int
	AnnualPrice   int
	Period        string
	Description   string
	Features      []string
	Popular       bool
	Color         string
	AnnualSavings string
}

var Plans = []Plan{
	{
		Name:          "Essentiel",
		MonthlyPrice:  29,
		AnnualPrice:   24,
		Period:        "mois",
		Description:   "Parfait pour débuter votre apprentissage",
		Features:      []string{"Accès à 50+ cours", "Support communautaire", "Certificats de base", "Accès mobile"},
		Color:         "blue",
		AnnualSavings: "Économisez 20%",
	},
	{
		Name:         "Professionnel",
		MonthlyPrice: 59,
		AnnualPrice:  47,
		Period:       "mois",
		Description:  "Idéal pour les professionnels ambitieux",
		Features: []string{
			"Accès à tous les cours",
			"Support prioritaire",
			"Certificats avancés",
			"Projets pratiques",
			"Mentorat personnalisé",
		},
		Popular:       true,
		Color:         "purple",
		AnnualSavings: "Économisez 25%",
	},
	{
		Name:         "Entreprise",
		MonthlyPrice: 99,
		AnnualPrice:  79,
		Period:       "mois",
		Description:  "Pour les équipes et organisations",
		Features: []string{
			"Tout du plan Professionnel",
			"Gestion d'équipe",
			"Rapports détaillés",
			"Formation sur mesure",
			"Support dédié",
		},
		Color:         "green",
		AnnualSavings: "Économisez 30%",
	},
}

type Stat struct {
	Label string
	Value string
}

var DashboardStats = []Stat{
	{Label: "Cours Terminés", Value: "12"},
	{Label: "Heures d'Étude", Value: "24h"},
	{Label: "Certificats", Value: "3"},
}

// Course progress of -1 follows the live progress counter.
type Course struct {
	Title      string
	Progress   int
	Instructor string
}

var Courses = []Course{
	{Title: "React Avancé", Progress: -1, Instructor: "Marie Dubois"},
	{Title: "JavaScript ES6", Progress: 75, Instructor: "Pierre Martin"},
	{Title: "Node.js Backend", Progress: 45, Instructor: "Sophie Laurent"},
}

type Goal struct {
	Task      string
	Completed bool
}

var Goals = []Goal{
	{Task: "Terminer React Avancé", Completed: true},
	{Task: "Obtenir certification JS", Completed: false},
	{Task: "Projet portfolio", Completed: false},
}

type Activity struct {
	Action string
	Time   string
}

var Activities = []Activity{
	{Action: "Nouveau chapitre débloqué", Time: "Il y a 2h"},
	{Action: "Quiz terminé avec succès", Time: "Il y a 4h"},
	{Action: "Nouveau badge obtenu", Time: "Il y a 1j"},
}

var InitialChart = []int{20, 45, 30, 60, 80, 65, 90}

type FooterColumn struct {
	Title string
	Links []string
}

var FooterColumns = []FooterColumn{
	{Title: "Formations", Links: []string{"Développement Web", "Design UX/UI", "Marketing Digital", "Gestion de Projet"}},
	{Title: "Support", Links: []string{"Centre d'aide", "Contact", "FAQ", "Communauté"}},
	{Title: "Entreprise", Links: []string{"À propos", "Carrières", "Partenaires", "Presse"}},
}
