// Package taxonomy holds the static category tree used to tag businesses:
// category → subcategories → specialty labels keyed by locale. It is plain
// loaded data, not dispatch; pickers and validation read it as-is.
package taxonomy

// Label is a locale-keyed display string. Spanish is the canonical value
// and always present.
type Label struct {
	ID string
	ES string
	EN string
	PT string
}

// Resolve returns the label for the locale, falling back to Spanish.
func (l Label) Resolve(locale string) string {
	switch locale {
	case "en":
		if l.EN != "" {
			return l.EN
		}
	case "pt":
		if l.PT != "" {
			return l.PT
		}
	}
	return l.ES
}

// Subcategory is the second level of the tree.
type Subcategory struct {
	ID          string
	Label       Label
	Specialties []Label
}

// Category is the top level of the tree.
type Category struct {
	ID            string
	Label         Label
	Subcategories []Subcategory
}

// Selection caps enforced by the setup wizard.
const (
	MaxExtraCategories = 2
	MaxSpecialties     = 6
)

var tree = []Category{
	{
		ID:    "beauty",
		Label: Label{ID: "beauty", ES: "Belleza", EN: "Beauty", PT: "Beleza"},
		Subcategories: []Subcategory{
			{
				ID:    "barbershop",
				Label: Label{ID: "barbershop", ES: "Barbería", EN: "Barbershop", PT: "Barbearia"},
				Specialties: []Label{
					{ID: "classic_cut", ES: "Corte clásico", EN: "Classic cut", PT: "Corte clássico"},
					{ID: "fade", ES: "Degradado", EN: "Fade", PT: "Degradê"},
					{ID: "beard", ES: "Barba", EN: "Beard", PT: "Barba"},
					{ID: "kids_cut", ES: "Corte infantil", EN: "Kids cut", PT: "Corte infantil"},
				},
			},
			{
				ID:    "hair_salon",
				Label: Label{ID: "hair_salon", ES: "Salón de belleza", EN: "Hair salon", PT: "Salão de beleza"},
				Specialties: []Label{
					{ID: "coloring", ES: "Coloración", EN: "Coloring", PT: "Coloração"},
					{ID: "keratin", ES: "Keratina", EN: "Keratin", PT: "Queratina"},
					{ID: "styling", ES: "Peinados", EN: "Styling", PT: "Penteados"},
					{ID: "extensions", ES: "Extensiones", EN: "Extensions", PT: "Extensões"},
				},
			},
			{
				ID:    "nails",
				Label: Label{ID: "nails", ES: "Uñas", EN: "Nails", PT: "Unhas"},
				Specialties: []Label{
					{ID: "acrylic", ES: "Acrílicas", EN: "Acrylic", PT: "Acrílicas"},
					{ID: "gel", ES: "Gel", EN: "Gel", PT: "Gel"},
					{ID: "manicure", ES: "Manicura", EN: "Manicure", PT: "Manicure"},
					{ID: "pedicure", ES: "Pedicura", EN: "Pedicure", PT: "Pedicure"},
				},
			},
			{
				ID:    "spa",
				Label: Label{ID: "spa", ES: "Spa y masajes", EN: "Spa & massage", PT: "Spa e massagens"},
				Specialties: []Label{
					{ID: "relaxing", ES: "Masaje relajante", EN: "Relaxing massage", PT: "Massagem relaxante"},
					{ID: "facial", ES: "Facial", EN: "Facial", PT: "Facial"},
					{ID: "depilation", ES: "Depilación", EN: "Hair removal", PT: "Depilação"},
				},
			},
		},
	},
	{
		ID:    "health",
		Label: Label{ID: "health", ES: "Salud", EN: "Health", PT: "Saúde"},
		Subcategories: []Subcategory{
			{
				ID:    "dentist",
				Label: Label{ID: "dentist", ES: "Odontología", EN: "Dentistry", PT: "Odontologia"},
				Specialties: []Label{
					{ID: "orthodontics", ES: "Ortodoncia", EN: "Orthodontics", PT: "Ortodontia"},
					{ID: "whitening", ES: "Blanqueamiento", EN: "Whitening", PT: "Clareamento"},
					{ID: "general_dentistry", ES: "Odontología general", EN: "General dentistry", PT: "Odontologia geral"},
				},
			},
			{
				ID:    "physiotherapy",
				Label: Label{ID: "physiotherapy", ES: "Fisioterapia", EN: "Physiotherapy", PT: "Fisioterapia"},
				Specialties: []Label{
					{ID: "sports", ES: "Deportiva", EN: "Sports", PT: "Esportiva"},
					{ID: "rehabilitation", ES: "Rehabilitación", EN: "Rehabilitation", PT: "Reabilitação"},
				},
			},
			{
				ID:    "psychology",
				Label: Label{ID: "psychology", ES: "Psicología", EN: "Psychology", PT: "Psicologia"},
				Specialties: []Label{
					{ID: "therapy_adult", ES: "Terapia para adultos", EN: "Adult therapy", PT: "Terapia para adultos"},
					{ID: "therapy_child", ES: "Terapia infantil", EN: "Child therapy", PT: "Terapia infantil"},
					{ID: "couples", ES: "Terapia de pareja", EN: "Couples therapy", PT: "Terapia de casal"},
				},
			},
		},
	},
	{
		ID:    "home",
		Label: Label{ID: "home", ES: "Hogar", EN: "Home", PT: "Casa"},
		Subcategories: []Subcategory{
			{
				ID:    "cleaning",
				Label: Label{ID: "cleaning", ES: "Limpieza", EN: "Cleaning", PT: "Limpeza"},
				Specialties: []Label{
					{ID: "deep_cleaning", ES: "Limpieza profunda", EN: "Deep cleaning", PT: "Limpeza profunda"},
					{ID: "move_out", ES: "Limpieza de mudanza", EN: "Move-out cleaning", PT: "Limpeza de mudança"},
				},
			},
			{
				ID:    "plumbing",
				Label: Label{ID: "plumbing", ES: "Fontanería", EN: "Plumbing", PT: "Encanamento"},
				Specialties: []Label{
					{ID: "repairs", ES: "Reparaciones", EN: "Repairs", PT: "Reparos"},
					{ID: "installations", ES: "Instalaciones", EN: "Installations", PT: "Instalações"},
				},
			},
			{
				ID:    "electrical",
				Label: Label{ID: "electrical", ES: "Electricidad", EN: "Electrical", PT: "Elétrica"},
				Specialties: []Label{
					{ID: "wiring", ES: "Cableado", EN: "Wiring", PT: "Fiação"},
					{ID: "panels", ES: "Paneles", EN: "Panels", PT: "Painéis"},
				},
			},
			{
				ID:    "gardening",
				Label: Label{ID: "gardening", ES: "Jardinería", EN: "Gardening", PT: "Jardinagem"},
				Specialties: []Label{
					{ID: "maintenance", ES: "Mantenimiento", EN: "Maintenance", PT: "Manutenção"},
					{ID: "landscaping", ES: "Paisajismo", EN: "Landscaping", PT: "Paisagismo"},
				},
			},
		},
	},
	{
		ID:    "automotive",
		Label: Label{ID: "automotive", ES: "Automotriz", EN: "Automotive", PT: "Automotivo"},
		Subcategories: []Subcategory{
			{
				ID:    "mechanic",
				Label: Label{ID: "mechanic", ES: "Mecánica", EN: "Mechanic", PT: "Mecânica"},
				Specialties: []Label{
					{ID: "engine", ES: "Motor", EN: "Engine", PT: "Motor"},
					{ID: "brakes", ES: "Frenos", EN: "Brakes", PT: "Freios"},
					{ID: "suspension", ES: "Suspensión", EN: "Suspension", PT: "Suspensão"},
				},
			},
			{
				ID:    "carwash",
				Label: Label{ID: "carwash", ES: "Car wash", EN: "Car wash", PT: "Lava-rápido"},
				Specialties: []Label{
					{ID: "detailing", ES: "Detailing", EN: "Detailing", PT: "Detailing"},
					{ID: "polish", ES: "Pulido", EN: "Polish", PT: "Polimento"},
				},
			},
		},
	},
	{
		ID:    "fitness",
		Label: Label{ID: "fitness", ES: "Fitness", EN: "Fitness", PT: "Fitness"},
		Subcategories: []Subcategory{
			{
				ID:    "personal_training",
				Label: Label{ID: "personal_training", ES: "Entrenamiento personal", EN: "Personal training", PT: "Treino personalizado"},
				Specialties: []Label{
					{ID: "strength", ES: "Fuerza", EN: "Strength", PT: "Força"},
					{ID: "weight_loss", ES: "Pérdida de peso", EN: "Weight loss", PT: "Perda de peso"},
				},
			},
			{
				ID:    "yoga",
				Label: Label{ID: "yoga", ES: "Yoga", EN: "Yoga", PT: "Yoga"},
				Specialties: []Label{
					{ID: "hatha", ES: "Hatha", EN: "Hatha", PT: "Hatha"},
					{ID: "vinyasa", ES: "Vinyasa", EN: "Vinyasa", PT: "Vinyasa"},
				},
			},
		},
	},
}

// Categories returns the full tree.
func Categories() []Category {
	return tree
}

// FindCategory looks up a category by ID.
func FindCategory(id string) (Category, bool) {
	for _, c := range tree {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindSubcategory looks up a subcategory by ID within a category.
func FindSubcategory(categoryID, subcategoryID string) (Subcategory, bool) {
	category, ok := FindCategory(categoryID)
	if !ok {
		return Subcategory{}, false
	}
	for _, s := range category.Subcategories {
		if s.ID == subcategoryID {
			return s, true
		}
	}
	return Subcategory{}, false
}

// ValidSpecialty reports whether the specialty ID exists anywhere under the
// given category.
func ValidSpecialty(categoryID, specialtyID string) bool {
	category, ok := FindCategory(categoryID)
	if !ok {
		return false
	}
	for _, sub := range category.Subcategories {
		for _, sp := range sub.Specialties {
			if sp.ID == specialtyID {
				return true
			}
		}
	}
	return false
}
