package analytics

import "moap_dashboard/internal/domain/entities"

type MaterialFilter struct {
	Search   string
	Category string
	Region   string
	Type     string
}

func FilterMaterials(materials []entities.Material, f MaterialFilter) []entities.Material {
	out := []entities.Material{}
	for _, m := range materials {
		if !anyContainsFold(f.Search, m.Name, m.Category) {
			continue
		}
		if !matchesExact(f.Category, m.Category) || !matchesExact(f.Region, m.Region) ||
			!matchesExact(f.Type, string(m.Type)) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// MaterialCategories lists categories in first-seen order.
func MaterialCategories(materials []entities.Material) []string {
	cats := make([]string, 0, len(materials))
	for _, m := range materials {
		cats = append(cats, m.Category)
	}
	return distinct(cats)
}
