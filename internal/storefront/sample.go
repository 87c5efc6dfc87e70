package storefront

import (
	"context"

	"github.com/dressforpleasure/storefront/internal/domain"
)

// SampleCatalog is a static CatalogSource for development and demos, until
// the real catalog backend is wired up.
type SampleCatalog struct{}

func (SampleCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return []domain.Product{
		{
			ID:          "prod1",
			Name:        "Elegante Seidenbluse Marianne",
			Category:    domain.CategoryOberteile,
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400&h=500&fit=crop",
			Description: "Zeitlose Eleganz trifft auf modernen Komfort. Diese exquisite Seidenbluse in Champagner-Ton ist das perfekte Stück für besondere Anlässe.",
			Featured:    true,
			InStock:     true,
		},
		{
			ID:          "prod2",
			Name:        "Designer Handtasche Milano",
			Category:    domain.CategoryHandtaschen,
			Price:       159.99,
			Image:       "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400&h=500&fit=crop",
			Description: "Luxuriöse Handtasche aus italienischem Leder in klassischem Cognac. Mit goldenen Beschlägen und abnehmbarem Schulterriemen.",
			Featured:    true,
			InStock:     true,
		},
		{
			ID:          "prod3",
			Name:        "Cashmere Pullover Sophie",
			Category:    domain.CategoryOberteile,
			Price:       129.99,
			Image:       "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=400&h=500&fit=crop",
			Description: "Kuschelig weicher Cashmere-Pullover in zartem Rosé. Perfekt für kalte Tage, wenn Komfort auf Stil trifft.",
			InStock:     true,
		},
		{
			ID:          "prod4",
			Name:        "Vintage Perlenkette Classic",
			Category:    domain.CategorySchmuck,
			Price:       79.99,
			Image:       "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400&h=500&fit=crop",
			Description: "Klassische Perlenkette mit echten Süßwasserperlen. Ein zeitloses Schmuckstück, das jedes Outfit veredelt.",
			Featured:    true,
			InStock:     true,
		},
		{
			ID:          "prod5",
			Name:        "Sommer Maxikleid Luna",
			Category:    domain.CategoryKleider,
			Price:       94.99,
			Image:       "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=400&h=500&fit=crop",
			Description: "Fließendes Maxikleid mit floralem Blütenprint. Perfekt für Sommerfeste und Urlaubsmomente.",
			Featured:    true,
			InStock:     true,
		},
		{
			ID:          "prod6",
			Name:        "Seide Schal Parisian Chic",
			Category:    domain.CategoryAccessoires,
			Price:       69.99,
			Image:       "https://images.unsplash.com/photo-1601924994987-69e26d50dc26?w=400&h=500&fit=crop",
			Description: "Luxuriöser Seidenschal mit elegantem Paisley-Muster. Handgerollt und in traditioneller Färbetechnik hergestellt.",
			InStock:     true,
		},
	}, nil
}
