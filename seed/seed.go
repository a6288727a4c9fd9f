package seed

import (
	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/models"
	"github.com/frrrancoelgori-ui/joyeria/repository"
	"github.com/frrrancoelgori-ui/joyeria/services"
)

// Load populates the stores with the Diamante Real demo data: three
// branches, the default categories and a representative catalog. The
// branch inventory ledger is primed so branch views are populated from
// the first request.
func Load(
	branches *repository.BranchRepository,
	categories *repository.CategoryRepository,
	catalog *repository.CatalogRepository,
	branchSvc *services.BranchService,
	logger *zap.Logger,
) {
	for _, b := range seedBranches() {
		branches.Create(b)
	}
	for _, c := range seedCategories() {
		categories.Create(c)
	}

	products := seedProducts()
	catalog.CreateMany(products)
	for _, p := range products {
		branchSvc.UpdateBranchInventory(p.BranchID, p.ID, p.Stock)
	}

	logger.Info("seed data loaded",
		zap.Int("branches", 3),
		zap.Int("categories", 6),
		zap.Int("products", len(products)),
	)
}

func seedBranches() []models.Branch {
	return []models.Branch{
		{
			ID:      "1",
			Name:    "Diamante Real Centro",
			Address: "Av. Principal 123",
			Phone:   "+1 (555) 123-4567",
			Email:   "centro@diamantereal.com",
			Manager: "María González",
			City:    "Ciudad Principal",
			State:   "Estado Central",
			ZipCode: "12345",
			OpeningHours: models.OpeningHours{
				Monday:    "9:00 AM - 7:00 PM",
				Tuesday:   "9:00 AM - 7:00 PM",
				Wednesday: "9:00 AM - 7:00 PM",
				Thursday:  "9:00 AM - 7:00 PM",
				Friday:    "9:00 AM - 8:00 PM",
				Saturday:  "10:00 AM - 8:00 PM",
				Sunday:    "12:00 PM - 6:00 PM",
			},
			Specialties: []string{"Anillos de Compromiso", "Joyas Personalizadas", "Reparaciones"},
			IsActive:    true,
			Coordinates: &models.Coordinates{Lat: 40.7128, Lng: -74.0060},
		},
		{
			ID:      "2",
			Name:    "Diamante Real Plaza Norte",
			Address: "Centro Comercial Plaza Norte, Local 205",
			Phone:   "+1 (555) 234-5678",
			Email:   "plazanorte@diamantereal.com",
			Manager: "Carlos Rodríguez",
			City:    "Ciudad Norte",
			State:   "Estado Central",
			ZipCode: "12346",
			OpeningHours: models.OpeningHours{
				Monday:    "10:00 AM - 9:00 PM",
				Tuesday:   "10:00 AM - 9:00 PM",
				Wednesday: "10:00 AM - 9:00 PM",
				Thursday:  "10:00 AM - 9:00 PM",
				Friday:    "10:00 AM - 10:00 PM",
				Saturday:  "10:00 AM - 10:00 PM",
				Sunday:    "12:00 PM - 8:00 PM",
			},
			Specialties: []string{"Relojes de Lujo", "Cadenas de Oro", "Aretes Diamante"},
			IsActive:    true,
			Coordinates: &models.Coordinates{Lat: 40.7589, Lng: -73.9851},
		},
		{
			ID:      "3",
			Name:    "Diamante Real Boutique",
			Address: "Zona Rosa, Calle Exclusiva 456",
			Phone:   "+1 (555) 345-6789",
			Email:   "boutique@diamantereal.com",
			Manager: "Ana Martínez",
			City:    "Ciudad Exclusiva",
			State:   "Estado Premium",
			ZipCode: "12347",
			OpeningHours: models.OpeningHours{
				Monday:    "11:00 AM - 8:00 PM",
				Tuesday:   "11:00 AM - 8:00 PM",
				Wednesday: "11:00 AM - 8:00 PM",
				Thursday:  "11:00 AM - 8:00 PM",
				Friday:    "11:00 AM - 9:00 PM",
				Saturday:  "10:00 AM - 9:00 PM",
				Sunday:    "Cerrado",
			},
			Specialties: []string{"Joyas de Diseñador", "Piedras Preciosas", "Colecciones Exclusivas"},
			IsActive:    true,
			Coordinates: &models.Coordinates{Lat: 40.7505, Lng: -73.9934},
		},
	}
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Anillos", Description: "Anillos de compromiso y matrimonio", Color: "#D4AF37"},
		{ID: "2", Name: "Collares", Description: "Collares y gargantillas", Color: "#C0C0C0"},
		{ID: "3", Name: "Aretes", Description: "Aretes y pendientes", Color: "#B76E79"},
		{ID: "4", Name: "Relojes", Description: "Relojes de lujo", Color: "#4A4A4A"},
		{ID: "5", Name: "Pulseras", Description: "Pulseras y brazaletes", Color: "#E5C07B"},
		{ID: "6", Name: "Cadenas", Description: "Cadenas de oro y plata", Color: "#FFD700"},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Anillo de Compromiso Solitario",
			Description:   "Elegante anillo de compromiso con diamante solitario de 1 quilate, montado en oro blanco de 18k",
			Price:         2500,
			Image:         "https://images.pexels.com/photos/1232931/pexels-photo-1232931.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:      "Anillos",
			Stock:         8,
			Material:      "Oro Blanco 18k",
			Weight:        3.5,
			Size:          "Ajustable",
			Gemstone:      "Diamante 1ct",
			Certification: "GIA Certificado",
			BranchID:      "1",
			BranchName:    "Diamante Real Centro",
			Customizable:  true,
			CraftingTime:  7,
		},
		{
			ID:          "2",
			Name:        "Collar de Perlas Cultivadas",
			Description: "Hermoso collar de perlas cultivadas de agua dulce con broche de oro amarillo",
			Price:       450,
			Image:       "https://images.pexels.com/photos/1454171/pexels-photo-1454171.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Collares",
			Stock:       12,
			Material:    "Oro Amarillo 14k",
			Weight:      25.0,
			Size:        "45cm",
			Gemstone:    "Perlas Cultivadas",
			BranchID:    "2",
			BranchName:  "Diamante Real Plaza Norte",
		},
		{
			ID:            "3",
			Name:          "Aretes de Esmeralda",
			Description:   "Exquisitos aretes con esmeraldas colombianas y diamantes en oro blanco",
			Price:         1800,
			Image:         "https://images.pexels.com/photos/1454172/pexels-photo-1454172.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:      "Aretes",
			Stock:         6,
			Material:      "Oro Blanco 18k",
			Weight:        4.2,
			Size:          "Mediano",
			Gemstone:      "Esmeralda + Diamantes",
			Certification: "Certificado de Origen",
			BranchID:      "3",
			BranchName:    "Diamante Real Boutique",
			Customizable:  true,
			CraftingTime:  10,
		},
		{
			ID:          "4",
			Name:        "Reloj de Oro Rosa",
			Description: "Elegante reloj suizo con caja de oro rosa y correa de cuero genuino",
			Price:       3200,
			Image:       "https://images.pexels.com/photos/190819/pexels-photo-190819.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Relojes",
			Stock:       4,
			Material:    "Oro Rosa 18k",
			Weight:      85.0,
			Size:        "42mm",
			BranchID:    "2",
			BranchName:  "Diamante Real Plaza Norte",
		},
		{
			ID:            "5",
			Name:          "Pulsera de Diamantes",
			Description:   "Deslumbrante pulsera con diamantes engarzados en oro blanco",
			Price:         2800,
			Image:         "https://images.pexels.com/photos/1454173/pexels-photo-1454173.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:      "Pulseras",
			Stock:         5,
			Material:      "Oro Blanco 18k",
			Weight:        12.5,
			Size:          "18cm",
			Gemstone:      "Diamantes 2.5ct total",
			Certification: "GIA Certificado",
			BranchID:      "1",
			BranchName:    "Diamante Real Centro",
			Customizable:  true,
			CraftingTime:  14,
		},
		{
			ID:          "6",
			Name:        "Cadena de Oro Amarillo",
			Description: "Cadena clásica de oro amarillo de 24k, perfecta para cualquier ocasión",
			Price:       680,
			Image:       "https://images.pexels.com/photos/1454174/pexels-photo-1454174.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Cadenas",
			Stock:       15,
			Material:    "Oro Amarillo 24k",
			Weight:      18.0,
			Size:        "50cm",
			BranchID:    "2",
			BranchName:  "Diamante Real Plaza Norte",
		},
		{
			ID:            "7",
			Name:          "Anillo de Compromiso Halo",
			Description:   "Espectacular anillo con diamante central rodeado de diamantes más pequeños en oro blanco",
			Price:         3500,
			Image:         "https://images.pexels.com/photos/1454175/pexels-photo-1454175.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:      "Anillos",
			Stock:         3,
			Material:      "Oro Blanco 18k",
			Weight:        4.8,
			Size:          "Ajustable",
			Gemstone:      "Diamante 1.5ct + Halo",
			Certification: "GIA Certificado",
			BranchID:      "3",
			BranchName:    "Diamante Real Boutique",
			Customizable:  true,
			CraftingTime:  10,
		},
		{
			ID:            "8",
			Name:          "Collar de Diamantes Rivière",
			Description:   "Elegante collar rivière con diamantes graduados en oro blanco",
			Price:         5200,
			Image:         "https://images.pexels.com/photos/1454176/pexels-photo-1454176.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:      "Collares",
			Stock:         2,
			Material:      "Oro Blanco 18k",
			Weight:        15.2,
			Size:          "40cm",
			Gemstone:      "Diamantes 3ct total",
			Certification: "GIA Certificado",
			BranchID:      "3",
			BranchName:    "Diamante Real Boutique",
		},
		{
			ID:            "9",
			Name:          "Aretes de Perlas Tahití",
			Description:   "Sofisticados aretes con perlas negras de Tahití y diamantes",
			Price:         1200,
			Image:         "https://images.pexels.com/photos/1454177/pexels-photo-1454177.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:      "Aretes",
			Stock:         8,
			Material:      "Oro Blanco 14k",
			Weight:        6.3,
			Size:          "Grande",
			Gemstone:      "Perlas Tahití + Diamantes",
			Certification: "Certificado de Origen",
			BranchID:      "1",
			BranchName:    "Diamante Real Centro",
		},
		{
			ID:            "10",
			Name:          "Reloj de Diamantes para Dama",
			Description:   "Reloj de lujo con caja y brazalete engastados con diamantes",
			Price:         4800,
			Image:         "https://images.pexels.com/photos/1454178/pexels-photo-1454178.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:      "Relojes",
			Stock:         2,
			Material:      "Oro Blanco 18k",
			Weight:        65.0,
			Size:          "28mm",
			Gemstone:      "Diamantes 1.2ct total",
			Certification: "Certificado Suizo",
			BranchID:      "3",
			BranchName:    "Diamante Real Boutique",
		},
	}
}
