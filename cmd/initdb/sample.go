package main

import (
	"context"
	"fmt"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/domain/pets"
	"patitas-eternas/internal/platform/validation"
)

var samplePets = []pets.CreateRequest{
	{
		Name:     "Luna",
		Species:  "dog",
		Breed:    "Labrador",
		Age:      age(2),
		Size:     "medium",
		Gender:   "female",
		Location: "Ciudad de México",
		Description: "Luna es una perra muy cariñosa y juguetona. Le encanta correr y jugar con pelotas. " +
			"Es muy sociable con personas y otros perros. Está completamente vacunada y esterilizada.",
		Characteristics: []string{"Juguetona", "Cariñosa", "Sociable", "Entrenada"},
		HealthStatus:    []string{"Vacunada", "Esterilizada", "Desparasitada"},
	},
	{
		Name:     "Michi",
		Species:  "cat",
		Breed:    "Siamés",
		Age:      age(1),
		Size:     "small",
		Gender:   "male",
		Location: "Guadalajara",
		Description: "Michi es un gato muy tranquilo y cariñoso. Le gusta dormir en lugares cálidos y jugar con juguetes pequeños. " +
			"Es muy independiente pero disfruta de la compañía humana.",
		Characteristics: []string{"Tranquilo", "Independiente", "Curioso", "Limpio"},
		HealthStatus:    []string{"Vacunado", "Esterilizado", "Desparasitado"},
	},
	{
		Name:     "Rocky",
		Species:  "dog",
		Breed:    "Pastor Alemán",
		Age:      age(3),
		Size:     "large",
		Gender:   "male",
		Location: "Monterrey",
		Description: "Rocky es un perro muy inteligente y leal. Es perfecto para familias activas. " +
			"Le encanta aprender trucos nuevos y es muy protector con su familia.",
		Characteristics: []string{"Inteligente", "Leal", "Activo", "Protector"},
		HealthStatus:    []string{"Vacunado", "Esterilizado", "Desparasitado"},
	},
	{
		Name:     "Pelusa",
		Species:  "cat",
		Breed:    "Persa",
		Age:      age(4),
		Size:     "small",
		Gender:   "female",
		Location: "Puebla",
		Description: "Pelusa es una gata muy elegante y tranquila. Le gusta la paz y la tranquilidad. " +
			"Es perfecta para hogares tranquilos donde pueda recibir muchos mimos.",
		Characteristics: []string{"Tranquila", "Cariñosa", "Elegante", "Independiente"},
		HealthStatus:    []string{"Vacunada", "Esterilizada", "Desparasitada"},
	},
}

func age(v float64) validation.Number {
	return validation.Number{Value: v, Present: true}
}

// seedSamplePets solo inserta si el catálogo está vacío (cualquier estado).
func seedSamplePets(ctx context.Context, repo pets.Repository) (int, error) {
	existing, err := repo.List(ctx, pets.ListFilter{})
	if err != nil {
		return 0, fmt.Errorf("sample pets: list: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	svc := pets.NewService(repo)
	seeder := authz.Caller{ID: "initdb", Role: authz.RoleAdmin}
	for i, req := range samplePets {
		if _, err := svc.Create(ctx, seeder, req); err != nil {
			return i, fmt.Errorf("sample pets: %s: %w", req.Name, err)
		}
	}
	return len(samplePets), nil
}
