package menu

import (
	"github.com/restoadmin/ordering/pkg/models"
)

// Seed returns the fixed menu the restaurant currently offers.
func Seed() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID:          "h1",
			Name:        "Burger Clásica",
			Description: "Carne 150g, lechuga, tomate, cebolla, queso cheddar y salsa especial",
			Price:       2800,
			Image:       "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    models.CategoryBurgers,
			Available:   true,
		},
		{
			ID:          "h2",
			Name:        "Burger BBQ",
			Description: "Doble carne, bacon, queso, cebolla caramelizada y salsa BBQ",
			Price:       3500,
			Image:       "https://images.pexels.com/photos/3738730/pexels-photo-3738730.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    models.CategoryBurgers,
			Available:   true,
		},
		{
			ID:          "h3",
			Name:        "Burger Veggie",
			Description: "Medallón de quinoa y vegetales, palta, tomate y mayonesa vegana",
			Price:       2600,
			Image:       "https://images.pexels.com/photos/1199957/pexels-photo-1199957.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    models.CategoryBurgers,
			Available:   true,
		},
		{
			ID:          "p1",
			Name:        "Pizza Margherita",
			Description: "Salsa de tomate, mozzarella fresca, albahaca y aceite de oliva",
			Price:       3200,
			Image:       "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    models.CategoryPizzas,
			Available:   true,
		},
		{
			ID:          "p2",
			Name:        "Pizza Pepperoni",
			Description: "Salsa de tomate, mozzarella, pepperoni y orégano",
			Price:       3600,
			Image:       "https://images.pexels.com/photos/2147491/pexels-photo-2147491.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    models.CategoryPizzas,
			Available:   true,
		},
		{
			ID:          "p3",
			Name:        "Pizza Cuatro Quesos",
			Description: "Mozzarella, gorgonzola, parmesano y provolone",
			Price:       3800,
			Image:       "https://images.pexels.com/photos/4109111/pexels-photo-4109111.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    models.CategoryPizzas,
			Available:   true,
		},
		{
			ID:          "b1",
			Name:        "Coca Cola 500ml",
			Description: "Bebida gaseosa clásica",
			Price:       800,
			Image:       "https://images.pexels.com/photos/2775860/pexels-photo-2775860.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    models.CategoryDrinks,
			Available:   true,
		},
		{
			ID:          "b2",
			Name:        "Agua Mineral 500ml",
			Description: "Agua mineral natural sin gas",
			Price:       600,
			Image:       "https://images.pexels.com/photos/416528/pexels-photo-416528.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    models.CategoryDrinks,
			Available:   true,
		},
		{
			ID:          "b3",
			Name:        "Cerveza Artesanal",
			Description: "Cerveza IPA 473ml",
			Price:       1200,
			Image:       "https://images.pexels.com/photos/1552630/pexels-photo-1552630.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    models.CategoryDrinks,
			Available:   true,
		},
		{
			ID:          "d1",
			Name:        "Brownie con Helado",
			Description: "Brownie de chocolate tibio con helado de vainilla",
			Price:       1800,
			Image:       "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    models.CategoryDesserts,
			Available:   true,
		},
		{
			ID:          "d2",
			Name:        "Cheesecake",
			Description: "Cheesecake de frutos rojos con base de galletas",
			Price:       2000,
			Image:       "https://images.pexels.com/photos/140831/pexels-photo-140831.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    models.CategoryDesserts,
			Available:   true,
		},
	}
}
