// Package samples holds the example recipes shipped in generated import
// templates.
package samples

import (
	"github.com/pageza/recipekit/internal/ingredients"
	"github.com/pageza/recipekit/internal/types"
)

func recipe(name, category, description, instructions string, servings int, ingr string) types.RecipeRecord {
	return types.RecipeRecord{
		Name:         name,
		Category:     category,
		Subcategory:  "Indian",
		Description:  description,
		Instructions: instructions,
		Servings:     types.Servings(servings),
		Ingredients:  ingredients.MustDecode(ingr),
	}
}

var (
	chickenCurry = recipe("Chicken Curry", "Main Course",
		"A delicious chicken curry with aromatic spices",
		"1. Marinate chicken with spices\n2. Heat oil in a pan\n3. Add onions and cook until golden\n4. Add chicken and cook until done\n5. Add tomatoes and simmer",
		4, "Chicken,500,g,0.02;Onion,100,g,0.01;Tomato,150,g,0.015;Spices,50,g,0.05;Oil,30,ml,0.02")

	ricePilaf = recipe("Rice Pilaf", "Side Dish",
		"Fragrant basmati rice cooked with spices",
		"1. Wash and soak rice for 30 minutes\n2. Heat oil and add whole spices\n3. Add rice and water\n4. Cook until done",
		6, "Basmati Rice,300,g,0.03;Cardamom,5,pcs,0.1;Cinnamon,1,stick,0.05;Oil,20,ml,0.02")

	dalMakhani = recipe("Dal Makhani", "Main Course",
		"Creamy black lentils cooked overnight",
		"1. Soak lentils overnight\n2. Cook in pressure cooker\n3. Add cream and butter\n4. Simmer until creamy",
		8, "Black Lentils,200,g,0.025;Kidney Beans,100,g,0.02;Cream,100,ml,0.03;Butter,50,g,0.04;Spices,30,g,0.05")

	gulabJamun = recipe("Gulab Jamun", "Dessert",
		"Sweet milk dumplings in sugar syrup",
		"1. Mix milk powder and flour\n2. Add ghee and make dough\n3. Shape into balls\n4. Fry until golden\n5. Soak in sugar syrup",
		12, "Milk Powder,200,g,0.04;Flour,50,g,0.015;Ghee,100,g,0.06;Sugar,300,g,0.02;Cardamom,10,pcs,0.1")

	naanIngredients = "All Purpose Flour,500,g,0.015;Yeast,10,g,0.05;Yogurt,100,ml,0.02;Oil,30,ml,0.02"
)

// Workbook returns the recipes pre-filled in the spreadsheet template.
func Workbook() []types.RecipeRecord {
	return []types.RecipeRecord{
		chickenCurry,
		ricePilaf,
		dalMakhani,
		recipe("Naan Bread", "Bread",
			"Soft and fluffy Indian flatbread",
			"1. Mix flour, yeast, and water\n2. Knead for 10 minutes\n3. Let rise for 2 hours\n4. Shape and cook on hot griddle",
			10, naanIngredients),
		gulabJamun,
	}
}

// CSV returns the recipes pre-filled in the CSV template.
func CSV() []types.RecipeRecord {
	return []types.RecipeRecord{
		chickenCurry,
		ricePilaf,
		dalMakhani,
		recipe("Naan Bread", "Bread",
			"Soft and fluffy Indian flatbread",
			"1. Mix flour, yeast, and water\n2. Knead for 10 minutes\n3. Let rise for 2 hours\n4. Shape into flatbreads\n5. Cook on hot griddle",
			10, naanIngredients),
		gulabJamun,
		recipe("Butter Chicken", "Main Course",
			"Rich and creamy chicken curry",
			"1. Marinate chicken in spices\n2. Cook chicken in tandoor or grill\n3. Prepare rich tomato-based sauce\n4. Add cream and butter\n5. Combine and simmer",
			4, "Chicken,600,g,0.025;Butter,100,g,0.04;Tomato,300,g,0.015;Cream,200,ml,0.03;Spices,40,g,0.05"),
		recipe("Biryani", "Rice Dish",
			"Layered rice with meat and spices",
			"1. Marinate meat with spices\n2. Par-cook rice\n3. Layer rice and meat\n4. Add saffron and herbs\n5. Dum cook for 30 minutes",
			8, "Basmati Rice,500,g,0.03;Chicken,400,g,0.025;Onion,200,g,0.01;Saffron,1,pinch,0.5;Spices,60,g,0.05;Ghee,100,g,0.06"),
		recipe("Paneer Tikka", "Appetizer",
			"Grilled cottage cheese",
			"1. Marinate paneer in spices\n2. Thread on skewers\n3. Grill until charred\n4. Serve with chutney",
			6, "Paneer,400,g,0.035;Yogurt,100,ml,0.015;Spices,30,g,0.05;Oil,40,ml,0.02"),
		recipe("Samosa", "Appetizer",
			"Fried pastry with filling",
			"1. Make dough with flour and oil\n2. Prepare potato-pea filling\n3. Shape into triangles\n4. Fry until golden\n5. Serve hot",
			8, "All Purpose Flour,300,g,0.015;Potato,400,g,0.02;Peas,200,g,0.025;Oil,200,ml,0.02;Spices,40,g,0.05"),
		recipe("Kheer", "Dessert",
			"Rice pudding",
			"1. Cook rice in milk\n2. Add sugar and cardamom\n3. Cook until thickened\n4. Add nuts and saffron\n5. Serve chilled",
			12, "Rice,150,g,0.03;Milk,1000,ml,0.02;Sugar,200,g,0.02;Cardamom,10,pcs,0.1;Nuts,100,g,0.08"),
	}
}
