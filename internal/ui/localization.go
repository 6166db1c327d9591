package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyRecipes           = "recipes"
	KeyRecipeName        = "recipe_name"
	KeyAddRecipe         = "add_recipe"
	KeySelectedRecipe    = "selected_recipe"
	KeyIngredients       = "ingredients"
	KeyIngredientName    = "ingredient_name"
	KeyQuantity          = "quantity"
	KeyMeasurement       = "measurement"
	KeyCalories          = "calories"
	KeyFoodGroup         = "food_group"
	KeyAddIngredient     = "add_ingredient"
	KeyTotalCalories     = "total_calories"
	KeyIngredientCount   = "ingredient_count"
	KeySteps             = "steps"
	KeyStepText          = "step_text"
	KeyAddStep           = "add_step"
	KeyScale             = "scale"
	KeyScaleFactor       = "scale_factor"
	KeyFilter            = "filter"
	KeyFilterName        = "filter_name"
	KeyFilterFoodGroup   = "filter_food_group"
	KeyFilterMaxCalories = "filter_max_calories"
	KeyFilterResult      = "filter_result"
	KeyShowAll           = "show_all"
	KeyClearAll          = "clear_all"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyCalorieLimitTitle = "calorie_limit_title"
	KeyCalorieLimit      = "calorie_limit"

	KeyErrEnterRecipeName     = "err_enter_recipe_name"
	KeyErrSelectRecipe        = "err_select_recipe"
	KeyErrEnterIngredientName = "err_enter_ingredient_name"
	KeyErrEnterMeasurement    = "err_enter_measurement"
	KeyErrEnterFoodGroup      = "err_enter_food_group"
	KeyErrInvalidCalories     = "err_invalid_calories"
	KeyErrInvalidQuantity     = "err_invalid_quantity"
	KeyErrEnterStep           = "err_enter_step"
	KeyErrEnterScale          = "err_enter_scale"
	KeyErrInvalidScale        = "err_invalid_scale"
	KeyErrFiltering           = "err_filtering"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Recipe Book",
		KeyRecipes:           "Recipes",
		KeyRecipeName:        "Recipe name",
		KeyAddRecipe:         "Add Recipe",
		KeySelectedRecipe:    "Selected recipe",
		KeyIngredients:       "Ingredients",
		KeyIngredientName:    "Ingredient name",
		KeyQuantity:          "Quantity",
		KeyMeasurement:       "Unit of measurement",
		KeyCalories:          "Calories",
		KeyFoodGroup:         "Food group",
		KeyAddIngredient:     "Add Ingredient",
		KeyTotalCalories:     "Total calories",
		KeyIngredientCount:   "%d ingredients",
		KeySteps:             "Steps",
		KeyStepText:          "Describe the next step",
		KeyAddStep:           "Add Step",
		KeyScale:             "Scale",
		KeyScaleFactor:       "Scale factor",
		KeyFilter:            "Filter",
		KeyFilterName:        "Recipe name contains",
		KeyFilterFoodGroup:   "Food group contains",
		KeyFilterMaxCalories: "Max calories",
		KeyFilterResult:      "Showing %d of %d recipes",
		KeyShowAll:           "Show All",
		KeyClearAll:          "Clear All",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyCalorieLimitTitle: "Calorie Limit Exceeded",
		KeyCalorieLimit:      "Warning: total calories of %s exceed %d (%d kcal).",

		KeyErrEnterRecipeName:     "Please enter a recipe name.",
		KeyErrSelectRecipe:        "Please select a recipe.",
		KeyErrEnterIngredientName: "Please enter an ingredient name.",
		KeyErrEnterMeasurement:    "Please enter a unit of measurement.",
		KeyErrEnterFoodGroup:      "Please enter a food group.",
		KeyErrInvalidCalories:     "Please enter a valid calorie value.",
		KeyErrInvalidQuantity:     "Please enter a valid quantity.",
		KeyErrEnterStep:           "Please enter a recipe step.",
		KeyErrEnterScale:          "Please enter a scale value.",
		KeyErrInvalidScale:        "Invalid scale value. Please enter a valid number.",
		KeyErrFiltering:           "An error occurred while filtering recipes",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Книга рецептов",
		KeyRecipes:           "Рецепты",
		KeyRecipeName:        "Название рецепта",
		KeyAddRecipe:         "Добавить рецепт",
		KeySelectedRecipe:    "Выбранный рецепт",
		KeyIngredients:       "Ингредиенты",
		KeyIngredientName:    "Название ингредиента",
		KeyQuantity:          "Количество",
		KeyMeasurement:       "Единица измерения",
		KeyCalories:          "Калории",
		KeyFoodGroup:         "Группа продуктов",
		KeyAddIngredient:     "Добавить ингредиент",
		KeyTotalCalories:     "Всего калорий",
		KeyIngredientCount:   "Ингредиентов: %d",
		KeySteps:             "Шаги",
		KeyStepText:          "Опишите следующий шаг",
		KeyAddStep:           "Добавить шаг",
		KeyScale:             "Масштаб",
		KeyScaleFactor:       "Коэффициент",
		KeyFilter:            "Фильтр",
		KeyFilterName:        "Название содержит",
		KeyFilterFoodGroup:   "Группа продуктов содержит",
		KeyFilterMaxCalories: "Макс. калорий",
		KeyFilterResult:      "Показано %d из %d рецептов",
		KeyShowAll:           "Показать все",
		KeyClearAll:          "Очистить всё",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyCalorieLimitTitle: "Превышен лимит калорий",
		KeyCalorieLimit:      "Внимание: калорийность рецепта %s превышает %d (%d ккал).",

		KeyErrEnterRecipeName:     "Введите название рецепта.",
		KeyErrSelectRecipe:        "Выберите рецепт.",
		KeyErrEnterIngredientName: "Введите название ингредиента.",
		KeyErrEnterMeasurement:    "Введите единицу измерения.",
		KeyErrEnterFoodGroup:      "Введите группу продуктов.",
		KeyErrInvalidCalories:     "Введите корректное количество калорий.",
		KeyErrInvalidQuantity:     "Введите корректное количество.",
		KeyErrEnterStep:           "Введите шаг рецепта.",
		KeyErrEnterScale:          "Введите коэффициент масштаба.",
		KeyErrInvalidScale:        "Неверный коэффициент. Введите число.",
		KeyErrFiltering:           "Ошибка при фильтрации рецептов",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Livro de Receitas",
		KeyRecipes:           "Receitas",
		KeyRecipeName:        "Nome da receita",
		KeyAddRecipe:         "Adicionar Receita",
		KeySelectedRecipe:    "Receita selecionada",
		KeyIngredients:       "Ingredientes",
		KeyIngredientName:    "Nome do ingrediente",
		KeyQuantity:          "Quantidade",
		KeyMeasurement:       "Unidade de medida",
		KeyCalories:          "Calorias",
		KeyFoodGroup:         "Grupo alimentar",
		KeyAddIngredient:     "Adicionar Ingrediente",
		KeyTotalCalories:     "Total de calorias",
		KeyIngredientCount:   "%d ingredientes",
		KeySteps:             "Passos",
		KeyStepText:          "Descreva o próximo passo",
		KeyAddStep:           "Adicionar Passo",
		KeyScale:             "Escalar",
		KeyScaleFactor:       "Fator de escala",
		KeyFilter:            "Filtrar",
		KeyFilterName:        "Nome contém",
		KeyFilterFoodGroup:   "Grupo alimentar contém",
		KeyFilterMaxCalories: "Máx. calorias",
		KeyFilterResult:      "Mostrando %d de %d receitas",
		KeyShowAll:           "Mostrar Todas",
		KeyClearAll:          "Limpar Tudo",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyCalorieLimitTitle: "Limite de Calorias Excedido",
		KeyCalorieLimit:      "Atenção: as calorias de %s excedem %d (%d kcal).",

		KeyErrEnterRecipeName:     "Digite o nome da receita.",
		KeyErrSelectRecipe:        "Selecione uma receita.",
		KeyErrEnterIngredientName: "Digite o nome do ingrediente.",
		KeyErrEnterMeasurement:    "Digite a unidade de medida.",
		KeyErrEnterFoodGroup:      "Digite o grupo alimentar.",
		KeyErrInvalidCalories:     "Digite um valor de calorias válido.",
		KeyErrInvalidQuantity:     "Digite uma quantidade válida.",
		KeyErrEnterStep:           "Digite um passo da receita.",
		KeyErrEnterScale:          "Digite um fator de escala.",
		KeyErrInvalidScale:        "Fator de escala inválido. Digite um número válido.",
		KeyErrFiltering:           "Ocorreu um erro ao filtrar as receitas",
	}
}
