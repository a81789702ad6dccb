package types

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TrialSignupRequest represents the request body for a trial signup
type TrialSignupRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required,max=100"`
}

// QuestionnaireRequest represents the wellness questionnaire submission.
// Each operation gets an explicit validated input struct built once at
// the boundary.
type QuestionnaireRequest struct {
	Age                 int     `json:"age" binding:"required,gte=13,lte=120"`
	Height              float64 `json:"height" binding:"required,gt=0"`
	Weight              float64 `json:"weight" binding:"required,gt=0"`
	Goals               string  `json:"goals" binding:"required,max=500"`
	DietaryRestrictions string  `json:"dietary_restrictions" binding:"max=500"`
	ActivityLevel       string  `json:"activity_level" binding:"required,oneof=sedentary light moderate active very_active"`
}

// MealPreferenceRequest represents a meal preference upsert
type MealPreferenceRequest struct {
	MealType             string   `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	PreferredTime        string   `json:"preferred_time" binding:"omitempty,len=5"`
	CaloriesTarget       int      `json:"calories_target" binding:"gte=0,lte=2000"`
	ProteinTarget        int      `json:"protein_target" binding:"gte=0,lte=200"`
	CarbsTarget          int      `json:"carbs_target" binding:"gte=0,lte=300"`
	FatTarget            int      `json:"fat_target" binding:"gte=0,lte=100"`
	ExcludedIngredients  []string `json:"excluded_ingredients"`
	AvailableIngredients []string `json:"available_ingredients"`
	PreferredCuisine     string   `json:"preferred_cuisine" binding:"omitempty,oneof=any mediterranean asian mexican indian italian american vegetarian vegan"`
}

// WorkoutLogRequest represents a workout log submission
type WorkoutLogRequest struct {
	WorkoutType    string                  `json:"workout_type" binding:"required,oneof=cardio strength flexibility"`
	Duration       int                     `json:"duration" binding:"required,gt=0"`
	Intensity      string                  `json:"intensity" binding:"required,oneof=low medium high"`
	Exercises      []string                `json:"exercises"`
	CaloriesBurned int                     `json:"calories_burned" binding:"gte=0"`
	Notes          string                  `json:"notes"`
	Progress       []ExerciseProgressEntry `json:"progress"`
}

// ExerciseProgressEntry is one exercise's weight/reps/sets within a
// workout log submission.
type ExerciseProgressEntry struct {
	ExerciseName string  `json:"exercise_name" binding:"required,max=100"`
	Weight       float64 `json:"weight" binding:"gte=0"`
	Reps         int     `json:"reps" binding:"gte=0"`
	Sets         int     `json:"sets" binding:"gte=0"`
}

// IngredientRecipesRequest asks for recipe suggestions from available
// ingredients.
type IngredientRecipesRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1,dive,required"`
}
