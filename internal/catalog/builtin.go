package catalog

// builtin is the read-only exercise catalog served to every user.
var builtin = []Exercise{
	// chest
	{ID: "1", Name: "Bench Press", Category: CategoryStrength, MuscleGroups: []string{"chest", "triceps", "shoulders"}},
	{ID: "2", Name: "Incline Bench Press", Category: CategoryStrength, MuscleGroups: []string{"chest", "triceps", "shoulders"}},
	{ID: "3", Name: "Decline Bench Press", Category: CategoryStrength, MuscleGroups: []string{"chest", "triceps"}},
	{ID: "4", Name: "Dumbbell Press", Category: CategoryStrength, MuscleGroups: []string{"chest", "triceps", "shoulders"}},
	{ID: "5", Name: "Incline Dumbbell Press", Category: CategoryStrength, MuscleGroups: []string{"chest", "triceps", "shoulders"}},
	{ID: "6", Name: "Chest Fly", Category: CategoryStrength, MuscleGroups: []string{"chest"}},
	{ID: "7", Name: "Cable Fly", Category: CategoryStrength, MuscleGroups: []string{"chest"}},
	{ID: "8", Name: "Push-ups", Category: CategoryStrength, MuscleGroups: []string{"chest", "triceps", "shoulders"}},
	{ID: "9", Name: "Dips", Category: CategoryStrength, MuscleGroups: []string{"chest", "triceps", "shoulders"}},

	// back
	{ID: "10", Name: "Deadlift", Category: CategoryStrength, MuscleGroups: []string{"back", "hamstrings", "glutes"}},
	{ID: "11", Name: "Barbell Row", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
	{ID: "12", Name: "T-Bar Row", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
	{ID: "13", Name: "Pull-ups", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
	{ID: "14", Name: "Lat Pulldown", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
	{ID: "15", Name: "Wide Grip Pulldown", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
	{ID: "16", Name: "Close Grip Pulldown", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
	{ID: "17", Name: "Cable Row", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
	{ID: "18", Name: "Seated Cable Row", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
	{ID: "19", Name: "One-Arm Dumbbell Row", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
	{ID: "20", Name: "Bent Over Row", Category: CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
	{ID: "21", Name: "Shrugs", Category: CategoryStrength, MuscleGroups: []string{"traps"}},
	{ID: "22", Name: "Face Pulls", Category: CategoryStrength, MuscleGroups: []string{"rear delts", "traps"}},

	// shoulders
	{ID: "23", Name: "Overhead Press", Category: CategoryStrength, MuscleGroups: []string{"shoulders", "triceps"}},
	{ID: "24", Name: "Dumbbell Shoulder Press", Category: CategoryStrength, MuscleGroups: []string{"shoulders", "triceps"}},
	{ID: "25", Name: "Lateral Raises", Category: CategoryStrength, MuscleGroups: []string{"shoulders"}},
	{ID: "26", Name: "Front Raises", Category: CategoryStrength, MuscleGroups: []string{"shoulders"}},
	{ID: "27", Name: "Rear Delt Fly", Category: CategoryStrength, MuscleGroups: []string{"rear delts"}},
	{ID: "28", Name: "Arnold Press", Category: CategoryStrength, MuscleGroups: []string{"shoulders", "triceps"}},
	{ID: "29", Name: "Upright Row", Category: CategoryStrength, MuscleGroups: []string{"shoulders", "traps"}},
	{ID: "30", Name: "Cable Lateral Raise", Category: CategoryStrength, MuscleGroups: []string{"shoulders"}},

	// legs
	{ID: "31", Name: "Squat", Category: CategoryStrength, MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"}},
	{ID: "32", Name: "Front Squat", Category: CategoryStrength, MuscleGroups: []string{"quadriceps", "glutes"}},
	{ID: "33", Name: "Leg Press", Category: CategoryStrength, MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"}},
	{ID: "34", Name: "Leg Extension", Category: CategoryStrength, MuscleGroups: []string{"quadriceps"}},
	{ID: "35", Name: "Leg Curl", Category: CategoryStrength, MuscleGroups: []string{"hamstrings"}},
	{ID: "36", Name: "Romanian Deadlift", Category: CategoryStrength, MuscleGroups: []string{"hamstrings", "glutes"}},
	{ID: "37", Name: "Stiff Leg Deadlift", Category: CategoryStrength, MuscleGroups: []string{"hamstrings", "glutes"}},
	{ID: "38", Name: "Lunges", Category: CategoryStrength, MuscleGroups: []string{"quadriceps", "glutes"}},
	{ID: "39", Name: "Walking Lunges", Category: CategoryStrength, MuscleGroups: []string{"quadriceps", "glutes"}},
	{ID: "40", Name: "Bulgarian Split Squat", Category: CategoryStrength, MuscleGroups: []string{"quadriceps", "glutes"}},
	{ID: "41", Name: "Hack Squat", Category: CategoryStrength, MuscleGroups: []string{"quadriceps", "glutes"}},
	{ID: "42", Name: "Calf Raises", Category: CategoryStrength, MuscleGroups: []string{"calves"}},
	{ID: "43", Name: "Seated Calf Raise", Category: CategoryStrength, MuscleGroups: []string{"calves"}},
	{ID: "44", Name: "Hip Thrust", Category: CategoryStrength, MuscleGroups: []string{"glutes", "hamstrings"}},
	{ID: "45", Name: "Good Mornings", Category: CategoryStrength, MuscleGroups: []string{"hamstrings", "glutes"}},

	// arms - biceps
	{ID: "46", Name: "Barbell Curl", Category: CategoryStrength, MuscleGroups: []string{"biceps"}},
	{ID: "47", Name: "Dumbbell Curl", Category: CategoryStrength, MuscleGroups: []string{"biceps"}},
	{ID: "48", Name: "Hammer Curl", Category: CategoryStrength, MuscleGroups: []string{"biceps", "forearms"}},
	{ID: "49", Name: "Cable Curl", Category: CategoryStrength, MuscleGroups: []string{"biceps"}},
	{ID: "50", Name: "Preacher Curl", Category: CategoryStrength, MuscleGroups: []string{"biceps"}},
	{ID: "51", Name: "Concentration Curl", Category: CategoryStrength, MuscleGroups: []string{"biceps"}},
	{ID: "52", Name: "21s", Category: CategoryStrength, MuscleGroups: []string{"biceps"}},

	// arms - triceps
	{ID: "53", Name: "Close Grip Bench Press", Category: CategoryStrength, MuscleGroups: []string{"triceps", "chest"}},
	{ID: "54", Name: "Tricep Pushdown", Category: CategoryStrength, MuscleGroups: []string{"triceps"}},
	{ID: "55", Name: "Overhead Tricep Extension", Category: CategoryStrength, MuscleGroups: []string{"triceps"}},
	{ID: "56", Name: "Skull Crushers", Category: CategoryStrength, MuscleGroups: []string{"triceps"}},
	{ID: "57", Name: "Dumbbell Tricep Extension", Category: CategoryStrength, MuscleGroups: []string{"triceps"}},
	{ID: "58", Name: "Cable Tricep Extension", Category: CategoryStrength, MuscleGroups: []string{"triceps"}},
	{ID: "59", Name: "Diamond Push-ups", Category: CategoryStrength, MuscleGroups: []string{"triceps", "chest"}},

	// core
	{ID: "60", Name: "Plank", Category: CategoryStrength, MuscleGroups: []string{"core"}},
	{ID: "61", Name: "Crunches", Category: CategoryStrength, MuscleGroups: []string{"core"}},
	{ID: "62", Name: "Leg Raises", Category: CategoryStrength, MuscleGroups: []string{"core"}},
	{ID: "63", Name: "Russian Twists", Category: CategoryStrength, MuscleGroups: []string{"core"}},
	{ID: "64", Name: "Cable Crunch", Category: CategoryStrength, MuscleGroups: []string{"core"}},
	{ID: "65", Name: "Ab Wheel", Category: CategoryStrength, MuscleGroups: []string{"core"}},
	{ID: "66", Name: "Hanging Leg Raises", Category: CategoryStrength, MuscleGroups: []string{"core"}},
	{ID: "67", Name: "Dead Bug", Category: CategoryStrength, MuscleGroups: []string{"core"}},

	// cardio
	{ID: "68", Name: "Running", Category: CategoryCardio, MuscleGroups: []string{"legs"}},
	{ID: "69", Name: "Cycling", Category: CategoryCardio, MuscleGroups: []string{"legs"}},
	{ID: "70", Name: "Rowing", Category: CategoryCardio, MuscleGroups: []string{"legs", "back"}},
	{ID: "71", Name: "Elliptical", Category: CategoryCardio, MuscleGroups: []string{"legs"}},
	{ID: "72", Name: "Stair Climber", Category: CategoryCardio, MuscleGroups: []string{"legs"}},
	{ID: "73", Name: "Treadmill", Category: CategoryCardio, MuscleGroups: []string{"legs"}},

	// other
	{ID: "74", Name: "Farmers Walk", Category: CategoryStrength, MuscleGroups: []string{"forearms", "traps", "core"}},
	{ID: "75", Name: "Kettlebell Swings", Category: CategoryStrength, MuscleGroups: []string{"glutes", "hamstrings", "core"}},
}
