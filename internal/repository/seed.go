package repository

import "alcyxob/workout-tracker/internal/domain"

// SeedDay groups a day of the starter plan with its exercises. WorkoutDayID
// on the exercises is left empty; the seeding backend fills it in with the
// id it assigned to the day.
type SeedDay struct {
	Day       domain.InsertWorkoutDay
	Exercises []domain.InsertExercise
}

// DefaultPlan returns the fixed 5-day starter plan the stores are seeded
// with. The in-memory store always seeds it; the durable stores seed it only
// into an empty database.
func DefaultPlan() []SeedDay {
	return []SeedDay{
		{
			Day: domain.InsertWorkoutDay{DayNumber: 1, Title: "Upper Body", Focus: "Horizontal Focus"},
			Exercises: []domain.InsertExercise{
				{Name: "Dumbbell Bench Press", Sets: 4, Reps: "6-10", RPE: "RPE 7-8", ProgressionRule: "When all 4 sets hit 10 reps for 2 workouts → +5 lb per dumbbell", VideoURL: "https://www.youtube.com/shorts/8RGZJKLcATU", Order: 1},
				{Name: "One-Arm Dumbbell Row (each side)", Sets: 3, Reps: "8-12", RPE: "RPE 7-8", ProgressionRule: "Top of range for 2 workouts → +5 lb per dumbbell", VideoURL: "https://www.youtube.com/shorts/haDEmdUKfrs", Order: 2},
				{Name: "Seated Dumbbell Shoulder Press", Sets: 3, Reps: "8-12", RPE: "RPE 7-8", ProgressionRule: "Top of range for 2 workouts → +5 lb per dumbbell", VideoURL: "https://www.youtube.com/shorts/E9ShwbwZ1zw", Order: 3},
				{Name: "Cable Chest Fly (mid height)", Sets: 3, Reps: "12-15", RPE: "RPE ~8", ProgressionRule: "When all sets reach 15 reps → next cable plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/xDVD1Cy3Nqs", Order: 4},
				{Name: "Face Pull (rope)", Sets: 3, Reps: "12-15", RPE: "RPE ~8", ProgressionRule: "When all sets hit 15 reps → next cable plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/Et3eTWO2kQE", Order: 5},
				{Name: "Dumbbell Preacher Curl", Sets: 3, Reps: "10-15", RPE: "RPE 7-8", ProgressionRule: "When you get 15 reps on all sets → +2.5-5 lb per dumbbell", VideoURL: "https://www.youtube.com/shorts/54kF4fR-ObE", Order: 6},
				{Name: "Cable Triceps Pushdown (rope)", Sets: 3, Reps: "10-15", RPE: "RPE 7-8", ProgressionRule: "When you reach 15 reps on all sets → next cable plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/Hn7An4PDLYQ", Order: 7},
				{Name: "Cable Crunch (abs)", Sets: 3, Reps: "12-15", RPE: "RPE 7-8", ProgressionRule: "When you hit 15 reps comfortably → next cable plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/dkGwcfo9zto", Order: 8},
			},
		},
		{
			Day: domain.InsertWorkoutDay{DayNumber: 2, Title: "Lower + Core", Focus: "Variation A"},
			Exercises: []domain.InsertExercise{
				{Name: "Goblet Squat", Sets: 4, Reps: "8-12", RPE: "RPE 7-8", ProgressionRule: "When all sets reach 12 reps twice → +5 lb (next dumbbell/plate)", VideoURL: "https://www.youtube.com/shorts/EUrU0HcPkQ8", Order: 1},
				{Name: "Dumbbell Romanian Deadlift", Sets: 3, Reps: "8-12", RPE: "RPE 7-8", ProgressionRule: "When all sets reach 12 reps twice → +5-10 lb total", VideoURL: "https://www.youtube.com/shorts/uYIlkIHksyk", Order: 2},
				{Name: "Bulgarian Split Squat (each leg)", Sets: 3, Reps: "8-12", RPE: "RPE 7-8", ProgressionRule: "When all sets reach 12 reps → +5 lb per dumbbell", VideoURL: "https://www.youtube.com/shorts/Us52wOAui2Q", Order: 3},
				{Name: "Leg Extension (bench attachment)", Sets: 3, Reps: "12-15", RPE: "RPE ~8", ProgressionRule: "When sets hit 15 reps → next plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/dNMUtQ6Fy4U", Order: 4},
				{Name: "Lying Leg Curl (bench attachment)", Sets: 3, Reps: "12-15", RPE: "RPE ~8", ProgressionRule: "When sets hit 15 reps → next plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/d6sg829PgNs", Order: 5},
				{Name: "Standing Calf Raise (dumbbells)", Sets: 3, Reps: "12-20", RPE: "RPE ~8", ProgressionRule: "When sets hit 20 reps → +5 lb per dumbbell", VideoURL: "https://www.youtube.com/shorts/PQ-F5uzxipQ", Order: 6},
				{Name: "Reverse Crunch on Bench (abs)", Sets: 3, Reps: "12-15", RPE: "Bodyweight", ProgressionRule: "When 3x15 is easy → add reps up to 20 or hold a light (5 lb) plate between knees", VideoURL: "https://www.youtube.com/shorts/eAdyaHlaCiU", Order: 7},
			},
		},
		{
			Day: domain.InsertWorkoutDay{DayNumber: 3, Title: "Upper Body", Focus: "Vertical/Back Focus"},
			Exercises: []domain.InsertExercise{
				{Name: "Lat Pulldown (cable)", Sets: 4, Reps: "8-12", RPE: "RPE 7-8", ProgressionRule: "When all sets hit 12 reps → next cable plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/EoWI90clb-0", Order: 1},
				{Name: "Incline Dumbbell Bench Press", Sets: 3, Reps: "8-12", RPE: "RPE 7-8", ProgressionRule: "When all sets hit 12 reps → +5 lb per dumbbell", VideoURL: "https://www.youtube.com/watch?v=PZecKOpWOrk", Order: 2},
				{Name: "Seated Cable Row (close/neutral grip)", Sets: 3, Reps: "8-12", RPE: "RPE 7-8", ProgressionRule: "When all sets hit 12 reps → next cable plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/lOetNpBFChY", Order: 3},
				{Name: "Dumbbell Lateral Raise", Sets: 3, Reps: "12-15", RPE: "RPE ~8", ProgressionRule: "When all sets hit 15 reps → +2.5 lb per dumbbell", VideoURL: "https://www.youtube.com/shorts/O1VrfbSFYLA", Order: 4},
				{Name: "Hammer Curl (dumbbells)", Sets: 3, Reps: "10-15", RPE: "RPE 7-8", ProgressionRule: "When all sets hit 15 reps → +2.5-5 lb per dumbbell", VideoURL: "https://www.youtube.com/watch?v=wzQFTrlcDlg", Order: 5},
				{Name: "Overhead Rope Triceps Extension", Sets: 3, Reps: "10-15", RPE: "RPE 7-8", ProgressionRule: "When sets hit 15 reps → next cable plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/8dV3ZHUdPW0", Order: 6},
				{Name: "Pallof Press (anti-rotation, each side)", Sets: 3, Reps: "10-12/side", RPE: "RPE ~8", ProgressionRule: "When all sets hit 12/side → next cable plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/IgQE_DKZEIc", Order: 7},
			},
		},
		{
			Day: domain.InsertWorkoutDay{DayNumber: 4, Title: "Lower + Core", Focus: "Variation B"},
			Exercises: []domain.InsertExercise{
				{Name: "Dumbbell Hip Thrust", Sets: 4, Reps: "8-12", RPE: "RPE 7-8", ProgressionRule: "When all sets hit 12 reps → +10 lb total", VideoURL: "https://www.youtube.com/shorts/QqtLsnNthbA", Order: 1},
				{Name: "Cyclist Squat (heels elevated, goblet)", Sets: 3, Reps: "10-15", RPE: "RPE ~8", ProgressionRule: "When sets hit 15 reps → +5 lb", VideoURL: "https://www.youtube.com/shorts/US8zFTTV2bY", Order: 2},
				{Name: "Step-Up (dumbbells, each leg)", Sets: 3, Reps: "8-12/leg", RPE: "RPE 7-8", ProgressionRule: "When sets hit 12/leg → +5 lb per dumbbell", VideoURL: "https://www.youtube.com/shorts/CYQ0qNAXDOM", Order: 3},
				{Name: "Single-Leg Romanian Deadlift (dumbbell)", Sets: 3, Reps: "8-12/leg", RPE: "RPE 7-8", ProgressionRule: "When sets hit 12/leg → +5 lb per dumbbell", VideoURL: "https://www.youtube.com/shorts/8sFky7C7q2A", Order: 4},
				{Name: "Seated Calf Raise (dumbbell on knees)", Sets: 3, Reps: "12-20", RPE: "RPE ~8", ProgressionRule: "When sets hit 20 reps → +5-10 lb total", VideoURL: "https://www.youtube.com/shorts/Ii1Qo44GasM", Order: 5},
				{Name: "Forearm Plank", Sets: 3, Reps: "45-60 sec hold", RPE: "Bodyweight", ProgressionRule: "When 60s is easy → add +10-20 lb plate on back or progress to harder variation", VideoURL: "https://www.youtube.com/shorts/E-PBfoIMc-0", Order: 6},
				{Name: "Cable Woodchop (each side)", Sets: 3, Reps: "10-15/side", RPE: "RPE ~8", ProgressionRule: "When sets hit 15/side → next plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/p4vXA60_D6A", Order: 7},
			},
		},
		{
			Day: domain.InsertWorkoutDay{DayNumber: 5, Title: "Full-Body", Focus: "Pump + Core"},
			Exercises: []domain.InsertExercise{
				{Name: "Goblet Squat (moderate pace)", Sets: 3, Reps: "12-15", RPE: "RPE ~8", ProgressionRule: "When sets hit 15 reps → +5 lb", VideoURL: "https://www.youtube.com/shorts/EUrU0HcPkQ8", Order: 1},
				{Name: "Dumbbell Romanian Deadlift (moderate)", Sets: 3, Reps: "10-12", RPE: "RPE 7-8", ProgressionRule: "When sets hit 12 reps → +5-10 lb total", VideoURL: "https://www.youtube.com/shorts/uYIlkIHksyk", Order: 2},
				{Name: "Single-Arm Cable Row (each side)", Sets: 3, Reps: "8-12/side", RPE: "RPE 7-8", ProgressionRule: "When sets hit 12/side → next cable plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/1CV_vvYBEbA", Order: 3},
				{Name: "Cable Lateral Raise", Sets: 3, Reps: "12-15", RPE: "RPE ~8", ProgressionRule: "When sets hit 15 reps → next plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/HCfU6LGpgMk", Order: 4},
				{Name: "Alternating Dumbbell Curl", Sets: 3, Reps: "10-15/arm", RPE: "RPE 7-8", ProgressionRule: "When sets hit 15/arm → +2.5-5 lb per dumbbell", VideoURL: "https://www.youtube.com/shorts/FHY_2t7R714", Order: 5},
				{Name: "Cable Triceps Pushdown", Sets: 3, Reps: "10-15", RPE: "RPE 7-8", ProgressionRule: "When sets hit 15 reps → next plate (~5 lb)", VideoURL: "https://www.youtube.com/shorts/1FjkhpZsaxc", Order: 6},
				{Name: "Weighted Decline Crunch", Sets: 3, Reps: "10-15", RPE: "RPE ~8", ProgressionRule: "When sets hit 15 reps → +2.5-5 lb", VideoURL: "https://www.youtube.com/shorts/T24Vji_gEaQ", Order: 7},
			},
		},
	}
}
