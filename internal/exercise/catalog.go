package exercise

import (
	"github.com/gymtracker-app/backend/internal/repository"
)

// catalog is the exercise catalog seeded into an empty database.
// Read-only reference data from the API's perspective.
var catalog = []repository.Exercise{
	{Name: "Dumbbell Bench Press", Description: "Targets chest muscles for strength and definition."},
	{Name: "Incline Dumbbell Bench Press", Description: "Focuses on upper chest muscles."},
	{Name: "Decline Dumbbell Bench Press", Description: "Emphasizes lower part of the chest."},
	{Name: "Dumbbell Flyes", Description: "Stretches and builds the pectoral muscles."},
	{Name: "Dumbbell Pullover", Description: "Works the chest and lats."},
	{Name: "Dumbbell Shoulder Press", Description: "Develops shoulder strength and definition."},
	{Name: "Dumbbell Lateral Raise", Description: "Isolates the lateral deltoids."},
	{Name: "Dumbbell Front Raise", Description: "Targets the anterior shoulder muscles."},
	{Name: "Dumbbell Rear Delt Fly", Description: "Strengthens the rear shoulder muscles."},
	{Name: "Dumbbell Shrugs", Description: "Targets the trapezius for increased shoulder mass."},
	{Name: "Dumbbell Bicep Curl", Description: "Builds bicep muscle size and strength."},
	{Name: "Hammer Curl", Description: "Engages the biceps and forearms."},
	{Name: "Concentration Curl", Description: "Isolates the biceps for focused development."},
	{Name: "Dumbbell Tricep Extension", Description: "Targets the triceps for arm strength."},
	{Name: "Dumbbell Tricep Kickback", Description: "Isolates tricep muscles effectively."},
	{Name: "Dumbbell Squats", Description: "Strengthens the lower body and core."},
	{Name: "Goblet Squat", Description: "Works the quads and glutes using a dumbbell."},
	{Name: "Dumbbell Lunges", Description: "Targets quads, hamstrings, and glutes."},
	{Name: "Dumbbell Step-Ups", Description: "Improves lower body strength and stability."},
	{Name: "Dumbbell Deadlift", Description: "Works the entire posterior chain."},
	{Name: "Dumbbell Romanian Deadlift", Description: "Targets hamstrings and glutes."},
	{Name: "Dumbbell Calf Raise", Description: "Develops calf muscle size and endurance."},
	{Name: "Dumbbell Bent Over Row", Description: "Engages the upper back and lats."},
	{Name: "One Arm Dumbbell Row", Description: "Works the lats and upper back unilaterally."},
	{Name: "Renegade Row", Description: "Combines rows with a core strengthening plank."},
	{Name: "Dumbbell Thruster", Description: "Full body workout targeting quads and shoulders."},
	{Name: "Dumbbell Swing", Description: "Explosive movement that targets the hips and core."},
	{Name: "Turkish Get-Up", Description: "Enhances full body strength and stability."},
	{Name: "Man Makers", Description: "Complex dumbbell exercise for full body conditioning."},
	{Name: "Dumbbell Around the World", Description: "Circular path works shoulders and chest."},
	{Name: "Side Bend", Description: "Targets oblique muscles for core stability."},
	{Name: "Dead Bug", Description: "Improves core strength and coordination."},
	{Name: "Arnold Press", Description: "Engages shoulder muscles with a rotating press."},
	{Name: "Dumbbell High Pull", Description: "Activates the traps and shoulders dynamically."},
	{Name: "Dumbbell Woodchop", Description: "Rotational movement targeting core muscles."},
	{Name: "Reverse Lunge with Dumbbell Curl", Description: "Combines lower body and arm training."},
	{Name: "Single Leg Deadlift", Description: "Improves balance and targets hamstrings."},
	{Name: "Dumbbell Russian Twist", Description: "Enhances oblique strength."},
	{Name: "Dumbbell Side Lunge", Description: "Targets inner thighs, quads, and glutes."},
	{Name: "Box Step-Up with Press", Description: "Targets legs and shoulders in one movement."},
	{Name: "Single Arm Dumbbell Snatch", Description: "Full body power movement."},
	{Name: "Dumbbell Push Press", Description: "Combines shoulder and lower body strength."},
	{Name: "Alternating Dumbbell Curl", Description: "Isolates biceps alternately."},
	{Name: "Cross Body Curl", Description: "Targets forearms and biceps."},
	{Name: "Zottman Curl", Description: "Combines standard and reverse bicep curls."},
	{Name: "Dumbbell Skull Crusher", Description: "Targets tricep muscles effectively."},
	{Name: "Dumbbell Upright Row", Description: "Engages shoulders and traps."},
	{Name: "Rear Delt Rotate", Description: "Targets rear deltoid muscles."},
	{Name: "Barbell Bench Press", Description: "Primary exercise for chest development."},
	{Name: "Incline Barbell Bench Press", Description: "Focuses on upper chest growth."},
	{Name: "Decline Barbell Bench Press", Description: "Targets lower chest muscles."},
	{Name: "Military Press", Description: "Develops shoulder and upper body strength."},
	{Name: "Barbell Push Press", Description: "Dynamic movement for shoulder power."},
	{Name: "Barbell Squats", Description: "Fundamental movement for leg strength."},
	{Name: "Front Squat", Description: "Emphasizes quads and core stability."},
	{Name: "Lower Back Squats", Description: "Targets lower back with barbell support."},
	{Name: "Overhead Squat", Description: "Enhances overall body coordination and strength."},
	{Name: "Barbell Deadlift", Description: "Full body exercise for strength and power."},
	{Name: "Sumo Deadlift", Description: "Targets inner thighs and posterior chain."},
	{Name: "Barbell Row", Description: "Develops upper back and lat muscles."},
	{Name: "Pendlay Row", Description: "Strengthens back with a heavy barbell pull."},
	{Name: "Barbell Shrugs", Description: "Builds trapezius muscle size."},
	{Name: "Zercher Squat", Description: "Front-loaded squat for core and legs."},
	{Name: "Clean and Jerk", Description: "Olympic lift targeting full body strength."},
	{Name: "Snatch", Description: "Olympic movement for speed and strength."},
	{Name: "Barbell Curl", Description: "Builds bicep size and strength."},
	{Name: "Barbell Tricep Extension", Description: "Targets tricep development."},
	{Name: "Skull Crushers", Description: "Isolates triceps with lying extension."},
	{Name: "Barbell Lunges", Description: "Strengthens lower body muscles."},
	{Name: "Good Mornings", Description: "Works lower back and hamstrings."},
	{Name: "Hang Clean", Description: "Develops explosive strength and coordination."},
	{Name: "Power Clean", Description: "Improves total body power and speed."},
	{Name: "Floor Press", Description: "Targets chest and triceps from the ground."},
	{Name: "Glute Bridge with Barbell", Description: "Strengthens glutes and hamstrings."},
	{Name: "Landmine Press", Description: "Focuses on shoulder and chest with barbell pivot."},
	{Name: "Landmine Row", Description: "Activates back muscles using barbell pivot."},
	{Name: "Barbell Hack Squat", Description: "Squat variation targeting quads."},
	{Name: "Reverse Grip Bent Over Row", Description: "Targets upper back with grip change."},
	{Name: "Split Jerk", Description: "Advanced move for explosive power and speed."},
	{Name: "Hip Thrust", Description: "Isolates and strengthens glute muscles."},
	{Name: "Seated Overhead Press", Description: "Builds shoulder muscles with seated press."},
	{Name: "Barbell Calf Raise", Description: "Targets calf development using a barbell."},
	{Name: "Dead Row", Description: "Combines row with a deadlift movement."},
	{Name: "Bent Press", Description: "Complex lift involving multiple muscle groups."},
	{Name: "Jefferson Squat", Description: "Unique squat variation for leg strength."},
	{Name: "Cuban Press", Description: "Targets rotator cuffs and shoulder stability."},
	{Name: "Bradford Press", Description: "Alternates press behind and in front of head."},
	{Name: "Isometric Deadlift", Description: "Static hold targeting core and grip."},
	{Name: "Muscle Snatch", Description: "Explosive lift for complete body engagement."},
	{Name: "Pause Squat", Description: "Develops strength and stability in squat posture."},
	{Name: "Squat and Press", Description: "Combines squat and overhead press."},
	{Name: "Bear Complex", Description: "Intense full body barbell circuit."},
	{Name: "Curl Bar Bicep Curl", Description: "Effective curl for bicep growth."},
	{Name: "Close Grip Curl", Description: "Targets inner part of the biceps."},
	{Name: "Reverse Grip Curl", Description: "Engages biceps and forearm through reverse motion."},
	{Name: "Preacher Curl", Description: "Isolates biceps for strengthened focus."},
	{Name: "Curl Bar Skull Crusher", Description: "Addresses tricep development lying down."},
	{Name: "Overhead Tricep Extension", Description: "Press target for triceps focused elongation."},
	{Name: "Barbell Preacher Curl", Description: "Stabilizes and builds bicep mass."},
	{Name: "Spider Curl", Description: "Bicep isolation to improve muscle peak."},
	{Name: "Drag Curl", Description: "Engages biceps through altered movement path."},
	{Name: "Standing Tricep Extension", Description: "Targets triceps through overhead motion."},
	{Name: "Incline Curl", Description: "Enhanced bicep focus on inclined support."},
	{Name: "Incline Tricep Extension", Description: "Diffuses load on triceps with incline aid."},
	{Name: "Squat Rack Squats", Description: "Standardized lifting for enhanced leg strength."},
	{Name: "Front Rack Position Squat", Description: "Builds quads and supports core."},
	{Name: "Squat Rack Overhead Press", Description: "Targets shoulders and upper body."},
	{Name: "Rack Pulls", Description: "Partial deadlift to focus on upper body strength."},
	{Name: "Half Rack Deadlift", Description: "Targets the lower half without full elevation."},
	{Name: "Shrug from Squat Rack", Description: "Centered on trap development."},
	{Name: "Box Squats", Description: "Controlled squats for lower leg development."},
	{Name: "Push Press from Squat Rack", Description: "Dynamic lift from squat rack for power."},
	{Name: "Anderson Squats", Description: "Produces leg strength from a stationary position."},
	{Name: "Dumbbell Pullovers", Description: "Expands chest and lat muscle groups."},
	{Name: "Preacher Curl", Description: "Targeted bicep isolation movement."},
	{Name: "Single Arm Preacher Curl", Description: "Unilateral bicep isolation exercise."},
	{Name: "Reverse Preacher Curl", Description: "Enhances brachialis muscle beneath biceps."},
	{Name: "Hammer Curl on Preacher", Description: "Combines grip with isolated curl movement."},
	{Name: "One-Arm Dumbbell Preacher Curl", Description: "Targets single arm bicep isolation."},
	{Name: "Decline Bench Dumbbell Curl", Description: "Supports bicep curls on decline support."},
	{Name: "Wide Grip Preacher Curl", Description: "Utilizes wide grip for enhanced muscle activation."},
	{Name: "Resistance Band Squats", Description: "Leg strengthening using tension band aids."},
	{Name: "Resistance Band Lunges", Description: "Dynamic lunge with resistance band aid."},
	{Name: "Resistance Band Deadlifts", Description: "Posture improvement for hamstring strength."},
	{Name: "Resistance Band Push Up", Description: "Chest workout with band aid."},
	{Name: "Resistance Band Chest Press", Description: "Improves chest strength through acceleration."},
	{Name: "Cable Pulldown", Description: "Develops upper back through cable motion."},
	{Name: "Cable Row", Description: "Enhances upper back through seated cable draw."},
	{Name: "Cable Crossover", Description: "Pectoral isolation motion with cable extension."},
	{Name: "Cable Shoulder Press", Description: "Stable pressing option through pulley system."},
	{Name: "Cable Fly", Description: "Chest focus with maintained cable resistance."},
	{Name: "Cable Lateral Raise", Description: "Shoulder work with cable-centered tension."},
	{Name: "Cable Front Raise", Description: "Enlarges anterior deltoid strength."},
	{Name: "Cable Reverse Fly", Description: "Stabilizes rear delts with extended cable motion."},
	{Name: "Cable Tricep Pushdown", Description: "Enhances tricep muscles through cable use."},
	{Name: "Face Pull", Description: "Pulling motion to balance shoulder development."},
	{Name: "Cable Woodchop", Description: "Rotational motion improves core strength."},
	{Name: "Cable Kickbacks", Description: "Elongate focused routines for triceps."},
	{Name: "Cable Pull-Through", Description: "Activates glutes and hamstrings through cable help."},
	{Name: "Medicine Ball Slam", Description: "Powerful full throw for core strength."},
	{Name: "Medicine Ball Chest Pass", Description: "Dynamic upper body strength through toss."},
	{Name: "Medicine Ball Russian Twist", Description: "Increases obliques through rotational movement."},
	{Name: "Medicine Ball Overhead Throw", Description: "Rotational strength and agility exercise."},
	{Name: "Medicine Ball Sit-Up", Description: "Intensifies core work with medicine ball support."},
	{Name: "Medicine Ball V-Up", Description: "Integrates core strength with ball lift."},
	{Name: "Medicine Ball Mountain Climbers", Description: "Combination of cardio and core work."},
	{Name: "Kettlebell Swing", Description: "Center piece for use-it-all functional training."},
	{Name: "Kettlebell Snatch", Description: "Single burst build powerhouse move."},
	{Name: "Kettlebell Clean", Description: "Form-heavy movement for advanced shoulder work."},
	{Name: "Kettlebell Press", Description: "Shoulder press executed with kettlebell weight."},
	{Name: "Kettlebell Goblet Squat", Description: "Kettlebell hoisted for multifaceted squat boost."},
	{Name: "Kettlebell Full Pistol Squat", Description: "One-legged posture and weight-focused squat."},
}
