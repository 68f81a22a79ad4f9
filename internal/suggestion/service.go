package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const systemPrompt = "You are a fitness AI generating structured workout plans."

// Completer produces a chat completion from a prompt pair.
// Satisfied by Client; tests substitute a canned implementation.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ExerciseNamer lists the known exercise names the plan may draw from
type ExerciseNamer interface {
	DistinctNames(ctx context.Context) ([]string, error)
}

// Request represents the workout suggestion payload
type Request struct {
	WorkoutTypes []string `json:"workoutTypes" validate:"required,min=1,dive,required"`
	Equipment    []string `json:"equipment" validate:"required,min=1,dive,required"`
	NumberOfSets int      `json:"numberOfSets" validate:"required,min=1"`
}

// PlanExercise is one planned set in a generated workout
type PlanExercise struct {
	Order int    `json:"order"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

// Service generates workout plans
type Service struct {
	completer Completer
	exercises ExerciseNamer
	logger    *slog.Logger
}

// NewService creates a new suggestion Service instance
func NewService(completer Completer, exercises ExerciseNamer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		completer: completer,
		exercises: exercises,
		logger:    logger,
	}
}

// Suggest asks the model for a plan matching the requested muscle groups,
// equipment and set count, restricted to the exercise catalog.
func (s *Service) Suggest(ctx context.Context, req Request) ([]PlanExercise, error) {
	names, err := s.exercises.DistinctNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercise names: %w", err)
	}

	content, err := s.completer.Complete(ctx, systemPrompt, buildPrompt(req, names))
	if err != nil {
		return nil, err
	}

	plan, err := extractJSON(content)
	if err != nil {
		s.logger.Error("workout plan parse failed", "error", err)
		return nil, err
	}

	return plan, nil
}

// buildPrompt renders the user prompt. The instructions mirror what the
// product needs from the model: stay on the selected muscle groups, respect
// the equipment, repeat exercises in runs of at least three sets, and only
// use catalog exercise names.
func buildPrompt(req Request, exerciseNames []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a workout plan in JSON format targeting the following muscle groups: %s,\n",
		strings.Join(req.WorkoutTypes, ", "))
	fmt.Fprintf(&b, "using the available equipment: %s.\n", strings.Join(req.Equipment, ", "))
	fmt.Fprintf(&b, "Make the workout exactly %d sets long.\n", req.NumberOfSets)
	b.WriteString(`Do not include any exercises that aren't targetting the selected muscle groups.
For example, if the user selects back and biceps, don't include bench press, leg press, barbell shrugs, etc... A chest and tricep workout should never have curls.
The JSON should be an array of objects where each object includes:
- "order": the sequence of the exercise,
- "name": the exercise name,
- "group": the target muscle group. Be specific such as "Overall Chest" or "Upper Back" or "Shoulders: Front Deltoids", etc. Do this for every exercise.
If it is a compound exercise, list all muscle groups targeted.
Ensure compatibility of exercises with the provided equipment. Ex) Rear Delt Flyes must be done with dumbbells.
Do not list an exercise without repeating at least 3 sets of it minimum in a row, unless the number of sets doesn't allow for it.
In that case, list the exercise once or twice and move on to the next exercise.
For example, a chest workout with barbells, a bench, and dumbbells may have an exercise of
order 1 barbell bench press, order 2 barbell bench press, order 3 barbell bench press,
order 4 barbell bench press, order 5 dumbbell flyes, order 6 dumbbell flyes, etc.
Try to work each muscle group seperately. I mean if they want chest and triceps work all the chest exercises first then the exercises specifically targetting the triceps next.
Target every head of the selected muscle groups. For example, if you select shoulders, include exercises for the front, side, and rear deltoids.
If you select chest, pick exercises that target the upper, lower, and middle chest. For legs, target quads, hamstrings, and calves. etc...
Here is a full list of possible exercise names, do not include any exercises not specifically mentioned on this list.:
`)
	b.WriteString(strings.Join(exerciseNames, ", "))

	return b.String()
}
