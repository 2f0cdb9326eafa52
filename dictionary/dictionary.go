// Package dictionary translates exercise metadata from the catalog's source
// vocabulary into the display vocabulary shown to users. Lookups are
// case-insensitive and unmapped inputs pass through unchanged, so a catalog
// update can ship new terms before the dictionary learns them.
//
// The package is pure and stateless; the session core never depends on it.
package dictionary

import "strings"

var bodyParts = map[string]string{
	"lower arms": "Forearms",
	"lower legs": "Calves",
	"upper arms": "Arms",
	"upper legs": "Thighs",
	"waist":      "Core",
	"back":       "Back",
	"cardio":     "Cardio",
	"chest":      "Chest",
	"neck":       "Neck",
	"shoulders":  "Shoulders",
}

var equipment = map[string]string{
	"body weight":          "Bodyweight",
	"assisted":             "Assisted machine",
	"band":                 "Resistance band",
	"barbell":              "Barbell",
	"bosu ball":            "BOSU ball",
	"cable":                "Cable machine",
	"dumbbell":             "Dumbbell",
	"elliptical machine":   "Elliptical",
	"ez barbell":           "EZ bar",
	"kettlebell":           "Kettlebell",
	"leverage machine":     "Lever machine",
	"medicine ball":        "Medicine ball",
	"olympic barbell":      "Olympic barbell",
	"resistance band":      "Resistance band",
	"roller":               "Foam roller",
	"rope":                 "Rope",
	"skierg machine":       "SkiErg",
	"sled machine":         "Sled",
	"smith machine":        "Smith machine",
	"stability ball":       "Stability ball",
	"stationary bike":      "Stationary bike",
	"stepmill machine":     "Stepmill",
	"tire":                 "Tire",
	"trap bar":             "Trap bar",
	"upper body ergometer": "Arm ergometer",
	"weighted":             "Weighted",
	"wheel roller":         "Ab wheel",
}

var targetMuscles = map[string]string{
	"abductors":             "Hip abductors",
	"abs":                   "Abdominals",
	"adductors":             "Hip adductors",
	"biceps":                "Biceps",
	"calves":                "Calves",
	"cardiovascular system": "Cardio",
	"delts":                 "Deltoids",
	"forearms":              "Forearms",
	"glutes":                "Glutes",
	"hamstrings":            "Hamstrings",
	"lats":                  "Lats",
	"levator scapulae":      "Levator scapulae",
	"pectorals":             "Pectorals",
	"quads":                 "Quadriceps",
	"serratus anterior":     "Serratus anterior",
	"spine":                 "Spinal erectors",
	"traps":                 "Trapezius",
	"triceps":               "Triceps",
	"upper back":            "Upper back",
}

func translate(table map[string]string, term string) string {
	if mapped, ok := table[strings.ToLower(strings.TrimSpace(term))]; ok {
		return mapped
	}
	return term
}

// BodyPart translates a catalog body-part term for display.
func BodyPart(term string) string {
	return translate(bodyParts, term)
}

// Equipment translates a catalog equipment term for display.
func Equipment(term string) string {
	return translate(equipment, term)
}

// TargetMuscle translates a catalog target-muscle term for display.
func TargetMuscle(term string) string {
	return translate(targetMuscles, term)
}
