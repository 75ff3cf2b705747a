package slot

import "strings"

var (
	DefaultCuisines = []string{"italian", "mexican", "japanese", "indian", "chinese", "french", "fusion", "thai", "korean", "german"}
	DefaultDiets    = []string{"vegan", "vegetarian", "gluten-free", "halal", "kosher", "lactose-free", "omnivore", "pescatarian"}

	// NoRestriction collapses to "no constraint" for dietary preferences.
	NoRestriction = []string{"omnivore", "none", "no", "nothing", "no preference", "anything", "no dietary restrictions"}

	// AnyCuisine collapses to "no constraint" for cuisine preferences.
	AnyCuisine = []string{"any", "anything", "no preference", "none"}
)

// fillerWords are dropped from tags so "vegan please" reads as "vegan".
var fillerWords = map[string]bool{"please": true, "thanks": true, "only": true, "food": true, "options": true, "cuisine": true}

var tagSeparators = strings.NewReplacer(",", "|", ";", "|", "/", "|", "&", "|", " and ", "|", "\n", "|")

type Vocabulary struct {
	cuisines    map[string]bool
	diets       map[string]bool
	cuisineList []string
	dietList    []string
}

func NewVocabulary(cuisines, diets []string) Vocabulary {
	v := Vocabulary{
		cuisines: make(map[string]bool, len(cuisines)),
		diets:    make(map[string]bool, len(diets)),
	}
	for _, c := range cuisines {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" && !v.cuisines[c] {
			v.cuisines[c] = true
			v.cuisineList = append(v.cuisineList, c)
		}
	}
	for _, d := range diets {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" && !v.diets[d] {
			v.diets[d] = true
			v.dietList = append(v.dietList, d)
		}
	}
	return v
}

func DefaultVocabulary() Vocabulary {
	return NewVocabulary(DefaultCuisines, DefaultDiets)
}

func (v Vocabulary) Cuisines() []string {
	return append([]string(nil), v.cuisineList...)
}

func (v Vocabulary) Diets() []string {
	return append([]string(nil), v.dietList...)
}

func (v Vocabulary) IsCuisine(tag string) bool {
	return v.cuisines[strings.ToLower(tag)]
}

func (v Vocabulary) IsDiet(tag string) bool {
	return v.diets[strings.ToLower(tag)]
}

// SplitTags breaks a free-form list ("vegan, halal and kosher") into
// lowercase, de-duplicated tags, keeping first-seen order.
func SplitTags(raw string) []string {
	parts := strings.Split(tagSeparators.Replace(" "+strings.ToLower(raw)+" "), "|")
	seen := make(map[string]bool, len(parts))
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		var words []string
		for _, w := range strings.Fields(part) {
			if !fillerWords[w] {
				words = append(words, w)
			}
		}
		tag := strings.Join(words, " ")
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func isOneOf(tag string, set []string) bool {
	for _, s := range set {
		if tag == s {
			return true
		}
	}
	return false
}
