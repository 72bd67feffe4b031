package content

// achievementKeys are the "what distinguishes us" entries of the about section.
var achievementKeys = [...]string{
	"fourLanguages",
	"excellence",
	"internationalGuests",
	"premiumService",
}

// Achievement is one highlight of the about section.
type Achievement struct {
	ID          int
	Key         string
	Title       string
	Description string
}

// ProjectAchievements builds the about-section highlights from src.
func ProjectAchievements(src Lookup) ([]Achievement, error) {
	out := make([]Achievement, 0, len(achievementKeys))
	for id, key := range achievementKeys {
		title, err := src.Lookup(key)
		if err != nil {
			return nil, err
		}
		desc, err := src.Lookup(key + descSuffix)
		if err != nil {
			return nil, err
		}
		out = append(out, Achievement{ID: id, Key: key, Title: title, Description: desc})
	}
	return out, nil
}
