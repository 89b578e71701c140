package models

// Era is one selectable time period and the prompt text used to restage a
// photo in it.
type Era struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

var eraList = []Era{
	{
		ID:     "prehistoric",
		Name:   "Prehistoric Times",
		Prompt: "the Stone Age, wearing animal furs and hides, standing near a cave entrance with primitive stone tools, mammoths roaming in the misty background",
	},
	{
		ID:     "ancient-egypt",
		Name:   "Ancient Egypt",
		Prompt: "ancient Egypt, dressed in white linen garments and gold jewelry with kohl-lined eyes, the pyramids of Giza and the Nile glowing under a desert sun behind them",
	},
	{
		ID:     "ancient-rome",
		Name:   "Ancient Rome",
		Prompt: "the Roman Empire, wearing a draped toga with a laurel wreath, standing in a marble forum with columns and the Colosseum in the distance",
	},
	{
		ID:     "medieval",
		Name:   "Medieval Times",
		Prompt: "medieval Europe, dressed in period attire such as armor, a tunic or a flowing gown, in front of a stone castle with banners and torchlight",
	},
	{
		ID:     "renaissance",
		Name:   "Renaissance",
		Prompt: "Renaissance Italy, painted in the style of an oil portrait with rich velvet clothing, soft chiaroscuro lighting and a Florentine landscape behind them",
	},
	{
		ID:     "wild-west",
		Name:   "Wild West",
		Prompt: "the American Wild West of the 1880s, wearing a cowboy hat, duster coat and boots on a dusty frontier town street, rendered as a sepia tintype photograph",
	},
	{
		ID:     "roaring-twenties",
		Name:   "Roaring Twenties",
		Prompt: "the 1920s jazz age, in a flapper dress or a pinstripe suit with a fedora inside an art deco speakeasy, photographed in grainy black and white",
	},
	{
		ID:     "future",
		Name:   "Distant Future",
		Prompt: "the year 3000, wearing a sleek metallic suit with glowing accents in a neon-lit city of floating vehicles and holographic displays",
	},
}

var erasByID = func() map[string]Era {
	m := make(map[string]Era, len(eraList))
	for _, era := range eraList {
		m[era.ID] = era
	}
	return m
}()

// Eras returns the supported eras in display order. The slice is a copy.
func Eras() []Era {
	out := make([]Era, len(eraList))
	copy(out, eraList)
	return out
}

func LookupEra(id string) (Era, bool) {
	era, ok := erasByID[id]
	return era, ok
}
