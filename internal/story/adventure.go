package story

import "fmt"

// Choice is one option offered at a scene.
type Choice struct {
	Text string
	Next string
}

// Scene is one node in the adventure graph. A scene with no choices ends
// the story.
type Scene struct {
	Text    string
	Choices []Choice
}

// Adventure is a playable branching story.
type Adventure struct {
	Title  string
	Start  string
	Scenes map[string]Scene
}

// ForestAdventure returns the built-in adventure.
func ForestAdventure() *Adventure {
	return &Adventure{
		Title: "The Mysterious Forest",
		Start: "edge",
		Scenes: map[string]Scene{
			"edge": {
				Text: "You find yourself at the edge of a dark forest. A path leads into the trees.",
				Choices: []Choice{
					{Text: "Follow the path into the forest", Next: "path"},
					{Text: "Look for another way around", Next: "around"},
				},
			},
			"path": {
				Text: "You walk deeper into the forest. You hear strange sounds ahead.",
				Choices: []Choice{
					{Text: "Investigate the sounds", Next: "investigate"},
					{Text: "Try to sneak past quietly", Next: "sneak"},
				},
			},
			"around": {
				Text: "You find a rocky path around the forest. It looks safer but longer.",
				Choices: []Choice{
					{Text: "Take the rocky path", Next: "rocky"},
					{Text: "Go back to the forest entrance", Next: "edge"},
				},
			},
			"investigate": {
				Text: "You discover a friendly talking owl who offers to guide you.",
				Choices: []Choice{
					{Text: "Accept the owl's help", Next: "owl"},
					{Text: "Politely decline and continue alone", Next: "alone"},
				},
			},
			"sneak": {
				Text: "You successfully sneak past whatever was making the sounds.",
				Choices: []Choice{
					{Text: "Continue forward", Next: "treasure"},
				},
			},
			"rocky": {
				Text: "The rocky path is difficult but safe. You reach a clearing with a beautiful lake.",
				Choices: []Choice{
					{Text: "Rest by the lake", Next: "cave"},
					{Text: "Continue past the lake", Next: "village"},
				},
			},
			"owl":      {Text: "The owl leads you safely through the forest to a magical clearing. You win!"},
			"alone":    {Text: "You continue alone and get lost in the forest. Game over!"},
			"treasure": {Text: "You find a treasure chest! You win!"},
			"cave":     {Text: "You rest by the lake and discover a hidden cave entrance. You win!"},
			"village":  {Text: "You continue past the lake and find a village. You win!"},
		},
	}
}

// Scene looks up a scene by key.
func (a *Adventure) Scene(key string) (Scene, error) {
	s, ok := a.Scenes[key]
	if !ok {
		return Scene{}, fmt.Errorf("unknown scene %q", key)
	}
	return s, nil
}

// Validate checks that the start scene exists and every choice points at a
// defined scene.
func (a *Adventure) Validate() error {
	if _, ok := a.Scenes[a.Start]; !ok {
		return fmt.Errorf("start scene %q not defined", a.Start)
	}
	for key, scene := range a.Scenes {
		for _, c := range scene.Choices {
			if _, ok := a.Scenes[c.Next]; !ok {
				return fmt.Errorf("scene %q choice %q points at undefined scene %q", key, c.Text, c.Next)
			}
		}
	}
	return nil
}
