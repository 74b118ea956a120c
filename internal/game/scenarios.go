package game

import "portfolio-backend/internal/models"

var scenarios = []models.Scenario{
	{
		ID: 1, Text: "Validation loss is plateauing.", Color: "purple",
		Left:  models.Outcome{Text: "Early Stop", Effects: models.Metrics{Accuracy: -5, Compute: 15, Stability: 10}},
		Right: models.Outcome{Text: "Boost LR", Effects: models.Metrics{Accuracy: 15, Compute: -10, Stability: -20}},
	},
	{
		ID: 2, Text: "New massive dataset available.", Color: "cyan",
		Left:  models.Outcome{Text: "Ignore (Noise)", Effects: models.Metrics{Accuracy: -5, Compute: 5, Stability: 5}},
		Right: models.Outcome{Text: "Ingest All", Effects: models.Metrics{Accuracy: 10, Compute: -25, Stability: -10}},
	},
	{
		ID: 3, Text: "GPU temperatures critical.", Color: "red",
		Left:  models.Outcome{Text: "Throttle", Effects: models.Metrics{Accuracy: -10, Compute: 20, Stability: 10}},
		Right: models.Outcome{Text: "Ignore", Effects: models.Metrics{Accuracy: 5, Compute: -30, Stability: -15}},
	},
	{
		ID: 4, Text: "Model is hallucinating facts.", Color: "pink",
		Left:  models.Outcome{Text: "Add RLHF", Effects: models.Metrics{Accuracy: 20, Compute: -15, Stability: 5}},
		Right: models.Outcome{Text: "Prompt Eng.", Effects: models.Metrics{Accuracy: 5, Compute: 5, Stability: -5}},
	},
	{
		ID: 5, Text: "Competitor released a better model.", Color: "yellow",
		Left:  models.Outcome{Text: "Rush Release", Effects: models.Metrics{Accuracy: -15, Compute: -10, Stability: -25}},
		Right: models.Outcome{Text: "Analyze", Effects: models.Metrics{Accuracy: 5, Compute: -5, Stability: 5}},
	},
	{
		ID: 6, Text: "Security vulnerability found.", Color: "green",
		Left:  models.Outcome{Text: "Patch Now", Effects: models.Metrics{Accuracy: -5, Compute: -10, Stability: 25}},
		Right: models.Outcome{Text: "Delay", Effects: models.Metrics{Accuracy: 5, Compute: 5, Stability: -30}},
	},
	{
		ID: 7, Text: "Batch size causing OOM errors.", Color: "orange",
		Left:  models.Outcome{Text: "Reduce Batch", Effects: models.Metrics{Accuracy: -5, Compute: 15, Stability: 10}},
		Right: models.Outcome{Text: "Gradient Chkpt", Effects: models.Metrics{Accuracy: 0, Compute: -20, Stability: 5}},
	},
	{
		ID: 8, Text: "Stakeholders demand features.", Color: "blue",
		Left:  models.Outcome{Text: "Ship It", Effects: models.Metrics{Accuracy: -10, Compute: 10, Stability: -15}},
		Right: models.Outcome{Text: "Refine", Effects: models.Metrics{Accuracy: 10, Compute: -10, Stability: 5}},
	},
}

// Scenarios returns the fixed deck.
func Scenarios() []models.Scenario {
	return append([]models.Scenario(nil), scenarios...)
}
