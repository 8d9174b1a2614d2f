package cmd

import (
	"github.com/etnz/marina/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	files := predict.Files("*")
	topics, _ := docs.GetAllTopics()

	sub := make(map[string]*complete.Command, len(commands))
	for _, c := range commands {
		sub[c.Name()] = &complete.Command{Args: files}
	}
	sub["inventory"].Flags = map[string]complete.Predictor{"plain": predict.Nothing}
	sub["month"].Flags = map[string]complete.Predictor{"n": predict.Nothing}
	sub["topic"].Flags = map[string]complete.Predictor{"list": predict.Nothing}
	sub["topic"].Args = predict.Set(append(topics, "readme", "*"))

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
		Args: files,
	}
}
