package main

import (
	"fmt"

	"github.com/lox/handrank/poker"
)

// CompareCmd decides which of two hands is stronger.
type CompareCmd struct {
	First  string `arg:"" name:"first" help:"First hand, e.g. 'QdQs3d5dAd'"`
	Second string `arg:"" name:"second" help:"Second hand, e.g. '3d2s5d5h6d'"`
}

func (cmd *CompareCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	hands, err := parseHands([]string{cmd.First, cmd.Second})
	if err != nil {
		return err
	}
	first, second := hands[0], hands[1]

	a, b := first.Evaluate(), second.Evaluate()
	result, explanation := poker.Explain(a, b)
	e.logger.Debug("Compared hands", "first", a.String(), "second", b.String(), "result", result)

	fmt.Fprintf(e.out, "%s  %s\n", handStyle.Render(e.formatHand(first)), categoryStyle.Render(a.Description()))
	fmt.Fprintf(e.out, "%s  %s\n\n", handStyle.Render(e.formatHand(second)), categoryStyle.Render(b.Description()))

	switch {
	case result > 0:
		fmt.Fprintf(e.out, "%s %s\n", winStyle.Render("first wins:"), explanation)
	case result < 0:
		fmt.Fprintf(e.out, "%s %s\n", winStyle.Render("second wins:"), explanation)
	default:
		fmt.Fprintf(e.out, "%s\n", tieStyle.Render(explanation))
	}
	return nil
}
